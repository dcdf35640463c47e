package dto

// AddCustomerRequest represents the body for registering customer data
type AddCustomerRequest struct {
	Name  string                 `json:"name"`
	Email string                 `json:"email"`
	Phone string                 `json:"phone"`
	Data  map[string]interface{} `json:"data"`
}

// AddCustomerResponse represents a newly stored customer record.
// Email and phone are pointers so absent values serialize as null.
type AddCustomerResponse struct {
	Success    bool    `json:"success"`
	CustomerID string  `json:"customer_id"`
	Name       string  `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	CreatedAt  string  `json:"created_at"`
}
