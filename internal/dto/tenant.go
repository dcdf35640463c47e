package dto

// TenantInfo is the snapshot of a tenant's identity and quota state
type TenantInfo struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Domain          string `json:"domain"`
	TokensUsed      int    `json:"tokens_used"`
	TokensLimit     int    `json:"tokens_limit"`
	TokensRemaining int    `json:"tokens_remaining"`
	SystemParameter string `json:"system_parameter"`
	CreatedAt       string `json:"created_at"`
}

// TenantInfoResponse wraps the tenant snapshot
type TenantInfoResponse struct {
	Success bool        `json:"success"`
	Tenant  *TenantInfo `json:"tenant"`
}
