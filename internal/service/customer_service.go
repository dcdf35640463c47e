package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chayanin-dev/chat-relay/internal/domain"
	"github.com/chayanin-dev/chat-relay/internal/dto"
	"github.com/chayanin-dev/chat-relay/internal/repository"
)

// CustomerService manages customer data registration
type CustomerService interface {
	// Add registers a customer record for a tenant
	Add(ctx context.Context, tenant *domain.Tenant, req *dto.AddCustomerRequest) (*dto.AddCustomerResponse, error)
}

// customerService implements CustomerService
type customerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

// Add validates and stores a customer record. Empty email and phone are
// normalized to absent; the attribute map defaults to empty.
func (s *customerService) Add(ctx context.Context, tenant *domain.Tenant, req *dto.AddCustomerRequest) (*dto.AddCustomerResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrMissingName
	}

	data := req.Data
	if data == nil {
		data = map[string]interface{}{}
	}

	now := time.Now()
	customer := &domain.Customer{
		ID:        uuid.New().String(),
		TenantID:  tenant.ID,
		Name:      name,
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Data:      data,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return &dto.AddCustomerResponse{
		Success:    true,
		CustomerID: customer.ID,
		Name:       customer.Name,
		Email:      nullableString(customer.Email),
		Phone:      nullableString(customer.Phone),
		CreatedAt:  customer.CreatedAt.Format(time.RFC3339),
	}, nil
}

// nullableString returns nil for empty strings so absent optional
// fields render as JSON null
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
