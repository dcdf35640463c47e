package repository

import (
	"context"

	"github.com/chayanin-dev/chat-relay/internal/domain"
)

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	// Create creates a new customer record
	Create(ctx context.Context, customer *domain.Customer) error
	// GetByIDForTenant retrieves a customer by ID scoped to a tenant
	GetByIDForTenant(ctx context.Context, id, tenantID string) (*domain.Customer, error)
	// ListRecent retrieves the most recently created customers for a tenant
	ListRecent(ctx context.Context, tenantID string, limit int) ([]*domain.Customer, error)
}
