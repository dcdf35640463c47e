package repository

import (
	"context"

	"github.com/chayanin-dev/chat-relay/internal/domain"
)

// TenantRepository defines the interface for tenant data access
type TenantRepository interface {
	// Create creates a new tenant
	Create(ctx context.Context, tenant *domain.Tenant) error
	// GetByID retrieves a tenant by ID
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	// GetActiveByDomain retrieves an active tenant by its registered domain
	GetActiveByDomain(ctx context.Context, host string) (*domain.Tenant, error)
	// FirstActive retrieves the oldest active tenant, used for development hosts
	FirstActive(ctx context.Context) (*domain.Tenant, error)
	// AddTokenUsage atomically increments token usage and returns the new total
	AddTokenUsage(ctx context.Context, id string, tokens int) (int, error)
}
