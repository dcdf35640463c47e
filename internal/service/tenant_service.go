package service

import (
	"time"

	"github.com/chayanin-dev/chat-relay/internal/domain"
	"github.com/chayanin-dev/chat-relay/internal/dto"
)

// TenantService exposes tenant-facing read operations
type TenantService interface {
	// Info returns a snapshot of the tenant's identity and quota state
	Info(tenant *domain.Tenant) *dto.TenantInfoResponse
}

// tenantService implements TenantService
type tenantService struct{}

// NewTenantService creates a new TenantService
func NewTenantService() TenantService {
	return &tenantService{}
}

// Info builds the snapshot from the tenant resolved for this request,
// so repeated calls without intervening chat calls report the same usage
func (s *tenantService) Info(tenant *domain.Tenant) *dto.TenantInfoResponse {
	return &dto.TenantInfoResponse{
		Success: true,
		Tenant: &dto.TenantInfo{
			ID:              tenant.ID,
			Name:            tenant.Name,
			Domain:          tenant.Domain,
			TokensUsed:      tenant.TokenUsage,
			TokensLimit:     tenant.TokenLimit,
			TokensRemaining: tenant.TokensRemaining(),
			SystemParameter: tenant.SystemParameter,
			CreatedAt:       tenant.CreatedAt.Format(time.RFC3339),
		},
	}
}
