package service

import (
	"context"

	"github.com/chayanin-dev/chat-relay/internal/domain"
	"github.com/chayanin-dev/chat-relay/internal/repository"
)

// QuotaGuard controls how chat calls are admitted and billed against a
// tenant's token quota. Charging is isolated behind this interface so
// flat-rate billing can later be replaced with real token counting.
type QuotaGuard interface {
	// HasTokensAvailable reports whether the tenant may start another call
	HasTokensAvailable(tenant *domain.Tenant) bool
	// Charge bills one completed relay attempt and returns the new usage.
	// It is called after the relay completes, success or failure.
	Charge(ctx context.Context, tenant *domain.Tenant) (int, error)
	// Cost returns the token cost that Charge will bill per call
	Cost() int
}

// flatRateQuotaGuard bills a fixed cost per relay attempt regardless of
// prompt or response size
type flatRateQuotaGuard struct {
	tenantRepo  repository.TenantRepository
	costPerCall int
}

// NewFlatRateQuotaGuard creates a QuotaGuard charging one token per call
func NewFlatRateQuotaGuard(tenantRepo repository.TenantRepository) QuotaGuard {
	return &flatRateQuotaGuard{
		tenantRepo:  tenantRepo,
		costPerCall: 1,
	}
}

// HasTokensAvailable reports whether the tenant may start another call.
// The check runs once before the relay; the charge happens after it, so
// concurrent in-flight calls can overshoot the limit by their count.
func (g *flatRateQuotaGuard) HasTokensAvailable(tenant *domain.Tenant) bool {
	return tenant.HasTokensAvailable()
}

// Charge atomically increments the tenant's persisted usage
func (g *flatRateQuotaGuard) Charge(ctx context.Context, tenant *domain.Tenant) (int, error) {
	usage, err := g.tenantRepo.AddTokenUsage(ctx, tenant.ID, g.costPerCall)
	if err != nil {
		return 0, err
	}
	tenant.TokenUsage = usage
	return usage, nil
}

// Cost returns the flat per-call token cost
func (g *flatRateQuotaGuard) Cost() int {
	return g.costPerCall
}
