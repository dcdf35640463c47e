package service

import (
	"context"
	"net"
	"strings"

	"github.com/chayanin-dev/chat-relay/internal/domain"
	"github.com/chayanin-dev/chat-relay/internal/repository"
)

// TenantResolver maps a request hostname to the tenant it belongs to
type TenantResolver interface {
	// Resolve returns the active tenant for the given host, or nil when
	// no tenant matches
	Resolve(ctx context.Context, host string) (*domain.Tenant, error)
}

// tenantResolver implements TenantResolver against the tenant store
type tenantResolver struct {
	tenantRepo     repository.TenantRepository
	devHostPattern string
}

// NewTenantResolver creates a new TenantResolver. devHostPattern is a
// substring identifying development hosting domains that should fall
// back to the first active tenant.
func NewTenantResolver(tenantRepo repository.TenantRepository, devHostPattern string) TenantResolver {
	return &tenantResolver{
		tenantRepo:     tenantRepo,
		devHostPattern: devHostPattern,
	}
}

// Resolve strips any port suffix from the host, looks up an active
// tenant registered for that domain, and falls back to the first active
// tenant for loopback and development hosts.
func (r *tenantResolver) Resolve(ctx context.Context, host string) (*domain.Tenant, error) {
	host = stripPort(host)
	if host == "" {
		return nil, nil
	}

	tenant, err := r.tenantRepo.GetActiveByDomain(ctx, host)
	if err != nil {
		return nil, err
	}
	if tenant != nil {
		return tenant, nil
	}

	if r.isDevHost(host) {
		return r.tenantRepo.FirstActive(ctx)
	}

	return nil, nil
}

func (r *tenantResolver) isDevHost(host string) bool {
	if host == "localhost" || host == "127.0.0.1" {
		return true
	}
	return r.devHostPattern != "" && strings.Contains(host, r.devHostPattern)
}

func stripPort(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
