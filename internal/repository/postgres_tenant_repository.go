package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chayanin-dev/chat-relay/internal/domain"
)

// PostgresTenantRepository implements TenantRepository using PostgreSQL
type PostgresTenantRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTenantRepository creates a new PostgresTenantRepository
func NewPostgresTenantRepository(pool *pgxpool.Pool) *PostgresTenantRepository {
	return &PostgresTenantRepository{pool: pool}
}

// Create creates a new tenant
func (r *PostgresTenantRepository) Create(ctx context.Context, tenant *domain.Tenant) error {
	query := `
		INSERT INTO tenants (id, name, domain, system_parameter, token_limit, token_usage, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		tenant.ID,
		tenant.Name,
		tenant.Domain,
		tenant.SystemParameter,
		tenant.TokenLimit,
		tenant.TokenUsage,
		tenant.IsActive,
		tenant.CreatedAt,
		tenant.UpdatedAt,
	)
	return err
}

// GetByID retrieves a tenant by ID
func (r *PostgresTenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	query := `
		SELECT id, name, domain, system_parameter, token_limit, token_usage, is_active, created_at, updated_at
		FROM tenants
		WHERE id = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

// GetActiveByDomain retrieves an active tenant by its registered domain
func (r *PostgresTenantRepository) GetActiveByDomain(ctx context.Context, host string) (*domain.Tenant, error) {
	query := `
		SELECT id, name, domain, system_parameter, token_limit, token_usage, is_active, created_at, updated_at
		FROM tenants
		WHERE domain = $1 AND is_active = true
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, host))
}

// FirstActive retrieves the oldest active tenant, used for development hosts
func (r *PostgresTenantRepository) FirstActive(ctx context.Context) (*domain.Tenant, error) {
	query := `
		SELECT id, name, domain, system_parameter, token_limit, token_usage, is_active, created_at, updated_at
		FROM tenants
		WHERE is_active = true
		ORDER BY created_at ASC
		LIMIT 1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query))
}

// AddTokenUsage atomically increments token usage and returns the new total
func (r *PostgresTenantRepository) AddTokenUsage(ctx context.Context, id string, tokens int) (int, error) {
	query := `
		UPDATE tenants
		SET token_usage = token_usage + $2, updated_at = now()
		WHERE id = $1
		RETURNING token_usage
	`
	var usage int
	err := r.pool.QueryRow(ctx, query, id, tokens).Scan(&usage)
	if err != nil {
		return 0, err
	}
	return usage, nil
}

func (r *PostgresTenantRepository) scanOne(row pgx.Row) (*domain.Tenant, error) {
	tenant := &domain.Tenant{}
	err := row.Scan(
		&tenant.ID,
		&tenant.Name,
		&tenant.Domain,
		&tenant.SystemParameter,
		&tenant.TokenLimit,
		&tenant.TokenUsage,
		&tenant.IsActive,
		&tenant.CreatedAt,
		&tenant.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return tenant, nil
}
