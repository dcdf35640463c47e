package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chayanin-dev/chat-relay/internal/domain"
)

// PostgresCustomerRepository implements CustomerRepository using PostgreSQL
type PostgresCustomerRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCustomerRepository creates a new PostgresCustomerRepository
func NewPostgresCustomerRepository(pool *pgxpool.Pool) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{pool: pool}
}

// Create creates a new customer record
func (r *PostgresCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	query := `
		INSERT INTO customers (id, tenant_id, name, email, phone, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		customer.ID,
		customer.TenantID,
		customer.Name,
		nullStringOrValue(customer.Email),
		nullStringOrValue(customer.Phone),
		customer.Data,
		customer.CreatedAt,
		customer.UpdatedAt,
	)
	return err
}

// GetByIDForTenant retrieves a customer by ID scoped to a tenant
func (r *PostgresCustomerRepository) GetByIDForTenant(ctx context.Context, id, tenantID string) (*domain.Customer, error) {
	query := `
		SELECT id, tenant_id, name, COALESCE(email, '') as email, COALESCE(phone, '') as phone,
		       COALESCE(data, '{}'::jsonb) as data, created_at, updated_at
		FROM customers
		WHERE id = $1 AND tenant_id = $2
	`
	customer := &domain.Customer{}
	err := r.pool.QueryRow(ctx, query, id, tenantID).Scan(
		&customer.ID,
		&customer.TenantID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.Data,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return customer, nil
}

// ListRecent retrieves the most recently created customers for a tenant
func (r *PostgresCustomerRepository) ListRecent(ctx context.Context, tenantID string, limit int) ([]*domain.Customer, error) {
	query := `
		SELECT id, tenant_id, name, COALESCE(email, '') as email, COALESCE(phone, '') as phone,
		       COALESCE(data, '{}'::jsonb) as data, created_at, updated_at
		FROM customers
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, tenantID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer := &domain.Customer{}
		err := rows.Scan(
			&customer.ID,
			&customer.TenantID,
			&customer.Name,
			&customer.Email,
			&customer.Phone,
			&customer.Data,
			&customer.CreatedAt,
			&customer.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}

	return customers, rows.Err()
}

// nullStringOrValue returns nil for empty strings, otherwise returns the value
func nullStringOrValue(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
