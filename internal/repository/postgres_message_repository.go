package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chayanin-dev/chat-relay/internal/domain"
)

// PostgresMessageRepository implements MessageRepository using PostgreSQL
type PostgresMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMessageRepository creates a new PostgresMessageRepository
func NewPostgresMessageRepository(pool *pgxpool.Pool) *PostgresMessageRepository {
	return &PostgresMessageRepository{pool: pool}
}

// Create records a completed exchange
func (r *PostgresMessageRepository) Create(ctx context.Context, message *domain.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (id, tenant_id, customer_id, prompt, response, tokens_used, model, seed, response_time_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		message.ID,
		message.TenantID,
		message.CustomerID,
		message.Prompt,
		message.Response,
		message.TokensUsed,
		message.Model,
		nullStringOrValue(message.Seed),
		message.ResponseTimeMS,
		message.CreatedAt,
	)
	return err
}

// ListByTenant retrieves messages for a tenant, newest first
func (r *PostgresMessageRepository) ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*domain.ChatMessage, error) {
	query := `
		SELECT id, tenant_id, customer_id, prompt, response, tokens_used, model,
		       COALESCE(seed, '') as seed, response_time_ms, created_at
		FROM chat_messages
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]*domain.ChatMessage, 0)
	for rows.Next() {
		message := &domain.ChatMessage{}
		err := rows.Scan(
			&message.ID,
			&message.TenantID,
			&message.CustomerID,
			&message.Prompt,
			&message.Response,
			&message.TokensUsed,
			&message.Model,
			&message.Seed,
			&message.ResponseTimeMS,
			&message.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	return messages, rows.Err()
}

// CountByTenant returns the total number of messages for a tenant
func (r *PostgresMessageRepository) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	query := `SELECT COUNT(*) FROM chat_messages WHERE tenant_id = $1`
	var count int
	err := r.pool.QueryRow(ctx, query, tenantID).Scan(&count)
	return count, err
}
