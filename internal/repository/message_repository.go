package repository

import (
	"context"

	"github.com/chayanin-dev/chat-relay/internal/domain"
)

// MessageRepository defines the interface for chat message data access
type MessageRepository interface {
	// Create records a completed exchange
	Create(ctx context.Context, message *domain.ChatMessage) error
	// ListByTenant retrieves messages for a tenant, newest first
	ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*domain.ChatMessage, error)
	// CountByTenant returns the total number of messages for a tenant
	CountByTenant(ctx context.Context, tenantID string) (int, error)
}
