package domain

import (
	"time"
)

// ChatMessage is one entry of the append-only chat log. Response is set
// before the record is persisted - on relay failure it holds the
// synthesized error string, never NULL.
type ChatMessage struct {
	ID             string    `json:"id"`
	TenantID       string    `json:"tenant_id"`
	CustomerID     *string   `json:"customer_id,omitempty"`
	Prompt         string    `json:"prompt"`
	Response       string    `json:"response"`
	TokensUsed     int       `json:"tokens_used"`
	Model          string    `json:"model"`
	Seed           string    `json:"seed,omitempty"`
	ResponseTimeMS int       `json:"response_time_ms"`
	CreatedAt      time.Time `json:"created_at"`
}
