package domain

import (
	"time"
)

// Tenant represents an isolated customer organization identified by a
// unique domain, carrying its own quota and system-prompt template
type Tenant struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Domain          string    `json:"domain"`
	SystemParameter string    `json:"system_parameter"`
	TokenLimit      int       `json:"token_limit"`
	TokenUsage      int       `json:"token_usage"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TokensRemaining returns the unused portion of the quota. It can go
// negative when concurrent in-flight requests overshoot the limit.
func (t *Tenant) TokensRemaining() int {
	return t.TokenLimit - t.TokenUsage
}

// HasTokensAvailable reports whether the tenant may start another chat call
func (t *Tenant) HasTokensAvailable() bool {
	return t.TokenUsage < t.TokenLimit
}
