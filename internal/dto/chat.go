package dto

// ChatCallRequest represents the body of a chat relay call
type ChatCallRequest struct {
	Prompt     string `json:"prompt"`
	Model      string `json:"model"`
	Seed       string `json:"seed"`
	CustomerID string `json:"customer_id"`
}

// ChatCallResponse represents a completed chat exchange
type ChatCallResponse struct {
	Success         bool   `json:"success"`
	MessageID       string `json:"message_id"`
	Prompt          string `json:"prompt"`
	Response        string `json:"response"`
	Model           string `json:"model"`
	ResponseTimeMS  int    `json:"response_time_ms"`
	TokensRemaining int    `json:"tokens_remaining"`
	Tenant          string `json:"tenant"`
}

// HistoryQuery represents pagination parameters for chat history
type HistoryQuery struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// SetDefaults sets default values for pagination
func (q *HistoryQuery) SetDefaults() {
	if q.Limit <= 0 {
		q.Limit = 50
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
}

// MessageItem represents one recorded exchange in a history listing
type MessageItem struct {
	ID             string `json:"id"`
	Prompt         string `json:"prompt"`
	Response       string `json:"response"`
	CreatedAt      string `json:"created_at"`
	Model          string `json:"model"`
	TokensUsed     int    `json:"tokens_used"`
	ResponseTimeMS int    `json:"response_time_ms"`
}

// HistoryResponse represents a page of chat history plus current quota state
type HistoryResponse struct {
	Success       bool           `json:"success"`
	Messages      []*MessageItem `json:"messages"`
	TotalMessages int            `json:"total_messages"`
	Tenant        string         `json:"tenant"`
	TokensUsed    int            `json:"tokens_used"`
	TokensLimit   int            `json:"tokens_limit"`
}
