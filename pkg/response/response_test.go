package response

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestTokenLimitExceeded(t *testing.T) {
	body := TokenLimitExceeded(1000, 1000)

	if body.Error != ErrTokenLimit {
		t.Errorf("Expected error %q, got %q", ErrTokenLimit, body.Error)
	}
	if body.Message != "Tenant has used 1000/1000 tokens" {
		t.Errorf("Unexpected message: %q", body.Message)
	}
}

func TestErrorBody_JSONFormat(t *testing.T) {
	body := TenantNotFound()

	jsonBytes, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal error body: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(jsonBytes, &parsed); err != nil {
		t.Fatalf("Failed to unmarshal error body: %v", err)
	}

	if parsed["error"] != ErrTenantNotFound {
		t.Errorf("Expected error %q, got %v", ErrTenantNotFound, parsed["error"])
	}
	if _, ok := parsed["message"]; !ok {
		t.Error("Expected message field to be present")
	}
	if len(parsed) != 2 {
		t.Errorf("Expected exactly 2 fields, got %d", len(parsed))
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		title string
		want  int
	}{
		{ErrTenantNotFound, http.StatusNotFound},
		{ErrTokenLimit, http.StatusTooManyRequests},
		{ErrMissingPrompt, http.StatusBadRequest},
		{ErrMissingName, http.StatusBadRequest},
		{ErrInvalidJSON, http.StatusBadRequest},
		{ErrInvalidQuery, http.StatusBadRequest},
		{ErrInternal, http.StatusInternalServerError},
		{"something else", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := StatusFor(tt.title); got != tt.want {
				t.Errorf("StatusFor(%q) = %d, want %d", tt.title, got, tt.want)
			}
		})
	}
}
