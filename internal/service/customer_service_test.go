package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/chayanin-dev/chat-relay/internal/domain"
	"github.com/chayanin-dev/chat-relay/internal/dto"
)

func TestCustomerService_Add(t *testing.T) {
	repo := newMockCustomerRepo()
	svc := NewCustomerService(repo)
	tenant := &domain.Tenant{ID: "t1", Name: "Acme"}

	resp, err := svc.Add(context.Background(), tenant, &dto.AddCustomerRequest{
		Name:  "  Ann  ",
		Email: "ann@example.com",
		Data:  map[string]interface{}{"plan": "gold"},
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if !resp.Success {
		t.Error("Add() Success = false")
	}
	if resp.Name != "Ann" {
		t.Errorf("Add() Name = %q, want trimmed %q", resp.Name, "Ann")
	}
	if resp.CustomerID == "" {
		t.Error("Add() CustomerID empty")
	}

	if len(repo.customers) != 1 {
		t.Fatalf("Stored %d customers, want 1", len(repo.customers))
	}
	stored := repo.customers[0]
	if stored.TenantID != "t1" {
		t.Errorf("Stored TenantID = %q, want t1", stored.TenantID)
	}
	if stored.Data["plan"] != "gold" {
		t.Errorf("Stored Data = %v", stored.Data)
	}
}

func TestCustomerService_Add_MissingName(t *testing.T) {
	repo := newMockCustomerRepo()
	svc := NewCustomerService(repo)
	tenant := &domain.Tenant{ID: "t1"}

	for _, name := range []string{"", "   "} {
		_, err := svc.Add(context.Background(), tenant, &dto.AddCustomerRequest{Name: name})
		if !errors.Is(err, ErrMissingName) {
			t.Errorf("Add(name=%q) error = %v, want ErrMissingName", name, err)
		}
	}
	if len(repo.customers) != 0 {
		t.Errorf("Stored %d customers, want 0", len(repo.customers))
	}
}

func TestCustomerService_Add_NullableContactFields(t *testing.T) {
	repo := newMockCustomerRepo()
	svc := NewCustomerService(repo)
	tenant := &domain.Tenant{ID: "t1"}

	resp, err := svc.Add(context.Background(), tenant, &dto.AddCustomerRequest{Name: "Bob"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	var parsed map[string]interface{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	// Absent email/phone are present keys with null values
	for _, key := range []string{"email", "phone"} {
		value, present := parsed[key]
		if !present {
			t.Errorf("Response missing %q key", key)
			continue
		}
		if value != nil {
			t.Errorf("Response %s = %v, want null", key, value)
		}
	}

	resp, err = svc.Add(context.Background(), tenant, &dto.AddCustomerRequest{Name: "Ann", Email: "ann@example.com"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if resp.Email == nil || *resp.Email != "ann@example.com" {
		t.Errorf("Email = %v, want ann@example.com", resp.Email)
	}
}

func TestCustomerService_Add_DefaultsEmptyData(t *testing.T) {
	repo := newMockCustomerRepo()
	svc := NewCustomerService(repo)
	tenant := &domain.Tenant{ID: "t1"}

	_, err := svc.Add(context.Background(), tenant, &dto.AddCustomerRequest{Name: "Bob"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if repo.customers[0].Data == nil {
		t.Error("Stored Data = nil, want empty map")
	}
}
