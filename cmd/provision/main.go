// Command provision creates a tenant for development and testing.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/chayanin-dev/chat-relay/internal/domain"
	"github.com/chayanin-dev/chat-relay/internal/repository"
	"github.com/chayanin-dev/chat-relay/pkg/config"
	"github.com/chayanin-dev/chat-relay/pkg/database"
)

func main() {
	name := flag.String("name", "Sample Company", "tenant name")
	domainName := flag.String("domain", "localhost", "tenant domain")
	system := flag.String("system", "You are a helpful customer service assistant. Be polite and professional.", "system parameter")
	tokenLimit := flag.Int("token-limit", 1000, "token limit")
	withCustomers := flag.Bool("with-customers", false, "also seed sample customer records")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.NewPostgres(ctx, &database.PostgresConfig{
		Host:           cfg.Database.Host,
		Port:           cfg.Database.Port,
		User:           cfg.Database.User,
		Password:       cfg.Database.Password,
		Database:       cfg.Database.DBName,
		SSLMode:        cfg.Database.SSLMode,
		MaxConns:       2,
		MinConns:       1,
		ConnectTimeout: 10 * time.Second,
		MaxRetries:     3,
		RetryInterval:  2 * time.Second,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := repository.NewPostgresTenantRepository(db.Pool())

	existing, err := repo.GetActiveByDomain(ctx, *domainName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to check existing tenant: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Printf("Tenant already exists: %s (%s)\n", existing.Name, existing.Domain)
		return
	}

	now := time.Now()
	tenant := &domain.Tenant{
		ID:              uuid.New().String(),
		Name:            *name,
		Domain:          *domainName,
		SystemParameter: *system,
		TokenLimit:      *tokenLimit,
		TokenUsage:      0,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := repo.Create(ctx, tenant); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create tenant: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully created tenant: %s (%s)\n", tenant.Name, tenant.Domain)

	if *withCustomers {
		customerRepo := repository.NewPostgresCustomerRepository(db.Pool())
		samples := []*domain.Customer{
			{
				ID: uuid.New().String(), TenantID: tenant.ID,
				Name: "Ann Example", Email: "ann@example.com",
				Data:      map[string]interface{}{"plan": "gold", "signup_channel": "web"},
				CreatedAt: now, UpdatedAt: now,
			},
			{
				ID: uuid.New().String(), TenantID: tenant.ID,
				Name: "Bob Example", Phone: "555-0101",
				Data:      map[string]interface{}{"plan": "free"},
				CreatedAt: now, UpdatedAt: now,
			},
		}
		for _, customer := range samples {
			if err := customerRepo.Create(ctx, customer); err != nil {
				fmt.Fprintf(os.Stderr, "failed to create customer %s: %v\n", customer.Name, err)
				os.Exit(1)
			}
			fmt.Printf("Created customer: %s\n", customer.Name)
		}
	}
}
