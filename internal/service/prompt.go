package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chayanin-dev/chat-relay/internal/domain"
	"github.com/chayanin-dev/chat-relay/internal/repository"
)

// recentCustomerLimit bounds how many customer records are summarized
// into the tenant data block
const recentCustomerLimit = 5

// ContextAssembler builds the system-prompt text sent to the relay
type ContextAssembler interface {
	// Assemble combines the tenant template, recent customer summaries
	// and the optional specific customer detail into one system prompt.
	// customer may be nil when the caller supplied no customer id or it
	// did not resolve.
	Assemble(ctx context.Context, tenant *domain.Tenant, customer *domain.Customer) (string, error)
}

// contextAssembler implements ContextAssembler against the customer store
type contextAssembler struct {
	customerRepo repository.CustomerRepository
}

// NewContextAssembler creates a new ContextAssembler
func NewContextAssembler(customerRepo repository.CustomerRepository) ContextAssembler {
	return &contextAssembler{customerRepo: customerRepo}
}

// Assemble produces the system prompt. The tenant data block is only
// appended when at least one recent customer exists, so a tenant with
// no customers gets its template verbatim.
func (a *contextAssembler) Assemble(ctx context.Context, tenant *domain.Tenant, customer *domain.Customer) (string, error) {
	var sb strings.Builder
	sb.WriteString(tenant.SystemParameter)

	recent, err := a.customerRepo.ListRecent(ctx, tenant.ID, recentCustomerLimit)
	if err != nil {
		return "", err
	}

	if len(recent) > 0 {
		sb.WriteString("\n\nTenant Data Context:\n")
		if tenant.Name != "" {
			fmt.Fprintf(&sb, "Company: %s\n", tenant.Name)
		}
		sb.WriteString("Recent customers and their data:\n")
		for _, c := range recent {
			fmt.Fprintf(&sb, "- Customer: %s", c.Name)
			if c.Email != "" {
				fmt.Fprintf(&sb, " (Email: %s)", c.Email)
			}
			if c.Phone != "" {
				fmt.Fprintf(&sb, " (Phone: %s)", c.Phone)
			}
			if len(c.Data) > 0 {
				fmt.Fprintf(&sb, "\n  Customer Data: %s", prettyJSON(c.Data))
			}
			sb.WriteString("\n")
		}
	}

	if customer != nil {
		sb.WriteString("\n\nSpecific Customer Context:\n")
		fmt.Fprintf(&sb, "Customer Name: %s\n", customer.Name)
		if customer.Email != "" {
			fmt.Fprintf(&sb, "Customer Email: %s\n", customer.Email)
		}
		if customer.Phone != "" {
			fmt.Fprintf(&sb, "Customer Phone: %s\n", customer.Phone)
		}
		if len(customer.Data) > 0 {
			fmt.Fprintf(&sb, "Customer Additional Data: %s\n", prettyJSON(customer.Data))
		}
	}

	return sb.String(), nil
}

// prettyJSON renders the attribute map with two-space indentation. Map
// keys serialize in sorted order, so the rendering is deterministic.
func prettyJSON(data map[string]interface{}) string {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(out)
}
