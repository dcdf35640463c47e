package service

import (
	"context"
	"sort"
	"sync"

	"github.com/chayanin-dev/chat-relay/internal/domain"
	"github.com/chayanin-dev/chat-relay/internal/relay"
)

// mockTenantRepo is an in-memory TenantRepository
type mockTenantRepo struct {
	mu      sync.Mutex
	tenants map[string]*domain.Tenant
	err     error
}

func newMockTenantRepo() *mockTenantRepo {
	return &mockTenantRepo{tenants: make(map[string]*domain.Tenant)}
}

func (m *mockTenantRepo) Create(ctx context.Context, tenant *domain.Tenant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tenants[tenant.ID] = tenant
	return nil
}

func (m *mockTenantRepo) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.tenants[id], nil
}

func (m *mockTenantRepo) GetActiveByDomain(ctx context.Context, host string) (*domain.Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, t := range m.tenants {
		if t.Domain == host && t.IsActive {
			return t, nil
		}
	}
	return nil, nil
}

func (m *mockTenantRepo) FirstActive(ctx context.Context) (*domain.Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var active []*domain.Tenant
	for _, t := range m.tenants {
		if t.IsActive {
			active = append(active, t)
		}
	}
	if len(active) == 0 {
		return nil, nil
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].CreatedAt.Before(active[j].CreatedAt)
	})
	return active[0], nil
}

func (m *mockTenantRepo) AddTokenUsage(ctx context.Context, id string, tokens int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	t, ok := m.tenants[id]
	if !ok {
		return 0, nil
	}
	t.TokenUsage += tokens
	return t.TokenUsage, nil
}

// mockCustomerRepo is an in-memory CustomerRepository preserving
// insertion order
type mockCustomerRepo struct {
	mu        sync.Mutex
	customers []*domain.Customer
	err       error
}

func newMockCustomerRepo() *mockCustomerRepo {
	return &mockCustomerRepo{}
}

func (m *mockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.customers = append(m.customers, customer)
	return nil
}

func (m *mockCustomerRepo) GetByIDForTenant(ctx context.Context, id, tenantID string) (*domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, c := range m.customers {
		if c.ID == id && c.TenantID == tenantID {
			return c, nil
		}
	}
	return nil, nil
}

func (m *mockCustomerRepo) ListRecent(ctx context.Context, tenantID string, limit int) ([]*domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.Customer
	for i := len(m.customers) - 1; i >= 0 && len(out) < limit; i-- {
		if m.customers[i].TenantID == tenantID {
			out = append(out, m.customers[i])
		}
	}
	return out, nil
}

// mockMessageRepo is an in-memory MessageRepository
type mockMessageRepo struct {
	mu       sync.Mutex
	messages []*domain.ChatMessage
	err      error
}

func newMockMessageRepo() *mockMessageRepo {
	return &mockMessageRepo{}
}

func (m *mockMessageRepo) Create(ctx context.Context, message *domain.ChatMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.messages = append(m.messages, message)
	return nil
}

func (m *mockMessageRepo) ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*domain.ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var all []*domain.ChatMessage
	for i := len(m.messages) - 1; i >= 0; i-- {
		if m.messages[i].TenantID == tenantID {
			all = append(all, m.messages[i])
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *mockMessageRepo) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	count := 0
	for _, msg := range m.messages {
		if msg.TenantID == tenantID {
			count++
		}
	}
	return count, nil
}

// capturingRelay records the last payload sent upstream
type capturingRelay struct {
	mu       sync.Mutex
	lastReq  *relay.Request
	response string
	elapsed  int
	calls    int
}

func newCapturingRelay(response string) *capturingRelay {
	return &capturingRelay{response: response, elapsed: 42}
}

func (r *capturingRelay) Call(ctx context.Context, req *relay.Request) *relay.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastReq = req
	r.calls++
	return &relay.Result{Response: r.response, ElapsedMS: r.elapsed}
}
