package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chayanin-dev/chat-relay/internal/domain"
	"github.com/chayanin-dev/chat-relay/internal/dto"
	"github.com/chayanin-dev/chat-relay/internal/relay"
	"github.com/chayanin-dev/chat-relay/internal/repository"
	"github.com/chayanin-dev/chat-relay/pkg/logger"
)

// ChatService orchestrates the chat relay pipeline
type ChatService interface {
	// Call sends one prompt through the relay on behalf of a tenant
	Call(ctx context.Context, tenant *domain.Tenant, req *dto.ChatCallRequest) (*dto.ChatCallResponse, error)
	// History lists recorded exchanges for a tenant, newest first
	History(ctx context.Context, tenant *domain.Tenant, query *dto.HistoryQuery) (*dto.HistoryResponse, error)
}

// chatService implements ChatService
type chatService struct {
	messageRepo  repository.MessageRepository
	customerRepo repository.CustomerRepository
	quota        QuotaGuard
	assembler    ContextAssembler
	relayClient  relay.Client
	defaultModel string
	log          *logger.Logger
	metrics      *chatMetrics
}

// NewChatService creates a new ChatService
func NewChatService(
	messageRepo repository.MessageRepository,
	customerRepo repository.CustomerRepository,
	quota QuotaGuard,
	assembler ContextAssembler,
	relayClient relay.Client,
	defaultModel string,
	log *logger.Logger,
) ChatService {
	return &chatService{
		messageRepo:  messageRepo,
		customerRepo: customerRepo,
		quota:        quota,
		assembler:    assembler,
		relayClient:  relayClient,
		defaultModel: defaultModel,
		log:          log,
		metrics:      newChatMetrics(log),
	}
}

// Call runs the full pipeline: quota check, customer resolution, context
// assembly, relay, persistence, then the quota charge. Relay failures are
// recorded as the response text and returned as a normal success.
func (s *chatService) Call(ctx context.Context, tenant *domain.Tenant, req *dto.ChatCallRequest) (*dto.ChatCallResponse, error) {
	if !s.quota.HasTokensAvailable(tenant) {
		s.metrics.recordCall(ctx, outcomeQuotaExceeded)
		return nil, ErrTokenLimitExceeded
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		s.metrics.recordCall(ctx, outcomeInvalid)
		return nil, ErrMissingPrompt
	}

	model := req.Model
	if model == "" {
		model = s.defaultModel
	}

	// An unknown or foreign customer id is skipped, not an error
	var customer *domain.Customer
	if req.CustomerID != "" {
		found, err := s.customerRepo.GetByIDForTenant(ctx, req.CustomerID, tenant.ID)
		if err != nil {
			return nil, err
		}
		customer = found
	}

	systemContent, err := s.assembler.Assemble(ctx, tenant, customer)
	if err != nil {
		return nil, err
	}

	result := s.relayClient.Call(ctx, &relay.Request{
		Prompt: prompt,
		System: systemContent,
		Model:  model,
		Seed:   req.Seed,
	})
	s.metrics.recordRelayLatency(ctx, result.ElapsedMS)

	message := &domain.ChatMessage{
		ID:             uuid.New().String(),
		TenantID:       tenant.ID,
		Prompt:         prompt,
		Response:       result.Response,
		TokensUsed:     s.quota.Cost(),
		Model:          model,
		Seed:           req.Seed,
		ResponseTimeMS: result.ElapsedMS,
		CreatedAt:      time.Now(),
	}
	if customer != nil {
		message.CustomerID = &customer.ID
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		s.metrics.recordCall(ctx, outcomeError)
		return nil, err
	}

	if _, err := s.quota.Charge(ctx, tenant); err != nil {
		// The exchange is already recorded; surface the billing failure
		s.log.ErrorContext(ctx, "failed to charge token usage", zap.Error(err), zap.String("tenant_id", tenant.ID))
		s.metrics.recordCall(ctx, outcomeError)
		return nil, err
	}

	s.metrics.recordCall(ctx, outcomeOK)
	return &dto.ChatCallResponse{
		Success:         true,
		MessageID:       message.ID,
		Prompt:          prompt,
		Response:        result.Response,
		Model:           model,
		ResponseTimeMS:  result.ElapsedMS,
		TokensRemaining: tenant.TokensRemaining(),
		Tenant:          tenant.Name,
	}, nil
}

// History returns a page of recorded exchanges plus current quota state
func (s *chatService) History(ctx context.Context, tenant *domain.Tenant, query *dto.HistoryQuery) (*dto.HistoryResponse, error) {
	query.SetDefaults()

	messages, err := s.messageRepo.ListByTenant(ctx, tenant.ID, query.Limit, query.Offset)
	if err != nil {
		return nil, err
	}

	total, err := s.messageRepo.CountByTenant(ctx, tenant.ID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.MessageItem, 0, len(messages))
	for _, m := range messages {
		items = append(items, &dto.MessageItem{
			ID:             m.ID,
			Prompt:         m.Prompt,
			Response:       m.Response,
			CreatedAt:      m.CreatedAt.Format(time.RFC3339),
			Model:          m.Model,
			TokensUsed:     m.TokensUsed,
			ResponseTimeMS: m.ResponseTimeMS,
		})
	}

	return &dto.HistoryResponse{
		Success:       true,
		Messages:      items,
		TotalMessages: total,
		Tenant:        tenant.Name,
		TokensUsed:    tenant.TokenUsage,
		TokensLimit:   tenant.TokenLimit,
	}, nil
}
