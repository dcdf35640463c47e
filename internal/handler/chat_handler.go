package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/chayanin-dev/chat-relay/internal/dto"
	"github.com/chayanin-dev/chat-relay/internal/middleware"
	"github.com/chayanin-dev/chat-relay/internal/service"
	"github.com/chayanin-dev/chat-relay/pkg/response"
	"github.com/chayanin-dev/chat-relay/pkg/telemetry"
)

// ChatHandler handles chat HTTP requests
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Call handles POST /chat/call/
func (h *ChatHandler) Call(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.chat.call")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		writeError(c, response.TenantNotFound())
		return
	}
	span.SetAttributes(attribute.String("tenant_id", tenant.ID))

	var req dto.ChatCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid json")
		writeError(c, response.InvalidJSON())
		return
	}

	result, err := h.chatService.Call(ctx, tenant, &req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		switch {
		case errors.Is(err, service.ErrTokenLimitExceeded):
			writeError(c, response.TokenLimitExceeded(tenant.TokenUsage, tenant.TokenLimit))
		case errors.Is(err, service.ErrMissingPrompt):
			writeError(c, response.MissingPrompt())
		default:
			writeError(c, response.Internal(err.Error()))
		}
		return
	}

	span.SetStatus(codes.Ok, "")
	c.JSON(http.StatusOK, result)
}

// History handles GET /chat/history/
func (h *ChatHandler) History(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.chat.history")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		writeError(c, response.TenantNotFound())
		return
	}
	span.SetAttributes(attribute.String("tenant_id", tenant.ID))

	var query dto.HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid query")
		writeError(c, response.InvalidQuery(err.Error()))
		return
	}

	result, err := h.chatService.History(ctx, tenant, &query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		writeError(c, response.Internal(err.Error()))
		return
	}

	span.SetStatus(codes.Ok, "")
	c.JSON(http.StatusOK, result)
}
