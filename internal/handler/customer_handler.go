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

// CustomerHandler handles customer data HTTP requests
type CustomerHandler struct {
	customerService service.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Add handles POST /customer/add/
func (h *CustomerHandler) Add(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.customer.add")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		writeError(c, response.TenantNotFound())
		return
	}
	span.SetAttributes(attribute.String("tenant_id", tenant.ID))

	var req dto.AddCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid json")
		writeError(c, response.InvalidJSON())
		return
	}

	result, err := h.customerService.Add(ctx, tenant, &req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, service.ErrMissingName) {
			writeError(c, response.MissingCustomerName())
			return
		}
		writeError(c, response.Internal(err.Error()))
		return
	}

	span.SetStatus(codes.Ok, "")
	c.JSON(http.StatusOK, result)
}
