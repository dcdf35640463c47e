package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chayanin-dev/chat-relay/internal/middleware"
	"github.com/chayanin-dev/chat-relay/internal/service"
	"github.com/chayanin-dev/chat-relay/pkg/response"
)

// TenantHandler handles tenant info HTTP requests
type TenantHandler struct {
	tenantService service.TenantService
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler(tenantService service.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// Info handles GET /tenant/info/
func (h *TenantHandler) Info(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		writeError(c, response.TenantNotFound())
		return
	}

	c.JSON(http.StatusOK, h.tenantService.Info(tenant))
}
