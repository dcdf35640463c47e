package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/chayanin-dev/chat-relay/internal/domain"
	"github.com/chayanin-dev/chat-relay/internal/service"
	"github.com/chayanin-dev/chat-relay/pkg/response"
)

// tenantContextKey is the gin context key carrying the resolved tenant
const tenantContextKey = "tenant"

// ResolveTenant resolves the tenant from the request Host header and
// aborts with 404 when no active tenant matches. Handlers downstream
// read the result via TenantFromContext.
func ResolveTenant(resolver service.TenantResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, err := resolver.Resolve(c.Request.Context(), c.Request.Host)
		if err != nil {
			body := response.Internal(err.Error())
			c.AbortWithStatusJSON(response.StatusFor(body.Error), body)
			return
		}
		if tenant == nil {
			body := response.TenantNotFound()
			c.AbortWithStatusJSON(response.StatusFor(body.Error), body)
			return
		}

		c.Set(tenantContextKey, tenant)
		c.Next()
	}
}

// TenantFromContext returns the tenant resolved for this request
func TenantFromContext(c *gin.Context) (*domain.Tenant, bool) {
	value, exists := c.Get(tenantContextKey)
	if !exists {
		return nil, false
	}
	tenant, ok := value.(*domain.Tenant)
	return tenant, ok
}
