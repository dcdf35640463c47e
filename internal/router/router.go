package router

import (
	"github.com/gin-gonic/gin"

	"github.com/chayanin-dev/chat-relay/internal/di"
	"github.com/chayanin-dev/chat-relay/internal/middleware"
	"github.com/chayanin-dev/chat-relay/pkg/logger"
)

// New builds the HTTP router. The health endpoint is registered outside
// the tenant-resolving group so probes work without a registered domain.
func New(c *di.Container, log *logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(log))

	r.GET("/health", c.HealthHandler.Check)

	api := r.Group("/")
	api.Use(middleware.ResolveTenant(c.Resolver))
	{
		api.POST("/chat/call/", c.ChatHandler.Call)
		api.GET("/chat/history/", c.ChatHandler.History)
		api.POST("/customer/add/", c.CustomerHandler.Add)
		api.GET("/tenant/info/", c.TenantHandler.Info)
	}

	return r
}
