package di

import (
	"github.com/chayanin-dev/chat-relay/internal/handler"
	"github.com/chayanin-dev/chat-relay/internal/relay"
	"github.com/chayanin-dev/chat-relay/internal/repository"
	"github.com/chayanin-dev/chat-relay/internal/service"
	"github.com/chayanin-dev/chat-relay/pkg/config"
	"github.com/chayanin-dev/chat-relay/pkg/database"
	"github.com/chayanin-dev/chat-relay/pkg/logger"
)

// Container holds all dependencies for the chat relay service
type Container struct {
	// Infrastructure
	DB          *database.PostgresDB
	RelayClient relay.Client

	// Repositories
	TenantRepo   repository.TenantRepository
	CustomerRepo repository.CustomerRepository
	MessageRepo  repository.MessageRepository

	// Services
	Resolver        service.TenantResolver
	Quota           service.QuotaGuard
	Assembler       service.ContextAssembler
	ChatService     service.ChatService
	CustomerService service.CustomerService
	TenantService   service.TenantService

	// Handlers
	HealthHandler   *handler.HealthHandler
	ChatHandler     *handler.ChatHandler
	CustomerHandler *handler.CustomerHandler
	TenantHandler   *handler.TenantHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB     *database.PostgresDB
	Config *config.Config
	Logger *logger.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB: cfg.DB,
	}

	c.RelayClient = relay.NewHTTPClient(cfg.Config.Relay.BaseURL, cfg.Config.Relay.Timeout)

	c.TenantRepo = repository.NewPostgresTenantRepository(c.DB.Pool())
	c.CustomerRepo = repository.NewPostgresCustomerRepository(c.DB.Pool())
	c.MessageRepo = repository.NewPostgresMessageRepository(c.DB.Pool())

	c.Resolver = service.NewTenantResolver(c.TenantRepo, cfg.Config.Tenancy.DevHostPattern)
	c.Quota = service.NewFlatRateQuotaGuard(c.TenantRepo)
	c.Assembler = service.NewContextAssembler(c.CustomerRepo)
	c.ChatService = service.NewChatService(
		c.MessageRepo,
		c.CustomerRepo,
		c.Quota,
		c.Assembler,
		c.RelayClient,
		cfg.Config.Relay.DefaultModel,
		cfg.Logger,
	)
	c.CustomerService = service.NewCustomerService(c.CustomerRepo)
	c.TenantService = service.NewTenantService()

	c.HealthHandler = handler.NewHealthHandler(c.DB)
	c.ChatHandler = handler.NewChatHandler(c.ChatService)
	c.CustomerHandler = handler.NewCustomerHandler(c.CustomerService)
	c.TenantHandler = handler.NewTenantHandler(c.TenantService)

	return c
}
