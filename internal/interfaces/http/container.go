package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	budgetUsecases "fixdesk/internal/application/budget/usecases"
	deliveryUsecases "fixdesk/internal/application/delivery/usecases"
	partUsecases "fixdesk/internal/application/part/usecases"
	"fixdesk/internal/application/resolver"
	statsUsecases "fixdesk/internal/application/stats/usecases"
	technicianUsecases "fixdesk/internal/application/technician/usecases"
	ticketUsecases "fixdesk/internal/application/ticket/usecases"
	"fixdesk/internal/infrastructure/auth"
	"fixdesk/internal/infrastructure/config"
	"fixdesk/internal/infrastructure/email"
	"fixdesk/internal/infrastructure/repository"
	"fixdesk/internal/infrastructure/storage"
	budgetHandlers "fixdesk/internal/interfaces/http/handlers/budget"
	deliveryHandlers "fixdesk/internal/interfaces/http/handlers/delivery"
	partHandlers "fixdesk/internal/interfaces/http/handlers/part"
	statsHandlers "fixdesk/internal/interfaces/http/handlers/stats"
	technicianHandlers "fixdesk/internal/interfaces/http/handlers/technician"
	ticketHandlers "fixdesk/internal/interfaces/http/handlers/ticket"
	"fixdesk/internal/interfaces/http/middleware"
	"fixdesk/internal/interfaces/http/routes"
	"fixdesk/internal/shared/db"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/services/markdown"
)

// repositories groups the persistence layer of the workshop domain.
type repositories struct {
	tickets     *repository.TicketRepository
	clients     *repository.ClientRepository
	printers    *repository.PrinterRepository
	technicians *repository.TechnicianRepository
	profiles    *repository.ProfileRepository
	budgets     *repository.BudgetRepository
	parts       *repository.PartRepository
	deliveries  *repository.DeliveryRepository
}

func newRepositories(gdb *gorm.DB) *repositories {
	return &repositories{
		tickets:     repository.NewTicketRepository(gdb),
		clients:     repository.NewClientRepository(gdb),
		printers:    repository.NewPrinterRepository(gdb),
		technicians: repository.NewTechnicianRepository(gdb),
		profiles:    repository.NewProfileRepository(gdb),
		budgets:     repository.NewBudgetRepository(gdb),
		parts:       repository.NewPartRepository(gdb),
		deliveries:  repository.NewDeliveryRepository(gdb),
	}
}

// Container wires repositories, use cases, handlers and middleware together
// and owns the pieces that need a graceful shutdown.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos      *repositories
	imageStore *storage.LocalImageStore
	notifier   *email.SMTPEmailService
	jwtSvc     *auth.JWTService

	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
}

// NewContainer builds the full dependency graph. The redis client is
// optional; without it rate limiting is disabled.
func NewContainer(cfg *config.Config, gdb *gorm.DB, redisClient *redis.Client, log logger.Interface) (*Container, error) {
	repos := newRepositories(gdb)
	txMgr := db.NewTransactionManager(gdb)
	resolverSvc := resolver.NewService(repos.clients, repos.printers, repos.technicians, log)
	markdownSvc := markdown.NewMarkdownService()

	imageStore, err := storage.NewLocalImageStore(cfg.Uploads.Dir, cfg.Uploads.PublicBase, cfg.Uploads.MaxBytes)
	if err != nil {
		return nil, err
	}

	notifier := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Server.BaseURL,
		NotifyTo:    cfg.Email.NotifyTo,
	})

	// Ticket flows
	createTicketUC := ticketUsecases.NewCreateTicketUseCase(repos.tickets, resolverSvc, txMgr, imageStore, notifier, log)
	updateTicketUC := ticketUsecases.NewUpdateTicketUseCase(
		repos.tickets, repos.clients, repos.printers, repos.technicians,
		repos.budgets, repos.deliveries, resolverSvc, txMgr, imageStore, log)
	deleteTicketUC := ticketUsecases.NewDeleteTicketUseCase(repos.tickets, repos.budgets, repos.deliveries, txMgr, imageStore, log)
	addCommentUC := ticketUsecases.NewAddCommentUseCase(repos.tickets, resolverSvc, log)
	markReadyUC := ticketUsecases.NewMarkReadyUseCase(repos.tickets, repos.clients, repos.printers, resolverSvc, notifier, log)
	nextNumberUC := ticketUsecases.NewNextTicketNumberUseCase(repos.tickets, log)

	// Budget flows
	getItemsUC := budgetUsecases.NewGetBudgetItemsUseCase(repos.tickets, repos.budgets, repos.parts, log)
	saveItemsUC := budgetUsecases.NewSaveBudgetItemsUseCase(repos.tickets, repos.budgets, repos.parts, txMgr, log)
	updateBudgetUC := budgetUsecases.NewUpdateBudgetUseCase(
		repos.tickets, repos.clients, repos.budgets, resolverSvc, txMgr, notifier, log)

	// Parts catalog
	upsertPartUC := partUsecases.NewUpsertPartUseCase(repos.parts, log)
	deletePartUC := partUsecases.NewDeletePartUseCase(repos.parts, log)
	listPartsUC := partUsecases.NewListPartsUseCase(repos.parts, log)
	listCategoriesUC := partUsecases.NewListCategoriesUseCase(repos.parts, log)

	// Stats, technicians, delivery
	ticketStatsUC := statsUsecases.NewTicketStatsUseCase(repos.tickets, log)
	technicianStatsUC := statsUsecases.NewTechnicianStatsUseCase(repos.tickets, log)
	listTechniciansUC := technicianUsecases.NewListTechniciansUseCase(repos.profiles, repos.technicians, log)
	upsertDeliveryUC := deliveryUsecases.NewUpsertDeliveryUseCase(repos.tickets, repos.clients, repos.deliveries, txMgr, log)

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer)
	authMw := middleware.NewAuthMiddleware(jwtSvc, repos.profiles, cfg.Auth.CookieName, log)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled && redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit.RequestsPerMinute, time.Minute)
	}

	c := &Container{
		db:             gdb,
		cfg:            cfg,
		log:            log,
		redis:          redisClient,
		repos:          repos,
		imageStore:     imageStore,
		notifier:       notifier,
		jwtSvc:         jwtSvc,
		authMiddleware: authMw,
		rateLimiter:    rateLimiter,
	}

	c.engine = c.buildEngine(&routes.APIRouteConfig{
		TicketHandler: ticketHandlers.NewTicketHandler(
			createTicketUC, updateTicketUC, deleteTicketUC, addCommentUC, markReadyUC, nextNumberUC, markdownSvc),
		BudgetHandler:     budgetHandlers.NewBudgetHandler(getItemsUC, saveItemsUC, updateBudgetUC),
		PartHandler:       partHandlers.NewPartHandler(upsertPartUC, deletePartUC, listPartsUC, listCategoriesUC),
		StatsHandler:      statsHandlers.NewStatsHandler(ticketStatsUC, technicianStatsUC),
		TechnicianHandler: technicianHandlers.NewTechnicianHandler(listTechniciansUC),
		DeliveryHandler:   deliveryHandlers.NewDeliveryHandler(upsertDeliveryUC),
		AuthMiddleware:    authMw,
	})

	return c, nil
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases shared resources. The HTTP server itself is stopped by
// the caller before this runs.
func (c *Container) Shutdown(ctx context.Context) error {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
