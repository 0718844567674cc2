package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	assetUsecases "github.com/tinytickets/tinytickets/internal/application/asset/usecases"
	commentUsecases "github.com/tinytickets/tinytickets/internal/application/comment/usecases"
	"github.com/tinytickets/tinytickets/internal/application/notification"
	ticketUsecases "github.com/tinytickets/tinytickets/internal/application/ticket/usecases"
	notif "github.com/tinytickets/tinytickets/internal/domain/notification"
	"github.com/tinytickets/tinytickets/internal/infrastructure/auth"
	"github.com/tinytickets/tinytickets/internal/infrastructure/config"
	"github.com/tinytickets/tinytickets/internal/infrastructure/email"
	"github.com/tinytickets/tinytickets/internal/infrastructure/permission"
	"github.com/tinytickets/tinytickets/internal/infrastructure/repository"
	"github.com/tinytickets/tinytickets/internal/infrastructure/storage"
	"github.com/tinytickets/tinytickets/internal/infrastructure/template"
	"github.com/tinytickets/tinytickets/internal/interfaces/http/handlers"
	assetHandlers "github.com/tinytickets/tinytickets/internal/interfaces/http/handlers/asset"
	commentHandlers "github.com/tinytickets/tinytickets/internal/interfaces/http/handlers/comment"
	ticketHandlers "github.com/tinytickets/tinytickets/internal/interfaces/http/handlers/ticket"
	"github.com/tinytickets/tinytickets/internal/interfaces/http/middleware"
	shareddb "github.com/tinytickets/tinytickets/internal/shared/db"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
	"github.com/tinytickets/tinytickets/internal/shared/services/markdown"
)

// Router represents the HTTP router configuration
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	appHandler     *handlers.AppHandler
	assetHandler   *assetHandlers.AssetHandler
	ticketHandler  *ticketHandlers.TicketHandler
	commentHandler *commentHandlers.CommentHandler
	authMiddleware *middleware.AuthMiddleware
	notifier       *notification.Notifier
	logger         logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(deps RouterDeps) (*Router, error) {
	cfg := deps.Config
	log := deps.Logger
	engine := gin.New()

	acquireTimeout := cfg.Database.AcquireTimeout()
	assetRepo := repository.NewAssetRepository(deps.DB, acquireTimeout, log)
	ticketRepo := repository.NewTicketRepository(deps.DB, acquireTimeout, log)
	commentRepo := repository.NewCommentRepository(deps.DB, acquireTimeout, log)
	txMgr := shareddb.NewTransactionManager(deps.DB, acquireTimeout)

	renderer := template.NewMailRenderer(cfg.Notification.TemplatesDir, markdown.NewRenderer(), log)
	if err := renderer.Load(notif.TemplateNames...); err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	mailer := deps.Mailer
	if mailer == nil {
		mailer = email.NewMailer(cfg.Email, log)
	}
	notifier := notification.NewNotifier(renderer, mailer, log)
	photos := storage.NewPhotoStore(cfg.Storage, log)

	enforcer, err := permission.NewTierEnforcer(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create tier enforcer: %w", err)
	}
	authMiddleware := middleware.NewAuthMiddleware(auth.NewTokenAuthenticator(deps.Secrets), enforcer, log)

	assetHandler := assetHandlers.NewAssetHandler(
		assetUsecases.NewCreateAssetUseCase(assetRepo, log),
		assetUsecases.NewGetAssetUseCase(assetRepo, log),
		assetUsecases.NewListAssetIDsUseCase(assetRepo, log),
		assetUsecases.NewListAssetsUseCase(assetRepo, log),
		assetUsecases.NewUpdateAssetUseCase(assetRepo, log),
		assetUsecases.NewDeleteAssetUseCase(assetRepo, log),
		assetUsecases.NewDeleteAllAssetsUseCase(assetRepo, log),
		log,
	)

	commentHandler := commentHandlers.NewCommentHandler(
		commentUsecases.NewCreateCommentUseCase(commentRepo, ticketRepo, notifier, cfg.Notification.CommentMailTo, log),
		commentUsecases.NewGetCommentUseCase(commentRepo, log),
		commentUsecases.NewListCommentIDsUseCase(commentRepo, log),
		commentUsecases.NewListCommentsUseCase(commentRepo, log),
		commentUsecases.NewUpdateCommentUseCase(commentRepo, log),
		commentUsecases.NewDeleteCommentUseCase(commentRepo, log),
		commentUsecases.NewDeleteAllCommentsUseCase(commentRepo, log),
		log,
	)

	ticketHandler := ticketHandlers.NewTicketHandler(ticketHandlers.UseCases{
		Create:      ticketUsecases.NewCreateTicketUseCase(ticketRepo, assetRepo, notifier, cfg.Notification.TicketMailTo, log),
		Get:         ticketUsecases.NewGetTicketUseCase(ticketRepo, commentRepo, txMgr, log),
		ListIDs:     ticketUsecases.NewListTicketIDsUseCase(ticketRepo, log),
		List:        ticketUsecases.NewListTicketsUseCase(ticketRepo, log),
		Update:      ticketUsecases.NewUpdateTicketUseCase(ticketRepo, commentRepo, txMgr, notifier, log),
		Delete:      ticketUsecases.NewDeleteTicketUseCase(ticketRepo, photos, log),
		DeleteAll:   ticketUsecases.NewDeleteAllTicketsUseCase(ticketRepo, log),
		MailOpen:    ticketUsecases.NewMailOpenTicketsUseCase(ticketRepo, notifier, cfg.Notification.TicketMailTo, log),
		Export:      ticketUsecases.NewExportTicketsUseCase(ticketRepo, assetRepo, commentRepo, txMgr, renderer, cfg.App.Title, log),
		UploadPhoto: ticketUsecases.NewUploadPhotoUseCase(photos, log),
		GetPhoto:    ticketUsecases.NewGetPhotoUseCase(photos, log),
		DeletePhoto: ticketUsecases.NewDeletePhotoUseCase(photos, log),
	}, log)

	return &Router{
		engine:         engine,
		cfg:            cfg,
		appHandler:     handlers.NewAppHandler(cfg.App.Title),
		assetHandler:   assetHandler,
		ticketHandler:  ticketHandler,
		commentHandler: commentHandler,
		authMiddleware: authMiddleware,
		notifier:       notifier,
		logger:         log,
	}, nil
}
