package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/tinytickets/tinytickets/internal/infrastructure/auth"
	"github.com/tinytickets/tinytickets/internal/infrastructure/config"
	"github.com/tinytickets/tinytickets/internal/infrastructure/database"
	"github.com/tinytickets/tinytickets/internal/infrastructure/migration"
	httpRouter "github.com/tinytickets/tinytickets/internal/interfaces/http"
	"github.com/tinytickets/tinytickets/internal/shared/biztime"
	"github.com/tinytickets/tinytickets/internal/shared/constants"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

const shutdownTimeout = 30 * time.Second

type options struct {
	env               string
	configPath        string
	migrationStrategy string
}

func NewCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Serve the ticket API and frontend",
		Long:  `Start the Tiny Tickets HTTP server. Pending schema migrations are applied before the listener opens.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if v := os.Getenv("ENV"); v != "" {
				opts.env = v
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return opts.run(ctx)
		},
	}

	cmd.Flags().StringVarP(&opts.env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVar(&opts.migrationStrategy, "migration-strategy", migration.StrategyScripts, "Schema strategy: scripts or auto (development only)")

	return cmd
}

func (o *options) run(ctx context.Context) error {
	cfg, err := config.Load(o.env, o.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.Server.Mode = ginMode(o.env)

	if err := logger.Init(&cfg.Logger, cfg.Server.DebugMode); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("init timezone: %w", err)
	}

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(string, string, string, int) {}

	secrets, err := auth.NewSecrets(cfg.Auth.AdminToken, cfg.Auth.UserToken)
	if err != nil {
		return fmt.Errorf("set up access tokens: %w", err)
	}
	announceSecrets(log, secrets)

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to open database", "path", cfg.Database.Path, "error", err)
	}
	defer database.Close()

	if err := migration.NewManager(o.migrationStrategy, log).Migrate(database.Get()); err != nil {
		log.Fatalw("failed to migrate database", "strategy", o.migrationStrategy, "error", err)
	}

	router, err := httpRouter.NewRouter(httpRouter.RouterDeps{
		DB:      database.Get(),
		Config:  cfg,
		Secrets: secrets,
		Logger:  log,
	})
	if err != nil {
		log.Fatalw("failed to build router", "error", err)
	}
	router.SetupRoutes()
	// Runs after the listener has drained so queued mails still see an
	// open database.
	defer router.Shutdown()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Infow("server listening",
		"address", srv.Addr,
		"environment", o.env,
		"mode", cfg.Server.Mode,
		"debug_mode", cfg.Server.DebugMode,
	)
	return serve(ctx, srv, log)
}

// serve blocks until ctx is cancelled or the listener fails, then drains
// in-flight requests.
func serve(ctx context.Context, srv *http.Server, log logger.Interface) error {
	failed := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failed <- err
		}
		close(failed)
	}()

	select {
	case err := <-failed:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Infow("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("forced shutdown", "error", err)
		return err
	}
	log.Infow("server stopped")
	return nil
}

// announceSecrets logs generated tokens in full so the operator can copy
// them. Configured tokens are never printed.
func announceSecrets(log logger.Interface, secrets auth.Secrets) {
	for _, s := range []struct {
		tier, key, token string
		generated        bool
	}{
		{"admin", "auth.admin_token", secrets.AdminToken(), secrets.AdminGenerated()},
		{"user", "auth.user_token", secrets.UserToken(), secrets.UserGenerated()},
	} {
		if !s.generated {
			log.Infow("access token configured", "tier", s.tier)
			continue
		}
		log.Warnw("access token generated, set "+s.key+" to keep it across restarts", "tier", s.tier, "token", s.token)
	}
}

func ginMode(environment string) string {
	switch environment {
	case constants.EnvProduction, "prod", "release":
		return gin.ReleaseMode
	case constants.EnvTest, "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
