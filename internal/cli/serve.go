package cli

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/campaign_finance/internal/core/ports/services"
	"github.com/SscSPs/campaign_finance/internal/handlers"
	"github.com/SscSPs/campaign_finance/internal/middleware"
	"github.com/SscSPs/campaign_finance/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/google/subcommands"
)

type serveCmd struct {
	env     *Env
	migrate bool
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the HTTP API" }
func (*serveCmd) Usage() string {
	return `serve [-migrate]

  Starts the JSON API on $PORT. Swagger is served under /swagger unless
  IS_PRODUCTION is set.
`
}

func (s *serveCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&s.migrate, "migrate", false, "apply pending database migrations before serving")
}

func (s *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := s.env.Config
	logger := s.env.Logger

	if s.migrate {
		if status := runMigrations(s.env); status != subcommands.ExitSuccess {
			return status
		}
	}

	return s.env.withServices(ctx, s.Name(), func(ctx context.Context, svc *portssvc.ServiceContainer) error {
		if cfg.IsProduction {
			gin.SetMode(gin.ReleaseMode)
		}

		r := gin.New()
		r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
		if err := r.SetTrustedProxies(nil); err != nil {
			return err
		}
		if err := handlers.RegisterRoutes(r, cfg, svc); err != nil {
			return err
		}

		srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
		errCh := make(chan error, 1)
		go func() {
			logger.Info("Server starting", slog.String("port", cfg.Port))
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
			logger.Info("Shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	})
}

type migrateCmd struct {
	env *Env
}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "apply database migrations" }
func (*migrateCmd) Usage() string {
	return `migrate

  Applies every pending "up" migration from $MIGRATIONS_PATH to $PGSQL_URL.
`
}

func (*migrateCmd) SetFlags(*flag.FlagSet) {}

func (m *migrateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runMigrations(m.env)
}

func runMigrations(env *Env) subcommands.ExitStatus {
	logger := env.Logger
	logger.Info("Running database migrations...", slog.String("path", env.Config.MigrationsPath))

	applied, err := database.RunMigrations(env.Config.DatabaseURL, env.Config.MigrationsPath)
	if err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return subcommands.ExitFailure
	}
	if applied {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}
	return subcommands.ExitSuccess
}
