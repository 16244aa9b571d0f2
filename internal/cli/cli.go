// Package cli implements the campaign_finance command line.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/SscSPs/campaign_finance/internal/apperrors"
	portssvc "github.com/SscSPs/campaign_finance/internal/core/ports/services"
	"github.com/SscSPs/campaign_finance/internal/core/services"
	"github.com/SscSPs/campaign_finance/internal/middleware"
	"github.com/SscSPs/campaign_finance/internal/platform/config"
	"github.com/SscSPs/campaign_finance/internal/repositories/database/pgsql"
	"github.com/SscSPs/campaign_finance/pkg/database"
	"github.com/google/subcommands"
)

// Env carries what every command needs.
type Env struct {
	Config *config.Config
	Logger *slog.Logger
	In     io.Reader
	Out    io.Writer
	Err    io.Writer

	// OpenServices builds the service container. The returned func releases it.
	OpenServices func(ctx context.Context) (*portssvc.ServiceContainer, func(), error)
}

// NewEnv returns an Env backed by the configured PostgreSQL database.
func NewEnv(cfg *config.Config, logger *slog.Logger, in io.Reader, out, errOut io.Writer) *Env {
	env := &Env{Config: cfg, Logger: logger, In: in, Out: out, Err: errOut}
	env.OpenServices = func(ctx context.Context) (*portssvc.ServiceContainer, func(), error) {
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, nil, err
		}
		container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool))
		return container, func() { database.ClosePgxPool(pool) }, nil
	}
	return env
}

// Register adds every command to the commander.
func Register(c *subcommands.Commander, env *Env) {
	c.Register(&serveCmd{env: env}, "server")
	c.Register(&migrateCmd{env: env}, "server")

	c.Register(&fiscalCloseCmd{env: env}, "ledger")
	c.Register(&financialResyncCmd{env: env}, "ledger")

	c.Register(&mortgageCalcCmd{env: env}, "reports")
	c.Register(&budgetCmd{env: env}, "reports")
}

// commandContext attaches a logger tagged with the command name.
func (e *Env) commandContext(ctx context.Context, name string) context.Context {
	return middleware.WithLogger(ctx, e.Logger.With(slog.String("command", name)))
}

// withServices opens the container, runs fn and releases it. Errors are
// printed and mapped to an exit status.
func (e *Env) withServices(ctx context.Context, name string, fn func(ctx context.Context, svc *portssvc.ServiceContainer) error) subcommands.ExitStatus {
	ctx = e.commandContext(ctx, name)
	svc, release, err := e.OpenServices(ctx)
	if err != nil {
		fmt.Fprintf(e.Err, "%s: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer release()

	if err := fn(ctx, svc); err != nil {
		fmt.Fprintf(e.Err, "%s: %v\n", name, err)
		return exitStatusFor(err)
	}
	return subcommands.ExitSuccess
}

func exitStatusFor(err error) subcommands.ExitStatus {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return subcommands.ExitUsageError
	default:
		return subcommands.ExitFailure
	}
}

// confirm asks a yes/no question on env's streams. Only "y" or "yes" accept.
func (e *Env) confirm(prompt string) (bool, error) {
	fmt.Fprint(e.Out, prompt+" [y/N]: ")
	answer, err := bufio.NewReader(e.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
