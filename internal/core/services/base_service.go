package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/campaign_finance/internal/apperrors"
	portsrepo "github.com/SscSPs/campaign_finance/internal/core/ports/repositories"
	"github.com/SscSPs/campaign_finance/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
)

// requestValidator reads the same `binding` tags gin validates, so requests
// arriving from the CLI get the same checks as HTTP ones.
var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	return v
}

// BaseService provides common functionality for all services
type BaseService struct {
	TxManager portsrepo.TransactionManager
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// WithTransaction runs fn inside one database transaction. The transaction is
// committed when fn returns nil and rolled back otherwise.
func (s *BaseService) WithTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.TxManager.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := s.TxManager.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back transaction")
		}
		return err
	}
	return s.TxManager.Commit(ctx, tx)
}

// validateRequest runs the binding rules of req and wraps failures in ErrValidation.
func validateRequest(req any) error {
	if err := requestValidator.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return nil
}
