package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	logger *slog.Logger
}

// ServiceOption is a functional option shared by all services
type ServiceOption func(*BaseService)

// WithLogger sets the logger used when the context carries none.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *BaseService) {
		s.logger = logger
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	var base BaseService
	for _, option := range options {
		option(&base)
	}
	return base
}

// GetLogger gets the request logger from context, then the configured one.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := middleware.LoggerFromCtx(ctx); ok {
		return logger
	}
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
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

// unwrap converts a domain result into a value or a DomainValidationError.
func unwrap[T any](r domain.Result[T]) (T, error) {
	if err := r.Err(); err != nil {
		var zero T
		return zero, err
	}
	return r.Value(), nil
}

// lookup folds a repository's not-found error into found=false.
func lookup[T any](item *T, err error) (*T, bool, error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return item, item != nil, nil
}
