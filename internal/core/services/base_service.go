package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	CompanyAuthorizer portssvc.CompanyAuthorizerSvc
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

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeUser checks that the actor may act on companyID with at least requiredRole.
// Services built without an explicit authorizer fall back to the standard company rules.
func (s *BaseService) AuthorizeUser(ctx context.Context, actor domain.Actor, companyID string, requiredRole domain.Role) error {
	authorizer := s.CompanyAuthorizer
	if authorizer == nil {
		authorizer = defaultAuthorizer
	}
	if err := authorizer.AuthorizeUserAction(ctx, actor, companyID, requiredRole); err != nil {
		s.LogWarn(ctx, "Authorization failed",
			slog.String("user_id", actor.UserID),
			slog.String("company_id", companyID),
			slog.String("role", string(actor.Role)),
			slog.String("required_role", string(requiredRole)),
			slog.String("error", err.Error()))
		return err
	}
	return nil
}
