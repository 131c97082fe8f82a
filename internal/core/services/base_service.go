package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/ledger_saas_app/internal/apperrors"
	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_saas_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_saas_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	OrganizationAuthorizer portssvc.OrganizationAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogWarn logs a non-fatal condition such as a data integrity warning
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

// AuthorizeUser checks if a user has the required role for an organization.
// A service built without an authorizer denies every request.
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, organizationID string, requiredRole domain.MemberRole) error {
	if s.OrganizationAuthorizer == nil {
		s.LogError(ctx, apperrors.ErrForbidden, "No organization authorizer configured, denying access",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}
	return s.OrganizationAuthorizer.AuthorizeUserAction(ctx, userID, organizationID, requiredRole)
}
