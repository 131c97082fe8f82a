package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_saas_app/internal/apperrors"
	"github.com/SscSPs/ledger_saas_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusForError maps a service error to an HTTP status. An AppError carries its own status and is
// checked first: a stored ledger that fails validation is a server fault, not a bad request.
func statusForError(err error) int {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondWithError logs err and writes the JSON error body. failureMsg is returned for server faults.
func respondWithError(c *gin.Context, err error, failureMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusForError(err)

	if status >= http.StatusInternalServerError {
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": failureMsg})
		return
	}

	logger.Warn(failureMsg, slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": publicMessage(status, err)})
}

func publicMessage(status int, err error) string {
	var vErr *apperrors.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	switch status {
	case http.StatusForbidden:
		return "You do not have permission to perform this action"
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusConflict:
		return "Resource already exists"
	case http.StatusNotFound:
		return "Resource not found"
	}
	return err.Error()
}

// requestScope reads the organization id from the path and the authenticated user id from the
// context. On failure it writes the response and returns ok=false.
func requestScope(c *gin.Context) (organizationID, userID string, ok bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	organizationID = c.Param("org_id")
	if organizationID == "" {
		logger.Error("Organization ID missing from path")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization ID required in path"})
		return "", "", false
	}

	userID, ok = middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	return organizationID, userID, true
}
