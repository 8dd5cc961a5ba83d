package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError writes err as a dto.ErrorResponse. Server errors are logged
// with their cause and reported with a generic message.
func respondError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.StatusCode(err)

	if status >= http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Error: "Failed to " + action, Code: status})
		return
	}

	logger.Warn("Request rejected", slog.String("action", action), slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, dto.ErrorResponse{
		Error:            err.Error(),
		Code:             status,
		ValidationErrors: apperrors.FieldErrors(err),
	})
}

// respondBindError reports a body or query that could not be decoded.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request format: " + err.Error(),
		Code:  http.StatusBadRequest,
	})
}

// callerID is the authenticated user id, or "" which the services reject.
func callerID(c *gin.Context) string {
	userID, _ := middleware.GetUserIDFromContext(c)
	return userID
}
