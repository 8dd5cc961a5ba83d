package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler issues access tokens.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
}

func NewAuthHandler(authService portssvc.AuthSvcFacade) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// registerDevLoginRoute exposes token issuing by email alone. It must never
// be mounted in production.
func registerDevLoginRoute(r *gin.Engine, h *AuthHandler) {
	r.POST("/auth/token", h.DevLogin)
}

// DevLogin godoc
// @Summary Development login
// @Description Creates or refreshes the user with this email and returns a token. Disabled in production.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.DevLoginRequest true "User identity"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /auth/token [post]
func (h *AuthHandler) DevLogin(c *gin.Context) {
	var req dto.DevLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	resp, err := h.authService.DevLogin(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "log in")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Issued development token", slog.Time("expires_at", resp.ExpiresAt))
	c.JSON(http.StatusOK, resp)
}

// RefreshToken godoc
// @Summary Refresh the access token
// @Tags auth
// @Produce json
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	resp, err := h.authService.RefreshToken(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err, "refresh token")
		return
	}
	c.JSON(http.StatusOK, resp)
}
