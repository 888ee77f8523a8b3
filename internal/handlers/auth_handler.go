package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/middleware"
	"pocketledger/internal/services"
)

// AuthHandler exchanges the app passcode for an access token.
type AuthHandler struct {
	lockService services.LockServicer
	tokenTTL    time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(lockService services.LockServicer, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{lockService: lockService, tokenTTL: tokenTTL}
}

// UnlockRequest represents the unlock request payload
type UnlockRequest struct {
	Passcode string `json:"passcode" binding:"required,max=128"`
}

// UnlockResponse carries the issued token
type UnlockResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Unlock handles passcode verification
// @Summary     Unlock the app
// @Description Verify the passcode and issue a bearer token for the other endpoints
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body UnlockRequest true "Passcode"
// @Success     200 {object} UnlockResponse "Token issued"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Wrong passcode"
// @Failure     409 {object} ErrorResponse "Lock not configured"
// @Failure     423 {object} ErrorResponse "Too many failed attempts"
// @Router      /auth/unlock [post]
func (h *AuthHandler) Unlock(c *gin.Context) {
	var req UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	if err := h.lockService.Unlock(req.Passcode); err != nil {
		respondWithError(c, err)
		return
	}

	token, expiresAt, err := middleware.GenerateAccessToken(h.tokenTTL)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, UnlockResponse{Token: token, ExpiresAt: expiresAt})
}

// Status reports whether the API is behind a passcode
// @Summary     Lock status
// @Tags        auth
// @Produce     json
// @Success     200 {object} map[string]bool "Lock status"
// @Router      /auth/status [get]
func (h *AuthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"lock_enabled": h.lockService.Enabled()})
}
