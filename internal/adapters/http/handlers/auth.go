package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wisdomhub/internal/adapters/http/dto"
	"wisdomhub/internal/adapters/http/sessioncookie"
	"wisdomhub/internal/auth"
)

// AuthHandler handles admin login, logout, and session inspection.
type AuthHandler struct {
	sessions *auth.Sessions
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(sessions *auth.Sessions) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
	}
}

// Login handles POST /api/v1/admin/login.
// On a correct password it sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	if !h.sessions.VerifyPassword(req.Password) {
		dto.HandleErrorCode(c, dto.ErrorCodeUnauthorized, "invalid password")
		return
	}

	token, err := h.sessions.Issue()
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	sessioncookie.Write(c.Writer, c.Request, token, auth.DefaultTTL)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout handles POST /api/v1/admin/logout by expiring the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	sessioncookie.Clear(c.Writer, c.Request)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Session handles GET /api/v1/admin/session, reporting whether the
// request carries a valid admin session.
func (h *AuthHandler) Session(c *gin.Context) {
	token, ok := sessioncookie.Read(c.Request)

	c.JSON(http.StatusOK, gin.H{
		"authenticated": ok && h.sessions.Validate(token),
	})
}
