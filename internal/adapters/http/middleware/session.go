package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wisdomhub/internal/adapters/http/dto"
	"wisdomhub/internal/adapters/http/sessioncookie"
	"wisdomhub/internal/auth"
)

// RequireAdmin guards admin routes behind a valid session cookie.
// Requests without one are rejected with 401 before reaching handlers.
func RequireAdmin(sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := sessioncookie.Read(c.Request)
		if !ok || !sessions.Validate(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "admin session required"))
			return
		}

		c.Next()
	}
}
