package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/careerpilot/careerpilot-backend/internal/http/response"
	"github.com/careerpilot/careerpilot-backend/internal/pkg/apperr"
	"github.com/careerpilot/careerpilot-backend/internal/services"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireAuth rejects requests without a valid bearer token and binds the
// authenticated user onto the request context.
func RequireAuth(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.RespondError(c, apperr.ErrUnauthorized)
			return
		}
		ctx, err := authService.SetContextFromToken(c.Request.Context(), token)
		if err != nil {
			response.RespondError(c, err)
			return
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// OptionalAuth binds the user when a valid token is present and lets the
// request through anonymously otherwise.
func OptionalAuth(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if ctx, err := authService.SetContextFromToken(c.Request.Context(), token); err == nil {
				c.Request = c.Request.WithContext(ctx)
			}
		}
		c.Next()
	}
}
