package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devmarq/bookmarkd/pkg/helpers"
	"github.com/devmarq/bookmarkd/pkg/response"
)

const (
	// CtxUserIDKey holds the authenticated user id (int64) in the Gin context.
	CtxUserIDKey = "userID"
	// CtxUserEmailKey holds the authenticated user email in the Gin context.
	CtxUserEmailKey = "userEmail"
)

// Auth validates the Authorization bearer token and injects the identity from
// its verified claims into the Gin context. Handlers must take the identity
// from here and never from request input.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
