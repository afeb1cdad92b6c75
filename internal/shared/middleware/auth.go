package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"library-catalog/pkg/jwt"
)

// UsernameKey is the gin context key under which Auth stores the
// authenticated username.
const UsernameKey = "username"

// Auth gates an endpoint behind a bearer token. The token must parse and
// verify against the shared signing secret; on success the username claim
// is placed in the context for downstream handlers.
func Auth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.String(http.StatusUnauthorized, "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.String(http.StatusUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.Validate(parts[1])
		if err != nil {
			c.String(http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		c.Set(UsernameKey, claims.Username)
		c.Next()
	}
}
