package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RoleResolver maps a bearer token to a role. The marketplace's auth service
// owns token issuing and validation; this service only consumes the result.
type RoleResolver func(ctx context.Context, token string) (role string, err error)

// RequireRole guards a route group: requests must carry a bearer token that
// resolves to one of the allowed roles.
func RequireRole(resolve RoleResolver, roles ...string) gin.HandlerFunc {
	allowed := map[string]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		role, err := resolve(c.Request.Context(), strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Set("role", role)
		c.Next()
	}
}
