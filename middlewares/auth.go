package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AtifZafar596/Jetak-food-backend-api/store"
	"github.com/AtifZafar596/Jetak-food-backend-api/utils"
)

// AuthMiddleware verifies the bearer token, rejects blacklisted tokens
// (logged-out sessions) and, when roles are given, enforces them.
func AuthMiddleware(secret string, blacklist store.KV, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		if blacklist != nil && claims.ID != "" {
			if _, err := blacklist.Get(c.Request.Context(), "blacklist:"+claims.ID); err == nil {
				c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "token revoked"})
				c.Abort()
				return
			}
		}

		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("tokenId", claims.ID)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if claims.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
