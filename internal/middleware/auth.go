package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/harishnemade100/fitness-studio-booking/internal/auth"
)

const ClaimsKey = "auth_claims"

// Auth validates the Bearer token and stores the parsed claims on the context.
func Auth(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		claims, err := auth.ParseToken(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireRoles rejects authenticated requests whose role is not listed.
func RequireRoles(roles ...string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		v, ok := c.Get(ClaimsKey)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		claims, ok := v.(*auth.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "insufficient role"})
	}
}
