package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"doctor-booking-api/internal/auth"
)

const UserIDKey = "uid"

// RequireSession accepts the session flag from the auth cookie or an
// Authorization: Bearer header and puts the user id on the request context.
func RequireSession(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, _ := c.Cookie("auth")
		if raw == "" {
			h := c.GetHeader("Authorization")
			raw = strings.TrimPrefix(h, "Bearer ")
		}
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no session"})
			return
		}

		claims, err := auth.ParseSessionToken(raw, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}
