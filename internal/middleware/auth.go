package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nwatkins/wishlist/internal/auth"
	"github.com/nwatkins/wishlist/internal/session"
)

const (
	// EmailKey is the gin context key for the authenticated user's email.
	EmailKey = "email"
	// UserIDKey is the gin context key for the authenticated user ID.
	UserIDKey = "user_id"
	// TokenKey is the gin context key for the raw session token.
	TokenKey = "token"
)

// Email extracts the authenticated email from the request context.
// Returns empty string if not set.
func Email(c *gin.Context) string {
	email, _ := c.Get(EmailKey)
	s, _ := email.(string)
	return s
}

// Token extracts the raw session token from the request context.
func Token(c *gin.Context) string {
	token, _ := c.Get(TokenKey)
	s, _ := token.(string)
	return s
}

// RequireAuth returns a middleware that validates the session token and
// rejects revoked or missing sessions. The token is read from the
// Authorization header (Bearer scheme) or, failing that, an Authorization
// cookie. On success the user's identity is added to the request context.
func RequireAuth(jwtManager *auth.JWTManager, revocations *session.Revocations) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": auth.ErrMissingToken.Error()})
			return
		}

		claims, err := jwtManager.Validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": auth.ErrInvalidToken.Error()})
			return
		}

		if revocations.IsRevoked(claims.ID) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": auth.ErrInvalidToken.Error()})
			return
		}

		c.Set(EmailKey, claims.Email)
		c.Set(UserIDKey, claims.UserID)
		c.Set(TokenKey, tokenString)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	if cookie, err := c.Cookie("Authorization"); err == nil {
		return cookie
	}
	return ""
}
