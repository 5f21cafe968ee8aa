package middleware

import (
	"net/http"
	"strings"

	"animehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// Keys set on the gin context for authenticated requests.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
)

// TokenCookie is the cookie login and signup set the access token in.
const TokenCookie = "token"

// RequireAuth rejects requests without a valid access token. The token is read
// from the Authorization header ("Bearer <token>") or, failing that, from the
// token cookie.
func RequireAuth(verifier service.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, no token"})
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, token failed"})
			return
		}

		// Set user info in context for handlers to use
		c.Set(ContextUserID, identity.UserID)
		c.Set(ContextUsername, identity.Username)
		c.Next()
	}
}

// OptionalAuth sets the caller's identity when a valid token is present and
// never rejects the request.
func OptionalAuth(verifier service.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := extractToken(c); ok {
			if identity, err := verifier.Verify(c.Request.Context(), token); err == nil {
				c.Set(ContextUserID, identity.UserID)
				c.Set(ContextUsername, identity.Username)
			}
		}
		c.Next()
	}
}

// UserID returns the authenticated caller, or "" for anonymous requests.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

func extractToken(c *gin.Context) (string, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		// split by space, 0 is Bearer, 1 is token
		parts := strings.Fields(header)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1], true
		}
		return "", false
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}
