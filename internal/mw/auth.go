package mw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"enginerent-backend/internal/domain"
	"enginerent-backend/internal/security"
)

const (
	// CtxUserID and CtxUserRole are the context keys the auth middleware
	// populates for downstream handlers.
	CtxUserID   = "user_id"
	CtxUserRole = "user_role"
)

// Auth resolves the Authorization bearer token to a user identity and role
// and stores both on the gin context. Handlers never re-derive identity
// from the token themselves.
func Auth(tokens security.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token is not provided"})
			return
		}
		token := header
		if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
			token = token[7:]
		}

		claims, err := tokens.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserRole, domain.UserRole(claims.Role))
		c.Next()
	}
}

// RequireRole gates a route to the given roles. Must run after Auth.
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(CtxUserRole)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
	}
}

// Identity returns the authenticated user id and role from the context.
func Identity(c *gin.Context) (int32, domain.UserRole) {
	userID, _ := c.Get(CtxUserID)
	role, _ := c.Get(CtxUserRole)
	id, _ := userID.(int32)
	r, _ := role.(domain.UserRole)
	return id, r
}
