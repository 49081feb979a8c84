package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Context keys set by the middleware for downstream handlers.
const (
	CtxToken  = "token"
	CtxUserID = "userId"
	CtxRole   = "role"
)

// AuthRequired blocks unauthenticated requests before any backend call is
// made. The response carries the login path so the view can redirect.
func (m *Manager) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.Token(c.Request)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "Authentication required",
				"redirect": "/login",
			})
			return
		}
		c.Set(CtxToken, token)
		c.Set(CtxUserID, UserIDFromToken(token))
		c.Set(CtxRole, RoleFromToken(token))
		c.Next()
	}
}

// AdminRequired gates admin-only routes on the decoded role claim. The
// backend independently enforces the same rule.
func (m *Manager) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.Role(c.Request) != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
			return
		}
		c.Next()
	}
}
