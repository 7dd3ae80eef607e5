package middleware

import (
	"net/http"                      // HTTP status codes
	"rental_system/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
)

// RequireRole gates a route on the role claim extracted by JWTAuthMiddleware.
// The check is a plain comparison against the verified claim; it never touches
// the database. A verified token with the wrong role gets 403.
func RequireRole(required domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole) // Get role claim from context
		// Check if the role claim exists in context
		if !exists {
			// If not, the token never went through JWT auth
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Check the claim against the required role
		if role != string(required) {
			// If mismatched, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}
		// If allowed, proceed to the next handler
		c.Next()
	}
}
