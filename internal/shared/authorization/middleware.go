package authorization

import (
	"github.com/gin-gonic/gin"
)

// RequireAdmin allows only admin sessions through. A profile counts as
// admin either by role name or by the explicit admin flag set during
// authentication.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetBool("is_admin") || c.GetString("user_role") == string(RoleAdmin) {
			c.Next()
			return
		}
		c.JSON(403, gin.H{
			"error": "Permisos insuficientes",
		})
		c.Abort()
	}
}
