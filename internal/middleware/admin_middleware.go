package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminRequired gates a route behind the shared admin secret in the
// x-admin-key header. Mismatch aborts before any handler state is touched.
func AdminRequired(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader("x-admin-key")
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(adminKey)) != 1 {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
