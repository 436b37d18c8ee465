package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MethodNotAllowed answers wrong-method requests with 405 before any
// other processing happens. Plain text, not the JSON envelope.
func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusMethodNotAllowed, "method not allowed")
		c.Abort()
	}
}
