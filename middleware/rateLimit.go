package middleware

import (
	"net/http"
	"time"

	"github.com/ZAITAKUSANTEI/my-skin-app/globals"
	"github.com/ZAITAKUSANTEI/my-skin-app/message"
	appschema "github.com/ZAITAKUSANTEI/my-skin-app/models"
	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware limits requests per client IP and endpoint within
// a fixed window.
func RateLimitMiddleware(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		endpoint := c.Request.URL.Path
		now := time.Now()

		store := &globals.RequestStore
		store.Mu.Lock()
		defer store.Mu.Unlock()

		if store.Requests == nil {
			store.Requests = make(map[string]map[string]*appschema.RateLimitEntry)
		}
		if store.Requests[ip] == nil {
			store.Requests[ip] = make(map[string]*appschema.RateLimitEntry)
		}

		entry, exists := store.Requests[ip][endpoint]
		switch {
		case !exists || now.Sub(entry.Timestamp) > window:
			store.Requests[ip][endpoint] = &appschema.RateLimitEntry{Count: 1, Timestamp: now}
		case entry.Count >= limit:
			c.JSON(http.StatusTooManyRequests, message.ReturnMessage(http.StatusTooManyRequests))
			c.Abort()
			return
		default:
			entry.Count++
		}

		c.Next()
	}
}
