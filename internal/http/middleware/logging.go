// README: Request logging middleware.
package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		dur := time.Since(start).Milliseconds()
		if len(c.Errors) > 0 {
			log.Printf("method=%s path=%s status=%d dur=%dms err=%v",
				c.Request.Method, c.Request.URL.Path, c.Writer.Status(), dur, c.Errors.Last())
			return
		}
		log.Printf("method=%s path=%s status=%d bytes=%d dur=%dms",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), c.Writer.Size(), dur)
	}
}
