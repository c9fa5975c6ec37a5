package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DefaultMaxBodySize covers a CSV import of a few hundred cards
const DefaultMaxBodySize int64 = 2 << 20

// BodyLimitMiddleware rejects requests whose body is larger than maxBytes and
// caps the reader for bodies of unknown length.
func BodyLimitMiddleware(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusOK, gin.H{
				"success": false,
				"data":    gin.H{"message": fmt.Sprintf("Request body too large. Maximum size: %d bytes", maxBytes)},
			})
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
