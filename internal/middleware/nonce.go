package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/univoucher/univoucher-api/internal/constants"
	"github.com/univoucher/univoucher-api/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	NonceHeader    = "X-UV-Nonce"
	NonceFormField = "nonce"
)

// NonceMiddleware requires the shared AJAX nonce on every request, either in
// the X-UV-Nonce header or the "nonce" form field. A missing or wrong nonce
// gets the usual envelope with success=false.
func NonceMiddleware(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(NonceHeader)
		if provided == "" && isForm(c) {
			provided = c.PostForm(NonceFormField)
		}

		if expected == "" || provided == "" ||
			subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			logger.Log.Warn("Rejected request with invalid nonce",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
				zap.String("correlation_id", GetCorrelationID(c)))

			c.AbortWithStatusJSON(http.StatusOK, gin.H{
				"success": false,
				"data":    gin.H{"message": constants.InvalidNonce},
			})
			return
		}
		c.Next()
	}
}

func isForm(c *gin.Context) bool {
	ct := c.ContentType()
	return strings.HasPrefix(ct, "application/x-www-form-urlencoded") || strings.HasPrefix(ct, "multipart/form-data")
}
