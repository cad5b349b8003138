package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxRequestBody caps JSON request bodies at 2 MB.
const MaxRequestBody = 2 << 20

// BodyLimitMiddleware rejects oversized request bodies at read time rather
// than buffering them.
func BodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxRequestBody)
		c.Next()
	}
}
