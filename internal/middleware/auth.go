package middleware

import (
	"crypto/hmac"
	"strings"

	"github.com/gin-gonic/gin"

	"unibot/pkg/response"
)

const (
	headerAuthorization  = "Authorization"
	headerInternalSecret = "X-Internal-Secret"
	bearerPrefix         = "Bearer "
)

// AdminAuth guards dashboard routes with the static admin bearer token.
func (m Middleware) AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.adminToken == "" {
			m.l.Warn(c.Request.Context(), "middleware.AdminAuth: admin token not configured, rejecting")
			response.Unauthorized(c)
			c.Abort()
			return
		}

		header := c.GetHeader(headerAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, bearerPrefix)
		if !hmac.Equal([]byte(token), []byte(m.adminToken)) {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// InternalAuth guards worker-to-dashboard routes with the shared secret.
// Comparison is constant time; an unconfigured secret fails closed.
func (m Middleware) InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.internalSecret == "" {
			m.l.Warn(c.Request.Context(), "middleware.InternalAuth: internal secret not configured, rejecting")
			response.Unauthorized(c)
			c.Abort()
			return
		}

		secret := c.GetHeader(headerInternalSecret)
		if !hmac.Equal([]byte(secret), []byte(m.internalSecret)) {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
