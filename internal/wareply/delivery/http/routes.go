package http

import (
	"github.com/gin-gonic/gin"

	"unibot/internal/middleware"
)

// RegisterRoutes maps the internal worker API. The reply endpoint is
// guarded by the shared secret, never by the admin token.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/wa/reply", mw.InternalAuth(), h.Reply)
}
