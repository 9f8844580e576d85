package http

import (
	"github.com/gin-gonic/gin"

	"unibot/internal/wareply"
	"unibot/pkg/log"
)

// Handler exposes the internal worker endpoint.
type Handler interface {
	Reply(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc wareply.UseCase
}

// New creates a new HTTP handler for the internal worker API.
func New(l log.Logger, uc wareply.UseCase) Handler {
	return handler{
		l:  l,
		uc: uc,
	}
}
