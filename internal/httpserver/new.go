package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	waDelivery "unibot/internal/chat/delivery/whatsapp"
	classDelivery "unibot/internal/class/delivery/http"
	"unibot/internal/middleware"
	wareplyDelivery "unibot/internal/wareply/delivery/http"
	"unibot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server. Domain
// handlers are optional; the api and worker binaries fill different
// slots.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Dashboard side
	classHandler   classDelivery.Handler
	wareplyHandler wareplyDelivery.Handler

	// Worker side
	whatsappHandler waDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	// Dashboard side
	ClassHandler   classDelivery.Handler
	WAReplyHandler wareplyDelivery.Handler

	// Worker side
	WhatsAppHandler waDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		classHandler:    cfg.ClassHandler,
		wareplyHandler:  cfg.WAReplyHandler,
		whatsappHandler: cfg.WhatsAppHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
