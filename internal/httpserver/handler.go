package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	classDelivery "unibot/internal/class/delivery/http"
	"unibot/internal/model"
	wareplyDelivery "unibot/internal/wareply/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Running in production mode")
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers every configured domain handler.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	if srv.classHandler != nil {
		classDelivery.RegisterRoutes(srv.gin.Group("/api/v1"), srv.classHandler, srv.mw)
		srv.l.Infof(ctx, "Admin dashboard routes registered under /api/v1")
	} else {
		srv.l.Infof(ctx, "Class handler not configured, skipping dashboard routes")
	}

	if srv.wareplyHandler != nil {
		wareplyDelivery.RegisterRoutes(srv.gin.Group("/api/internal"), srv.wareplyHandler, srv.mw)
		srv.l.Infof(ctx, "Internal reply route registered at POST /api/internal/wa/reply")
	} else {
		srv.l.Infof(ctx, "Reply handler not configured, skipping internal route")
	}

	if srv.whatsappHandler != nil {
		srv.gin.POST("/webhook/whatsapp", srv.whatsappHandler.HandleWebhook)
		srv.l.Infof(ctx, "WhatsApp webhook route registered at POST /webhook/whatsapp")
	} else {
		srv.l.Infof(ctx, "WhatsApp handler not configured, skipping webhook route")
	}

	return nil
}
