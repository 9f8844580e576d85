package whatsapp

import (
	"github.com/gin-gonic/gin"

	"unibot/internal/chat"
	"unibot/internal/intent"
	pkgLog "unibot/pkg/log"
	"unibot/pkg/wagateway"
)

// Handler is the interface for the WhatsApp delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender pushes replies back into a WhatsApp chat.
type Sender interface {
	SendMessage(chatJID, text string, mentions []string) error
}

// Config tunes the webhook pipeline.
type Config struct {
	BotJID        string
	RatePerMinute int
	RateBurst     int
}

// New creates a new WhatsApp delivery handler.
func New(
	l pkgLog.Logger,
	uc chat.UseCase,
	detector *intent.Detector,
	sender Sender,
	cfg Config,
) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		detector: detector,
		sender:   sender,
		botJID:   cfg.BotJID,
		limiter:  newRateLimiter(cfg.RatePerMinute, cfg.RateBurst),
	}
}

var _ Sender = (*wagateway.Client)(nil)
