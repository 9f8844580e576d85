package whatsapp

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"unibot/internal/chat"
	"unibot/internal/intent"
	pkgLog "unibot/pkg/log"
	pkgResponse "unibot/pkg/response"
	"unibot/pkg/wagateway"
	"unibot/pkg/wajid"
)

type handler struct {
	l        pkgLog.Logger
	uc       chat.UseCase
	detector *intent.Detector
	sender   Sender
	botJID   string
	limiter  *rateLimiter
}

// HandleWebhook is the Gin handler for inbound gateway messages. It acks
// with HTTP 200 immediately and routes in a background goroutine so a
// slow dashboard never stalls the gateway's webhook delivery.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var msg wagateway.InboundMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		h.l.Errorf(ctx, "whatsapp handler: failed to parse message: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if !h.shouldHandle(msg) {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	go func() {
		// Detach from the request context, which dies with the response.
		bgCtx := context.Background()
		h.processMessage(bgCtx, msg)
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// shouldHandle applies the gates every inbound message passes before it
// costs anything: group chats only, not our own echoes, bot mentioned.
func (h *handler) shouldHandle(msg wagateway.InboundMessage) bool {
	if h.botJID == "" {
		return false
	}
	if !wajid.IsGroupJID(msg.ChatJID) || wajid.IsStatusBroadcast(msg.ChatJID) {
		return false
	}
	if msg.FromMe || msg.SenderJID == "" || msg.SenderJID == h.botJID {
		return false
	}
	if msg.Text == "" {
		return false
	}

	return h.isMentioned(msg)
}

func (h *handler) isMentioned(msg wagateway.InboundMessage) bool {
	for _, jid := range msg.MentionedJIDs {
		if jid == h.botJID {
			return true
		}
	}

	token := strings.ToLower(wajid.Display(h.botJID))
	return strings.Contains(strings.ToLower(msg.Text), "@"+token)
}

func (h *handler) processMessage(ctx context.Context, msg wagateway.InboundMessage) {
	rateKey := msg.ChatJID + ":" + msg.SenderJID
	if !h.limiter.Allow(rateKey) {
		text := "@" + wajid.Display(msg.SenderJID) + " santai dulu ya, coba lagi dalam beberapa detik."
		if err := h.sender.SendMessage(msg.ChatJID, text, []string{msg.SenderJID}); err != nil {
			h.l.Warnf(ctx, "whatsapp handler: failed to send throttle notice: %v", err)
		}
		return
	}

	sanitized := wajid.StripMention(msg.Text, h.botJID)
	detected := h.detector.Detect(sanitized)

	out := h.uc.Route(ctx, chat.RouteInput{
		GroupJID:  msg.ChatJID,
		SenderJID: msg.SenderJID,
		Message:   sanitized,
		Intent:    detected,
	})

	if out.Registered != nil {
		h.l.Infof(ctx, "whatsapp handler: group %s registered to class %s", msg.ChatJID, out.Registered.ID)
	}

	if out.Text == "" {
		return
	}

	if err := h.sender.SendMessage(msg.ChatJID, out.Text, out.Mentions); err != nil {
		h.l.Errorf(ctx, "whatsapp handler: failed to send reply: %v", err)
	}
}
