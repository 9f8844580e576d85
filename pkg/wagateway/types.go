package wagateway

// InboundMessage is the webhook payload the gateway delivers for every
// message observed in a chat the bot participates in.
type InboundMessage struct {
	ChatJID       string   `json:"chat_jid"`
	SenderJID     string   `json:"sender_jid"`
	Text          string   `json:"text"`
	MentionedJIDs []string `json:"mentioned_jids,omitempty"`
	FromMe        bool     `json:"from_me"`
	PushName      string   `json:"push_name,omitempty"`
	Timestamp     int64    `json:"timestamp"`
}

// SendMessageRequest is the payload for the gateway send endpoint.
type SendMessageRequest struct {
	ChatJID  string   `json:"chat_jid"`
	Text     string   `json:"text"`
	Mentions []string `json:"mentions,omitempty"`
}

// APIResponse is the generic gateway response wrapper.
type APIResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}
