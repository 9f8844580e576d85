package chat

import (
	"unibot/internal/intent"
)

// RouteInput carries one inbound group message plus its classification.
// Intent is nil when the detector matched nothing.
type RouteInput struct {
	GroupJID  string
	SenderJID string
	Message   string
	Intent    *intent.Detected
}

// RegisteredClass is set when the dashboard linked the group to a class
// as part of handling this message.
type RegisteredClass struct {
	ID   string
	Name string
}

// RouteOutput is the reply to send back into the group.
type RouteOutput struct {
	Text       string
	Mentions   []string
	Registered *RegisteredClass
}
