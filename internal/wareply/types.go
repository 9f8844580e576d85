package wareply

import "unibot/internal/intent"

// ReplyInput carries one detected intent plus the chat context it came
// from. ClassID is optional; when empty the class is resolved from the
// group JID.
type ReplyInput struct {
	Intent    *intent.Detected
	GroupJID  string
	SenderJID string
	Message   string
	ClassID   string
}

// RegisterOutput reports a successful class-to-group link so the worker
// can update its local registry.
type RegisterOutput struct {
	ClassID   string
	ClassName string
}

// ReplyOutput is the answer sent back to the worker. A zero value means
// the intent was not handled and the worker should fall back locally.
type ReplyOutput struct {
	Message  string
	Mentions []string
	Register *RegisterOutput
}
