package repository

import (
	"unibot/internal/intent"
)

// QueryReplyOptions is the payload forwarded to the dashboard.
type QueryReplyOptions struct {
	Intent    *intent.Detected
	GroupJID  string
	SenderJID string
	Message   string
	ClassID   string
}

// RemoteReply is the dashboard's answer. Text can be empty when the
// dashboard only performed a registration.
type RemoteReply struct {
	Handled         bool
	Text            string
	Mentions        []string
	RegisterClassID string
	RegisterName    string
}
