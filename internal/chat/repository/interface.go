package repository

import (
	"context"
)

// ReplyRepository asks the dashboard's internal API to answer a message
// with live class data.
type ReplyRepository interface {
	// QueryReply returns the dashboard's reply. Handled is false when the
	// dashboard had nothing for this intent; the caller falls back locally.
	QueryReply(ctx context.Context, opt QueryReplyOptions) (RemoteReply, error)
}

// Registry maps WhatsApp group JIDs to the class they registered.
type Registry interface {
	// FindClassID returns the class linked to the group, or the zero value
	// when the group never registered.
	FindClassID(ctx context.Context, groupJID string) (string, error)
	UpsertClassID(ctx context.Context, groupJID, classID string) error
}
