package chat

import (
	"context"
)

// UseCase turns a classified group message into the reply the bot sends.
type UseCase interface {
	// Route asks the dashboard for a data-backed reply and falls back to a
	// canned response when the dashboard is unreachable or has nothing to
	// say. It always produces a reply.
	Route(ctx context.Context, input RouteInput) RouteOutput
}
