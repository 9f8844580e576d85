package usecase

import (
	"context"

	"unibot/internal/chat"
	"unibot/internal/chat/repository"
)

// Route tries the dashboard first and falls back to a canned reply on any
// failure. It never leaves the sender without an answer.
func (uc *implUseCase) Route(ctx context.Context, input chat.RouteInput) chat.RouteOutput {
	classID, err := uc.registry.FindClassID(ctx, input.GroupJID)
	if err != nil {
		uc.l.Warnf(ctx, "chat.usecase.Route: registry lookup: %v", err)
	}

	remote, err := uc.repo.QueryReply(ctx, repository.QueryReplyOptions{
		Intent:    input.Intent,
		GroupJID:  input.GroupJID,
		SenderJID: input.SenderJID,
		Message:   input.Message,
		ClassID:   classID,
	})
	if err != nil {
		uc.l.Warnf(ctx, "chat.usecase.Route: remote query failed, falling back: %v", err)
		return uc.fallback(input)
	}
	if !remote.Handled {
		return uc.fallback(input)
	}

	out := chat.RouteOutput{
		Text:     remote.Text,
		Mentions: remote.Mentions,
	}
	if out.Text != "" && len(out.Mentions) == 0 {
		// Replies without an explicit tag still ping the sender.
		out.Mentions = []string{input.SenderJID}
	}
	if remote.RegisterClassID != "" {
		out.Registered = &chat.RegisteredClass{
			ID:   remote.RegisterClassID,
			Name: remote.RegisterName,
		}
		if err := uc.registry.UpsertClassID(ctx, input.GroupJID, remote.RegisterClassID); err != nil {
			uc.l.Errorf(ctx, "chat.usecase.Route: registry upsert: %v", err)
		}
	}

	return out
}
