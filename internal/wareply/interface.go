package wareply

import "context"

// UseCase answers intent queries coming from the WhatsApp worker. It
// owns the database-backed replies: schedules, assignments, groups,
// group members, and the register command.
type UseCase interface {
	Reply(ctx context.Context, input ReplyInput) (ReplyOutput, error)
}
