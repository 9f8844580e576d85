package usecase

import (
	"context"
	"fmt"

	"unibot/internal/wareply"
	"unibot/pkg/wajid"
)

// handleRegister links the oldest unlinked class to the calling group.
// The claim is first come, first served.
func (uc implUseCase) handleRegister(ctx context.Context, input wareply.ReplyInput) (wareply.ReplyOutput, error) {
	tag := mention(input.SenderJID)
	mentions := []string{input.SenderJID}

	if !wajid.IsGroupJID(input.GroupJID) {
		return wareply.ReplyOutput{
			Message:  tag + " 🙏 perintah register cuma bisa dipakai di dalam grup ya.",
			Mentions: mentions,
		}, nil
	}

	claimed, err := uc.repo.ClaimUnlinkedClass(ctx, input.GroupJID)
	if err != nil {
		uc.l.Errorf(ctx, "wareply.usecase.handleRegister.ClaimUnlinkedClass: %v", err)
		return wareply.ReplyOutput{}, err
	}

	if claimed.ID == "" {
		return wareply.ReplyOutput{
			Message:  tag + " 🙇‍♀️ belum ada kelas yang nunggu aktivasi. Coba kabarin superadmin dulu ya.",
			Mentions: mentions,
		}, nil
	}

	label := claimed.Name
	if label == "" {
		label = claimed.ID
	}

	return wareply.ReplyOutput{
		Message:  fmt.Sprintf("%s 🎉 kelas %s udah resmi nyambung ke grup ini. Thanks udah bantu setup!", tag, label),
		Mentions: mentions,
		Register: &wareply.RegisterOutput{
			ClassID:   claimed.ID,
			ClassName: claimed.Name,
		},
	}, nil
}
