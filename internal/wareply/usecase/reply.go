package usecase

import (
	"context"

	"unibot/internal/class/repository"
	"unibot/internal/intent"
	"unibot/internal/model"
	"unibot/internal/wareply"
	"unibot/pkg/wajid"
)

// Reply resolves the chat context to a class, then dispatches to the
// intent handler. Intents without a database-backed answer return the
// zero output so the worker falls back to its local replies.
func (uc implUseCase) Reply(ctx context.Context, input wareply.ReplyInput) (wareply.ReplyOutput, error) {
	if input.GroupJID == "" || input.SenderJID == "" {
		return wareply.ReplyOutput{}, nil
	}

	if input.ClassID == "" {
		cls, err := uc.repo.GetOneClass(ctx, repository.GetOneClassOptions{GroupJID: input.GroupJID})
		if err != nil {
			uc.l.Errorf(ctx, "wareply.usecase.Reply.GetOneClass: %v", err)
			return wareply.ReplyOutput{}, err
		}
		input.ClassID = cls.ID
	}

	if input.Intent == nil {
		return wareply.ReplyOutput{}, nil
	}

	switch input.Intent.Name {
	case intent.NameRegister:
		return uc.handleRegister(ctx, input)
	case intent.NameSchedule:
		return uc.handleSchedule(ctx, input)
	case intent.NameAssignment:
		return uc.handleAssignment(ctx, input)
	case intent.NameGroup:
		return uc.handleGroup(ctx, input)
	case intent.NameGroupMembers:
		return uc.handleGroupMembers(ctx, input)
	}

	return wareply.ReplyOutput{}, nil
}

// mention renders the sender as a WhatsApp @-tag.
func mention(senderJID string) string {
	if phone := wajid.PhoneFromJID(senderJID); phone != "" {
		return "@" + phone
	}
	return "@teman"
}

func inputFilters(input wareply.ReplyInput) intent.Filters {
	if input.Intent == nil || input.Intent.Filters == nil {
		return intent.Filters{}
	}
	return *input.Intent.Filters
}

// resolveWeekday maps the date filters to a concrete weekday. A
// relative day wins over an explicit day keyword; week-spanning values
// resolve to no weekday.
func (uc implUseCase) resolveWeekday(f intent.Filters) (model.Weekday, bool) {
	if f.RelativeDay != "" {
		if wd, ok := uc.dates.Weekday(f.RelativeDay, uc.dates.Now()); ok {
			return model.WeekdayFromTime(wd), true
		}
	}
	return model.ParseWeekdayKeyword(f.Day)
}
