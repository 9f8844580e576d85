package usecase

import (
	"context"
	"fmt"
	"strings"

	"unibot/internal/class/repository"
	"unibot/internal/intent"
	"unibot/internal/wareply"
	"unibot/pkg/wagateway"
)

// groupSearchTerm picks the first usable free-text filter for group
// lookups.
func groupSearchTerm(f intent.Filters) string {
	for _, candidate := range []string{f.Group, f.GroupQuery, f.Subject, f.Query} {
		if term := strings.TrimSpace(candidate); term != "" {
			return term
		}
	}
	return ""
}

func (uc implUseCase) handleGroup(ctx context.Context, input wareply.ReplyInput) (wareply.ReplyOutput, error) {
	tag := mention(input.SenderJID)
	mentions := []string{input.SenderJID}

	if input.ClassID == "" {
		return wareply.ReplyOutput{
			Message:  tag + " 🔌 grup ini belum terdaftar ke kelas. Ajak admin buat jalankan *@unibot register* dulu ya.",
			Mentions: mentions,
		}, nil
	}

	filters := inputFilters(input)

	opt := repository.ListGroupsOptions{
		ClassID: input.ClassID,
		Search:  groupSearchTerm(filters),
		Limit:   maxResults + 1,
	}
	if weekday, ok := uc.resolveWeekday(filters); ok {
		opt.ScheduleDay = weekday
	}

	groups, err := uc.repo.ListGroups(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "wareply.usecase.handleGroup.ListGroups: %v", err)
		return wareply.ReplyOutput{}, err
	}

	if len(groups) == 0 {
		hint := ""
		if detail := describeGroupFilters(filters); detail != "" {
			hint = " (" + detail + ")"
		}
		return wareply.ReplyOutput{
			Message:  fmt.Sprintf("%s 🤷‍♂️ belum ada data kelompok%s. Coba cek lagi di dashboard atau pakai nama lain ya.", tag, hint),
			Mentions: mentions,
		}, nil
	}

	visible := groups
	if len(visible) > maxResults {
		visible = visible[:maxResults]
	}

	header := tag + " 👥 ini kelompok yang tercatat:"
	if detail := describeGroupFilters(filters); detail != "" {
		header = fmt.Sprintf("%s 👥 ini data kelompok %s:", tag, detail)
	}

	items := make([]string, 0, len(visible))
	for _, grp := range visible {
		memberLabel := "belum ada anggota"
		if grp.MemberCount > 0 {
			memberLabel = fmt.Sprintf("%d anggota", grp.MemberCount)
		}

		item := fmt.Sprintf("👥 %s — %s", grp.Name, memberLabel)
		if grp.Schedule != nil {
			item += " · " + scheduleInfo(*grp.Schedule)
		}
		items = append(items, item)
	}

	lines := []string{header, wagateway.BulletList(items)}
	if extra := len(groups) - len(visible); extra > 0 {
		lines = append(lines, fmt.Sprintf("(+%d kelompok lagi, sebut nama tim biar lebih fokus)", extra))
	}
	lines = append(lines, "Mau cek kelompok lain? Tinggal tag aku lagi 😄")

	return wareply.ReplyOutput{
		Message:  strings.Join(lines, "\n"),
		Mentions: mentions,
	}, nil
}
