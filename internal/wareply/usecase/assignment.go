package usecase

import (
	"context"
	"fmt"
	"strings"

	"unibot/internal/class/repository"
	"unibot/internal/wareply"
	"unibot/pkg/wagateway"
)

func (uc implUseCase) handleAssignment(ctx context.Context, input wareply.ReplyInput) (wareply.ReplyOutput, error) {
	tag := mention(input.SenderJID)
	mentions := []string{input.SenderJID}

	if input.ClassID == "" {
		return wareply.ReplyOutput{
			Message:  tag + " 🔌 grup ini belum terhubung ke kelas. Suruh admin jalanin *@unibot register* dulu ya.",
			Mentions: mentions,
		}, nil
	}

	filters := inputFilters(input)

	search := strings.TrimSpace(filters.Subject)
	if search == "" {
		search = strings.TrimSpace(filters.Query)
	}

	opt := repository.ListAssignmentsOptions{
		ClassID: input.ClassID,
		Search:  search,
		Limit:   maxResults + 1,
	}

	dueRange, hasRange := uc.dates.Range(filters.RelativeDay, uc.dates.Now())
	if hasRange {
		opt.DueFrom = &dueRange.Start
		opt.DueTo = &dueRange.End
	}
	if weekday, ok := uc.resolveWeekday(filters); ok {
		opt.ScheduleDay = weekday
	}

	assignments, err := uc.repo.ListAssignments(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "wareply.usecase.handleAssignment.ListAssignments: %v", err)
		return wareply.ReplyOutput{}, err
	}

	if len(assignments) == 0 {
		info := ""
		if detail := describeAssignmentFilters(filters); detail != "" {
			info = " (" + detail + ")"
		} else if hasRange {
			info = " untuk " + dueRange.Label
		}
		return wareply.ReplyOutput{
			Message:  fmt.Sprintf("%s ✅ lagi aman, belum ada tugas%s. Kalau ada info baru tinggal kabarin aku lagi ya.", tag, info),
			Mentions: mentions,
		}, nil
	}

	visible := assignments
	if len(visible) > maxResults {
		visible = visible[:maxResults]
	}

	header := tag + " 📚 ini tugas yang lagi jalan:"
	if detail := describeAssignmentFilters(filters); detail != "" {
		header = fmt.Sprintf("%s 📚 daftar tugas %s:", tag, detail)
	}

	items := make([]string, 0, len(visible))
	for _, asg := range visible {
		dueLabel := "deadline belum di-set"
		if asg.DueAt != nil {
			dueLabel = uc.formatDueLabel(*asg.DueAt)
		}

		if asg.Schedule != nil {
			slot := asg.Schedule.DayOfWeek.ShortLabel() + " " + formatTimeRange(asg.Schedule.StartTime, asg.Schedule.EndTime)
			info := slot
			if title := strings.TrimSpace(asg.Schedule.Title); title != "" {
				info = fmt.Sprintf("%s (%s)", title, slot)
			}
			items = append(items, fmt.Sprintf("📌 %s · %s — %s", titleOrDefault(asg.Title), info, dueLabel))
			continue
		}

		items = append(items, fmt.Sprintf("📌 %s — %s", titleOrDefault(asg.Title), dueLabel))
	}

	lines := []string{header, wagateway.BulletList(items)}
	if extra := len(assignments) - len(visible); extra > 0 {
		lines = append(lines, fmt.Sprintf("(+%d tugas lagi, sebut nama matkul buat nge-filter)", extra))
	}
	lines = append(lines, "Kalau butuh update baru, tinggal tag aku lagi 👍")

	return wareply.ReplyOutput{
		Message:  strings.Join(lines, "\n"),
		Mentions: mentions,
	}, nil
}
