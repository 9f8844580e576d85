package usecase

import (
	"context"
	"fmt"
	"strings"

	"unibot/internal/class/repository"
	"unibot/internal/wareply"
	"unibot/pkg/wagateway"
)

func (uc implUseCase) handleSchedule(ctx context.Context, input wareply.ReplyInput) (wareply.ReplyOutput, error) {
	tag := mention(input.SenderJID)
	mentions := []string{input.SenderJID}

	if input.ClassID == "" {
		return wareply.ReplyOutput{
			Message:  tag + " 🔌 grup ini belum nyambung ke kelas mana pun. Minta admin buat jalankan *@unibot register* dulu ya.",
			Mentions: mentions,
		}, nil
	}

	filters := inputFilters(input)

	opt := repository.ListSchedulesOptions{
		ClassID: input.ClassID,
		Query:   strings.TrimSpace(filters.Query),
		Limit:   maxResults + 1,
	}
	if weekday, ok := uc.resolveWeekday(filters); ok {
		opt.DayOfWeek = weekday
	}

	schedules, err := uc.repo.ListSchedules(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "wareply.usecase.handleSchedule.ListSchedules: %v", err)
		return wareply.ReplyOutput{}, err
	}

	if len(schedules) == 0 {
		hint := ""
		if detail := describeScheduleFilters(filters); detail != "" {
			hint = " (" + detail + ")"
		}
		return wareply.ReplyOutput{
			Message:  fmt.Sprintf("%s 🙈 belum nemu jadwal%s. Cobain kata kunci lain atau cek lagi di dashboard ya.", tag, hint),
			Mentions: mentions,
		}, nil
	}

	visible := schedules
	if len(visible) > maxResults {
		visible = visible[:maxResults]
	}

	header := tag + " 🗓️ ini jadwal yang ketemu:"
	if detail := describeScheduleFilters(filters); detail != "" {
		header = fmt.Sprintf("%s 🗓️ ini jadwal %s:", tag, detail)
	}

	items := make([]string, 0, len(visible))
	for _, sch := range visible {
		item := fmt.Sprintf("%s %s · %s",
			sch.DayOfWeek.ShortLabel(),
			formatTimeRange(sch.StartTime, sch.EndTime),
			titleOrDefault(sch.Title),
		)
		if room := strings.TrimSpace(sch.Room); room != "" {
			item += " · " + room
		}
		items = append(items, item)
	}

	lines := []string{header, wagateway.BulletList(items)}
	if extra := len(schedules) - len(visible); extra > 0 {
		lines = append(lines, fmt.Sprintf("(+%d jadwal lagi, sebut nama hari atau matkul biar lebih spesifik)", extra))
	}
	lines = append(lines, "Kalau mau jadwal lain, tag aku lagi aja ya 🙌")

	return wareply.ReplyOutput{
		Message:  strings.Join(lines, "\n"),
		Mentions: mentions,
	}, nil
}
