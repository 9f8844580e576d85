package usecase

import (
	"fmt"
	"math"
	"strings"
	"time"

	"unibot/internal/model"
)

// monthShortLabels are the Indonesian abbreviated month names.
var monthShortLabels = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// formatTimeRange renders "HH:MM-HH:MM" from stored schedule times.
func formatTimeRange(start, end string) string {
	if len(start) > 5 {
		start = start[:5]
	}
	if len(end) > 5 {
		end = end[:5]
	}
	return start + "-" + end
}

// formatDueLabel renders a deadline as an Indonesian timestamp plus a
// relative hint, e.g. "Sen, 10 Mar, 23.59 (2 jam lagi)".
func (uc implUseCase) formatDueLabel(dueAt time.Time) string {
	now := uc.dates.Now()
	due := dueAt.In(now.Location())

	formatted := fmt.Sprintf("%s, %d %s, %02d.%02d",
		model.WeekdayFromTime(due.Weekday()).ShortLabel(),
		due.Day(),
		monthShortLabels[due.Month()-1],
		due.Hour(),
		due.Minute(),
	)

	diffMinutes := int(due.Sub(now).Minutes())
	absMinutes := diffMinutes
	if absMinutes < 0 {
		absMinutes = -absMinutes
	}

	if absMinutes < 1 {
		return formatted + " (baru saja)"
	}

	suffix := "lagi"
	if diffMinutes < 0 {
		suffix = "lalu"
	}

	if absMinutes < 60 {
		return fmt.Sprintf("%s (%d menit %s)", formatted, absMinutes, suffix)
	}
	if absMinutes < 1440 {
		hours := int(math.Round(float64(absMinutes) / 60))
		return fmt.Sprintf("%s (%d jam %s)", formatted, hours, suffix)
	}
	days := int(math.Round(float64(absMinutes) / 1440))
	return fmt.Sprintf("%s (%d hari %s)", formatted, days, suffix)
}

// scheduleInfo renders "Sen 08:00-09:40 · Title" or just the time slot
// when the schedule has no title.
func scheduleInfo(sch model.Schedule) string {
	slot := sch.DayOfWeek.ShortLabel() + " " + formatTimeRange(sch.StartTime, sch.EndTime)
	if title := strings.TrimSpace(sch.Title); title != "" {
		return slot + " · " + title
	}
	return slot
}

func titleOrDefault(title string) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	return "Tanpa judul"
}
