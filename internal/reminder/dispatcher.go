package reminder

import (
	"context"
	"fmt"
	"strings"

	"unibot/internal/class/repository"
	"unibot/internal/model"
	"unibot/pkg/datemath"
	"unibot/pkg/wagateway"
)

func (d *Dispatcher) tick() {
	ctx := context.Background()
	if err := d.Run(ctx); err != nil {
		d.l.Errorf(ctx, "reminder.Dispatcher.tick: %v", err)
	}
}

// Run sends the digest once for every linked class. Per-class failures
// are logged and skipped so one broken group cannot stall the rest.
func (d *Dispatcher) Run(ctx context.Context) error {
	classes, _, err := d.repo.ListClasses(ctx, repository.ListClassesOptions{})
	if err != nil {
		return err
	}

	now := d.dates.Now()
	today, _ := d.dates.Range(datemath.RelativeToday, now)
	weekday := model.WeekdayFromTime(now.Weekday())

	for _, cls := range classes {
		if cls.GroupJID == "" {
			continue
		}

		text, err := d.buildDigest(ctx, cls, weekday, today)
		if err != nil {
			d.l.Errorf(ctx, "reminder.Dispatcher.Run: digest for class %s: %v", cls.ID, err)
			continue
		}
		if text == "" {
			continue
		}

		if err := d.sender.SendMessage(cls.GroupJID, text, nil); err != nil {
			d.l.Errorf(ctx, "reminder.Dispatcher.Run: send to %s: %v", cls.GroupJID, err)
			continue
		}
		d.l.Infof(ctx, "reminder.Dispatcher.Run: digest sent to class %s", cls.ID)
	}

	return nil
}

// buildDigest renders the daily message. Empty when the class has
// nothing scheduled and nothing due today.
func (d *Dispatcher) buildDigest(ctx context.Context, cls model.Class, weekday model.Weekday, today datemath.Range) (string, error) {
	schedules, err := d.repo.ListSchedules(ctx, repository.ListSchedulesOptions{
		ClassID:   cls.ID,
		DayOfWeek: weekday,
	})
	if err != nil {
		return "", err
	}

	assignments, err := d.repo.ListAssignments(ctx, repository.ListAssignmentsOptions{
		ClassID: cls.ID,
		DueFrom: &today.Start,
		DueTo:   &today.End,
	})
	if err != nil {
		return "", err
	}

	if len(schedules) == 0 && len(assignments) == 0 {
		return "", nil
	}

	lines := []string{fmt.Sprintf("⏰ Selamat pagi kelas %s! Ini agenda hari ini:", cls.Name)}

	if len(schedules) > 0 {
		items := make([]string, 0, len(schedules))
		for _, sch := range schedules {
			item := fmt.Sprintf("%s-%s · %s", clipTime(sch.StartTime), clipTime(sch.EndTime), sch.Title)
			if room := strings.TrimSpace(sch.Room); room != "" {
				item += " · " + room
			}
			items = append(items, item)
		}
		lines = append(lines, "🗓️ Jadwal:", wagateway.BulletList(items))
	}

	if len(assignments) > 0 {
		items := make([]string, 0, len(assignments))
		for _, asg := range assignments {
			item := "📌 " + asg.Title
			if asg.DueAt != nil {
				due := asg.DueAt.In(today.Start.Location())
				item += fmt.Sprintf(" — deadline %02d.%02d", due.Hour(), due.Minute())
			}
			items = append(items, item)
		}
		lines = append(lines, "📚 Tugas jatuh tempo hari ini:", wagateway.BulletList(items))
	}

	lines = append(lines, "Semangat! Tag aku kalau butuh detailnya ya 🙌")

	return strings.Join(lines, "\n"), nil
}

func clipTime(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}
