package datemath

import (
	"fmt"
	"time"
)

// Parser resolves RelativeDay values to absolute time windows and weekdays.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Jakarta"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Now returns the current time in the parser's timezone.
func (p *Parser) Now() time.Time {
	return time.Now().In(p.location)
}

// Range resolves a RelativeDay to an absolute date range.
// The baseTime is used as the reference point (usually time.Now()).
// Weeks run Monday through Sunday; "tonight" starts at 18:00.
func (p *Parser) Range(day RelativeDay, baseTime time.Time) (Range, bool) {
	label := day.Label()

	switch day {
	case RelativeToday:
		start := p.startOfDay(baseTime)
		return Range{Start: start, End: p.EndOfDay(start), Label: label}, true
	case RelativeTonight:
		start := p.startOfDay(baseTime)
		return Range{Start: start.Add(18 * time.Hour), End: p.EndOfDay(start), Label: label}, true
	case RelativeTomorrow:
		start := p.startOfDay(baseTime.AddDate(0, 0, 1))
		return Range{Start: start, End: p.EndOfDay(start), Label: label}, true
	case RelativeDayAfterTomorrow:
		start := p.startOfDay(baseTime.AddDate(0, 0, 2))
		return Range{Start: start, End: p.EndOfDay(start), Label: label}, true
	case RelativeYesterday:
		start := p.startOfDay(baseTime.AddDate(0, 0, -1))
		return Range{Start: start, End: p.EndOfDay(start), Label: label}, true
	case RelativeThisWeek:
		monday := p.startOfWeek(baseTime)
		return Range{Start: monday, End: p.EndOfDay(monday.AddDate(0, 0, 6)), Label: label}, true
	case RelativeNextWeek:
		monday := p.startOfWeek(baseTime).AddDate(0, 0, 7)
		return Range{Start: monday, End: p.EndOfDay(monday.AddDate(0, 0, 6)), Label: label}, true
	}

	return Range{}, false
}

// Weekday resolves a single-day RelativeDay to its weekday.
// Week-spanning values (this-week, next-week) resolve to no weekday.
func (p *Parser) Weekday(day RelativeDay, baseTime time.Time) (time.Weekday, bool) {
	base := baseTime.In(p.location)

	switch day {
	case RelativeToday, RelativeTonight:
		return base.Weekday(), true
	case RelativeTomorrow:
		return base.AddDate(0, 0, 1).Weekday(), true
	case RelativeDayAfterTomorrow:
		return base.AddDate(0, 0, 2).Weekday(), true
	case RelativeYesterday:
		return base.AddDate(0, 0, -1).Weekday(), true
	}

	return 0, false
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// startOfWeek returns midnight of the Monday of the week containing t.
func (p *Parser) startOfWeek(t time.Time) time.Time {
	start := p.startOfDay(t)
	offset := (int(start.Weekday()) + 6) % 7
	return start.AddDate(0, 0, -offset)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
