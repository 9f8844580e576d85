package datemath

import (
	"testing"
	"time"
)

func mustParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser("Asia/Jakarta")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return p
}

func TestNewParserInvalidTimezone(t *testing.T) {
	if _, err := NewParser("Not/AZone"); err == nil {
		t.Errorf("expected error for invalid timezone")
	}
}

func TestRange(t *testing.T) {
	p := mustParser(t)
	// Wednesday 2025-06-11 10:30 WIB
	base := time.Date(2025, 6, 11, 10, 30, 0, 0, p.location)

	t.Run("Today", func(t *testing.T) {
		r, ok := p.Range(RelativeToday, base)
		if !ok {
			t.Fatalf("expected range")
		}
		if r.Start.Day() != 11 || r.Start.Hour() != 0 {
			t.Errorf("unexpected start %v", r.Start)
		}
		if r.End.Day() != 11 || r.End.Hour() != 23 || r.End.Minute() != 59 {
			t.Errorf("unexpected end %v", r.End)
		}
		if r.Label != "hari ini" {
			t.Errorf("unexpected label %q", r.Label)
		}
	})

	t.Run("Tonight Starts At Six PM", func(t *testing.T) {
		r, ok := p.Range(RelativeTonight, base)
		if !ok {
			t.Fatalf("expected range")
		}
		if r.Start.Hour() != 18 || r.Start.Day() != 11 {
			t.Errorf("unexpected start %v", r.Start)
		}
	})

	t.Run("Tomorrow", func(t *testing.T) {
		r, _ := p.Range(RelativeTomorrow, base)
		if r.Start.Day() != 12 || r.End.Day() != 12 {
			t.Errorf("unexpected range %v - %v", r.Start, r.End)
		}
	})

	t.Run("This Week Runs Monday To Sunday", func(t *testing.T) {
		r, _ := p.Range(RelativeThisWeek, base)
		if r.Start.Weekday() != time.Monday || r.Start.Day() != 9 {
			t.Errorf("unexpected start %v", r.Start)
		}
		if r.End.Weekday() != time.Sunday || r.End.Day() != 15 {
			t.Errorf("unexpected end %v", r.End)
		}
	})

	t.Run("Next Week Shifts Seven Days", func(t *testing.T) {
		this, _ := p.Range(RelativeThisWeek, base)
		next, _ := p.Range(RelativeNextWeek, base)
		if !next.Start.Equal(this.Start.AddDate(0, 0, 7)) {
			t.Errorf("next week start %v, want %v", next.Start, this.Start.AddDate(0, 0, 7))
		}
	})

	t.Run("Week Range On Sunday Base", func(t *testing.T) {
		// Sunday must still belong to the week starting the previous Monday.
		sunday := time.Date(2025, 6, 15, 9, 0, 0, 0, p.location)
		r, _ := p.Range(RelativeThisWeek, sunday)
		if r.Start.Day() != 9 {
			t.Errorf("unexpected week start %v", r.Start)
		}
	})

	t.Run("Unknown Value", func(t *testing.T) {
		if _, ok := p.Range(RelativeDay("someday"), base); ok {
			t.Errorf("expected no range for unknown value")
		}
	})
}

func TestWeekday(t *testing.T) {
	p := mustParser(t)
	base := time.Date(2025, 6, 11, 10, 30, 0, 0, p.location) // Wednesday

	cases := []struct {
		day  RelativeDay
		want time.Weekday
		ok   bool
	}{
		{RelativeToday, time.Wednesday, true},
		{RelativeTonight, time.Wednesday, true},
		{RelativeTomorrow, time.Thursday, true},
		{RelativeDayAfterTomorrow, time.Friday, true},
		{RelativeYesterday, time.Tuesday, true},
		{RelativeThisWeek, 0, false},
		{RelativeNextWeek, 0, false},
	}

	for _, tc := range cases {
		got, ok := p.Weekday(tc.day, base)
		if ok != tc.ok {
			t.Errorf("%s: ok = %v, want %v", tc.day, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("%s: weekday = %v, want %v", tc.day, got, tc.want)
		}
	}
}

func TestLabel(t *testing.T) {
	if got := RelativeNextWeek.Label(); got != "minggu depan" {
		t.Errorf("label = %q", got)
	}
	if got := RelativeDay("whenever").Label(); got != "whenever" {
		t.Errorf("unknown label should fall back to raw value, got %q", got)
	}
}
