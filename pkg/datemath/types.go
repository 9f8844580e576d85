package datemath

import "time"

// RelativeDay is the closed set of relative date keywords the bot
// understands. Values travel over the internal API as-is.
type RelativeDay string

const (
	RelativeToday            RelativeDay = "today"
	RelativeTonight          RelativeDay = "tonight"
	RelativeTomorrow         RelativeDay = "tomorrow"
	RelativeDayAfterTomorrow RelativeDay = "day-after-tomorrow"
	RelativeYesterday        RelativeDay = "yesterday"
	RelativeThisWeek         RelativeDay = "this-week"
	RelativeNextWeek         RelativeDay = "next-week"
)

// relativeDayLabels maps each RelativeDay to the Indonesian phrase used
// when describing filters back to the user.
var relativeDayLabels = map[RelativeDay]string{
	RelativeToday:            "hari ini",
	RelativeTonight:          "malam ini",
	RelativeTomorrow:         "besok",
	RelativeDayAfterTomorrow: "lusa",
	RelativeYesterday:        "kemarin",
	RelativeThisWeek:         "minggu ini",
	RelativeNextWeek:         "minggu depan",
}

// Label returns the human-readable Indonesian label for the relative day.
// Unknown values fall back to the raw string.
func (d RelativeDay) Label() string {
	if label, ok := relativeDayLabels[d]; ok {
		return label
	}
	return string(d)
}

// Valid reports whether d is one of the known relative-day values.
func (d RelativeDay) Valid() bool {
	_, ok := relativeDayLabels[d]
	return ok
}

// Range is an absolute [Start, End] window resolved from a RelativeDay.
type Range struct {
	Start time.Time
	End   time.Time
	Label string
}
