package model

import (
	"strings"
	"time"
)

// Weekday is the day-of-week enum persisted with schedules.
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
	Sunday    Weekday = "SUNDAY"
)

// Weekdays lists all weekdays in calendar order, Monday first.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

type weekdayLabel struct {
	Short string
	Label string
}

var weekdayLabels = map[Weekday]weekdayLabel{
	Monday:    {Short: "Sen", Label: "Senin"},
	Tuesday:   {Short: "Sel", Label: "Selasa"},
	Wednesday: {Short: "Rab", Label: "Rabu"},
	Thursday:  {Short: "Kam", Label: "Kamis"},
	Friday:    {Short: "Jum", Label: "Jumat"},
	Saturday:  {Short: "Sab", Label: "Sabtu"},
	Sunday:    {Short: "Min", Label: "Minggu"},
}

// weekdayKeywords maps Indonesian and English day names to weekdays.
var weekdayKeywords = map[string]Weekday{
	"senin":   Monday,
	"monday":  Monday,
	"selasa":  Tuesday,
	"tuesday": Tuesday,
	"rabu":    Wednesday, "wednesday": Wednesday,
	"kamis": Thursday, "thursday": Thursday,
	"jumat": Friday, "jum'at": Friday, "friday": Friday,
	"sabtu": Saturday, "saturday": Saturday,
	"minggu": Sunday, "sunday": Sunday,
}

// ShortLabel returns the three-letter Indonesian label (e.g. "Sen").
func (w Weekday) ShortLabel() string {
	return weekdayLabels[w].Short
}

// Label returns the full Indonesian label (e.g. "Senin").
func (w Weekday) Label() string {
	return weekdayLabels[w].Label
}

// Valid reports whether w is one of the seven known weekdays.
func (w Weekday) Valid() bool {
	_, ok := weekdayLabels[w]
	return ok
}

// Order returns the calendar position of w, Monday = 0. Unknown values
// sort last.
func (w Weekday) Order() int {
	for i, day := range Weekdays {
		if day == w {
			return i
		}
	}
	return len(Weekdays)
}

// ParseWeekdayKeyword resolves an Indonesian or English day name to a
// Weekday. The match is case-insensitive.
func ParseWeekdayKeyword(keyword string) (Weekday, bool) {
	w, ok := weekdayKeywords[strings.ToLower(strings.TrimSpace(keyword))]
	return w, ok
}

// WeekdayKeywords returns every known day-name keyword. Used by the
// intent filter extractor for whole-word scanning.
func WeekdayKeywords() []string {
	keywords := make([]string, 0, len(weekdayKeywords))
	for k := range weekdayKeywords {
		keywords = append(keywords, k)
	}
	return keywords
}

// WeekdayFromTime converts a time.Weekday to the persisted enum.
func WeekdayFromTime(d time.Weekday) Weekday {
	switch d {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}
