package intent

import (
	"regexp"
	"strings"

	"unibot/pkg/datemath"
)

// relativeDayKeywords is scanned in this exact order. Longer phrases that
// could shadow shorter ones ("minggu depan" vs "minggu ini") are listed
// first so a substring hit never misreads the week the user meant.
var relativeDayKeywords = []struct {
	day     datemath.RelativeDay
	phrases []string
}{
	{datemath.RelativeNextWeek, []string{"minggu depan", "pekan depan", "next week"}},
	{datemath.RelativeThisWeek, []string{"minggu ini", "pekan ini", "this week"}},
	{datemath.RelativeToday, []string{"hari ini", "today"}},
	{datemath.RelativeTonight, []string{"malam ini", "nanti malam", "tonight"}},
	{datemath.RelativeTomorrow, []string{"besok", "tomorrow"}},
	{datemath.RelativeDayAfterTomorrow, []string{"lusa", "day after tomorrow"}},
	{datemath.RelativeYesterday, []string{"kemarin", "yesterday"}},
}

// weekdayKeywordOrder fixes the scan order for explicit day names.
var weekdayKeywordOrder = []string{
	"senin", "monday",
	"selasa", "tuesday",
	"rabu", "wednesday",
	"kamis", "thursday",
	"jumat", "jum'at", "friday",
	"sabtu", "saturday",
	"minggu", "sunday",
}

var (
	weekdayPatterns  map[string]*regexp.Regexp
	dateTokenPattern *regexp.Regexp
	groupTokenPattern = regexp.MustCompile(`\bkelompok (\S+)`)
	spacePattern      = regexp.MustCompile(`\s+`)
)

func init() {
	weekdayPatterns = make(map[string]*regexp.Regexp, len(weekdayKeywordOrder))
	for _, kw := range weekdayKeywordOrder {
		weekdayPatterns[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
	}

	// One alternation stripping every date keyword from residue text.
	// Multi-word relative phrases come first so they win over the bare
	// weekday words they contain.
	alternatives := make([]string, 0, 32)
	for _, group := range relativeDayKeywords {
		for _, phrase := range group.phrases {
			alternatives = append(alternatives, regexp.QuoteMeta(phrase))
		}
	}
	for _, kw := range weekdayKeywordOrder {
		alternatives = append(alternatives, regexp.QuoteMeta(kw))
	}
	dateTokenPattern = regexp.MustCompile(`\b(?:` + strings.Join(alternatives, "|") + `)\b`)
}

// extractFilters enriches a match with structured filters pulled from the
// normalized message. Returns nil when nothing was extracted.
func extractFilters(normalized, matchedPhrase string, name Name) *Filters {
	f := &Filters{}

	// Relative day takes priority over an explicit weekday.
	for _, group := range relativeDayKeywords {
		for _, phrase := range group.phrases {
			if strings.Contains(normalized, phrase) {
				f.RelativeDay = group.day
				break
			}
		}
		if f.RelativeDay != "" {
			break
		}
	}

	if f.RelativeDay == "" {
		// Whole-word only: "minggu" inside another word must not read as
		// Sunday.
		for _, kw := range weekdayKeywordOrder {
			if weekdayPatterns[kw].MatchString(normalized) {
				f.Day = kw
				break
			}
		}
	}

	residue := residueAround(normalized, matchedPhrase)

	switch name {
	case NameGroup, NameGroupMembers:
		// "kelompok 3" style references beat the generic residue.
		if m := groupTokenPattern.FindStringSubmatch(normalized); m != nil {
			f.Group = m[1]
		} else if residue != "" {
			f.GroupQuery = residue
		}
	case NameAssignment:
		if residue != "" {
			f.Subject = residue
		}
	case NameSchedule:
		if residue != "" {
			f.Query = residue
		}
	}

	if f.Empty() {
		return nil
	}
	return f
}

// residueAround returns the free text around the matched phrase with all
// date keywords stripped out and whitespace collapsed.
func residueAround(normalized, phrase string) string {
	idx := strings.Index(normalized, phrase)
	if idx < 0 {
		return ""
	}

	residue := normalized[:idx] + " " + normalized[idx+len(phrase):]
	residue = dateTokenPattern.ReplaceAllString(residue, " ")
	residue = strings.TrimSpace(spacePattern.ReplaceAllString(residue, " "))

	if residue == "" || residue == phrase {
		return ""
	}
	return residue
}
