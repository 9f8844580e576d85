package usecase

import (
	"fmt"
	"strings"

	"unibot/internal/intent"
)

func sentenceCase(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

// describeScheduleFilters echoes back what the user asked for, e.g.
// "buat besok, kata kunci \"algoritma\"".
func describeScheduleFilters(filters *intent.Filters) string {
	if filters == nil {
		return ""
	}

	var parts []string
	if filters.RelativeDay != "" {
		parts = append(parts, "buat "+filters.RelativeDay.Label())
	}
	if filters.Day != "" {
		parts = append(parts, "hari "+sentenceCase(filters.Day))
	}
	if filters.Query != "" {
		parts = append(parts, fmt.Sprintf("kata kunci %q", filters.Query))
	}

	return strings.Join(parts, ", ")
}

func describeAssignmentFilters(filters *intent.Filters) string {
	if filters == nil {
		return ""
	}

	var parts []string
	if filters.Subject != "" {
		parts = append(parts, fmt.Sprintf("mata kuliah %q", filters.Subject))
	}
	if filters.RelativeDay != "" {
		parts = append(parts, "deadline "+filters.RelativeDay.Label())
	}

	return strings.Join(parts, ", ")
}

// describeGroupFilters picks the single most specific filter; group
// references beat free-text queries beat date hints.
func describeGroupFilters(filters *intent.Filters) string {
	if filters == nil {
		return ""
	}

	switch {
	case filters.Group != "":
		return "kelompok " + filters.Group
	case filters.GroupQuery != "":
		return fmt.Sprintf("kata kunci %q", filters.GroupQuery)
	case filters.RelativeDay != "":
		return "jadwal " + filters.RelativeDay.Label()
	case filters.Day != "":
		return "jadwal hari " + sentenceCase(filters.Day)
	case filters.Subject != "":
		return "jadwal " + filters.Subject
	}

	return ""
}
