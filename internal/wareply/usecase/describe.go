package usecase

import (
	"fmt"
	"strings"

	"unibot/internal/intent"
	"unibot/internal/model"
)

// describeScheduleFilters summarizes the active schedule filters for
// headers and empty-state replies. Empty when no filter is set.
func describeScheduleFilters(f intent.Filters) string {
	var parts []string

	if f.RelativeDay != "" {
		parts = append(parts, f.RelativeDay.Label())
	}
	if day, ok := model.ParseWeekdayKeyword(f.Day); ok {
		parts = append(parts, "hari "+day.Label())
	}
	if f.Query != "" {
		parts = append(parts, fmt.Sprintf("kata kunci %q", f.Query))
	}

	return strings.Join(parts, ", ")
}

func describeAssignmentFilters(f intent.Filters) string {
	var parts []string

	if f.Subject != "" {
		parts = append(parts, fmt.Sprintf("mata kuliah %q", f.Subject))
	}
	if f.RelativeDay != "" {
		parts = append(parts, "deadline "+f.RelativeDay.Label())
	}
	if day, ok := model.ParseWeekdayKeyword(f.Day); ok {
		parts = append(parts, "jadwal hari "+day.Label())
	}

	return strings.Join(parts, ", ")
}

func describeGroupFilters(f intent.Filters) string {
	var parts []string

	if f.Group != "" {
		parts = append(parts, "kelompok "+f.Group)
	}
	if f.GroupQuery != "" {
		parts = append(parts, fmt.Sprintf("kata kunci %q", f.GroupQuery))
	}
	if day, ok := model.ParseWeekdayKeyword(f.Day); ok {
		parts = append(parts, "jadwal hari "+day.Label())
	}
	if f.RelativeDay != "" {
		parts = append(parts, f.RelativeDay.Label())
	}
	if f.Subject != "" {
		parts = append(parts, fmt.Sprintf("mata kuliah %q", f.Subject))
	}

	return strings.Join(parts, ", ")
}
