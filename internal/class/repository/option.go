package repository

import (
	"time"

	"unibot/internal/model"
)

// CreateClassOptions holds parameters for inserting a new class.
type CreateClassOptions struct {
	Name string
}

// GetOneClassOptions holds filter parameters for fetching a single class.
// All non-empty fields are applied as AND conditions.
type GetOneClassOptions struct {
	ID       string
	GroupJID string
}

// ListClassesOptions holds pagination parameters for listing classes.
type ListClassesOptions struct {
	Limit  int
	Offset int
}

// UpdateClassOptions holds parameters for updating a class. A nil
// GroupJID leaves the group link untouched; an empty string unlinks.
type UpdateClassOptions struct {
	ID       string
	Name     string
	GroupJID *string
}

// CreateScheduleOptions holds parameters for inserting a schedule.
type CreateScheduleOptions struct {
	ClassID     string
	Title       string
	Description string
	Room        string
	DayOfWeek   model.Weekday
	StartTime   string
	EndTime     string
}

// ListSchedulesOptions filters schedules. Query matches title,
// description, and room case-insensitively.
type ListSchedulesOptions struct {
	ClassID   string
	DayOfWeek model.Weekday
	Query     string
	Limit     int
}

// UpdateScheduleOptions holds parameters for updating a schedule.
type UpdateScheduleOptions struct {
	ID          string
	Title       string
	Description string
	Room        string
	DayOfWeek   model.Weekday
	StartTime   string
	EndTime     string
}

// CreateAssignmentOptions holds parameters for inserting an assignment.
type CreateAssignmentOptions struct {
	ClassID     string
	ScheduleID  string
	Title       string
	Description string
	DueAt       *time.Time
}

// ListAssignmentsOptions filters assignments. Search matches the
// assignment title, description, and the linked schedule title. DueFrom
// and DueTo bound the deadline; ScheduleDay filters by the linked
// schedule's weekday.
type ListAssignmentsOptions struct {
	ClassID     string
	Search      string
	DueFrom     *time.Time
	DueTo       *time.Time
	ScheduleDay model.Weekday
	Limit       int
}

// UpdateAssignmentOptions holds parameters for updating an assignment.
type UpdateAssignmentOptions struct {
	ID          string
	ScheduleID  string
	Title       string
	Description string
	DueAt       *time.Time
}

// CreateGroupOptions holds parameters for inserting a work group.
type CreateGroupOptions struct {
	ScheduleID string
	Name       string
	Hints      []string
}

// ListGroupsOptions filters groups through their parent schedule's class.
// Search matches the group name and schedule title; MatchMembers extends
// the search to member names. WithMembers loads the member lists.
type ListGroupsOptions struct {
	ClassID      string
	ScheduleDay  model.Weekday
	Search       string
	MatchMembers bool
	WithMembers  bool
	Limit        int
}

// UpdateGroupOptions holds parameters for updating a work group.
type UpdateGroupOptions struct {
	ID         string
	ScheduleID string
	Name       string
	Hints      []string
}

// AddGroupMemberOptions holds parameters for inserting a group member.
type AddGroupMemberOptions struct {
	GroupID string
	Name    string
	Phone   string
}

// UpdateGroupMemberOptions holds parameters for updating a group member.
type UpdateGroupMemberOptions struct {
	ID    string
	Name  string
	Phone string
}
