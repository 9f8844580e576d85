package class

import (
	"time"

	"unibot/internal/model"
)

// --- Class ---

type CreateClassInput struct {
	Name string
}

type ListClassesInput struct {
	Limit  int
	Offset int
}

type UpdateClassInput struct {
	ID   string
	Name string
	// GroupJID nil leaves the link untouched; pointing at an empty string
	// unlinks the class from its WhatsApp group.
	GroupJID *string
}

type ClassOutput struct {
	Class model.Class
}

type ListClassesOutput struct {
	Classes []model.Class
	Total   int
	Limit   int
	Offset  int
}

type DetailClassOutput struct {
	Class       model.Class
	Schedules   []model.Schedule
	Assignments []model.Assignment
	Groups      []model.Group
}

// --- Schedule ---

type CreateScheduleInput struct {
	ClassID     string
	Title       string
	Description string
	Room        string
	DayOfWeek   model.Weekday
	StartTime   string
	EndTime     string
}

type ListSchedulesInput struct {
	ClassID   string
	DayOfWeek model.Weekday
}

type UpdateScheduleInput struct {
	ID          string
	Title       string
	Description string
	Room        string
	DayOfWeek   model.Weekday
	StartTime   string
	EndTime     string
}

type ScheduleOutput struct {
	Schedule model.Schedule
}

type ListSchedulesOutput struct {
	Schedules []model.Schedule
}

// --- Assignment ---

type CreateAssignmentInput struct {
	ClassID     string
	ScheduleID  string
	Title       string
	Description string
	DueAt       *time.Time
}

type ListAssignmentsInput struct {
	ClassID string
}

type UpdateAssignmentInput struct {
	ID          string
	ScheduleID  string
	Title       string
	Description string
	DueAt       *time.Time
}

type AssignmentOutput struct {
	Assignment model.Assignment
}

type ListAssignmentsOutput struct {
	Assignments []model.Assignment
}

// --- Group ---

type CreateGroupInput struct {
	ScheduleID string
	Name       string
	Hints      []string
}

type ListGroupsInput struct {
	ClassID     string
	WithMembers bool
}

type UpdateGroupInput struct {
	ID         string
	ScheduleID string
	Name       string
	Hints      []string
}

type GroupOutput struct {
	Group model.Group
}

type ListGroupsOutput struct {
	Groups []model.Group
}

type AddGroupMemberInput struct {
	GroupID string
	Name    string
	Phone   string
}

type UpdateGroupMemberInput struct {
	ID    string
	Name  string
	Phone string
}

type GroupMemberOutput struct {
	Member model.GroupMember
}

// --- Dashboard ---

type DashboardOutput struct {
	Classes     int
	Schedules   int
	Assignments int
	Groups      int
	Members     int
}
