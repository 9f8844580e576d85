package repository

import (
	"context"

	"unibot/internal/model"
)

// Repository is the composed interface for the class domain data store.
type Repository interface {
	ClassRepository
	ScheduleRepository
	AssignmentRepository
	GroupRepository
}

// ClassRepository defines data access for classes.
type ClassRepository interface {
	CreateClass(ctx context.Context, opt CreateClassOptions) (model.Class, error)
	GetOneClass(ctx context.Context, opt GetOneClassOptions) (model.Class, error)
	ListClasses(ctx context.Context, opt ListClassesOptions) ([]model.Class, int, error)
	UpdateClass(ctx context.Context, opt UpdateClassOptions) (model.Class, error)
	DeleteClass(ctx context.Context, id string) error

	// ClaimUnlinkedClass links the oldest class without a WhatsApp group
	// to the given group JID. Returns the zero value when every class is
	// already linked.
	ClaimUnlinkedClass(ctx context.Context, groupJID string) (model.Class, error)

	// CountEntities returns totals for the admin dashboard.
	CountEntities(ctx context.Context) (EntityCounts, error)
}

// ScheduleRepository defines data access for weekly schedules.
type ScheduleRepository interface {
	CreateSchedule(ctx context.Context, opt CreateScheduleOptions) (model.Schedule, error)
	GetOneSchedule(ctx context.Context, id string) (model.Schedule, error)
	ListSchedules(ctx context.Context, opt ListSchedulesOptions) ([]model.Schedule, error)
	UpdateSchedule(ctx context.Context, opt UpdateScheduleOptions) (model.Schedule, error)
	DeleteSchedule(ctx context.Context, id string) error
}

// AssignmentRepository defines data access for assignments. List queries
// join the linked schedule so chat replies can show the course slot.
type AssignmentRepository interface {
	CreateAssignment(ctx context.Context, opt CreateAssignmentOptions) (model.Assignment, error)
	GetOneAssignment(ctx context.Context, id string) (model.Assignment, error)
	ListAssignments(ctx context.Context, opt ListAssignmentsOptions) ([]model.Assignment, error)
	UpdateAssignment(ctx context.Context, opt UpdateAssignmentOptions) (model.Assignment, error)
	DeleteAssignment(ctx context.Context, id string) error
}

// GroupRepository defines data access for work groups and their members.
type GroupRepository interface {
	CreateGroup(ctx context.Context, opt CreateGroupOptions) (model.Group, error)
	GetOneGroup(ctx context.Context, id string) (model.Group, error)
	ListGroups(ctx context.Context, opt ListGroupsOptions) ([]model.Group, error)
	UpdateGroup(ctx context.Context, opt UpdateGroupOptions) (model.Group, error)
	DeleteGroup(ctx context.Context, id string) error

	AddGroupMember(ctx context.Context, opt AddGroupMemberOptions) (model.GroupMember, error)
	GetOneGroupMember(ctx context.Context, id string) (model.GroupMember, error)
	UpdateGroupMember(ctx context.Context, opt UpdateGroupMemberOptions) (model.GroupMember, error)
	DeleteGroupMember(ctx context.Context, id string) error
}

// EntityCounts is the dashboard summary row.
type EntityCounts struct {
	Classes     int
	Schedules   int
	Assignments int
	Groups      int
	Members     int
}
