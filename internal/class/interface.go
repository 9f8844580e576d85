package class

import "context"

// UseCase defines the business logic interface for the class domain: the
// classes themselves plus their schedules, assignments, and work groups.
type UseCase interface {
	// Class CRUD
	CreateClass(ctx context.Context, input CreateClassInput) (ClassOutput, error)
	ListClasses(ctx context.Context, input ListClassesInput) (ListClassesOutput, error)
	DetailClass(ctx context.Context, id string) (DetailClassOutput, error)
	UpdateClass(ctx context.Context, input UpdateClassInput) (ClassOutput, error)
	DeleteClass(ctx context.Context, id string) error

	// Schedule CRUD, always scoped to a class
	CreateSchedule(ctx context.Context, input CreateScheduleInput) (ScheduleOutput, error)
	ListSchedules(ctx context.Context, input ListSchedulesInput) (ListSchedulesOutput, error)
	UpdateSchedule(ctx context.Context, input UpdateScheduleInput) (ScheduleOutput, error)
	DeleteSchedule(ctx context.Context, id string) error

	// Assignment CRUD
	CreateAssignment(ctx context.Context, input CreateAssignmentInput) (AssignmentOutput, error)
	ListAssignments(ctx context.Context, input ListAssignmentsInput) (ListAssignmentsOutput, error)
	UpdateAssignment(ctx context.Context, input UpdateAssignmentInput) (AssignmentOutput, error)
	DeleteAssignment(ctx context.Context, id string) error

	// Group and member management
	CreateGroup(ctx context.Context, input CreateGroupInput) (GroupOutput, error)
	ListGroups(ctx context.Context, input ListGroupsInput) (ListGroupsOutput, error)
	UpdateGroup(ctx context.Context, input UpdateGroupInput) (GroupOutput, error)
	DeleteGroup(ctx context.Context, id string) error
	AddGroupMember(ctx context.Context, input AddGroupMemberInput) (GroupMemberOutput, error)
	UpdateGroupMember(ctx context.Context, input UpdateGroupMemberInput) (GroupMemberOutput, error)
	DeleteGroupMember(ctx context.Context, id string) error

	// Dashboard returns entity counts for the admin landing page.
	Dashboard(ctx context.Context) (DashboardOutput, error)
}
