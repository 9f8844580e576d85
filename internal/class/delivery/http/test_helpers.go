package http

import (
	"context"

	"unibot/internal/class"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

// mockUseCase records the last input per operation and returns canned
// outputs. Only the methods a test exercises need non-zero fields.
type mockUseCase struct {
	classOut      class.ClassOutput
	listOut       class.ListClassesOutput
	detailOut     class.DetailClassOutput
	scheduleOut   class.ScheduleOutput
	schedulesOut  class.ListSchedulesOutput
	assignmentOut class.AssignmentOutput
	assignsOut    class.ListAssignmentsOutput
	groupOut      class.GroupOutput
	groupsOut     class.ListGroupsOutput
	memberOut     class.GroupMemberOutput
	dashboardOut  class.DashboardOutput
	err           error

	gotCreateClass    class.CreateClassInput
	gotUpdateClass    class.UpdateClassInput
	gotCreateSchedule class.CreateScheduleInput
	gotCreateAssign   class.CreateAssignmentInput
	gotCreateGroup    class.CreateGroupInput
	gotAddMember      class.AddGroupMemberInput
	gotListGroups     class.ListGroupsInput
	gotDeletedID      string
}

func (m *mockUseCase) CreateClass(ctx context.Context, input class.CreateClassInput) (class.ClassOutput, error) {
	m.gotCreateClass = input
	return m.classOut, m.err
}

func (m *mockUseCase) ListClasses(ctx context.Context, input class.ListClassesInput) (class.ListClassesOutput, error) {
	return m.listOut, m.err
}

func (m *mockUseCase) DetailClass(ctx context.Context, id string) (class.DetailClassOutput, error) {
	return m.detailOut, m.err
}

func (m *mockUseCase) UpdateClass(ctx context.Context, input class.UpdateClassInput) (class.ClassOutput, error) {
	m.gotUpdateClass = input
	return m.classOut, m.err
}

func (m *mockUseCase) DeleteClass(ctx context.Context, id string) error {
	m.gotDeletedID = id
	return m.err
}

func (m *mockUseCase) CreateSchedule(ctx context.Context, input class.CreateScheduleInput) (class.ScheduleOutput, error) {
	m.gotCreateSchedule = input
	return m.scheduleOut, m.err
}

func (m *mockUseCase) ListSchedules(ctx context.Context, input class.ListSchedulesInput) (class.ListSchedulesOutput, error) {
	return m.schedulesOut, m.err
}

func (m *mockUseCase) UpdateSchedule(ctx context.Context, input class.UpdateScheduleInput) (class.ScheduleOutput, error) {
	return m.scheduleOut, m.err
}

func (m *mockUseCase) DeleteSchedule(ctx context.Context, id string) error {
	m.gotDeletedID = id
	return m.err
}

func (m *mockUseCase) CreateAssignment(ctx context.Context, input class.CreateAssignmentInput) (class.AssignmentOutput, error) {
	m.gotCreateAssign = input
	return m.assignmentOut, m.err
}

func (m *mockUseCase) ListAssignments(ctx context.Context, input class.ListAssignmentsInput) (class.ListAssignmentsOutput, error) {
	return m.assignsOut, m.err
}

func (m *mockUseCase) UpdateAssignment(ctx context.Context, input class.UpdateAssignmentInput) (class.AssignmentOutput, error) {
	return m.assignmentOut, m.err
}

func (m *mockUseCase) DeleteAssignment(ctx context.Context, id string) error {
	m.gotDeletedID = id
	return m.err
}

func (m *mockUseCase) CreateGroup(ctx context.Context, input class.CreateGroupInput) (class.GroupOutput, error) {
	m.gotCreateGroup = input
	return m.groupOut, m.err
}

func (m *mockUseCase) ListGroups(ctx context.Context, input class.ListGroupsInput) (class.ListGroupsOutput, error) {
	m.gotListGroups = input
	return m.groupsOut, m.err
}

func (m *mockUseCase) UpdateGroup(ctx context.Context, input class.UpdateGroupInput) (class.GroupOutput, error) {
	return m.groupOut, m.err
}

func (m *mockUseCase) DeleteGroup(ctx context.Context, id string) error {
	m.gotDeletedID = id
	return m.err
}

func (m *mockUseCase) AddGroupMember(ctx context.Context, input class.AddGroupMemberInput) (class.GroupMemberOutput, error) {
	m.gotAddMember = input
	return m.memberOut, m.err
}

func (m *mockUseCase) UpdateGroupMember(ctx context.Context, input class.UpdateGroupMemberInput) (class.GroupMemberOutput, error) {
	return m.memberOut, m.err
}

func (m *mockUseCase) DeleteGroupMember(ctx context.Context, id string) error {
	m.gotDeletedID = id
	return m.err
}

func (m *mockUseCase) Dashboard(ctx context.Context) (class.DashboardOutput, error) {
	return m.dashboardOut, m.err
}
