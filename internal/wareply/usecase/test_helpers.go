package usecase

import (
	"context"

	"unibot/internal/class/repository"
	"unibot/internal/model"
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

// mockRepository returns canned data and records the options each list
// query received. Unused CRUD methods return zero values.
type mockRepository struct {
	class       model.Class
	claimed     model.Class
	schedules   []model.Schedule
	assignments []model.Assignment
	groups      []model.Group
	err         error

	gotGetOneClass     repository.GetOneClassOptions
	gotClaimGroupJID   string
	gotListSchedules   repository.ListSchedulesOptions
	gotListAssignments repository.ListAssignmentsOptions
	gotListGroups      repository.ListGroupsOptions
}

func (m *mockRepository) CreateClass(ctx context.Context, opt repository.CreateClassOptions) (model.Class, error) {
	return model.Class{}, nil
}

func (m *mockRepository) GetOneClass(ctx context.Context, opt repository.GetOneClassOptions) (model.Class, error) {
	m.gotGetOneClass = opt
	return m.class, m.err
}

func (m *mockRepository) ListClasses(ctx context.Context, opt repository.ListClassesOptions) ([]model.Class, int, error) {
	return nil, 0, nil
}

func (m *mockRepository) UpdateClass(ctx context.Context, opt repository.UpdateClassOptions) (model.Class, error) {
	return model.Class{}, nil
}

func (m *mockRepository) DeleteClass(ctx context.Context, id string) error { return nil }

func (m *mockRepository) ClaimUnlinkedClass(ctx context.Context, groupJID string) (model.Class, error) {
	m.gotClaimGroupJID = groupJID
	return m.claimed, m.err
}

func (m *mockRepository) CountEntities(ctx context.Context) (repository.EntityCounts, error) {
	return repository.EntityCounts{}, nil
}

func (m *mockRepository) CreateSchedule(ctx context.Context, opt repository.CreateScheduleOptions) (model.Schedule, error) {
	return model.Schedule{}, nil
}

func (m *mockRepository) GetOneSchedule(ctx context.Context, id string) (model.Schedule, error) {
	return model.Schedule{}, nil
}

func (m *mockRepository) ListSchedules(ctx context.Context, opt repository.ListSchedulesOptions) ([]model.Schedule, error) {
	m.gotListSchedules = opt
	return m.schedules, m.err
}

func (m *mockRepository) UpdateSchedule(ctx context.Context, opt repository.UpdateScheduleOptions) (model.Schedule, error) {
	return model.Schedule{}, nil
}

func (m *mockRepository) DeleteSchedule(ctx context.Context, id string) error { return nil }

func (m *mockRepository) CreateAssignment(ctx context.Context, opt repository.CreateAssignmentOptions) (model.Assignment, error) {
	return model.Assignment{}, nil
}

func (m *mockRepository) GetOneAssignment(ctx context.Context, id string) (model.Assignment, error) {
	return model.Assignment{}, nil
}

func (m *mockRepository) ListAssignments(ctx context.Context, opt repository.ListAssignmentsOptions) ([]model.Assignment, error) {
	m.gotListAssignments = opt
	return m.assignments, m.err
}

func (m *mockRepository) UpdateAssignment(ctx context.Context, opt repository.UpdateAssignmentOptions) (model.Assignment, error) {
	return model.Assignment{}, nil
}

func (m *mockRepository) DeleteAssignment(ctx context.Context, id string) error { return nil }

func (m *mockRepository) CreateGroup(ctx context.Context, opt repository.CreateGroupOptions) (model.Group, error) {
	return model.Group{}, nil
}

func (m *mockRepository) GetOneGroup(ctx context.Context, id string) (model.Group, error) {
	return model.Group{}, nil
}

func (m *mockRepository) ListGroups(ctx context.Context, opt repository.ListGroupsOptions) ([]model.Group, error) {
	m.gotListGroups = opt
	return m.groups, m.err
}

func (m *mockRepository) UpdateGroup(ctx context.Context, opt repository.UpdateGroupOptions) (model.Group, error) {
	return model.Group{}, nil
}

func (m *mockRepository) DeleteGroup(ctx context.Context, id string) error { return nil }

func (m *mockRepository) AddGroupMember(ctx context.Context, opt repository.AddGroupMemberOptions) (model.GroupMember, error) {
	return model.GroupMember{}, nil
}

func (m *mockRepository) GetOneGroupMember(ctx context.Context, id string) (model.GroupMember, error) {
	return model.GroupMember{}, nil
}

func (m *mockRepository) UpdateGroupMember(ctx context.Context, opt repository.UpdateGroupMemberOptions) (model.GroupMember, error) {
	return model.GroupMember{}, nil
}

func (m *mockRepository) DeleteGroupMember(ctx context.Context, id string) error { return nil }
