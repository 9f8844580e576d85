package usecase

import (
	"context"

	"unibot/internal/class"
	"unibot/internal/class/repository"
	"unibot/pkg/wajid"
)

func (uc *implUseCase) CreateGroup(ctx context.Context, input class.CreateGroupInput) (class.GroupOutput, error) {
	sch, err := uc.repo.GetOneSchedule(ctx, input.ScheduleID)
	if err != nil {
		return class.GroupOutput{}, err
	}
	if sch.ID == "" {
		return class.GroupOutput{}, class.ErrScheduleNotFound
	}

	created, err := uc.repo.CreateGroup(ctx, repository.CreateGroupOptions{
		ScheduleID: input.ScheduleID,
		Name:       input.Name,
		Hints:      input.Hints,
	})
	if err != nil {
		uc.l.Errorf(ctx, "class.usecase.CreateGroup: %v", err)
		return class.GroupOutput{}, err
	}
	return class.GroupOutput{Group: created}, nil
}

func (uc *implUseCase) ListGroups(ctx context.Context, input class.ListGroupsInput) (class.ListGroupsOutput, error) {
	groups, err := uc.repo.ListGroups(ctx, repository.ListGroupsOptions{
		ClassID:     input.ClassID,
		WithMembers: input.WithMembers,
	})
	if err != nil {
		uc.l.Errorf(ctx, "class.usecase.ListGroups: %v", err)
		return class.ListGroupsOutput{}, err
	}
	return class.ListGroupsOutput{Groups: groups}, nil
}

func (uc *implUseCase) UpdateGroup(ctx context.Context, input class.UpdateGroupInput) (class.GroupOutput, error) {
	sch, err := uc.repo.GetOneSchedule(ctx, input.ScheduleID)
	if err != nil {
		return class.GroupOutput{}, err
	}
	if sch.ID == "" {
		return class.GroupOutput{}, class.ErrScheduleNotFound
	}

	updated, err := uc.repo.UpdateGroup(ctx, repository.UpdateGroupOptions{
		ID:         input.ID,
		ScheduleID: input.ScheduleID,
		Name:       input.Name,
		Hints:      input.Hints,
	})
	if err != nil {
		uc.l.Errorf(ctx, "class.usecase.UpdateGroup: %v", err)
		return class.GroupOutput{}, err
	}
	if updated.ID == "" {
		return class.GroupOutput{}, class.ErrGroupNotFound
	}
	return class.GroupOutput{Group: updated}, nil
}

func (uc *implUseCase) DeleteGroup(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneGroup(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return class.ErrGroupNotFound
	}
	return uc.repo.DeleteGroup(ctx, id)
}

// AddGroupMember stores the member with the phone normalized so chat
// mentions resolve to real WhatsApp JIDs.
func (uc *implUseCase) AddGroupMember(ctx context.Context, input class.AddGroupMemberInput) (class.GroupMemberOutput, error) {
	grp, err := uc.repo.GetOneGroup(ctx, input.GroupID)
	if err != nil {
		return class.GroupMemberOutput{}, err
	}
	if grp.ID == "" {
		return class.GroupMemberOutput{}, class.ErrGroupNotFound
	}

	member, err := uc.repo.AddGroupMember(ctx, repository.AddGroupMemberOptions{
		GroupID: input.GroupID,
		Name:    input.Name,
		Phone:   wajid.NormalizePhone(input.Phone),
	})
	if err != nil {
		uc.l.Errorf(ctx, "class.usecase.AddGroupMember: %v", err)
		return class.GroupMemberOutput{}, err
	}
	return class.GroupMemberOutput{Member: member}, nil
}

func (uc *implUseCase) UpdateGroupMember(ctx context.Context, input class.UpdateGroupMemberInput) (class.GroupMemberOutput, error) {
	updated, err := uc.repo.UpdateGroupMember(ctx, repository.UpdateGroupMemberOptions{
		ID:    input.ID,
		Name:  input.Name,
		Phone: wajid.NormalizePhone(input.Phone),
	})
	if err != nil {
		uc.l.Errorf(ctx, "class.usecase.UpdateGroupMember: %v", err)
		return class.GroupMemberOutput{}, err
	}
	if updated.ID == "" {
		return class.GroupMemberOutput{}, class.ErrMemberNotFound
	}
	return class.GroupMemberOutput{Member: updated}, nil
}

func (uc *implUseCase) DeleteGroupMember(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneGroupMember(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return class.ErrMemberNotFound
	}
	return uc.repo.DeleteGroupMember(ctx, id)
}
