package usecase

import (
	"context"

	"unibot/internal/class"
	"unibot/internal/class/repository"
)

func (uc *implUseCase) CreateClass(ctx context.Context, input class.CreateClassInput) (class.ClassOutput, error) {
	created, err := uc.repo.CreateClass(ctx, repository.CreateClassOptions{Name: input.Name})
	if err != nil {
		uc.l.Errorf(ctx, "class.usecase.CreateClass: %v", err)
		return class.ClassOutput{}, err
	}
	return class.ClassOutput{Class: created}, nil
}

func (uc *implUseCase) ListClasses(ctx context.Context, input class.ListClassesInput) (class.ListClassesOutput, error) {
	classes, total, err := uc.repo.ListClasses(ctx, repository.ListClassesOptions{
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "class.usecase.ListClasses: %v", err)
		return class.ListClassesOutput{}, err
	}
	return class.ListClassesOutput{
		Classes: classes,
		Total:   total,
		Limit:   input.Limit,
		Offset:  input.Offset,
	}, nil
}

// DetailClass loads the class and all of its children in one shot for
// the dashboard detail page.
func (uc *implUseCase) DetailClass(ctx context.Context, id string) (class.DetailClassOutput, error) {
	cls, err := uc.repo.GetOneClass(ctx, repository.GetOneClassOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "class.usecase.DetailClass: %v", err)
		return class.DetailClassOutput{}, err
	}
	if cls.ID == "" {
		return class.DetailClassOutput{}, class.ErrClassNotFound
	}

	schedules, err := uc.repo.ListSchedules(ctx, repository.ListSchedulesOptions{ClassID: id})
	if err != nil {
		return class.DetailClassOutput{}, err
	}
	assignments, err := uc.repo.ListAssignments(ctx, repository.ListAssignmentsOptions{ClassID: id})
	if err != nil {
		return class.DetailClassOutput{}, err
	}
	groups, err := uc.repo.ListGroups(ctx, repository.ListGroupsOptions{ClassID: id, WithMembers: true})
	if err != nil {
		return class.DetailClassOutput{}, err
	}

	return class.DetailClassOutput{
		Class:       cls,
		Schedules:   schedules,
		Assignments: assignments,
		Groups:      groups,
	}, nil
}

func (uc *implUseCase) UpdateClass(ctx context.Context, input class.UpdateClassInput) (class.ClassOutput, error) {
	updated, err := uc.repo.UpdateClass(ctx, repository.UpdateClassOptions{
		ID:       input.ID,
		Name:     input.Name,
		GroupJID: input.GroupJID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "class.usecase.UpdateClass: %v", err)
		return class.ClassOutput{}, err
	}
	if updated.ID == "" {
		return class.ClassOutput{}, class.ErrClassNotFound
	}
	return class.ClassOutput{Class: updated}, nil
}

func (uc *implUseCase) DeleteClass(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneClass(ctx, repository.GetOneClassOptions{ID: id})
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return class.ErrClassNotFound
	}
	return uc.repo.DeleteClass(ctx, id)
}
