package usecase

import (
	"context"

	"unibot/internal/class"
	"unibot/internal/class/repository"
)

// resolveScheduleRef checks that an optional schedule reference exists.
func (uc *implUseCase) resolveScheduleRef(ctx context.Context, scheduleID string) error {
	if scheduleID == "" {
		return nil
	}
	sch, err := uc.repo.GetOneSchedule(ctx, scheduleID)
	if err != nil {
		return err
	}
	if sch.ID == "" {
		return class.ErrScheduleNotFound
	}
	return nil
}

func (uc *implUseCase) CreateAssignment(ctx context.Context, input class.CreateAssignmentInput) (class.AssignmentOutput, error) {
	parent, err := uc.repo.GetOneClass(ctx, repository.GetOneClassOptions{ID: input.ClassID})
	if err != nil {
		return class.AssignmentOutput{}, err
	}
	if parent.ID == "" {
		return class.AssignmentOutput{}, class.ErrClassNotFound
	}
	if err := uc.resolveScheduleRef(ctx, input.ScheduleID); err != nil {
		return class.AssignmentOutput{}, err
	}

	created, err := uc.repo.CreateAssignment(ctx, repository.CreateAssignmentOptions{
		ClassID:     input.ClassID,
		ScheduleID:  input.ScheduleID,
		Title:       input.Title,
		Description: input.Description,
		DueAt:       input.DueAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "class.usecase.CreateAssignment: %v", err)
		return class.AssignmentOutput{}, err
	}
	return class.AssignmentOutput{Assignment: created}, nil
}

func (uc *implUseCase) ListAssignments(ctx context.Context, input class.ListAssignmentsInput) (class.ListAssignmentsOutput, error) {
	assignments, err := uc.repo.ListAssignments(ctx, repository.ListAssignmentsOptions{
		ClassID: input.ClassID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "class.usecase.ListAssignments: %v", err)
		return class.ListAssignmentsOutput{}, err
	}
	return class.ListAssignmentsOutput{Assignments: assignments}, nil
}

func (uc *implUseCase) UpdateAssignment(ctx context.Context, input class.UpdateAssignmentInput) (class.AssignmentOutput, error) {
	if err := uc.resolveScheduleRef(ctx, input.ScheduleID); err != nil {
		return class.AssignmentOutput{}, err
	}

	updated, err := uc.repo.UpdateAssignment(ctx, repository.UpdateAssignmentOptions{
		ID:          input.ID,
		ScheduleID:  input.ScheduleID,
		Title:       input.Title,
		Description: input.Description,
		DueAt:       input.DueAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "class.usecase.UpdateAssignment: %v", err)
		return class.AssignmentOutput{}, err
	}
	if updated.ID == "" {
		return class.AssignmentOutput{}, class.ErrAssignmentNotFound
	}
	return class.AssignmentOutput{Assignment: updated}, nil
}

func (uc *implUseCase) DeleteAssignment(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneAssignment(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return class.ErrAssignmentNotFound
	}
	return uc.repo.DeleteAssignment(ctx, id)
}
