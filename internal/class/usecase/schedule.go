package usecase

import (
	"context"

	"unibot/internal/class"
	"unibot/internal/class/repository"
)

func (uc *implUseCase) CreateSchedule(ctx context.Context, input class.CreateScheduleInput) (class.ScheduleOutput, error) {
	parent, err := uc.repo.GetOneClass(ctx, repository.GetOneClassOptions{ID: input.ClassID})
	if err != nil {
		return class.ScheduleOutput{}, err
	}
	if parent.ID == "" {
		return class.ScheduleOutput{}, class.ErrClassNotFound
	}

	created, err := uc.repo.CreateSchedule(ctx, repository.CreateScheduleOptions{
		ClassID:     input.ClassID,
		Title:       input.Title,
		Description: input.Description,
		Room:        input.Room,
		DayOfWeek:   input.DayOfWeek,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
	})
	if err != nil {
		uc.l.Errorf(ctx, "class.usecase.CreateSchedule: %v", err)
		return class.ScheduleOutput{}, err
	}
	return class.ScheduleOutput{Schedule: created}, nil
}

func (uc *implUseCase) ListSchedules(ctx context.Context, input class.ListSchedulesInput) (class.ListSchedulesOutput, error) {
	schedules, err := uc.repo.ListSchedules(ctx, repository.ListSchedulesOptions{
		ClassID:   input.ClassID,
		DayOfWeek: input.DayOfWeek,
	})
	if err != nil {
		uc.l.Errorf(ctx, "class.usecase.ListSchedules: %v", err)
		return class.ListSchedulesOutput{}, err
	}
	return class.ListSchedulesOutput{Schedules: schedules}, nil
}

func (uc *implUseCase) UpdateSchedule(ctx context.Context, input class.UpdateScheduleInput) (class.ScheduleOutput, error) {
	updated, err := uc.repo.UpdateSchedule(ctx, repository.UpdateScheduleOptions{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		Room:        input.Room,
		DayOfWeek:   input.DayOfWeek,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
	})
	if err != nil {
		uc.l.Errorf(ctx, "class.usecase.UpdateSchedule: %v", err)
		return class.ScheduleOutput{}, err
	}
	if updated.ID == "" {
		return class.ScheduleOutput{}, class.ErrScheduleNotFound
	}
	return class.ScheduleOutput{Schedule: updated}, nil
}

func (uc *implUseCase) DeleteSchedule(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneSchedule(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return class.ErrScheduleNotFound
	}
	return uc.repo.DeleteSchedule(ctx, id)
}
