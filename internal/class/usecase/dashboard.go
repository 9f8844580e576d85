package usecase

import (
	"context"

	"unibot/internal/class"
)

// Dashboard returns entity counts for the admin landing page.
func (uc *implUseCase) Dashboard(ctx context.Context) (class.DashboardOutput, error) {
	counts, err := uc.repo.CountEntities(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "class.usecase.Dashboard: %v", err)
		return class.DashboardOutput{}, err
	}
	return class.DashboardOutput{
		Classes:     counts.Classes,
		Schedules:   counts.Schedules,
		Assignments: counts.Assignments,
		Groups:      counts.Groups,
		Members:     counts.Members,
	}, nil
}
