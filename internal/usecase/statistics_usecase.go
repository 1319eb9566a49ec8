package usecase

import (
	"context"
	"plan_appetit/internal/domain/entities"
	"plan_appetit/internal/domain/statistics"
)

// IStatisticsUseCase exposes display-ready statistics.
//
//   - ReportByUUID follows the store's lookup fallback (first configuration on a miss)
//   - Compute works on an unsaved configuration and touches no storage

type IStatisticsUseCase interface {
	ReportByUUID(ctx context.Context, id string) (statistics.Report, error)
	Compute(c entities.Configuration) statistics.Report
}

type StatisticsUseCase struct {
	store IConfigurationUseCase
}

var _ IStatisticsUseCase = (*StatisticsUseCase)(nil)

func NewStatisticsUseCase(store IConfigurationUseCase) *StatisticsUseCase {
	return &StatisticsUseCase{store: store}
}

func (u *StatisticsUseCase) ReportByUUID(ctx context.Context, id string) (statistics.Report, error) {
	c, err := u.store.GetByUUID(ctx, id)
	if err != nil {
		return statistics.Report{}, err
	}
	return statistics.BuildReport(c), nil
}

func (u *StatisticsUseCase) Compute(c entities.Configuration) statistics.Report {
	return statistics.BuildReport(c)
}
