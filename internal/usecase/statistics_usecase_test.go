package usecase

import (
	"context"
	"errors"
	"testing"

	"plan_appetit/internal/domain/entities"
	mock_interfaces "plan_appetit/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestStatisticsUseCase_ReportByUUID(t *testing.T) {
	ctx := context.Background()

	t.Run("report of stored configuration", func(t *testing.T) {
		s, _ := newTestStore(t)
		c := named("a", "Terrasse")
		c.Week.Days[0].Midday = entities.Meal{Covers: 2, MainCoursePrice: 10, DrinkPrice: 2}
		c.Stats.WorkedWeeks = 4
		if err := s.SaveAll(ctx, []entities.Configuration{c}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewStatisticsUseCase(s)
		r, err := uc.ReportByUUID(ctx, "a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.ConfigurationUUID != "a" || r.Week.TotalSales != "24.00" || r.Year.AnnualSales != "96.00" {
			t.Fatalf("unexpected report: %+v", r)
		}
		if r.Days[1].AverageBasket != "NaN" {
			t.Fatalf("day without covers must surface NaN, got %q", r.Days[1].AverageBasket)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		kv := mock_interfaces.NewMockIKeyValueStore(ctrl)
		kv.EXPECT().Get(gomock.Any(), ConfigurationsKey).Return("", false, errors.New("db"))

		uc := NewStatisticsUseCase(NewConfigurationStore(kv, nil))
		if _, err := uc.ReportByUUID(ctx, "a"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestStatisticsUseCase_Compute(t *testing.T) {
	uc := NewStatisticsUseCase(nil)
	c := entities.NewEmptyConfiguration("draft")
	c.Week.Days[2].Evening = entities.Meal{Covers: 10, StarterPrice: 5, MainCoursePrice: 15, DrinkPrice: 4}

	r := uc.Compute(c)
	if r.Week.Covers != 10 || r.Week.AverageBasket != "24.00" || r.Week.WorkedDays != 1 {
		t.Fatalf("unexpected week summary: %+v", r.Week)
	}
}
