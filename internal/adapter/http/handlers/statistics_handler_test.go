package handlers

import (
	"bytes"
	"net/http"
	"testing"

	"plan_appetit/internal/adapter/http/handlers/mocks"
	"plan_appetit/internal/domain/entities"
	"plan_appetit/internal/domain/statistics"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestStatisticsHandler_GetConfigurationStatistics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIStatisticsUseCase(ctrl)
	h := NewStatisticsHandler(uc)

	r := gin.New()
	r.GET("/v1/configurations/:uuid/statistics", h.GetConfigurationStatistics)

	report := statistics.BuildReport(entities.NewEmptyConfiguration("a"))
	uc.EXPECT().ReportByUUID(gomock.Any(), "a").Return(report, nil)

	w := serve(r, http.MethodGet, "/v1/configurations/a/statistics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"NaN"`)) {
		t.Fatalf("expected NaN averages for an empty week: %s", w.Body.String())
	}
}

func TestStatisticsHandler_ComputeStatistics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatisticsUseCase(ctrl)
		h := NewStatisticsHandler(uc)

		r := gin.New()
		r.POST("/v1/statistics", h.ComputeStatistics)

		draft := entities.NewEmptyConfiguration("")
		draft.Week.Days[0].Midday = entities.Meal{Covers: 2, MainCoursePrice: 10, DrinkPrice: 2}
		uc.EXPECT().Compute(gomock.Any()).DoAndReturn(statistics.BuildReport)

		w := serve(r, http.MethodPost, "/v1/statistics", configurationBody(t, draft))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"totalSales":"24.00"`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatisticsUseCase(ctrl)
		h := NewStatisticsHandler(uc)

		r := gin.New()
		r.POST("/v1/statistics", h.ComputeStatistics)

		w := serve(r, http.MethodPost, "/v1/statistics", bytes.NewBufferString("{"))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
