package handlers

import (
	"net/http"
	request "plan_appetit/internal/adapter/http/dto/request"
	"plan_appetit/internal/usecase"

	"github.com/gin-gonic/gin"
)

// StatisticsHandler serves display-ready statistics. Averages over zero
// covers are rendered as "NaN".
type StatisticsHandler struct {
	usecase usecase.IStatisticsUseCase
}

func NewStatisticsHandler(uc usecase.IStatisticsUseCase) *StatisticsHandler {
	return &StatisticsHandler{usecase: uc}
}

// GetConfigurationStatistics godoc
// @Summary      Statistics of a stored configuration
// @Tags         statistics
// @Produce      json
// @Param        uuid  path      string  true  "Configuration uuid"
// @Success      200   {object}  statistics.Report
// @Failure      500   {object}  pkg.HTTPError
// @Router       /configurations/{uuid}/statistics [get]
func (h *StatisticsHandler) GetConfigurationStatistics(c *gin.Context) {
	report, err := h.usecase.ReportByUUID(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		appErr := mapConfigurationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, report)
}

// ComputeStatistics godoc
// @Summary      Statistics of an unsaved configuration
// @Tags         statistics
// @Accept       json
// @Produce      json
// @Param        body  body      request.ConfigurationRequest  true  "Configuration"
// @Success      200   {object}  statistics.Report
// @Failure      400   {object}  pkg.HTTPError
// @Router       /statistics [post]
func (h *StatisticsHandler) ComputeStatistics(c *gin.Context) {
	var payload request.ConfigurationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigurationPayload.HTTPStatus, errInvalidConfigurationPayload.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, h.usecase.Compute(payload.ToEntity("")))
}
