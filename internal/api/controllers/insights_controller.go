package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"solace/internal/models/response_models"
	"solace/internal/services"
	"solace/pkg/utils"
)

type InsightsController struct {
	insightsService services.InsightsServiceInterface
}

func NewInsightsController(insightsService services.InsightsServiceInterface) *InsightsController {
	return &InsightsController{insightsService: insightsService}
}

// GetInsights godoc
// @Summary Get journaling insights
// @Description Mood distribution and daily entry counts over a date range (defaults to the last 30 days)
// @Tags Insights
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} response_models.InsightsReport
// @Security BearerAuth
// @Router /insights [get]
func (i *InsightsController) GetInsights(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var rng response_models.TimeRange
	if s := c.Query("start"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, utils.RefLocation())
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid start date (use YYYY-MM-DD)")
			return
		}
		rng.Start = t
	}
	if s := c.Query("end"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, utils.RefLocation())
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid end date (use YYYY-MM-DD)")
			return
		}
		rng.End = t.AddDate(0, 0, 1) // end date is inclusive
	}

	report, err := i.insightsService.BuildInsights(c.Request.Context(), userID, rng)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Insights fetched successfully")
}
