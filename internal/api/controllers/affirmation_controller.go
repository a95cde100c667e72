package controllers

import (
	"github.com/gin-gonic/gin"

	"solace/internal/services"
	"solace/pkg/utils"
)

type AffirmationController struct {
	affirmationService services.AffirmationServiceInterface
}

func NewAffirmationController(affirmationService services.AffirmationServiceInterface) *AffirmationController {
	return &AffirmationController{affirmationService: affirmationService}
}

// GetDailyAffirmation godoc
// @Summary Get today's affirmation
// @Description Generates (or returns the cached) mood-aware affirmation for today
// @Tags Affirmations
// @Produce json
// @Success 200 {object} response_models.AffirmationResponse
// @Security BearerAuth
// @Router /affirmations/daily [get]
func (a *AffirmationController) GetDailyAffirmation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	affirmation, err := a.affirmationService.DailyAffirmation(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, affirmation, "Affirmation fetched successfully")
}
