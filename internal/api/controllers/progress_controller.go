package controllers

import (
	"github.com/gin-gonic/gin"

	"solace/internal/models/response_models"
	"solace/internal/services"
	"solace/pkg/utils"
)

type ProgressController struct {
	progressService services.ProgressServiceInterface
}

func NewProgressController(progressService services.ProgressServiceInterface) *ProgressController {
	return &ProgressController{progressService: progressService}
}

// GetProgress godoc
// @Summary Get the user's progress profile
// @Description Current streak, best streak, last entry date and badge totals
// @Tags Progress
// @Produce json
// @Success 200 {object} response_models.ProfileResponse
// @Security BearerAuth
// @Router /progress [get]
func (p *ProgressController) GetProgress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := p.progressService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp := response_models.ProfileResponse{
		UserID:              profile.UserID.String(),
		CurrentStreak:       profile.CurrentStreak,
		BestStreak:          profile.BestStreak,
		TotalBadgesEarned:   profile.TotalBadgesEarned,
		SubscriptionPremium: profile.SubscriptionPremium,
	}
	if profile.LastEntryDate != nil {
		resp.LastEntryDate = utils.FormatDate(*profile.LastEntryDate)
	}

	utils.RespondSuccess(c, resp, "Progress fetched successfully")
}

// RefreshProgress godoc
// @Summary Recompute the user's progress
// @Description Idempotent manual refresh: re-derives streaks and badge progress from the full entry history
// @Tags Progress
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /progress/refresh [post]
func (p *ProgressController) RefreshProgress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := p.progressService.Refresh(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Progress refreshed successfully")
}
