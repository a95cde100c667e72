package controllers

import (
	"github.com/gin-gonic/gin"

	"solace/internal/services"
	"solace/pkg/utils"
)

type BadgeController struct {
	badgeService services.BadgeServiceInterface
}

func NewBadgeController(badgeService services.BadgeServiceInterface) *BadgeController {
	return &BadgeController{badgeService: badgeService}
}

// ListBadges godoc
// @Summary List the badge catalog
// @Tags Badges
// @Produce json
// @Success 200 {array} response_models.BadgeDefinitionResponse
// @Security BearerAuth
// @Router /badges [get]
func (b *BadgeController) ListBadges(c *gin.Context) {
	badges, err := b.badgeService.ListCatalog(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, badges, "Badges fetched successfully")
}

// ListBadgeProgress godoc
// @Summary List the user's progress on every badge
// @Tags Badges
// @Produce json
// @Success 200 {array} response_models.BadgeProgressResponse
// @Security BearerAuth
// @Router /badges/progress [get]
func (b *BadgeController) ListBadgeProgress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	progress, err := b.badgeService.ListUserProgress(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, progress, "Badge progress fetched successfully")
}
