package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solace/internal/models/request_models"
	"solace/internal/services"
	"solace/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{subscriptionService: subscriptionService}
}

// GetSubscription godoc
// @Summary Get the user's subscription
// @Tags Subscription
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscription [get]
func (s *SubscriptionController) GetSubscription(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sub, err := s.subscriptionService.GetSubscription(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if sub == nil {
		utils.RespondSuccess(c, gin.H{"status": "none"}, "No subscription on record")
		return
	}

	utils.RespondSuccess(c, gin.H{
		"status":   string(sub.Status),
		"provider": sub.Provider,
		"ends_at":  sub.EndsAt,
		"premium":  sub.Status.Premium(),
	}, "Subscription fetched successfully")
}

// UpdateSubscriptionStatus godoc
// @Summary Update subscription status
// @Description Billing-webhook-shaped status update; flips the premium flag and recomputes badge progress
// @Tags Subscription
// @Accept json
// @Produce json
// @Param request body request_models.UpdateSubscriptionStatusRequest true "New status"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscription/status [post]
func (s *SubscriptionController) UpdateSubscriptionStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.UpdateSubscriptionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Status is required")
		return
	}

	err := s.subscriptionService.UpdateStatus(c.Request.Context(), userID, req.Status, req.Provider, req.ProviderSubID, req.EndsAt)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Subscription status updated successfully")
}
