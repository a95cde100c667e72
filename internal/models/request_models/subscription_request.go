package request_models

// UpdateSubscriptionStatusRequest is the billing-webhook-shaped payload the
// payment provider (or an operator tool) posts when a subscription changes.
type UpdateSubscriptionStatusRequest struct {
	Status        string `json:"status" binding:"required"`
	Provider      string `json:"provider"`
	ProviderSubID string `json:"provider_sub_id"`
	EndsAt        int64  `json:"ends_at"`
}
