package response_models

type ProfileResponse struct {
	UserID              string `json:"user_id"`
	CurrentStreak       int    `json:"current_streak"`
	BestStreak          int    `json:"best_streak"`
	LastEntryDate       string `json:"last_entry_date,omitempty"` // YYYY-MM-DD, empty when no entries
	TotalBadgesEarned   int    `json:"total_badges_earned"`
	SubscriptionPremium bool   `json:"subscription_premium"`
}

type BadgeDefinitionResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Icon           string `json:"icon,omitempty"`
	Category       string `json:"category"`
	ProgressTarget int    `json:"progress_target"`
}

type BadgeProgressResponse struct {
	BadgeDefinitionResponse
	ProgressCurrent    int     `json:"progress_current"`
	ProgressPercentage float64 `json:"progress_percentage"`
	Earned             bool    `json:"earned"`
	EarnedAt           *int64  `json:"earned_at,omitempty"`
}

type AffirmationResponse struct {
	Affirmation string `json:"affirmation"`
	Date        string `json:"date"`
	Cached      bool   `json:"cached"`
}
