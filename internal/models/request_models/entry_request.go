package request_models

type CreateEntryRequest struct {
	Content string   `json:"content" binding:"required"`
	Mood    string   `json:"mood" binding:"required"`
	Tags    []string `json:"tags"`
}
