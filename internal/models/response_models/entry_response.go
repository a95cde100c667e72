package response_models

type EntryResponse struct {
	ID        string   `json:"id"`
	Content   string   `json:"content"`
	Mood      string   `json:"mood"`
	Tags      []string `json:"tags,omitempty"`
	CreatedAt int64    `json:"created_at"`
}

type SimilarEntryResponse struct {
	EntryResponse
	Distance float64 `json:"distance"`
}
