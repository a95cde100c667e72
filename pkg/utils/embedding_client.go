package utils

import (
	"context"
	"fmt"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

type OpenAIEmbeddingClient struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

func NewOpenAIEmbeddingClient(apiKey string) EmbeddingClientInterface {
	return &OpenAIEmbeddingClient{
		client: openai.NewClient(apiKey),
		model:  openai.SmallEmbedding3, // 1536 dimensions, matches the vector column
	}
}

func (c *OpenAIEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: c.model,
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("openai embedding: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("openai embedding: empty response")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}
