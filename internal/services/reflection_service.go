package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	dbm "solace/internal/models/db_models"
	"solace/internal/models/response_models"
	"solace/internal/repositories"
	"solace/pkg/utils"
)

// ReflectionServiceInterface indexes entries into the embedding store and
// serves the "entries like this one" lookup.
type ReflectionServiceInterface interface {
	IndexEntry(ctx context.Context, entry *dbm.JournalEntry) error
	FindSimilar(ctx context.Context, userID uuid.UUID, entryID string, limit int) ([]response_models.SimilarEntryResponse, error)
}

type reflectionService struct {
	entryRepo     repositories.EntryRepository
	embeddingRepo repositories.EntryEmbeddingRepository
	embedder      utils.EmbeddingClientInterface
}

func NewReflectionService(
	entryRepo repositories.EntryRepository,
	embeddingRepo repositories.EntryEmbeddingRepository,
	embedder utils.EmbeddingClientInterface,
) ReflectionServiceInterface {
	return &reflectionService{
		entryRepo:     entryRepo,
		embeddingRepo: embeddingRepo,
		embedder:      embedder,
	}
}

func (s *reflectionService) IndexEntry(ctx context.Context, entry *dbm.JournalEntry) error {
	// Mood and tags ride along in the embedded text so similar moods cluster.
	text := strings.TrimSpace(entry.Content + "\nmood: " + string(entry.Mood))
	if len(entry.Tags) > 0 {
		text += "\ntags: " + strings.Join(entry.Tags, ", ")
	}

	vec, err := s.embedder.GetEmbedding(ctx, text)
	if err != nil {
		return err
	}

	return s.embeddingRepo.Upsert(ctx, &dbm.EntryEmbedding{
		EntryID:   entry.ID.String(),
		UserID:    entry.UserID.String(),
		Mood:      string(entry.Mood),
		Tags:      entry.Tags,
		Embedding: vec,
	})
}

func (s *reflectionService) FindSimilar(ctx context.Context, userID uuid.UUID, entryID string, limit int) ([]response_models.SimilarEntryResponse, error) {
	if limit < 1 || limit > 20 {
		limit = 5
	}

	entry, err := s.entryRepo.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, utils.ErrEntryNotFound
	}

	rows, err := s.embeddingRepo.SimilarToEntry(ctx, userID, entryID, limit)
	if err != nil {
		return nil, err
	}

	out := make([]response_models.SimilarEntryResponse, 0, len(rows))
	for _, row := range rows {
		similar, err := s.entryRepo.GetByID(ctx, userID, row.EntryID)
		if err != nil {
			return nil, err
		}
		if similar == nil {
			continue // entry soft-deleted since it was indexed
		}
		out = append(out, response_models.SimilarEntryResponse{
			EntryResponse: *toEntryResponse(similar),
			Distance:      row.Distance,
		})
	}
	return out, nil
}
