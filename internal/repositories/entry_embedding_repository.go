package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbm "solace/internal/models/db_models"
)

type SimilarEntryRow struct {
	EntryID  string  `gorm:"column:entry_id"`
	Distance float64 `gorm:"column:distance"`
}

type EntryEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding *dbm.EntryEmbedding) error
	// SimilarToEntry returns the closest other entries of the same user by
	// cosine distance, nearest first.
	SimilarToEntry(ctx context.Context, userID uuid.UUID, entryID string, limit int) ([]SimilarEntryRow, error)
}

type entryEmbeddingRepository struct {
	db *gorm.DB
}

func NewEntryEmbeddingRepository(db *gorm.DB) EntryEmbeddingRepository {
	return &entryEmbeddingRepository{db: db}
}

func (r *entryEmbeddingRepository) Upsert(ctx context.Context, embedding *dbm.EntryEmbedding) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "entry_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"mood", "tags", "embedding"}),
		}).
		Create(embedding).Error
}

func (r *entryEmbeddingRepository) SimilarToEntry(ctx context.Context, userID uuid.UUID, entryID string, limit int) ([]SimilarEntryRow, error) {
	var rows []SimilarEntryRow

	query := `
        SELECT e.entry_id, (e.embedding <=> ref.embedding) AS distance
        FROM entry_embeddings e,
             (SELECT embedding FROM entry_embeddings WHERE entry_id = $1) ref
        WHERE e.user_id = $2 AND e.entry_id <> $1
        ORDER BY e.embedding <=> ref.embedding
        LIMIT $3
    `

	err := r.db.WithContext(ctx).Raw(query, entryID, userID.String(), limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
