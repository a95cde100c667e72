package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// EntryEmbedding backs the similar-entries lookup. Rows are written
// best-effort after entry creation; a missing row only means the entry is
// invisible to similarity search.
type EntryEmbedding struct {
	EntryID   string `gorm:"primaryKey;column:entry_id"`
	UserID    string `gorm:"index"`
	Mood      string
	Tags      pq.StringArray  `gorm:"type:text[]"`
	Embedding pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}
