package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	dbm "solace/internal/models/db_models"
	"solace/internal/models/response_models"
	"solace/internal/repositories"
	"solace/pkg/utils"
)

type EntryServiceInterface interface {
	CreateEntry(ctx context.Context, userID uuid.UUID, content string, mood string, tags []string) (*response_models.EntryResponse, error)
	GetEntry(ctx context.Context, userID uuid.UUID, entryID string) (*response_models.EntryResponse, error)
	ListEntries(ctx context.Context, userID uuid.UUID, page int, pageSize int) ([]response_models.EntryResponse, error)
	DeleteEntry(ctx context.Context, userID uuid.UUID, entryID string) error
}

type entryService struct {
	entryRepo  repositories.EntryRepository
	progress   ProgressServiceInterface
	reflection ReflectionServiceInterface
}

func NewEntryService(
	entryRepo repositories.EntryRepository,
	progress ProgressServiceInterface,
	reflection ReflectionServiceInterface,
) EntryServiceInterface {
	return &entryService{
		entryRepo:  entryRepo,
		progress:   progress,
		reflection: reflection,
	}
}

func toEntryResponse(e *dbm.JournalEntry) *response_models.EntryResponse {
	return &response_models.EntryResponse{
		ID:        e.ID.String(),
		Content:   e.Content,
		Mood:      string(e.Mood),
		Tags:      e.Tags,
		CreatedAt: e.CreatedAt,
	}
}

func (s *entryService) CreateEntry(ctx context.Context, userID uuid.UUID, content string, mood string, tags []string) (*response_models.EntryResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, utils.ErrEmptyContent
	}
	m := dbm.Mood(strings.ToLower(strings.TrimSpace(mood)))
	if !m.Valid() {
		return nil, utils.ErrInvalidMood
	}

	entry := &dbm.JournalEntry{
		UserID:  userID,
		Content: content,
		Mood:    m,
		Tags:    tags,
	}
	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	// The insert is only done once the recompute has run: streaks and badges
	// must already reflect this entry when the response is read.
	if err := s.progress.OnEntryCreated(ctx, userID); err != nil {
		return nil, err
	}

	// Embedding indexing is best-effort; a failure only dims similarity
	// search, never the entry itself.
	if err := s.reflection.IndexEntry(ctx, entry); err != nil {
		log.Printf("embedding index failed for entry %s: %v", entry.ID, err)
	}

	return toEntryResponse(entry), nil
}

func (s *entryService) GetEntry(ctx context.Context, userID uuid.UUID, entryID string) (*response_models.EntryResponse, error) {
	entry, err := s.entryRepo.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, utils.ErrEntryNotFound
	}
	return toEntryResponse(entry), nil
}

func (s *entryService) ListEntries(ctx context.Context, userID uuid.UUID, page int, pageSize int) ([]response_models.EntryResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	entries, err := s.entryRepo.ListByUserPaged(ctx, userID, page, pageSize)
	if err != nil {
		return nil, err
	}
	out := make([]response_models.EntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, *toEntryResponse(&entries[i]))
	}
	return out, nil
}

func (s *entryService) DeleteEntry(ctx context.Context, userID uuid.UUID, entryID string) error {
	entry, err := s.entryRepo.GetByID(ctx, userID, entryID)
	if err != nil {
		return err
	}
	if entry == nil {
		return utils.ErrEntryNotFound
	}
	if err := s.entryRepo.SoftDelete(ctx, userID, entryID); err != nil {
		return err
	}

	// No incremental undo of streak state: deletion always triggers the full
	// recompute from what remains of the history.
	return s.progress.OnEntryDeleted(ctx, userID)
}
