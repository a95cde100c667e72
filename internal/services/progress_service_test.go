package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	dbm "solace/internal/models/db_models"
	"solace/pkg/memcache"
)

// ---------- fakes ----------

type fakeEntryRepo struct {
	entries []dbm.JournalEntry
	deleted map[string]bool
	err     error
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{deleted: make(map[string]bool)}
}

func (f *fakeEntryRepo) Create(ctx context.Context, entry *dbm.JournalEntry) error {
	if f.err != nil {
		return f.err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt == 0 {
		entry.CreatedAt = time.Now().Unix()
	}
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeEntryRepo) GetByID(ctx context.Context, userID uuid.UUID, entryID string) (*dbm.JournalEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.entries {
		e := f.entries[i]
		if e.ID.String() == entryID && e.UserID == userID && !f.deleted[entryID] {
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeEntryRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]dbm.JournalEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []dbm.JournalEntry
	for _, e := range f.entries {
		if e.UserID == userID && !f.deleted[e.ID.String()] {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntryRepo) ListByUserPaged(ctx context.Context, userID uuid.UUID, page int, pageSize int) ([]dbm.JournalEntry, error) {
	return f.ListByUser(ctx, userID)
}

func (f *fakeEntryRepo) SoftDelete(ctx context.Context, userID uuid.UUID, entryID string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted[entryID] = true
	return nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]dbm.UserProgressProfile
	creates  int
	saves    int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]dbm.UserProgressProfile)}
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*dbm.UserProgressProfile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *dbm.UserProgressProfile) error {
	f.creates++
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	f.profiles[profile.UserID] = *profile
	return nil
}

func (f *fakeProfileRepo) Save(ctx context.Context, profile *dbm.UserProgressProfile) error {
	f.saves++
	f.profiles[profile.UserID] = *profile
	return nil
}

type fakeBadgeRepo struct {
	defs       []dbm.BadgeDefinition
	rows       map[string]dbm.BadgeProgress // keyed by badge id; tests use one user
	failUpsert map[string]bool
}

func newFakeBadgeRepo(defs []dbm.BadgeDefinition) *fakeBadgeRepo {
	return &fakeBadgeRepo{
		defs:       defs,
		rows:       make(map[string]dbm.BadgeProgress),
		failUpsert: make(map[string]bool),
	}
}

func (f *fakeBadgeRepo) ListDefinitions(ctx context.Context) ([]dbm.BadgeDefinition, error) {
	return f.defs, nil
}

func (f *fakeBadgeRepo) SeedDefinitions(ctx context.Context, defs []dbm.BadgeDefinition) error {
	f.defs = defs
	return nil
}

func (f *fakeBadgeRepo) ListProgressByUser(ctx context.Context, userID uuid.UUID) ([]dbm.BadgeProgress, error) {
	out := make([]dbm.BadgeProgress, 0, len(f.rows))
	for _, row := range f.rows {
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeBadgeRepo) UpsertProgress(ctx context.Context, progress *dbm.BadgeProgress) error {
	if f.failUpsert[progress.BadgeID] {
		return errors.New("simulated storage failure")
	}
	f.rows[progress.BadgeID] = *progress
	return nil
}

func (f *fakeBadgeRepo) CountEarnedByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, row := range f.rows {
		if row.Earned {
			count++
		}
	}
	return count, nil
}

// ---------- helpers ----------

type progressFixture struct {
	entryRepo   *fakeEntryRepo
	profileRepo *fakeProfileRepo
	badgeRepo   *fakeBadgeRepo
	service     ProgressServiceInterface
	userID      uuid.UUID
}

func newProgressFixture() *progressFixture {
	entryRepo := newFakeEntryRepo()
	profileRepo := newFakeProfileRepo()
	badgeRepo := newFakeBadgeRepo(DefaultBadgeCatalog())
	return &progressFixture{
		entryRepo:   entryRepo,
		profileRepo: profileRepo,
		badgeRepo:   badgeRepo,
		service:     NewProgressService(entryRepo, profileRepo, badgeRepo, memcache.NewUserLocks()),
		userID:      uuid.New(),
	}
}

func (fx *progressFixture) addEntry(t time.Time, mood dbm.Mood) {
	fx.entryRepo.entries = append(fx.entryRepo.entries, dbm.JournalEntry{
		BaseModel: dbm.BaseModel{ID: uuid.New(), CreatedAt: t.Unix()},
		UserID:    fx.userID,
		Content:   fmt.Sprintf("entry at %s", t),
		Mood:      mood,
	})
}

func (fx *progressFixture) profile(t *testing.T) dbm.UserProgressProfile {
	t.Helper()
	p, ok := fx.profileRepo.profiles[fx.userID]
	if !ok {
		t.Fatal("expected profile to exist")
	}
	return p
}

func daysAgo(n int) time.Time {
	return time.Now().AddDate(0, 0, -n)
}

// ---------- tests ----------

func TestRefresh_CreatesProfileWhenMissing(t *testing.T) {
	fx := newProgressFixture()

	if err := fx.service.Refresh(context.Background(), fx.userID); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	if fx.profileRepo.creates != 1 {
		t.Errorf("expected profile auto-created once, got %d creates", fx.profileRepo.creates)
	}
	profile := fx.profile(t)
	if profile.CurrentStreak != 0 || profile.BestStreak != 0 || profile.LastEntryDate != nil {
		t.Errorf("expected zeroed profile, got %+v", profile)
	}
	if len(fx.badgeRepo.rows) != len(fx.badgeRepo.defs) {
		t.Errorf("expected one progress row per catalog badge, got %d of %d", len(fx.badgeRepo.rows), len(fx.badgeRepo.defs))
	}
}

func TestRecompute_Idempotent(t *testing.T) {
	fx := newProgressFixture()
	fx.addEntry(daysAgo(1), dbm.MoodGood)
	fx.addEntry(daysAgo(0), dbm.MoodAmazing)

	if err := fx.service.Refresh(context.Background(), fx.userID); err != nil {
		t.Fatalf("first Refresh failed: %v", err)
	}
	firstProfile := fx.profile(t)
	firstRows := make(map[string]dbm.BadgeProgress, len(fx.badgeRepo.rows))
	for id, row := range fx.badgeRepo.rows {
		firstRows[id] = row
	}

	if err := fx.service.Refresh(context.Background(), fx.userID); err != nil {
		t.Fatalf("second Refresh failed: %v", err)
	}
	secondProfile := fx.profile(t)

	if firstProfile.CurrentStreak != secondProfile.CurrentStreak ||
		firstProfile.BestStreak != secondProfile.BestStreak ||
		firstProfile.TotalBadgesEarned != secondProfile.TotalBadgesEarned {
		t.Errorf("profile changed between identical recomputes: %+v vs %+v", firstProfile, secondProfile)
	}

	for id, before := range firstRows {
		after := fx.badgeRepo.rows[id]
		if before.ProgressCurrent != after.ProgressCurrent ||
			before.ProgressPercentage != after.ProgressPercentage ||
			before.Earned != after.Earned {
			t.Errorf("badge %s changed between identical recomputes: %+v vs %+v", id, before, after)
		}
		if (before.EarnedAt == nil) != (after.EarnedAt == nil) {
			t.Errorf("badge %s earnedAt presence changed", id)
		}
		if before.EarnedAt != nil && after.EarnedAt != nil && *before.EarnedAt != *after.EarnedAt {
			t.Errorf("badge %s earnedAt restamped: %d vs %d", id, *before.EarnedAt, *after.EarnedAt)
		}
	}
}

func TestRecompute_TwoDayStreak(t *testing.T) {
	fx := newProgressFixture()
	fx.addEntry(daysAgo(1), dbm.MoodNeutral)
	fx.addEntry(daysAgo(0), dbm.MoodGood)

	if err := fx.service.Refresh(context.Background(), fx.userID); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	profile := fx.profile(t)
	if profile.CurrentStreak != 2 || profile.BestStreak != 2 {
		t.Errorf("expected 2-day streak, got current=%d best=%d", profile.CurrentStreak, profile.BestStreak)
	}
	if profile.LastEntryDate == nil {
		t.Error("expected lastEntryDate to be set")
	}

	firstEntry := fx.badgeRepo.rows["first-entry"]
	if !firstEntry.Earned || firstEntry.ProgressCurrent != 1 {
		t.Errorf("expected first-entry badge earned, got %+v", firstEntry)
	}
}

func TestRecompute_MoodVarietyBadge(t *testing.T) {
	fx := newProgressFixture()
	for i, mood := range dbm.MoodLevels {
		fx.addEntry(daysAgo(i), mood)
	}

	if err := fx.service.Refresh(context.Background(), fx.userID); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	row := fx.badgeRepo.rows["mood-explorer"]
	if row.ProgressCurrent != 5 || row.ProgressPercentage != 100 || !row.Earned {
		t.Errorf("expected mood-explorer earned at 5/100%%, got %+v", row)
	}
}

func TestRecompute_MonthlyCountAnchoredAtLastEntryMonth(t *testing.T) {
	fx := newProgressFixture()

	// Two months of history: the monthly count follows the calendar month of
	// the newest entry, not the server's current month.
	fx.addEntry(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), dbm.MoodGood)
	fx.addEntry(time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC), dbm.MoodGood)
	fx.addEntry(time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC), dbm.MoodGood)
	fx.addEntry(time.Date(2024, 2, 2, 10, 0, 0, 0, time.UTC), dbm.MoodGood)

	if err := fx.service.Refresh(context.Background(), fx.userID); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	row := fx.badgeRepo.rows["monthly-regular"]
	if row.ProgressCurrent != 2 {
		t.Errorf("expected monthly count of 2 (February entries only), got %d", row.ProgressCurrent)
	}
	if row.ProgressPercentage != 13.33 {
		t.Errorf("expected 13.33%% toward the monthly target, got %v", row.ProgressPercentage)
	}
	if row.Earned {
		t.Error("monthly badge must not be earned at 2 of 15")
	}
}

func TestRecompute_EmptyHistoryIsTerminalReset(t *testing.T) {
	fx := newProgressFixture()

	// Build up earned state first.
	fx.addEntry(daysAgo(2), dbm.MoodGood)
	fx.addEntry(daysAgo(1), dbm.MoodGood)
	fx.addEntry(daysAgo(0), dbm.MoodGood)
	if err := fx.service.OnSubscriptionChanged(context.Background(), fx.userID, true); err != nil {
		t.Fatalf("OnSubscriptionChanged failed: %v", err)
	}
	if !fx.badgeRepo.rows["three-day-streak"].Earned {
		t.Fatal("precondition: three-day-streak should be earned")
	}
	if !fx.badgeRepo.rows["premium-supporter"].Earned {
		t.Fatal("precondition: premium-supporter should be earned")
	}

	// Wipe the history and recompute.
	fx.entryRepo.entries = nil
	if err := fx.service.OnEntryDeleted(context.Background(), fx.userID); err != nil {
		t.Fatalf("OnEntryDeleted failed: %v", err)
	}

	profile := fx.profile(t)
	if profile.CurrentStreak != 0 || profile.BestStreak != 0 || profile.LastEntryDate != nil {
		t.Errorf("expected zeroed streak state, got %+v", profile)
	}

	for id, row := range fx.badgeRepo.rows {
		if id == "premium-supporter" {
			if !row.Earned {
				t.Error("subscription-gated badge must survive an emptied history")
			}
			continue
		}
		if row.ProgressCurrent != 0 || row.Earned || row.EarnedAt != nil {
			t.Errorf("badge %s not reset: %+v", id, row)
		}
	}

	if profile.TotalBadgesEarned != 1 {
		t.Errorf("expected totalBadgesEarned=1 (premium only), got %d", profile.TotalBadgesEarned)
	}
}

func TestRecompute_BestStreakShrinksAfterDeletions(t *testing.T) {
	fx := newProgressFixture()
	fx.addEntry(daysAgo(5), dbm.MoodGood)
	fx.addEntry(daysAgo(4), dbm.MoodGood)
	fx.addEntry(daysAgo(3), dbm.MoodGood)

	if err := fx.service.Refresh(context.Background(), fx.userID); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if got := fx.profile(t).BestStreak; got != 3 {
		t.Fatalf("precondition: expected best=3, got %d", got)
	}

	// Delete the middle of the run; best must shrink, not ratchet.
	fx.entryRepo.entries = fx.entryRepo.entries[2:]
	if err := fx.service.OnEntryDeleted(context.Background(), fx.userID); err != nil {
		t.Fatalf("OnEntryDeleted failed: %v", err)
	}

	if got := fx.profile(t).BestStreak; got != 1 {
		t.Errorf("expected best streak recomputed to 1 after deletions, got %d", got)
	}
}

func TestRecompute_PerBadgeFailureDoesNotAbortPass(t *testing.T) {
	fx := newProgressFixture()
	fx.addEntry(daysAgo(0), dbm.MoodGood)
	fx.badgeRepo.failUpsert["getting-started"] = true

	if err := fx.service.Refresh(context.Background(), fx.userID); err != nil {
		t.Fatalf("Refresh should tolerate a single badge failure, got: %v", err)
	}

	if _, ok := fx.badgeRepo.rows["getting-started"]; ok {
		t.Error("failed badge should not have been written")
	}
	if row, ok := fx.badgeRepo.rows["first-entry"]; !ok || !row.Earned {
		t.Errorf("remaining badges should still be evaluated, got %+v", row)
	}

	// The recount must reflect stored rows even after a partial failure.
	profile := fx.profile(t)
	earned := 0
	for _, row := range fx.badgeRepo.rows {
		if row.Earned {
			earned++
		}
	}
	if profile.TotalBadgesEarned != earned {
		t.Errorf("expected totalBadgesEarned=%d from stored rows, got %d", earned, profile.TotalBadgesEarned)
	}
}

func TestRecompute_UnknownCategoryBadgeIsSkipped(t *testing.T) {
	fx := newProgressFixture()
	fx.badgeRepo.defs = append(fx.badgeRepo.defs, dbm.BadgeDefinition{
		ID: "mystery-badge", Category: "mystery", ProgressTarget: 1,
	})
	fx.addEntry(daysAgo(0), dbm.MoodGood)

	if err := fx.service.Refresh(context.Background(), fx.userID); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	if _, ok := fx.badgeRepo.rows["mystery-badge"]; ok {
		t.Error("badge with unknown category should be skipped, not written")
	}
	if len(fx.badgeRepo.rows) != len(DefaultBadgeCatalog()) {
		t.Errorf("expected all valid badges written, got %d rows", len(fx.badgeRepo.rows))
	}
}

func TestOnSubscriptionChanged_TogglesPremiumBadge(t *testing.T) {
	fx := newProgressFixture()

	if err := fx.service.OnSubscriptionChanged(context.Background(), fx.userID, true); err != nil {
		t.Fatalf("OnSubscriptionChanged failed: %v", err)
	}
	row := fx.badgeRepo.rows["premium-supporter"]
	if !row.Earned || row.EarnedAt == nil {
		t.Fatalf("expected premium badge earned, got %+v", row)
	}
	if !fx.profile(t).SubscriptionPremium {
		t.Error("expected premium flag set on profile")
	}

	if err := fx.service.OnSubscriptionChanged(context.Background(), fx.userID, false); err != nil {
		t.Fatalf("OnSubscriptionChanged failed: %v", err)
	}
	row = fx.badgeRepo.rows["premium-supporter"]
	if row.Earned || row.EarnedAt != nil {
		t.Errorf("expected premium badge unearned after downgrade, got %+v", row)
	}
}
