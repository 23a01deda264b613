package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"learndash/internal/models"
	"learndash/internal/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ContentStore = (*storetest.Store)(nil)

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(0, 0))
	assert.Equal(t, 0.0, Percentage(0, 5))
	assert.Equal(t, 25.0, Percentage(1, 4))
	assert.Equal(t, 100.0, Percentage(3, 3))
	assert.Equal(t, (1.0/3.0)*100, Percentage(1, 3))
}

func TestRecompute_NoSections(t *testing.T) {
	store := storetest.NewStore()
	lang := store.SeedLanguage(t, "Go")
	svc := NewProgressService(store)

	p, err := svc.Recompute(context.Background(), lang.ID)

	require.NoError(t, err)
	assert.Equal(t, 0.0, p.OverallPercentage)
	assert.Equal(t, lang.ID, p.LanguageID)
	assert.False(t, p.LastUpdated.IsZero())
}

func TestRecompute_SectionsWithoutSubsections(t *testing.T) {
	store := storetest.NewStore()
	lang := store.SeedLanguage(t, "Rust")
	store.SeedSection(t, lang.ID, "Basics", storetest.Int(1))
	store.SeedSection(t, lang.ID, "Ownership", storetest.Int(2))
	svc := NewProgressService(store)

	p, err := svc.Recompute(context.Background(), lang.ID)

	require.NoError(t, err)
	assert.Equal(t, 0.0, p.OverallPercentage)
}

func TestRecompute_OneOfFourCompleted(t *testing.T) {
	store := storetest.NewStore()
	lang := store.SeedLanguage(t, "Python")
	a := store.SeedSection(t, lang.ID, "Syntax", storetest.Int(1))
	b := store.SeedSection(t, lang.ID, "Stdlib", storetest.Int(2))
	store.SeedSubsection(t, a.ID, "Variables", storetest.Int(1), true)
	store.SeedSubsection(t, a.ID, "Loops", storetest.Int(2), false)
	store.SeedSubsection(t, b.ID, "os", storetest.Int(1), false)
	store.SeedSubsection(t, b.ID, "json", storetest.Int(2), false)
	svc := NewProgressService(store)

	p, err := svc.Recompute(context.Background(), lang.ID)

	require.NoError(t, err)
	assert.Equal(t, 25.0, p.OverallPercentage)
}

func TestRecompute_MatchesRatioForAnyMix(t *testing.T) {
	for total := 1; total <= 7; total++ {
		for completed := 0; completed <= total; completed++ {
			t.Run(fmt.Sprintf("%d_of_%d", completed, total), func(t *testing.T) {
				store := storetest.NewStore()
				lang := store.SeedLanguage(t, "Lang")
				sec := store.SeedSection(t, lang.ID, "Only", nil)
				for i := 0; i < total; i++ {
					store.SeedSubsection(t, sec.ID, fmt.Sprintf("s%d", i), storetest.Int(i), i < completed)
				}

				p, err := NewProgressService(store).Recompute(context.Background(), lang.ID)

				require.NoError(t, err)
				assert.Equal(t, (float64(completed)/float64(total))*100, p.OverallPercentage)
			})
		}
	}
}

func TestRecompute_OnlyCountsOwnLanguage(t *testing.T) {
	store := storetest.NewStore()
	goLang := store.SeedLanguage(t, "Go")
	other := store.SeedLanguage(t, "Java")
	goSec := store.SeedSection(t, goLang.ID, "Basics", nil)
	otherSec := store.SeedSection(t, other.ID, "Basics", nil)
	store.SeedSubsection(t, goSec.ID, "Hello", nil, true)
	store.SeedSubsection(t, otherSec.ID, "Hello", nil, false)
	store.SeedSubsection(t, otherSec.ID, "World", nil, false)

	p, err := NewProgressService(store).Recompute(context.Background(), goLang.ID)

	require.NoError(t, err)
	assert.Equal(t, 100.0, p.OverallPercentage)
}

func TestRecompute_IsIdempotent(t *testing.T) {
	store := storetest.NewStore()
	lang := store.SeedLanguage(t, "Go")
	sec := store.SeedSection(t, lang.ID, "Basics", nil)
	store.SeedSubsection(t, sec.ID, "One", nil, true)
	store.SeedSubsection(t, sec.ID, "Two", nil, false)
	svc := NewProgressService(store)
	ctx := context.Background()

	first, err := svc.Recompute(ctx, lang.ID)
	require.NoError(t, err)
	second, err := svc.Recompute(ctx, lang.ID)
	require.NoError(t, err)

	assert.Equal(t, first.OverallPercentage, second.OverallPercentage)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, store.ProgressCount(lang.ID))
	assert.Equal(t, 2, store.ProgressWrites)
}

func TestRecompute_UpdatesAfterCompletionChange(t *testing.T) {
	store := storetest.NewStore()
	lang := store.SeedLanguage(t, "Go")
	sec := store.SeedSection(t, lang.ID, "Basics", nil)
	sub := store.SeedSubsection(t, sec.ID, "One", nil, false)
	store.SeedSubsection(t, sec.ID, "Two", nil, false)
	svc := NewProgressService(store)
	ctx := context.Background()

	p, err := svc.Recompute(ctx, lang.ID)
	require.NoError(t, err)
	require.Equal(t, 0.0, p.OverallPercentage)

	sub.IsCompleted = true
	require.NoError(t, store.UpdateSubsection(ctx, &sub))

	p, err = svc.Recompute(ctx, lang.ID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, p.OverallPercentage)
	assert.Equal(t, 1, store.ProgressCount(lang.ID))
}

func TestRecompute_UnknownLanguage(t *testing.T) {
	store := storetest.NewStore()
	svc := NewProgressService(store)

	_, err := svc.Recompute(context.Background(), 999999)

	assert.ErrorIs(t, err, models.ErrNotFound)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Language not found", appErr.Message)
	assert.Equal(t, 0, store.ProgressWrites)
}

func TestRecompute_StoreFailure(t *testing.T) {
	store := storetest.NewStore()
	lang := store.SeedLanguage(t, "Go")
	store.Err = errors.New("connection refused")

	_, err := NewProgressService(store).Recompute(context.Background(), lang.ID)

	assert.EqualError(t, err, "connection refused")
}

func TestGetOrCompute_CreatesOnMissThenReuses(t *testing.T) {
	store := storetest.NewStore()
	lang := store.SeedLanguage(t, "Go")
	svc := NewProgressService(store)
	ctx := context.Background()

	p, err := svc.GetOrCompute(ctx, lang.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.OverallPercentage)
	assert.Equal(t, 1, store.ProgressWrites)

	again, err := svc.GetOrCompute(ctx, lang.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, again.ID)
	assert.Equal(t, 1, store.ProgressWrites, "a stored record must not be rewritten")
}

func TestGetOrCompute_ReturnsStaleSnapshot(t *testing.T) {
	store := storetest.NewStore()
	lang := store.SeedLanguage(t, "Go")
	sec := store.SeedSection(t, lang.ID, "Basics", nil)
	svc := NewProgressService(store)
	ctx := context.Background()

	_, err := svc.GetOrCompute(ctx, lang.ID)
	require.NoError(t, err)

	store.SeedSubsection(t, sec.ID, "Done", nil, true)

	p, err := svc.GetOrCompute(ctx, lang.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.OverallPercentage)
}

func TestGet_WithoutRecord(t *testing.T) {
	store := storetest.NewStore()
	lang := store.SeedLanguage(t, "Go")
	svc := NewProgressService(store)

	_, err := svc.Get(context.Background(), lang.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Equal(t, 0, store.ProgressWrites)

	_, err = svc.Get(context.Background(), 42)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Language not found", appErr.Message)
}

func TestRecompute_RecordCreatedConcurrently(t *testing.T) {
	store := storetest.NewStore()
	lang := store.SeedLanguage(t, "Go")
	sec := store.SeedSection(t, lang.ID, "Basics", nil)
	store.SeedSubsection(t, sec.ID, "a", nil, true)
	store.SeedSubsection(t, sec.ID, "b", nil, false)
	ctx := context.Background()

	// a competing first read stores its record between our lookup and insert
	store.BeforeCreateProgress = func(p *models.Progress) {
		store.BeforeCreateProgress = nil
		require.NoError(t, store.CreateProgress(ctx, &models.Progress{LanguageID: p.LanguageID}))
	}
	svc := NewProgressService(store)

	p, err := svc.GetOrCompute(ctx, lang.ID)

	require.NoError(t, err)
	assert.Equal(t, 50.0, p.OverallPercentage)
	assert.Equal(t, 1, store.ProgressCount(lang.ID))

	stored, err := svc.Get(ctx, lang.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, stored.ID)
	assert.Equal(t, 50.0, stored.OverallPercentage)
}
