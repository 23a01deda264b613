package services

import (
	"context"
	"errors"
	"testing"

	"learndash/internal/models"
	"learndash/internal/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appMessage(t *testing.T, err error) string {
	t.Helper()
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.Message
}

func TestSectionService_Create(t *testing.T) {
	store := storetest.NewStore()
	lang := store.SeedLanguage(t, "Go")
	svc := NewSectionService(store)

	id, err := svc.Create(context.Background(), models.CreateSectionRequest{LanguageID: lang.ID, Title: " Basics ", Order: storetest.Int(1)})

	require.NoError(t, err)
	sec, err := store.GetSection(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Basics", sec.Title)
	assert.Equal(t, lang.ID, sec.LanguageID)
	assert.Equal(t, 1, *sec.Order)
}

func TestSectionService_Create_Errors(t *testing.T) {
	store := storetest.NewStore()
	lang := store.SeedLanguage(t, "Go")
	svc := NewSectionService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.CreateSectionRequest{Title: "Basics"})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
	assert.Equal(t, "Language id is required", appMessage(t, err))

	_, err = svc.Create(ctx, models.CreateSectionRequest{LanguageID: lang.ID})
	assert.Equal(t, "Section title is required", appMessage(t, err))

	_, err = svc.Create(ctx, models.CreateSectionRequest{LanguageID: 777, Title: "Basics"})
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Equal(t, "Language not found", appMessage(t, err))
}

func TestSectionService_Update(t *testing.T) {
	store := storetest.NewStore()
	lang := store.SeedLanguage(t, "Go")
	sec := store.SeedSection(t, lang.ID, "Basics", storetest.Int(1))
	svc := NewSectionService(store)
	ctx := context.Background()

	updated, err := svc.Update(ctx, sec.ID, models.UpdateSectionRequest{Order: models.Some(5)})
	require.NoError(t, err)
	assert.Equal(t, "Basics", updated.Title)
	assert.Equal(t, 5, *updated.Order)

	title := "Fundamentals"
	updated, err = svc.Update(ctx, sec.ID, models.UpdateSectionRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Fundamentals", updated.Title)
	assert.Equal(t, 5, *updated.Order)

	updated, err = svc.Update(ctx, sec.ID, models.UpdateSectionRequest{Order: models.Null[int]()})
	require.NoError(t, err)
	assert.Nil(t, updated.Order)
	assert.Equal(t, "Fundamentals", updated.Title)

	blank := " "
	_, err = svc.Update(ctx, sec.ID, models.UpdateSectionRequest{Title: &blank})
	assert.Equal(t, "Section title is required", appMessage(t, err))

	_, err = svc.Update(ctx, 999, models.UpdateSectionRequest{Order: models.Some(1)})
	assert.Equal(t, "Section not found", appMessage(t, err))
}

func TestSectionService_Delete_RemovesSubsections(t *testing.T) {
	store := storetest.NewStore()
	lang := store.SeedLanguage(t, "Go")
	sec := store.SeedSection(t, lang.ID, "Basics", nil)
	store.SeedSubsection(t, sec.ID, "a", nil, true)
	store.SeedSubsection(t, sec.ID, "b", nil, false)
	svc := NewSectionService(store)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, sec.ID))

	total, _, err := store.CountSubsections(ctx, lang.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	err = svc.Delete(ctx, sec.ID)
	assert.Equal(t, "Section not found", appMessage(t, err))
}
