package services

import (
	"context"
	"errors"

	"learndash/internal/logger"
	"learndash/internal/models"

	"go.uber.org/zap"
)

// ProgressService derives a language's overall completion from its subsections.
// The stored value is a snapshot: it is never maintained incrementally, only
// recomputed from scratch by Recompute.
type ProgressService struct {
	store ContentStore
}

func NewProgressService(store ContentStore) *ProgressService {
	return &ProgressService{store: store}
}

// Percentage is completed/total*100, or 0 when there is nothing to complete. No rounding.
func Percentage(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return (float64(completed) / float64(total)) * 100
}

// Recompute counts every subsection of the language, then creates the language's
// progress record or updates the existing one. Each path is a single write.
func (s *ProgressService) Recompute(ctx context.Context, languageID int) (*models.Progress, error) {
	log := logger.WithCtx(ctx)

	if _, err := s.store.GetLanguage(ctx, languageID); err != nil {
		return nil, notFound(err, msgLanguageNotFound)
	}

	total, completed, err := s.store.CountSubsections(ctx, languageID)
	if err != nil {
		log.Error("progress: failed to count subsections", zap.Int("language_id", languageID), zap.Error(err))
		return nil, err
	}
	pct := Percentage(completed, total)

	p, err := s.store.GetProgress(ctx, languageID)
	switch {
	case errors.Is(err, models.ErrNotFound):
		p = &models.Progress{LanguageID: languageID, OverallPercentage: pct}
		err = s.store.CreateProgress(ctx, p)
		if errors.Is(err, models.ErrConflict) {
			// another request created the record after our lookup
			log.Debug("progress: record appeared concurrently, updating", zap.Int("language_id", languageID))
			if p, err = s.store.GetProgress(ctx, languageID); err == nil {
				p.OverallPercentage = pct
				err = s.store.UpdateProgress(ctx, p)
			}
		}
	case err != nil:
		return nil, err
	default:
		p.OverallPercentage = pct
		err = s.store.UpdateProgress(ctx, p)
	}
	if err != nil {
		log.Error("progress: failed to save", zap.Int("language_id", languageID), zap.Error(err))
		return nil, notFound(err, msgLanguageNotFound)
	}

	log.Info("progress: recomputed",
		zap.Int("language_id", languageID),
		zap.Int("total", total),
		zap.Int("completed", completed),
		zap.Float64("percentage", pct),
	)
	return p, nil
}

// Get returns the stored progress without computing it.
func (s *ProgressService) Get(ctx context.Context, languageID int) (*models.Progress, error) {
	if _, err := s.store.GetLanguage(ctx, languageID); err != nil {
		return nil, notFound(err, msgLanguageNotFound)
	}
	p, err := s.store.GetProgress(ctx, languageID)
	if err != nil {
		return nil, notFound(err, "Progress not computed yet")
	}
	return p, nil
}

// GetOrCompute returns the stored progress and, when there is none, computes and
// stores it. Callers reading a view through this may therefore cause a write.
func (s *ProgressService) GetOrCompute(ctx context.Context, languageID int) (*models.Progress, error) {
	p, err := s.store.GetProgress(ctx, languageID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	logger.WithCtx(ctx).Debug("progress: no record, computing", zap.Int("language_id", languageID))
	return s.Recompute(ctx, languageID)
}
