package services

import (
	"context"
	"strings"

	"learndash/internal/logger"
	"learndash/internal/models"
	"learndash/internal/validation"

	"go.uber.org/zap"
)

var sectionMessages = validation.Messages{
	"language_id.required": "Language id is required",
	"language_id.gt":       "Language id must be a positive integer",
	"title.required":       "Section title is required",
	"title.max":            "Section title must be at most 120 characters",
}

type SectionService struct{ store ContentStore }

func NewSectionService(store ContentStore) *SectionService {
	return &SectionService{store: store}
}

func (s *SectionService) Create(ctx context.Context, req models.CreateSectionRequest) (int, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := validation.Struct(req, sectionMessages); err != nil {
		return 0, err
	}

	if _, err := s.store.GetLanguage(ctx, req.LanguageID); err != nil {
		return 0, notFound(err, msgLanguageNotFound)
	}

	sec := &models.Section{LanguageID: req.LanguageID, Title: req.Title, Order: req.Order}
	id, err := s.store.CreateSection(ctx, sec)
	if err != nil {
		logger.WithCtx(ctx).Error("sections: create failed", zap.Int("language_id", req.LanguageID), zap.Error(err))
		return 0, notFound(err, msgLanguageNotFound)
	}

	logger.WithCtx(ctx).Info("sections: created", zap.Int("id", id), zap.Int("language_id", req.LanguageID))
	return id, nil
}

// Update applies the non-nil fields of req.
func (s *SectionService) Update(ctx context.Context, id int, req models.UpdateSectionRequest) (*models.Section, error) {
	if req.Title != nil {
		t := strings.TrimSpace(*req.Title)
		if t == "" {
			return nil, models.Invalid("Section title is required")
		}
		req.Title = &t
	}
	if err := validation.Struct(req, sectionMessages); err != nil {
		return nil, err
	}

	sec, err := s.store.GetSection(ctx, id)
	if err != nil {
		return nil, notFound(err, msgSectionNotFound)
	}
	if req.Title != nil {
		sec.Title = *req.Title
	}
	if req.Order.Present {
		sec.Order = req.Order.Value
	}

	if err := s.store.UpdateSection(ctx, sec); err != nil {
		return nil, notFound(err, msgSectionNotFound)
	}

	logger.WithCtx(ctx).Info("sections: updated", zap.Int("id", id))
	return sec, nil
}

// Delete removes the section and, by cascade, its subsections.
func (s *SectionService) Delete(ctx context.Context, id int) error {
	if err := s.store.DeleteSection(ctx, id); err != nil {
		return notFound(err, msgSectionNotFound)
	}
	logger.WithCtx(ctx).Info("sections: deleted", zap.Int("id", id))
	return nil
}
