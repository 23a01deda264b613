package services

import (
	"context"
	"strings"

	"learndash/internal/logger"
	"learndash/internal/models"
	"learndash/internal/validation"

	"go.uber.org/zap"
)

var subsectionMessages = validation.Messages{
	"section_id.required": "Section id is required",
	"section_id.gt":       "Section id must be a positive integer",
	"title.required":      "Subsection title is required",
	"title.max":           "Subsection title must be at most 120 characters",
}

type SubsectionService struct {
	store ContentStore
}

func NewSubsectionService(store ContentStore) *SubsectionService {
	return &SubsectionService{store: store}
}

// normalizeContent keeps content verbatim; only whitespace-only content becomes NULL.
func normalizeContent(content *string) *string {
	if content == nil || strings.TrimSpace(*content) == "" {
		return nil
	}
	c := *content
	return &c
}

func (s *SubsectionService) Create(ctx context.Context, req models.CreateSubsectionRequest) (int, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := validation.Struct(req, subsectionMessages); err != nil {
		return 0, err
	}

	if _, err := s.store.GetSection(ctx, req.SectionID); err != nil {
		return 0, notFound(err, msgSectionNotFound)
	}

	sub := &models.Subsection{
		SectionID:   req.SectionID,
		Title:       req.Title,
		Content:     normalizeContent(req.Content),
		IsCompleted: req.IsCompleted,
		Order:       req.Order,
	}
	id, err := s.store.CreateSubsection(ctx, sub)
	if err != nil {
		logger.WithCtx(ctx).Error("subsections: create failed", zap.Int("section_id", req.SectionID), zap.Error(err))
		return 0, notFound(err, msgSectionNotFound)
	}

	logger.WithCtx(ctx).Info("subsections: created", zap.Int("id", id), zap.Int("section_id", req.SectionID))
	return id, nil
}

func (s *SubsectionService) Get(ctx context.Context, id int) (*models.Subsection, error) {
	sub, err := s.store.GetSubsection(ctx, id)
	if err != nil {
		return nil, notFound(err, msgSubsectionNotFound)
	}
	return sub, nil
}

// Update applies the non-nil fields of req. It does not touch the language's
// progress record; that is refreshed by ProgressService.Recompute.
func (s *SubsectionService) Update(ctx context.Context, id int, req models.UpdateSubsectionRequest) (*models.Subsection, error) {
	if req.Title != nil {
		t := strings.TrimSpace(*req.Title)
		if t == "" {
			return nil, models.Invalid("Subsection title is required")
		}
		req.Title = &t
	}
	if err := validation.Struct(req, subsectionMessages); err != nil {
		return nil, err
	}

	sub, err := s.store.GetSubsection(ctx, id)
	if err != nil {
		return nil, notFound(err, msgSubsectionNotFound)
	}
	if req.Title != nil {
		sub.Title = *req.Title
	}
	if req.Content != nil {
		sub.Content = normalizeContent(req.Content)
	}
	if req.IsCompleted != nil {
		sub.IsCompleted = *req.IsCompleted
	}
	if req.Order.Present {
		sub.Order = req.Order.Value
	}

	if err := s.store.UpdateSubsection(ctx, sub); err != nil {
		return nil, notFound(err, msgSubsectionNotFound)
	}

	logger.WithCtx(ctx).Info("subsections: updated", zap.Int("id", id), zap.Bool("is_completed", sub.IsCompleted))
	return sub, nil
}

func (s *SubsectionService) Delete(ctx context.Context, id int) error {
	if err := s.store.DeleteSubsection(ctx, id); err != nil {
		return notFound(err, msgSubsectionNotFound)
	}
	logger.WithCtx(ctx).Info("subsections: deleted", zap.Int("id", id))
	return nil
}
