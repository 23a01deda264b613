package services

import (
	"context"
	"errors"
	"strings"

	"learndash/internal/logger"
	"learndash/internal/models"
	"learndash/internal/validation"

	"go.uber.org/zap"
)

var languageMessages = validation.Messages{
	"name.required": "Language name is required",
	"name.max":      "Language name must be at most 80 characters",
	"icon.max":      "Language icon must be at most 255 characters",
}

type LanguageService struct {
	store    ContentStore
	progress *ProgressService
}

func NewLanguageService(store ContentStore, progress *ProgressService) *LanguageService {
	return &LanguageService{store: store, progress: progress}
}

// List returns all languages sorted by name.
func (s *LanguageService) List(ctx context.Context) ([]models.LanguageShort, error) {
	langs, err := s.store.ListLanguages(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.LanguageShort, 0, len(langs))
	for _, l := range langs {
		out = append(out, l.Short())
	}
	return out, nil
}

func (s *LanguageService) Create(ctx context.Context, req models.CreateLanguageRequest) (int, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Icon != nil {
		icon := strings.TrimSpace(*req.Icon)
		if icon == "" {
			req.Icon = nil
		} else {
			req.Icon = &icon
		}
	}
	if err := validation.Struct(req, languageMessages); err != nil {
		return 0, err
	}

	l := &models.Language{Name: req.Name, Icon: req.Icon}
	id, err := s.store.CreateLanguage(ctx, l)
	if err != nil {
		logger.WithCtx(ctx).Error("languages: create failed", zap.String("name", req.Name), zap.Error(err))
		return 0, err
	}

	logger.WithCtx(ctx).Info("languages: created", zap.Int("id", id), zap.String("name", l.Name))
	return id, nil
}

func (s *LanguageService) Delete(ctx context.Context, id int) error {
	if err := s.store.DeleteLanguage(ctx, id); err != nil {
		return notFound(err, msgLanguageNotFound)
	}
	logger.WithCtx(ctx).Info("languages: deleted", zap.Int("id", id))
	return nil
}

// View assembles the language with its sections and subsections in display order.
// Progress comes from ProgressService.GetOrCompute, so viewing a language that has
// never been measured writes its first progress record.
func (s *LanguageService) View(ctx context.Context, id int) (*models.LanguageView, error) {
	lang, err := s.store.GetLanguage(ctx, id)
	if err != nil {
		return nil, notFound(err, msgLanguageNotFound)
	}

	sections, err := s.store.ListSections(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &models.LanguageView{
		ID:       lang.ID,
		Name:     lang.Name,
		Icon:     lang.Icon,
		Sections: make([]models.SectionView, 0, len(sections)),
	}

	for _, sec := range sections {
		subs, err := s.store.ListSubsections(ctx, sec.ID)
		if err != nil {
			return nil, err
		}
		sv := models.SectionView{
			ID:          sec.ID,
			Title:       sec.Title,
			Order:       sec.Order,
			Subsections: make([]models.SubsectionShort, 0, len(subs)),
		}
		for _, sub := range subs {
			sv.Subsections = append(sv.Subsections, sub.Short())
		}
		view.Sections = append(view.Sections, sv)
	}

	p, err := s.progress.GetOrCompute(ctx, id)
	switch {
	case err == nil:
		view.Progress = p.OverallPercentage
	case errors.Is(err, models.ErrNotFound):
		// the language disappeared between the reads above and the recompute
		view.Progress = 0
	default:
		return nil, err
	}

	logger.WithCtx(ctx).Debug("languages: view assembled",
		zap.Int("id", id),
		zap.Int("sections", len(view.Sections)),
		zap.Float64("progress", view.Progress),
	)
	return view, nil
}
