package services

import (
	"context"
	"errors"

	"learndash/internal/models"
)

// ContentStore is the persistence surface the services need. repository.ContentRepo implements it over Postgres.
// Lookups of a missing row return an error wrapping models.ErrNotFound.
type ContentStore interface {
	CreateLanguage(ctx context.Context, l *models.Language) (int, error)
	GetLanguage(ctx context.Context, id int) (*models.Language, error)
	ListLanguages(ctx context.Context) ([]models.Language, error)
	DeleteLanguage(ctx context.Context, id int) error

	CreateSection(ctx context.Context, s *models.Section) (int, error)
	GetSection(ctx context.Context, id int) (*models.Section, error)
	ListSections(ctx context.Context, languageID int) ([]models.Section, error)
	UpdateSection(ctx context.Context, s *models.Section) error
	DeleteSection(ctx context.Context, id int) error

	CreateSubsection(ctx context.Context, s *models.Subsection) (int, error)
	GetSubsection(ctx context.Context, id int) (*models.Subsection, error)
	ListSubsections(ctx context.Context, sectionID int) ([]models.Subsection, error)
	UpdateSubsection(ctx context.Context, s *models.Subsection) error
	DeleteSubsection(ctx context.Context, id int) error

	CountSubsections(ctx context.Context, languageID int) (total, completed int, err error)
	GetProgress(ctx context.Context, languageID int) (*models.Progress, error)
	CreateProgress(ctx context.Context, p *models.Progress) error
	UpdateProgress(ctx context.Context, p *models.Progress) error
}

const (
	msgLanguageNotFound   = models.MsgLanguageNotFound
	msgSectionNotFound    = models.MsgSectionNotFound
	msgSubsectionNotFound = models.MsgSubsectionNotFound
)

// notFound turns a store miss into a client-facing NotFound, passing other errors through.
func notFound(err error, message string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, models.ErrNotFound) {
		return models.NewAppError(models.CodeNotFound, message, err)
	}
	return err
}
