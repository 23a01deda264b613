package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"learndash/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type ContentRepo struct {
	db *pgxpool.Pool
}

func NewContentRepo(db *pgxpool.Pool) *ContentRepo { return &ContentRepo{db: db} }

// inRange reports whether id fits the SERIAL columns. Anything larger cannot
// match a row, and pgx refuses to encode it as an int4 parameter.
func inRange(id int) bool { return id > 0 && id <= math.MaxInt32 }

// mapErr translates driver errors into the model sentinels, keeping the original in the chain.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %w", models.ErrNotFound, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %w", models.ErrConflict, err)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %w", models.ErrNotFound, err)
		}
	}
	return err
}

// ----- Languages -----

func (r *ContentRepo) CreateLanguage(ctx context.Context, l *models.Language) (int, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO languages (name, icon) VALUES ($1, $2) RETURNING id, created_at`,
		l.Name, l.Icon,
	).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return 0, mapErr(err)
	}
	return l.ID, nil
}

func (r *ContentRepo) GetLanguage(ctx context.Context, id int) (*models.Language, error) {
	if !inRange(id) {
		return nil, models.ErrNotFound
	}
	var l models.Language
	err := r.db.QueryRow(ctx,
		`SELECT id, name, icon, created_at FROM languages WHERE id = $1`, id,
	).Scan(&l.ID, &l.Name, &l.Icon, &l.CreatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return &l, nil
}

func (r *ContentRepo) ListLanguages(ctx context.Context) ([]models.Language, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, icon, created_at FROM languages ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Language{}
	for rows.Next() {
		var l models.Language
		if err := rows.Scan(&l.ID, &l.Name, &l.Icon, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteLanguage removes the language; sections, subsections and progress go with it (ON DELETE CASCADE).
func (r *ContentRepo) DeleteLanguage(ctx context.Context, id int) error {
	return r.deleteByID(ctx, `DELETE FROM languages WHERE id = $1`, id)
}

// ----- Sections -----

func (r *ContentRepo) CreateSection(ctx context.Context, s *models.Section) (int, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO sections (language_id, title, "order") VALUES ($1, $2, $3) RETURNING id`,
		s.LanguageID, s.Title, s.Order,
	).Scan(&s.ID)
	if err != nil {
		return 0, mapErr(err)
	}
	return s.ID, nil
}

func (r *ContentRepo) GetSection(ctx context.Context, id int) (*models.Section, error) {
	if !inRange(id) {
		return nil, models.ErrNotFound
	}
	var s models.Section
	err := r.db.QueryRow(ctx,
		`SELECT id, language_id, title, "order" FROM sections WHERE id = $1`, id,
	).Scan(&s.ID, &s.LanguageID, &s.Title, &s.Order)
	if err != nil {
		return nil, mapErr(err)
	}
	return &s, nil
}

// ListSections returns the sections of a language by ascending order, unordered ones first, then by id.
func (r *ContentRepo) ListSections(ctx context.Context, languageID int) ([]models.Section, error) {
	if !inRange(languageID) {
		return []models.Section{}, nil
	}
	rows, err := r.db.Query(ctx, `
SELECT id, language_id, title, "order"
FROM sections
WHERE language_id = $1
ORDER BY "order" ASC NULLS FIRST, id ASC`, languageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Section{}
	for rows.Next() {
		var s models.Section
		if err := rows.Scan(&s.ID, &s.LanguageID, &s.Title, &s.Order); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ContentRepo) UpdateSection(ctx context.Context, s *models.Section) error {
	if !inRange(s.ID) {
		return models.ErrNotFound
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE sections SET title = $1, "order" = $2 WHERE id = $3`,
		s.Title, s.Order, s.ID,
	)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *ContentRepo) DeleteSection(ctx context.Context, id int) error {
	return r.deleteByID(ctx, `DELETE FROM sections WHERE id = $1`, id)
}

// ----- Subsections -----

func (r *ContentRepo) CreateSubsection(ctx context.Context, s *models.Subsection) (int, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO subsections (section_id, title, content, is_completed, "order")
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		s.SectionID, s.Title, s.Content, s.IsCompleted, s.Order,
	).Scan(&s.ID)
	if err != nil {
		return 0, mapErr(err)
	}
	return s.ID, nil
}

func (r *ContentRepo) GetSubsection(ctx context.Context, id int) (*models.Subsection, error) {
	if !inRange(id) {
		return nil, models.ErrNotFound
	}
	var s models.Subsection
	err := r.db.QueryRow(ctx,
		`SELECT id, section_id, title, content, is_completed, "order" FROM subsections WHERE id = $1`, id,
	).Scan(&s.ID, &s.SectionID, &s.Title, &s.Content, &s.IsCompleted, &s.Order)
	if err != nil {
		return nil, mapErr(err)
	}
	return &s, nil
}

// ListSubsections returns the subsections of a section by ascending order, unordered ones first, then by id.
func (r *ContentRepo) ListSubsections(ctx context.Context, sectionID int) ([]models.Subsection, error) {
	if !inRange(sectionID) {
		return []models.Subsection{}, nil
	}
	rows, err := r.db.Query(ctx, `
SELECT id, section_id, title, content, is_completed, "order"
FROM subsections
WHERE section_id = $1
ORDER BY "order" ASC NULLS FIRST, id ASC`, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Subsection{}
	for rows.Next() {
		var s models.Subsection
		if err := rows.Scan(&s.ID, &s.SectionID, &s.Title, &s.Content, &s.IsCompleted, &s.Order); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ContentRepo) UpdateSubsection(ctx context.Context, s *models.Subsection) error {
	if !inRange(s.ID) {
		return models.ErrNotFound
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE subsections SET title = $1, content = $2, is_completed = $3, "order" = $4 WHERE id = $5`,
		s.Title, s.Content, s.IsCompleted, s.Order, s.ID,
	)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *ContentRepo) DeleteSubsection(ctx context.Context, id int) error {
	return r.deleteByID(ctx, `DELETE FROM subsections WHERE id = $1`, id)
}

// ----- Progress -----

// CountSubsections counts all subsections under all sections of a language, and how many are completed.
func (r *ContentRepo) CountSubsections(ctx context.Context, languageID int) (total, completed int, err error) {
	if !inRange(languageID) {
		return 0, 0, nil
	}
	err = r.db.QueryRow(ctx, `
SELECT COUNT(ss.id), COUNT(ss.id) FILTER (WHERE ss.is_completed)
FROM sections s
JOIN subsections ss ON ss.section_id = s.id
WHERE s.language_id = $1`, languageID).Scan(&total, &completed)
	return total, completed, err
}

func (r *ContentRepo) GetProgress(ctx context.Context, languageID int) (*models.Progress, error) {
	if !inRange(languageID) {
		return nil, models.ErrNotFound
	}
	var p models.Progress
	err := r.db.QueryRow(ctx,
		`SELECT id, language_id, overall_percentage, last_updated FROM progress WHERE language_id = $1`, languageID,
	).Scan(&p.ID, &p.LanguageID, &p.OverallPercentage, &p.LastUpdated)
	if err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

func (r *ContentRepo) CreateProgress(ctx context.Context, p *models.Progress) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO progress (language_id, overall_percentage, last_updated)
		 VALUES ($1, $2, now()) RETURNING id, last_updated`,
		p.LanguageID, p.OverallPercentage,
	).Scan(&p.ID, &p.LastUpdated)
	return mapErr(err)
}

func (r *ContentRepo) UpdateProgress(ctx context.Context, p *models.Progress) error {
	err := r.db.QueryRow(ctx,
		`UPDATE progress SET overall_percentage = $1, last_updated = now() WHERE id = $2 RETURNING last_updated`,
		p.OverallPercentage, p.ID,
	).Scan(&p.LastUpdated)
	return mapErr(err)
}

func (r *ContentRepo) deleteByID(ctx context.Context, q string, id int) error {
	if !inRange(id) {
		return models.ErrNotFound
	}
	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
