// Package storetest provides an in-memory content store for tests. It follows
// the Postgres store's observable rules: name uniqueness, parent checks,
// cascading deletes, one progress row per language and NULLS FIRST ordering.
package storetest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"learndash/internal/models"
)

type Store struct {
	mu sync.Mutex

	nextID      int
	languages   map[int]models.Language
	sections    map[int]models.Section
	subsections map[int]models.Subsection
	progress    map[int]models.Progress // by language id

	// ProgressWrites counts CreateProgress and UpdateProgress calls.
	ProgressWrites int
	// Err, when set, is returned by every method.
	Err error
	// BeforeCreateProgress, when set, runs at the start of CreateProgress
	// without the lock held, so it may call back into the store.
	BeforeCreateProgress func(p *models.Progress)
}

func NewStore() *Store {
	return &Store{
		languages:   map[int]models.Language{},
		sections:    map[int]models.Section{},
		subsections: map[int]models.Subsection{},
		progress:    map[int]models.Progress{},
	}
}

func (s *Store) id() int {
	s.nextID++
	return s.nextID
}

func notFound(kind string, id int) error {
	return fmt.Errorf("%w: %s %d", models.ErrNotFound, kind, id)
}

// ProgressCount is the number of stored progress rows for a language (0 or 1).
func (s *Store) ProgressCount(languageID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.progress[languageID]; ok {
		return 1
	}
	return 0
}

// ----- Languages -----

func (s *Store) CreateLanguage(_ context.Context, l *models.Language) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	for _, existing := range s.languages {
		if existing.Name == l.Name {
			return 0, fmt.Errorf("%w: duplicate key value violates unique constraint \"languages_name_key\"", models.ErrConflict)
		}
	}
	l.ID = s.id()
	l.CreatedAt = time.Now()
	s.languages[l.ID] = *l
	return l.ID, nil
}

func (s *Store) GetLanguage(_ context.Context, id int) (*models.Language, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	l, ok := s.languages[id]
	if !ok {
		return nil, notFound("language", id)
	}
	return &l, nil
}

func (s *Store) ListLanguages(_ context.Context) ([]models.Language, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]models.Language, 0, len(s.languages))
	for _, l := range s.languages {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) DeleteLanguage(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.languages[id]; !ok {
		return notFound("language", id)
	}
	delete(s.languages, id)
	delete(s.progress, id)
	for sid, sec := range s.sections {
		if sec.LanguageID == id {
			s.deleteSectionLocked(sid)
		}
	}
	return nil
}

// ----- Sections -----

func (s *Store) CreateSection(_ context.Context, sec *models.Section) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	if _, ok := s.languages[sec.LanguageID]; !ok {
		return 0, notFound("language", sec.LanguageID)
	}
	sec.ID = s.id()
	s.sections[sec.ID] = *sec
	return sec.ID, nil
}

func (s *Store) GetSection(_ context.Context, id int) (*models.Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	sec, ok := s.sections[id]
	if !ok {
		return nil, notFound("section", id)
	}
	return &sec, nil
}

func (s *Store) ListSections(_ context.Context, languageID int) ([]models.Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := []models.Section{}
	for _, sec := range s.sections {
		if sec.LanguageID == languageID {
			out = append(out, sec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return less(out[i].Order, out[j].Order, out[i].ID, out[j].ID)
	})
	return out, nil
}

func (s *Store) UpdateSection(_ context.Context, sec *models.Section) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	cur, ok := s.sections[sec.ID]
	if !ok {
		return notFound("section", sec.ID)
	}
	cur.Title = sec.Title
	cur.Order = sec.Order
	s.sections[sec.ID] = cur
	return nil
}

func (s *Store) DeleteSection(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.sections[id]; !ok {
		return notFound("section", id)
	}
	s.deleteSectionLocked(id)
	return nil
}

func (s *Store) deleteSectionLocked(id int) {
	delete(s.sections, id)
	for ssid, sub := range s.subsections {
		if sub.SectionID == id {
			delete(s.subsections, ssid)
		}
	}
}

// ----- Subsections -----

func (s *Store) CreateSubsection(_ context.Context, sub *models.Subsection) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	if _, ok := s.sections[sub.SectionID]; !ok {
		return 0, notFound("section", sub.SectionID)
	}
	sub.ID = s.id()
	s.subsections[sub.ID] = *sub
	return sub.ID, nil
}

func (s *Store) GetSubsection(_ context.Context, id int) (*models.Subsection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	sub, ok := s.subsections[id]
	if !ok {
		return nil, notFound("subsection", id)
	}
	return &sub, nil
}

func (s *Store) ListSubsections(_ context.Context, sectionID int) ([]models.Subsection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := []models.Subsection{}
	for _, sub := range s.subsections {
		if sub.SectionID == sectionID {
			out = append(out, sub)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return less(out[i].Order, out[j].Order, out[i].ID, out[j].ID)
	})
	return out, nil
}

func (s *Store) UpdateSubsection(_ context.Context, sub *models.Subsection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	cur, ok := s.subsections[sub.ID]
	if !ok {
		return notFound("subsection", sub.ID)
	}
	cur.Title = sub.Title
	cur.Content = sub.Content
	cur.IsCompleted = sub.IsCompleted
	cur.Order = sub.Order
	s.subsections[sub.ID] = cur
	return nil
}

func (s *Store) DeleteSubsection(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.subsections[id]; !ok {
		return notFound("subsection", id)
	}
	delete(s.subsections, id)
	return nil
}

// ----- Progress -----

func (s *Store) CountSubsections(_ context.Context, languageID int) (total, completed int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, 0, s.Err
	}
	for _, sub := range s.subsections {
		sec, ok := s.sections[sub.SectionID]
		if !ok || sec.LanguageID != languageID {
			continue
		}
		total++
		if sub.IsCompleted {
			completed++
		}
	}
	return total, completed, nil
}

func (s *Store) GetProgress(_ context.Context, languageID int) (*models.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	p, ok := s.progress[languageID]
	if !ok {
		return nil, notFound("progress for language", languageID)
	}
	return &p, nil
}

func (s *Store) CreateProgress(_ context.Context, p *models.Progress) error {
	if hook := s.BeforeCreateProgress; hook != nil {
		hook(p)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.languages[p.LanguageID]; !ok {
		return notFound("language", p.LanguageID)
	}
	if _, ok := s.progress[p.LanguageID]; ok {
		return fmt.Errorf("%w: duplicate key value violates unique constraint \"progress_language_id_key\"", models.ErrConflict)
	}
	p.ID = s.id()
	p.LastUpdated = time.Now()
	s.progress[p.LanguageID] = *p
	s.ProgressWrites++
	return nil
}

func (s *Store) UpdateProgress(_ context.Context, p *models.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	cur, ok := s.progress[p.LanguageID]
	if !ok || cur.ID != p.ID {
		return notFound("progress", p.ID)
	}
	p.LastUpdated = time.Now()
	s.progress[p.LanguageID] = *p
	s.ProgressWrites++
	return nil
}

// less orders by order ascending with nil first, then by id.
func less(a, b *int, aID, bID int) bool {
	switch {
	case a == nil && b == nil:
		return aID < bID
	case a == nil:
		return true
	case b == nil:
		return false
	case *a != *b:
		return *a < *b
	default:
		return aID < bID
	}
}
