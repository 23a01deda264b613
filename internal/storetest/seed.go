package storetest

import (
	"context"
	"testing"

	"learndash/internal/models"
)

// Int returns a pointer to v, for order fields.
func Int(v int) *int { return &v }

func (s *Store) SeedLanguage(t testing.TB, name string) models.Language {
	t.Helper()
	l := models.Language{Name: name}
	if _, err := s.CreateLanguage(context.Background(), &l); err != nil {
		t.Fatalf("seed language %q: %v", name, err)
	}
	return l
}

func (s *Store) SeedSection(t testing.TB, languageID int, title string, order *int) models.Section {
	t.Helper()
	sec := models.Section{LanguageID: languageID, Title: title, Order: order}
	if _, err := s.CreateSection(context.Background(), &sec); err != nil {
		t.Fatalf("seed section %q: %v", title, err)
	}
	return sec
}

func (s *Store) SeedSubsection(t testing.TB, sectionID int, title string, order *int, completed bool) models.Subsection {
	t.Helper()
	sub := models.Subsection{SectionID: sectionID, Title: title, Order: order, IsCompleted: completed}
	if _, err := s.CreateSubsection(context.Background(), &sub); err != nil {
		t.Fatalf("seed subsection %q: %v", title, err)
	}
	return sub
}
