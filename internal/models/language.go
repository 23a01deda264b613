package models

import "time"

type Language struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Icon      *string   `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
}

// LanguageShort is the list form of a language.
type LanguageShort struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Icon *string `json:"icon"`
}

func (l Language) Short() LanguageShort {
	return LanguageShort{ID: l.ID, Name: l.Name, Icon: l.Icon}
}

// LanguageView is a language with its ordered sections, their ordered
// subsections and the current overall progress.
type LanguageView struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Icon     *string       `json:"icon"`
	Progress float64       `json:"progress"`
	Sections []SectionView `json:"sections"`
}

type CreateLanguageRequest struct {
	Name string  `json:"name" validate:"required,max=80"`
	Icon *string `json:"icon" validate:"omitempty,max=255"`
}
