package models

type Section struct {
	ID         int    `json:"id"`
	LanguageID int    `json:"language_id"`
	Title      string `json:"title"`
	Order      *int   `json:"order"`
}

type SectionView struct {
	ID          int               `json:"id"`
	Title       string            `json:"title"`
	Order       *int              `json:"order"`
	Subsections []SubsectionShort `json:"subsections"`
}

type CreateSectionRequest struct {
	LanguageID int    `json:"language_id" validate:"required,gt=0"`
	Title      string `json:"title" validate:"required,max=120"`
	Order      *int   `json:"order"`
}

// UpdateSectionRequest is a partial update; nil fields are left unchanged.
// Order can be cleared with an explicit null.
type UpdateSectionRequest struct {
	Title *string       `json:"title" validate:"omitempty,max=120"`
	Order Nullable[int] `json:"order" swaggertype:"integer"`
}
