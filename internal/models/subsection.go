package models

type Subsection struct {
	ID          int     `json:"id"`
	SectionID   int     `json:"section_id"`
	Title       string  `json:"title"`
	Content     *string `json:"content"`
	IsCompleted bool    `json:"is_completed"`
	Order       *int    `json:"order"`
}

// SubsectionShort omits the content body to keep listings compact.
type SubsectionShort struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"is_completed"`
}

func (s Subsection) Short() SubsectionShort {
	return SubsectionShort{ID: s.ID, Title: s.Title, IsCompleted: s.IsCompleted}
}

type CreateSubsectionRequest struct {
	SectionID   int     `json:"section_id" validate:"required,gt=0"`
	Title       string  `json:"title" validate:"required,max=120"`
	Content     *string `json:"content"`
	IsCompleted bool    `json:"is_completed"`
	Order       *int    `json:"order"`
}

// UpdateSubsectionRequest is a partial update; nil fields are left unchanged.
// Order can be cleared with an explicit null.
type UpdateSubsectionRequest struct {
	Title       *string       `json:"title" validate:"omitempty,max=120"`
	Content     *string       `json:"content"`
	IsCompleted *bool         `json:"is_completed"`
	Order       Nullable[int] `json:"order" swaggertype:"integer"`
}
