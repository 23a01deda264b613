package models

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("resource conflict")
)

// Error codes sent to clients next to the HTTP status.
const (
	CodeNotFound   = "not_found"
	CodeValidation = "validation_error"
	CodeConflict   = "conflict"
	CodeInternal   = "internal_error"
)

// Client-facing messages for missing entities.
const (
	MsgLanguageNotFound   = "Language not found"
	MsgSectionNotFound    = "Section not found"
	MsgSubsectionNotFound = "Subsection not found"
)

// AppError carries a client-facing message and code on top of one of the sentinels above.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewAppError(code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NotFound(message string) *AppError {
	return NewAppError(CodeNotFound, message, ErrNotFound)
}

func Invalid(message string) *AppError {
	return NewAppError(CodeValidation, message, ErrInvalidInput)
}
