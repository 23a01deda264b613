package validation

import (
	"errors"
	"testing"

	"learndash/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" validate:"required,max=5"`
	Count int    `json:"count" validate:"gt=0"`
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(sample{Name: "Go", Count: 1}, nil))
}

func TestStruct_UsesFieldMessage(t *testing.T) {
	err := Struct(sample{Count: 1}, Messages{"name": "Name is required"})

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Name is required", appErr.Message)
	assert.Equal(t, models.CodeValidation, appErr.Code)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestStruct_TagMessageWins(t *testing.T) {
	msgs := Messages{
		"name":     "Name is invalid",
		"name.max": "Name is too long",
	}

	err := Struct(sample{Name: "Haskell", Count: 1}, msgs)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Name is too long", appErr.Message)
}

func TestStruct_DefaultMessageUsesJSONName(t *testing.T) {
	err := Struct(sample{Name: "Go"}, nil)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "count must be greater than 0", appErr.Message)
}
