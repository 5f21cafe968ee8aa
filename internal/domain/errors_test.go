package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_UnwrapsToSentinel(t *testing.T) {
	t.Parallel()

	err := NewValidationError("rating", "must be between 0 and 5")
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "rating must be between 0 and 5", err.Error())

	wrapped := fmt.Errorf("submit season rating: %w", err)
	var ve *ValidationError
	assert.True(t, errors.As(wrapped, &ve))
	assert.Len(t, ve.Errors, 1)
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "showId", Message: "is required"},
		{Field: "seasonTitle", Message: "is required"},
	})
	assert.Equal(t, "showId is required; seasonTitle is required", err.Error())
}

func TestError_ClassifiedBySentinel(t *testing.T) {
	t.Parallel()

	reviewExists := NewError(ErrConflict, "already reviewed")
	err := fmt.Errorf("create review: %w", reviewExists)
	assert.True(t, errors.Is(err, ErrConflict))
	assert.True(t, errors.Is(err, reviewExists))
	assert.False(t, errors.Is(err, ErrAlreadyExists))

	var de *Error
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, "already reviewed", de.Message)
}
