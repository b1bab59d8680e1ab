package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMessageIsDeterministic(t *testing.T) {
	err := NewValidation().
		Add("worker", "worker is required").
		Add("date", "date is required").
		Add("time", "time is required")

	// Fields render sorted so the message is stable across runs.
	assert.Equal(t,
		"validation failed: date: date is required; time: time is required; worker: worker is required",
		err.Error())
}

func TestValidationErrorHasErrors(t *testing.T) {
	err := NewValidation()
	assert.False(t, err.HasErrors())
	err.Add("time", "time is required")
	assert.True(t, err.HasErrors())
}

func TestStorageErrorUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStorage("list appointments", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, fmt.Errorf("outer: %w", err), cause)
}

func TestNotFoundErrorMessage(t *testing.T) {
	assert.Equal(t, "appointment abc not found", NewNotFound("appointment", "abc").Error())
	assert.Equal(t, "clinical record not found", NewNotFound("clinical record", "").Error())
}
