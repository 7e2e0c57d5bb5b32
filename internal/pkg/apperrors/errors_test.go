package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomError_Error(t *testing.T) {
	t.Run("prefers the message when set", func(t *testing.T) {
		err := NewConflictError("Course already exists")
		assert.Equal(t, "Course already exists", err.Error())
	})

	t.Run("falls back to the wrapped error", func(t *testing.T) {
		err := &CustomError{Err: ErrUserNotFound}
		assert.Equal(t, "user not found", err.Error())
	})

	t.Run("handles a fully empty error", func(t *testing.T) {
		err := &CustomError{}
		assert.Equal(t, "unknown error", err.Error())
	})
}

func TestCustomError_Unwrap(t *testing.T) {
	t.Run("conflict errors match ErrConflict", func(t *testing.T) {
		err := NewConflictError("User already exists")
		assert.True(t, errors.Is(err, ErrConflict))
		assert.False(t, errors.Is(err, ErrResourceNotFound))
	})

	t.Run("not-found errors match ErrResourceNotFound", func(t *testing.T) {
		err := NewResourceNotFoundError("Project not found")
		assert.True(t, errors.Is(err, ErrResourceNotFound))
	})

	t.Run("bad-request errors match ErrBadRequest", func(t *testing.T) {
		err := NewBadRequestError("owner_id must be an integer")
		assert.True(t, errors.Is(err, ErrBadRequest))
	})

	t.Run("matches through further wrapping", func(t *testing.T) {
		err := fmt.Errorf("create failed: %w", NewConflictError("User already exists"))
		assert.True(t, errors.Is(err, ErrConflict))
	})
}

func TestMessage(t *testing.T) {
	t.Run("extracts the custom message", func(t *testing.T) {
		err := NewConflictError("Project update failed")
		assert.Equal(t, "Project update failed", Message(err, "Resource already exists"))
	})

	t.Run("extracts through wrapping", func(t *testing.T) {
		err := fmt.Errorf("replace: %w", NewConflictError("Project update failed"))
		assert.Equal(t, "Project update failed", Message(err, "Resource already exists"))
	})

	t.Run("falls back for plain errors", func(t *testing.T) {
		assert.Equal(t, "Resource already exists", Message(errors.New("boom"), "Resource already exists"))
	})

	t.Run("falls back for custom errors without a message", func(t *testing.T) {
		err := &CustomError{Err: ErrConflict}
		assert.Equal(t, "fallback", Message(err, "fallback"))
	})
}

func TestWithCode(t *testing.T) {
	err := NewCustomError(ErrConflict, "duplicate").WithCode("RES_002")
	assert.Equal(t, "RES_002", err.Code)
	assert.Equal(t, "duplicate", err.Message)
}
