package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorFormatting(t *testing.T) {
	plain := NewValidationError("BAD_INPUT", "year out of range")
	assert.Equal(t, "[BAD_INPUT] year out of range", plain.Error())

	cause := stderrors.New("connection refused")
	wrapped := NewAPIError("REQUEST_FAILED", "competitions request failed", cause)
	assert.Equal(t, "[REQUEST_FAILED] competitions request failed: connection refused", wrapped.Error())
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := NewSystemError("INTERNAL", "something broke", cause)

	require.ErrorIs(t, err, cause)

	var appErr *AppError
	wrapped := fmt.Errorf("run failed: %w", err)
	require.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, "INTERNAL", appErr.Code)
}

func TestIsType(t *testing.T) {
	assert.True(t, IsType(NewNotFoundError("NOT_FOUND", "no such event"), TypeNotFound))
	assert.False(t, IsType(NewNotFoundError("NOT_FOUND", "no such event"), TypeAPI))
	assert.False(t, IsType(stderrors.New("plain"), TypeAPI))

	// wrapped AppErrors are still recognized
	wrapped := fmt.Errorf("run failed: %w", NewNotFoundError("NOT_FOUND", "no such event"))
	assert.True(t, IsType(wrapped, TypeNotFound))
	assert.False(t, IsType(wrapped, TypeAPI))
}
