package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	err := NewUserError("run 'kasa setup' first", ErrSetupIncomplete)

	// The wrapped sentinel stays reachable for errors.Is checks.
	assert.ErrorIs(t, err, ErrSetupIncomplete)
	assert.Contains(t, err.Error(), "run 'kasa setup' first")

	var userErr *UserError
	assert.True(t, errors.As(err, &userErr))
	assert.Equal(t, "run 'kasa setup' first", userErr.UserMessage)
}

func TestUserError_WithoutCause(t *testing.T) {
	err := NewUserError("nothing to import", nil)

	assert.Equal(t, "nothing to import", err.Error())
}
