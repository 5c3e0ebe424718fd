// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// ErrSetupIncomplete is returned by operations that need a configured
	// salary profile before onboarding has run.
	ErrSetupIncomplete = errors.New("setup has not been completed")
)

// UserError represents an error that should be shown to the user. The
// presentation layer prints UserMessage and keeps the wrapped error for
// logs and errors.Is checks.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
