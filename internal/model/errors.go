package model

import "errors"

// Validation and domain-rule errors.
var (
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrMissingCategory  = errors.New("category is required")
	ErrEmptyDescription = errors.New("description is required")
	ErrInvalidKind      = errors.New("kind must be income or expense")
	ErrLastCategory     = errors.New("at least one category must remain")
	ErrNotFound         = errors.New("not found")
)
