package model

import (
	"strconv"
	"time"
)

// CategoryKind indicates whether a category classifies income or expenses.
type CategoryKind string

const (
	// CategoryKindIncome marks categories for income transactions.
	CategoryKindIncome CategoryKind = "income"
	// CategoryKindExpense marks categories for expense transactions.
	CategoryKindExpense CategoryKind = "expense"
)

// Category describes how a group of transactions is labelled and rendered.
type Category struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Icon  string       `json:"icon"`
	Emoji string       `json:"emoji,omitempty"`
	Color string       `json:"color"`
	Kind  CategoryKind `json:"type"`
}

// SalaryCategoryID is the fixed income category that salary transactions
// are recorded against.
const SalaryCategoryID = "11"

// UnknownCategoryName is the display fallback when a transaction references
// a category that no longer resolves.
const UnknownCategoryName = "Unknown"

// NewCategoryID allocates a category identifier from the given instant.
// Default categories occupy ids "1" through "15"; user-created categories
// get millisecond timestamps, so ids are never reused.
func NewCategoryID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}
