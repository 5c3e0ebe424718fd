// Package model defines the core domain types shared across the application.
package model

import (
	"strconv"
	"time"
)

// TransactionKind indicates whether a transaction is money in or money out.
type TransactionKind string

const (
	// KindIncome represents money coming in.
	KindIncome TransactionKind = "income"
	// KindExpense represents money going out.
	KindExpense TransactionKind = "expense"
)

// Transaction represents a single recorded financial event.
type Transaction struct {
	Date        time.Time       `json:"date"`
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Currency    string          `json:"currency"`
	CategoryID  string          `json:"category"`
	Kind        TransactionKind `json:"type"`
	Amount      float64         `json:"amount"`
}

// NewTransactionID allocates a transaction identifier from the given instant.
// Identifiers are millisecond timestamps and are never reused.
func NewTransactionID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// Validate checks the fields a user-submitted transaction must carry.
func (t *Transaction) Validate() error {
	if t.Amount <= 0 {
		return ErrInvalidAmount
	}
	if t.CategoryID == "" {
		return ErrMissingCategory
	}
	if t.Description == "" {
		return ErrEmptyDescription
	}
	if t.Kind != KindIncome && t.Kind != KindExpense {
		return ErrInvalidKind
	}
	return nil
}
