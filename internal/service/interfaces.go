// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/kasaapp/kasa/internal/model"
)

// Store defines the contract for the durable key/value persistence layer.
// Each unit of state is read and written whole.
type Store interface {
	// Ledger
	GetTransactions(ctx context.Context) ([]model.Transaction, error)
	SaveTransactions(ctx context.Context, txns []model.Transaction) error

	// Profile and onboarding
	GetProfile(ctx context.Context) (*model.UserProfile, error)
	SaveProfile(ctx context.Context, profile *model.UserProfile) error
	GetSetupCompleted(ctx context.Context) (bool, error)
	SetSetupCompleted(ctx context.Context, completed bool) error

	// Salary tracking
	GetLastSalaryDate(ctx context.Context) (*time.Time, error)
	SetLastSalaryDate(ctx context.Context, date time.Time) error

	// Category registry
	GetCategories(ctx context.Context, kind model.CategoryKind) ([]model.Category, error)
	SaveCategories(ctx context.Context, kind model.CategoryKind, cats []model.Category) error

	// Lifecycle
	Migrate(ctx context.Context) error
	Reset(ctx context.Context) error
	Close() error
}
