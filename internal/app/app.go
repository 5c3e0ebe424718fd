// Package app holds the application state container: the single place that
// owns the in-memory profile, ledger, and category registry, and the
// mutation commands that keep them in sync with the durable store. The
// presentation layer receives an *App by injection and reads derived values
// through typed accessors; there is no ambient global state.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kasaapp/kasa/internal/currency"
	"github.com/kasaapp/kasa/internal/engine"
	"github.com/kasaapp/kasa/internal/model"
	"github.com/kasaapp/kasa/internal/service"
)

// App is the state container. Mutations persist write-whole to the store,
// update memory, and synchronously recompute the derived monthly stats and
// advice. All access is single-threaded by construction.
type App struct {
	store          service.Store
	now            func() time.Time
	profile        *model.UserProfile
	lastSalaryDate *time.Time
	stats          *model.MonthlyStats
	transactions   []model.Transaction
	expenseCats    []model.Category
	incomeCats     []model.Category
	advice         []model.BudgetAdvice
	setupCompleted bool
}

// Option configures an App.
type Option func(*App)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// New loads all persisted state from the store and returns a ready App.
// Missing or malformed stored values degrade to defaults; category lists
// fall back to the built-in seed set.
func New(ctx context.Context, store service.Store, opts ...Option) (*App, error) {
	a := &App{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	if err := a.load(ctx); err != nil {
		return nil, err
	}
	a.recompute()
	return a, nil
}

func (a *App) load(ctx context.Context) error {
	profile, err := a.store.GetProfile(ctx)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	a.profile = profile

	txns, err := a.store.GetTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	a.transactions = txns

	completed, err := a.store.GetSetupCompleted(ctx)
	if err != nil {
		return fmt.Errorf("failed to load setup flag: %w", err)
	}
	a.setupCompleted = completed

	lastDate, err := a.store.GetLastSalaryDate(ctx)
	if err != nil {
		return fmt.Errorf("failed to load last salary date: %w", err)
	}
	a.lastSalaryDate = lastDate

	expenseCats, err := a.store.GetCategories(ctx, model.CategoryKindExpense)
	if err != nil {
		return fmt.Errorf("failed to load expense categories: %w", err)
	}
	if expenseCats == nil {
		expenseCats = DefaultExpenseCategories()
	}
	a.expenseCats = expenseCats

	incomeCats, err := a.store.GetCategories(ctx, model.CategoryKindIncome)
	if err != nil {
		return fmt.Errorf("failed to load income categories: %w", err)
	}
	if incomeCats == nil {
		incomeCats = DefaultIncomeCategories()
	}
	a.incomeCats = incomeCats

	slog.Debug("loaded application state",
		"transactions", len(a.transactions),
		"has_profile", a.profile != nil,
		"setup_completed", a.setupCompleted)
	return nil
}

// recompute refreshes the derived monthly stats and advice. Stats stay nil
// until a profile exists, matching the "no data" contract.
func (a *App) recompute() {
	if a.profile == nil {
		a.stats = nil
		a.advice = nil
		return
	}

	now := a.now()
	stats := engine.ComputeMonthlyStats(a.transactions, a.AllCategories(), now.Year(), now.Month())
	a.stats = &stats
	a.advice = engine.GenerateAdvice(a.stats, a.profile, now)
}

// Profile returns the current user profile, or nil before onboarding.
func (a *App) Profile() *model.UserProfile {
	return a.profile
}

// Transactions returns the full ledger.
func (a *App) Transactions() []model.Transaction {
	return a.transactions
}

// MonthlyStats returns the current month's aggregation, or nil when there is
// no profile yet.
func (a *App) MonthlyStats() *model.MonthlyStats {
	return a.stats
}

// BudgetAdvice returns the current advice list.
func (a *App) BudgetAdvice() []model.BudgetAdvice {
	return a.advice
}

// LastSalaryDate returns when salary was last marked received, or nil.
func (a *App) LastSalaryDate() *time.Time {
	return a.lastSalaryDate
}

// SetupCompleted reports whether onboarding finished.
func (a *App) SetupCompleted() bool {
	return a.setupCompleted
}

// UpdateProfile persists and applies a new profile.
func (a *App) UpdateProfile(ctx context.Context, profile *model.UserProfile) error {
	if profile == nil {
		return fmt.Errorf("profile cannot be nil")
	}
	if !currency.IsSupported(profile.SalaryInfo.Currency) {
		return fmt.Errorf("unsupported salary currency %q", profile.SalaryInfo.Currency)
	}

	if err := a.store.SaveProfile(ctx, profile); err != nil {
		return err
	}
	a.profile = profile
	a.recompute()
	return nil
}

// CompleteSetup stores the onboarding profile and marks setup done.
func (a *App) CompleteSetup(ctx context.Context, profile *model.UserProfile) error {
	profile.SetupCompleted = true
	if err := a.UpdateProfile(ctx, profile); err != nil {
		return err
	}
	if err := a.store.SetSetupCompleted(ctx, true); err != nil {
		return err
	}
	a.setupCompleted = true
	slog.Info("setup completed", "salary_currency", profile.SalaryInfo.Currency)
	return nil
}
