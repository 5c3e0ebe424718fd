package model

// CategorySpend is one row of the top-categories breakdown: a category's
// converted spend and its share of the month's total expenses.
type CategorySpend struct {
	Category   string
	Amount     float64
	Percentage float64
}

// MonthlyStats aggregates one calendar month of the ledger, with every
// amount converted to the home currency. Derived, never persisted.
type MonthlyStats struct {
	TopCategories []CategorySpend
	TotalIncome   float64
	TotalExpenses float64
	Savings       float64
	SavingsRate   float64
}

// AdviceKind classifies a budget advice entry.
type AdviceKind string

const (
	// AdviceSavings congratulates a healthy savings rate.
	AdviceSavings AdviceKind = "savings"
	// AdviceWarning flags something the user should act on.
	AdviceWarning AdviceKind = "warning"
	// AdviceInfo is informational only.
	AdviceInfo AdviceKind = "info"
)

// BudgetAdvice is a single human-readable advice entry. Amount and Currency
// are set only when the advice carries a monetary figure.
type BudgetAdvice struct {
	Kind        AdviceKind
	Title       string
	Description string
	Currency    string
	Amount      float64
	HasAmount   bool
}
