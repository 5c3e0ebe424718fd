package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasaapp/kasa/internal/model"
)

func testCategories() []model.Category {
	return []model.Category{
		{ID: "1", Name: "Food & Drink", Kind: model.CategoryKindExpense},
		{ID: "2", Name: "Transport", Kind: model.CategoryKindExpense},
		{ID: "3", Name: "Shopping", Kind: model.CategoryKindExpense},
		{ID: "4", Name: "Entertainment", Kind: model.CategoryKindExpense},
		{ID: "5", Name: "Health", Kind: model.CategoryKindExpense},
		{ID: "6", Name: "Education", Kind: model.CategoryKindExpense},
		{ID: "11", Name: "Salary", Kind: model.CategoryKindIncome},
	}
}

func txn(id string, amount float64, code, categoryID string, kind model.TransactionKind, date time.Time) model.Transaction {
	return model.Transaction{
		ID:          id,
		Amount:      amount,
		Currency:    code,
		CategoryID:  categoryID,
		Description: "test",
		Kind:        kind,
		Date:        date,
	}
}

func TestComputeMonthlyStats_EmptyLedger(t *testing.T) {
	stats := ComputeMonthlyStats(nil, testCategories(), 2024, time.March)

	assert.Zero(t, stats.TotalIncome)
	assert.Zero(t, stats.TotalExpenses)
	assert.Zero(t, stats.Savings)
	assert.Zero(t, stats.SavingsRate)
	assert.Empty(t, stats.TopCategories)
}

func TestComputeMonthlyStats_FiltersByMonthAndYear(t *testing.T) {
	march := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
	txns := []model.Transaction{
		txn("1", 1000, "TRY", "11", model.KindIncome, march),
		txn("2", 200, "TRY", "1", model.KindExpense, march),
		// Same month, previous year
		txn("3", 999, "TRY", "1", model.KindExpense, march.AddDate(-1, 0, 0)),
		// Previous month
		txn("4", 999, "TRY", "1", model.KindExpense, march.AddDate(0, -1, 0)),
	}

	stats := ComputeMonthlyStats(txns, testCategories(), 2024, time.March)

	assert.InDelta(t, 1000, stats.TotalIncome, 1e-9)
	assert.InDelta(t, 200, stats.TotalExpenses, 1e-9)
	assert.InDelta(t, 800, stats.Savings, 1e-9)
	assert.InDelta(t, 80, stats.SavingsRate, 1e-9)
}

func TestComputeMonthlyStats_ConvertsToHomeCurrency(t *testing.T) {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)
	txns := []model.Transaction{
		txn("1", 100, "USD", "11", model.KindIncome, date), // 100 * 34.5
		txn("2", 10, "EUR", "1", model.KindExpense, date),  // 10 * 36.8
		txn("3", 50, "TRY", "1", model.KindExpense, date),  // passthrough
	}

	stats := ComputeMonthlyStats(txns, testCategories(), 2024, time.March)

	assert.InDelta(t, 3450, stats.TotalIncome, 1e-9)
	assert.InDelta(t, 418, stats.TotalExpenses, 1e-9)
}

func TestComputeMonthlyStats_SavingsIdentity(t *testing.T) {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)
	tests := []struct {
		name string
		txns []model.Transaction
	}{
		{name: "empty", txns: nil},
		{name: "income only", txns: []model.Transaction{
			txn("1", 5000, "TRY", "11", model.KindIncome, date),
		}},
		{name: "expenses exceed income", txns: []model.Transaction{
			txn("1", 100, "TRY", "11", model.KindIncome, date),
			txn("2", 500, "TRY", "1", model.KindExpense, date),
		}},
		{name: "mixed currencies", txns: []model.Transaction{
			txn("1", 100, "USD", "11", model.KindIncome, date),
			txn("2", 30, "EUR", "1", model.KindExpense, date),
			txn("3", 250, "TRY", "2", model.KindExpense, date),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeMonthlyStats(tt.txns, testCategories(), 2024, time.March)
			assert.InDelta(t, stats.Savings, stats.TotalIncome-stats.TotalExpenses, 1e-9)
		})
	}
}

func TestComputeMonthlyStats_SavingsRateZeroWithoutIncome(t *testing.T) {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)
	txns := []model.Transaction{
		txn("1", 750, "TRY", "1", model.KindExpense, date),
	}

	stats := ComputeMonthlyStats(txns, testCategories(), 2024, time.March)

	assert.Zero(t, stats.SavingsRate)
	assert.InDelta(t, -750, stats.Savings, 1e-9)
}

func TestComputeMonthlyStats_TopCategories(t *testing.T) {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)
	txns := []model.Transaction{
		txn("1", 100, "TRY", "1", model.KindExpense, date),
		txn("2", 300, "TRY", "2", model.KindExpense, date),
		txn("3", 50, "TRY", "3", model.KindExpense, date),
		txn("4", 200, "TRY", "4", model.KindExpense, date),
		txn("5", 25, "TRY", "5", model.KindExpense, date),
		txn("6", 10, "TRY", "6", model.KindExpense, date),
		// Second transaction in an existing group
		txn("7", 100, "TRY", "1", model.KindExpense, date),
	}

	stats := ComputeMonthlyStats(txns, testCategories(), 2024, time.March)

	require.Len(t, stats.TopCategories, 5)

	// Sorted non-increasing by amount
	for i := 1; i < len(stats.TopCategories); i++ {
		assert.GreaterOrEqual(t,
			stats.TopCategories[i-1].Amount,
			stats.TopCategories[i].Amount)
	}

	assert.Equal(t, "Transport", stats.TopCategories[0].Category)
	assert.InDelta(t, 300, stats.TopCategories[0].Amount, 1e-9)

	// Percentages are shares of the full expense total, so their sum never
	// exceeds 100 even when the breakdown is truncated to five entries.
	var sum float64
	for _, spend := range stats.TopCategories {
		sum += spend.Percentage
		assert.InDelta(t, spend.Amount/stats.TotalExpenses*100, spend.Percentage, 1e-9)
	}
	assert.LessOrEqual(t, sum, 100.0+1e-9)
}

func TestComputeMonthlyStats_UnknownCategoryFallback(t *testing.T) {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)
	txns := []model.Transaction{
		txn("1", 40, "TRY", "deleted-category", model.KindExpense, date),
	}

	stats := ComputeMonthlyStats(txns, testCategories(), 2024, time.March)

	require.Len(t, stats.TopCategories, 1)
	assert.Equal(t, model.UnknownCategoryName, stats.TopCategories[0].Category)
	assert.InDelta(t, 100, stats.TopCategories[0].Percentage, 1e-9)
}

func TestComputeMonthlyStats_ZeroExpensePercentage(t *testing.T) {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)
	txns := []model.Transaction{
		txn("1", 1000, "TRY", "11", model.KindIncome, date),
	}

	stats := ComputeMonthlyStats(txns, testCategories(), 2024, time.March)

	assert.Zero(t, stats.TotalExpenses)
	assert.Empty(t, stats.TopCategories)
}
