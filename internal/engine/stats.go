// Package engine implements the derivation logic of the application: monthly
// aggregation, salary projection, and budget advice. Every function here is a
// pure function of its inputs; the clock is always passed in by the caller.
package engine

import (
	"sort"
	"time"

	"github.com/kasaapp/kasa/internal/currency"
	"github.com/kasaapp/kasa/internal/model"
)

// topCategoryLimit caps the top-categories breakdown.
const topCategoryLimit = 5

// ComputeMonthlyStats aggregates the ledger for one calendar month. All
// amounts are converted to the home currency before summing. The month and
// year are explicit inputs so the function stays deterministic under test.
//
// An empty month yields all-zero totals and an empty breakdown; callers
// treat that as "no data", not as an error.
func ComputeMonthlyStats(txns []model.Transaction, categories []model.Category, year int, month time.Month) model.MonthlyStats {
	var totalIncome, totalExpenses float64
	categoryTotals := make(map[string]float64)

	for _, t := range txns {
		if t.Date.Year() != year || t.Date.Month() != month {
			continue
		}

		amount := currency.ConvertToHome(t.Amount, t.Currency)
		switch t.Kind {
		case model.KindIncome:
			totalIncome += amount
		case model.KindExpense:
			totalExpenses += amount
			categoryTotals[t.CategoryID] += amount
		}
	}

	savings := totalIncome - totalExpenses
	var savingsRate float64
	if totalIncome > 0 {
		savingsRate = savings / totalIncome * 100
	}

	return model.MonthlyStats{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		Savings:       savings,
		SavingsRate:   savingsRate,
		TopCategories: topCategories(categoryTotals, categories, totalExpenses),
	}
}

// topCategories ranks expense groups by converted amount, resolving display
// names through the category list and degrading to "Unknown" for ids that no
// longer resolve. Percentages are computed against the full expense total,
// not the top-5 subset.
func topCategories(totals map[string]float64, categories []model.Category, totalExpenses float64) []model.CategorySpend {
	spends := make([]model.CategorySpend, 0, len(totals))
	for id, amount := range totals {
		var percentage float64
		if totalExpenses > 0 {
			percentage = amount / totalExpenses * 100
		}
		spends = append(spends, model.CategorySpend{
			Category:   categoryName(categories, id),
			Amount:     amount,
			Percentage: percentage,
		})
	}

	sort.Slice(spends, func(i, j int) bool {
		if spends[i].Amount != spends[j].Amount {
			return spends[i].Amount > spends[j].Amount
		}
		return spends[i].Category < spends[j].Category
	})

	if len(spends) > topCategoryLimit {
		spends = spends[:topCategoryLimit]
	}
	return spends
}

func categoryName(categories []model.Category, id string) string {
	for i := range categories {
		if categories[i].ID == id {
			return categories[i].Name
		}
	}
	return model.UnknownCategoryName
}
