package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasaapp/kasa/internal/model"
)

func advisorProfile() *model.UserProfile {
	return &model.UserProfile{
		SalaryInfo: model.SalaryInfo{
			Amount:            22000,
			Currency:          "TRY",
			PaymentStartDay:   1,
			PaymentEndDay:     5,
			PossibleDelayDays: 3,
		},
	}
}

// midMonth is outside both the pay window and the grace days, so the
// delay rule stays quiet unless a test wants it.
var midMonth = time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local)

func TestGenerateAdvice_NilInputs(t *testing.T) {
	assert.Nil(t, GenerateAdvice(nil, advisorProfile(), midMonth))
	assert.Nil(t, GenerateAdvice(&model.MonthlyStats{}, nil, midMonth))
}

func TestGenerateAdvice_LowSavingsRate(t *testing.T) {
	stats := &model.MonthlyStats{
		TotalIncome:   10000,
		TotalExpenses: 9500,
		Savings:       500,
		SavingsRate:   5,
	}

	advice := GenerateAdvice(stats, advisorProfile(), midMonth)

	require.Len(t, advice, 1)
	assert.Equal(t, model.AdviceWarning, advice[0].Kind)
	assert.Equal(t, "Low Savings Rate", advice[0].Title)
	assert.True(t, advice[0].HasAmount)
	assert.InDelta(t, 1000, advice[0].Amount, 1e-9) // 10% of income
	assert.Equal(t, "TRY", advice[0].Currency)
}

func TestGenerateAdvice_GreatSavings(t *testing.T) {
	stats := &model.MonthlyStats{
		TotalIncome:   10000,
		TotalExpenses: 7000,
		Savings:       3000,
		SavingsRate:   30,
	}

	advice := GenerateAdvice(stats, advisorProfile(), midMonth)

	require.Len(t, advice, 1)
	assert.Equal(t, model.AdviceSavings, advice[0].Kind)
	assert.Contains(t, advice[0].Description, "30.0%")
	assert.False(t, advice[0].HasAmount)
}

func TestGenerateAdvice_MiddlingSavingsRateIsQuiet(t *testing.T) {
	stats := &model.MonthlyStats{
		TotalIncome: 10000,
		SavingsRate: 15,
	}

	advice := GenerateAdvice(stats, advisorProfile(), midMonth)

	assert.Empty(t, advice)
}

func TestGenerateAdvice_SalaryDelayGraceWindow(t *testing.T) {
	stats := &model.MonthlyStats{
		TotalIncome: 10000,
		SavingsRate: 15,
	}

	tests := []struct {
		name     string
		day      int
		wantFire bool
	}{
		{name: "inside window does not fire", day: 3, wantFire: false},
		{name: "first grace day fires", day: 6, wantFire: true},
		{name: "last grace day fires", day: 8, wantFire: true},
		{name: "past grace does not fire", day: 9, wantFire: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Date(2024, 1, tt.day, 12, 0, 0, 0, time.Local)
			advice := GenerateAdvice(stats, advisorProfile(), now)

			fired := false
			for _, entry := range advice {
				if entry.Kind == model.AdviceInfo {
					fired = true
				}
			}
			assert.Equal(t, tt.wantFire, fired)
		})
	}
}

func TestGenerateAdvice_HighCategorySpending(t *testing.T) {
	stats := &model.MonthlyStats{
		TotalIncome:   10000,
		TotalExpenses: 8500,
		SavingsRate:   15,
		TopCategories: []model.CategorySpend{
			{Category: "Rent & Bills", Amount: 4250, Percentage: 50},
			{Category: "Food & Drink", Amount: 2000, Percentage: 23.5},
		},
	}

	advice := GenerateAdvice(stats, advisorProfile(), midMonth)

	require.Len(t, advice, 1)
	assert.Equal(t, model.AdviceWarning, advice[0].Kind)
	assert.Equal(t, "High Category Spending", advice[0].Title)
	assert.Contains(t, advice[0].Description, "Rent & Bills")
	assert.InDelta(t, 4250, advice[0].Amount, 1e-9)
}

func TestGenerateAdvice_TopCategoryAtThresholdIsQuiet(t *testing.T) {
	stats := &model.MonthlyStats{
		TotalIncome: 10000,
		SavingsRate: 15,
		TopCategories: []model.CategorySpend{
			{Category: "Food & Drink", Amount: 4000, Percentage: 40},
		},
	}

	advice := GenerateAdvice(stats, advisorProfile(), midMonth)

	assert.Empty(t, advice)
}

func TestGenerateAdvice_RulesStack(t *testing.T) {
	// Low savings, inside the grace window, and a dominant category all at
	// once: three entries, in rule order.
	stats := &model.MonthlyStats{
		TotalIncome:   10000,
		TotalExpenses: 9500,
		SavingsRate:   5,
		TopCategories: []model.CategorySpend{
			{Category: "Shopping", Amount: 5000, Percentage: 52.6},
		},
	}
	now := time.Date(2024, 1, 7, 12, 0, 0, 0, time.Local)

	advice := GenerateAdvice(stats, advisorProfile(), now)

	require.Len(t, advice, 3)
	assert.Equal(t, model.AdviceWarning, advice[0].Kind)
	assert.Equal(t, model.AdviceInfo, advice[1].Kind)
	assert.Equal(t, model.AdviceWarning, advice[2].Kind)
}
