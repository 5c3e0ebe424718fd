package engine

import (
	"fmt"
	"time"

	"github.com/kasaapp/kasa/internal/currency"
	"github.com/kasaapp/kasa/internal/model"
)

// Advice thresholds.
const (
	lowSavingsRate      = 10.0
	goodSavingsRate     = 20.0
	highCategoryPercent = 40.0
	savingsTargetShare  = 0.10
)

// GenerateAdvice produces the ordered budget advice list from the month's
// stats and the salary schedule. Rules run independently in a fixed order;
// more than one can fire. A nil stats or profile yields no advice.
func GenerateAdvice(stats *model.MonthlyStats, profile *model.UserProfile, now time.Time) []model.BudgetAdvice {
	if stats == nil || profile == nil {
		return nil
	}

	var advice []model.BudgetAdvice

	if stats.SavingsRate < lowSavingsRate {
		advice = append(advice, model.BudgetAdvice{
			Kind:        model.AdviceWarning,
			Title:       "Low Savings Rate",
			Description: "Try to save at least 10% of your monthly income. Review your expenses for cuts.",
			Amount:      stats.TotalIncome * savingsTargetShare,
			Currency:    currency.HomeCode,
			HasAmount:   true,
		})
	} else if stats.SavingsRate >= goodSavingsRate {
		advice = append(advice, model.BudgetAdvice{
			Kind:        model.AdviceSavings,
			Title:       "Great Savings!",
			Description: fmt.Sprintf("You are saving %.1f%% of your monthly income. Keep it up!", stats.SavingsRate),
		})
	}

	day := now.Day()
	endDay := profile.SalaryInfo.PaymentEndDay
	delayDays := profile.SalaryInfo.PossibleDelayDays
	if day > endDay && day <= endDay+delayDays {
		advice = append(advice, model.BudgetAdvice{
			Kind:        model.AdviceInfo,
			Title:       "Salary Delay Warning",
			Description: "Your expected salary date has passed. Keep spending under control.",
		})
	}

	if len(stats.TopCategories) > 0 {
		top := stats.TopCategories[0]
		if top.Percentage > highCategoryPercent {
			advice = append(advice, model.BudgetAdvice{
				Kind:        model.AdviceWarning,
				Title:       "High Category Spending",
				Description: fmt.Sprintf("%s accounts for %.1f%% of your monthly expenses.", top.Category, top.Percentage),
				Amount:      top.Amount,
				Currency:    currency.HomeCode,
				HasAmount:   true,
			})
		}
	}

	return advice
}
