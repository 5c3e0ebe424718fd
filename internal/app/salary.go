package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kasaapp/kasa/internal/common"
	"github.com/kasaapp/kasa/internal/engine"
	"github.com/kasaapp/kasa/internal/model"
)

// errSetupRequired tells the user how to get unstuck before onboarding.
func errSetupRequired() error {
	return common.NewUserError("run 'kasa setup' first to configure your salary", common.ErrSetupIncomplete)
}

// SalaryStatus computes today's position relative to the pay window.
func (a *App) SalaryStatus() (model.SalaryStatus, error) {
	if a.profile == nil {
		return model.SalaryStatus{}, errSetupRequired()
	}
	return engine.SalaryStatus(&a.profile.SalaryInfo, a.lastSalaryDate, a.now()), nil
}

// NextPayment returns the upcoming salary date and days until it.
func (a *App) NextPayment() (model.NextPayment, error) {
	if a.profile == nil {
		return model.NextPayment{}, errSetupRequired()
	}
	return engine.NextPaymentInfo(&a.profile.SalaryInfo, a.now()), nil
}

// MarkSalaryReceived records that salary landed now: it stores the receipt
// instant and appends the matching income transaction against the salary
// category. The returned transaction lets the caller confirm what was
// recorded; the caller should then prompt for last month's absences.
func (a *App) MarkSalaryReceived(ctx context.Context) (model.Transaction, error) {
	if a.profile == nil {
		return model.Transaction{}, errSetupRequired()
	}

	now := a.now()
	if err := a.store.SetLastSalaryDate(ctx, now); err != nil {
		return model.Transaction{}, err
	}
	a.lastSalaryDate = &now

	txn, err := a.AddTransaction(ctx, model.Transaction{
		Amount:      a.profile.SalaryInfo.Amount,
		Currency:    a.profile.SalaryInfo.Currency,
		CategoryID:  model.SalaryCategoryID,
		Description: "Monthly Salary",
		Date:        now,
		Kind:        model.KindIncome,
	})
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to record salary income: %w", err)
	}

	slog.Info("salary marked received", "date", now, "amount", txn.Amount, "currency", txn.Currency)
	return txn, nil
}

// SaveAttendance replaces the recorded absences and folds them into the
// next-month salary projection on the profile. The projection is derived
// from the configured salary amount each time, so saving the same list
// twice cannot compound the deduction.
func (a *App) SaveAttendance(ctx context.Context, absences []model.Attendance) (float64, error) {
	if a.profile == nil {
		return 0, errSetupRequired()
	}

	dailyRate, estimate := engine.ProjectNextMonth(&a.profile.SalaryInfo, absences)

	updated := *a.profile
	updated.SalaryInfo.Absences = absences
	updated.SalaryInfo.DailyRate = dailyRate
	updated.SalaryInfo.NextMonthEstimate = estimate
	updated.SalaryInfo.HasEstimate = true
	updated.SalaryInfo.WorkingDaysPerMonth = a.profile.SalaryInfo.WorkingDays()

	if err := a.UpdateProfile(ctx, &updated); err != nil {
		return 0, err
	}

	slog.Info("attendance saved",
		"absences", len(absences),
		"daily_rate", dailyRate,
		"next_month_estimate", estimate)
	return estimate, nil
}
