package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/kasaapp/kasa/internal/model"
)

// SalaryStatus computes where now falls relative to the configured pay
// window. Rules are evaluated in precedence order; the first match wins:
// received, due, delayed, overdue, then waiting.
func SalaryStatus(info *model.SalaryInfo, lastSalaryDate *time.Time, now time.Time) model.SalaryStatus {
	day := now.Day()

	if lastSalaryDate != nil &&
		lastSalaryDate.Month() == now.Month() &&
		lastSalaryDate.Year() == now.Year() {
		return model.SalaryStatus{State: model.SalaryReceived, Message: "Salary received"}
	}

	switch {
	case day >= info.PaymentStartDay && day <= info.PaymentEndDay:
		return model.SalaryStatus{State: model.SalaryDue, Message: "Salary is due!"}
	case day > info.PaymentEndDay && day <= info.PaymentEndDay+info.PossibleDelayDays:
		return model.SalaryStatus{State: model.SalaryDelayed, Message: "Salary may be delayed"}
	case day > info.PaymentEndDay+info.PossibleDelayDays:
		return model.SalaryStatus{State: model.SalaryOverdue, Message: "Salary is overdue"}
	default:
		daysLeft := info.PaymentStartDay - day
		return model.SalaryStatus{
			State:    model.SalaryWaiting,
			Message:  fmt.Sprintf("%d days until salary", daysLeft),
			DaysLeft: daysLeft,
		}
	}
}

// NextPaymentInfo returns the first pay-window day of next month and the
// number of calendar days until it, rounding partial days up.
func NextPaymentInfo(info *model.SalaryInfo, now time.Time) model.NextPayment {
	next := time.Date(now.Year(), now.Month()+1, info.PaymentStartDay,
		0, 0, 0, 0, now.Location())
	daysUntil := int(math.Ceil(next.Sub(now).Hours() / 24))
	return model.NextPayment{Date: next, DaysUntil: daysUntil}
}

// ProjectNextMonth computes the absence-adjusted estimate for next month's
// salary. The deduction is one daily rate per absence; the estimate is not
// clamped at zero, so a large absence count can drive it negative. The
// projection is recomputed from scratch on every call, so repeated runs over
// the same absence list never compound.
func ProjectNextMonth(info *model.SalaryInfo, absences []model.Attendance) (dailyRate, estimate float64) {
	dailyRate = info.Amount / float64(info.WorkingDays())
	deduction := dailyRate * float64(len(absences))
	return dailyRate, info.Amount - deduction
}
