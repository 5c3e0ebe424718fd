package model

import "time"

// Attendance records a single workday the user did or did not attend.
type Attendance struct {
	Date     string `json:"date"` // ISO date string
	Reason   string `json:"reason,omitempty"`
	IsAbsent bool   `json:"isAbsent"`
}

// DefaultWorkingDaysPerMonth is the divisor used for the daily rate when the
// profile does not specify one.
const DefaultWorkingDaysPerMonth = 22

// SalaryInfo holds the configured salary schedule plus the derived
// projection fields written back by the salary engine.
type SalaryInfo struct {
	Currency            string       `json:"currency"`
	Absences            []Attendance `json:"absences"`
	Amount              float64      `json:"amount"`
	PaymentStartDay     int          `json:"paymentStartDay"`
	PaymentEndDay       int          `json:"paymentEndDay"`
	PossibleDelayDays   int          `json:"possibleDelayDays"`
	WorkingDaysPerMonth int          `json:"workingDaysPerMonth,omitempty"`
	DailyRate           float64      `json:"dailyRate,omitempty"`
	NextMonthEstimate   float64      `json:"nextMonthEstimate,omitempty"`
	HasEstimate         bool         `json:"hasEstimate,omitempty"`
}

// WorkingDays returns the configured working days per month, falling back to
// the default divisor of 22.
func (s *SalaryInfo) WorkingDays() int {
	if s.WorkingDaysPerMonth > 0 {
		return s.WorkingDaysPerMonth
	}
	return DefaultWorkingDaysPerMonth
}

// SalaryState enumerates where today falls relative to the pay window.
type SalaryState string

const (
	// SalaryReceived means salary was already marked received this month.
	SalaryReceived SalaryState = "received"
	// SalaryDue means today is inside the pay window.
	SalaryDue SalaryState = "due"
	// SalaryDelayed means today is past the window but within the grace days.
	SalaryDelayed SalaryState = "delayed"
	// SalaryOverdue means today is past the window and the grace days.
	SalaryOverdue SalaryState = "overdue"
	// SalaryWaiting means the pay window has not opened yet.
	SalaryWaiting SalaryState = "waiting"
)

// SalaryStatus is the computed state exposed to the presentation layer.
type SalaryStatus struct {
	State    SalaryState
	Message  string
	DaysLeft int // populated only for SalaryWaiting
}

// NextPayment describes the upcoming salary date and the calendar days
// remaining until it.
type NextPayment struct {
	Date      time.Time
	DaysUntil int
}
