package model

// UserProfile is the onboarding output: the salary schedule plus which
// currencies the user records expenses and income in. It is persisted
// read-whole/write-whole as a single unit.
type UserProfile struct {
	SalaryInfo        SalaryInfo `json:"salaryInfo"`
	ExpenseCurrencies []string   `json:"expenseCurrencies"`
	IncomeCurrencies  []string   `json:"incomeCurrencies"`
	SetupCompleted    bool       `json:"setupCompleted"`
}
