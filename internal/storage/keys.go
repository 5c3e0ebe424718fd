package storage

// Store keys. Each key holds one JSON-serialized unit of persistence and is
// independently readable and writable. There is no schema versioning on the
// values themselves: a malformed value is logged and treated as absent.
const (
	keyUserProfile       = "user_profile"
	keyTransactions      = "transactions"
	keySetupCompleted    = "setup_completed"
	keyLastSalaryDate    = "last_salary_date"
	keyExpenseCategories = "expense_categories"
	keyIncomeCategories  = "income_categories"
)
