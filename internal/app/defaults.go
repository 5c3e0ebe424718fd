package app

import "github.com/kasaapp/kasa/internal/model"

// Default categories seeded on first run. Ids "1".."15" are reserved for
// these; user-created categories get timestamp ids.
var defaultExpenseCategories = []model.Category{
	{ID: "1", Name: "Food & Drink", Icon: "utensils", Color: "#FF6B6B", Kind: model.CategoryKindExpense},
	{ID: "2", Name: "Transport", Icon: "car", Color: "#4ECDC4", Kind: model.CategoryKindExpense},
	{ID: "3", Name: "Shopping", Icon: "shopping-bag", Color: "#45B7D1", Kind: model.CategoryKindExpense},
	{ID: "4", Name: "Entertainment", Icon: "film", Color: "#96CEB4", Kind: model.CategoryKindExpense},
	{ID: "5", Name: "Health", Icon: "heart", Color: "#FFEAA7", Kind: model.CategoryKindExpense},
	{ID: "6", Name: "Education", Icon: "book", Color: "#DDA0DD", Kind: model.CategoryKindExpense},
	{ID: "7", Name: "Rent & Bills", Icon: "home", Color: "#98D8C8", Kind: model.CategoryKindExpense},
	{ID: "8", Name: "Clothing", Icon: "shirt", Color: "#F7DC6F", Kind: model.CategoryKindExpense},
	{ID: "9", Name: "Technology", Icon: "smartphone", Color: "#BB8FCE", Kind: model.CategoryKindExpense},
	{ID: "10", Name: "Other", Icon: "more-horizontal", Color: "#AED6F1", Kind: model.CategoryKindExpense},
}

var defaultIncomeCategories = []model.Category{
	{ID: "11", Name: "Salary", Icon: "banknote", Color: "#52C41A", Kind: model.CategoryKindIncome},
	{ID: "12", Name: "Freelance", Icon: "briefcase", Color: "#1890FF", Kind: model.CategoryKindIncome},
	{ID: "13", Name: "Investment", Icon: "trending-up", Color: "#722ED1", Kind: model.CategoryKindIncome},
	{ID: "14", Name: "Bonus", Icon: "gift", Color: "#FA8C16", Kind: model.CategoryKindIncome},
	{ID: "15", Name: "Other Income", Icon: "plus-circle", Color: "#13C2C2", Kind: model.CategoryKindIncome},
}

// DefaultExpenseCategories returns a copy of the seed expense categories.
func DefaultExpenseCategories() []model.Category {
	out := make([]model.Category, len(defaultExpenseCategories))
	copy(out, defaultExpenseCategories)
	return out
}

// DefaultIncomeCategories returns a copy of the seed income categories.
func DefaultIncomeCategories() []model.Category {
	out := make([]model.Category, len(defaultIncomeCategories))
	copy(out, defaultIncomeCategories)
	return out
}
