package cli

import (
	"fmt"

	"github.com/kasaapp/kasa/internal/currency"
)

// FormatAmount renders a monetary amount with its currency symbol, e.g.
// "₺1250.00".
func FormatAmount(amount float64, code string) string {
	return fmt.Sprintf("%s%.2f", currency.Symbol(code), amount)
}

// FormatPercent renders a percentage with one decimal, e.g. "42.5%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
