// Package currency holds the fixed currency table and conversion helpers.
// Rates are static reference data relative to the home currency; there is no
// live exchange-rate source in this application.
package currency

import "github.com/kasaapp/kasa/internal/model"

// HomeCode is the currency all aggregated statistics are reported in.
const HomeCode = "TRY"

// Supported is the full currency table. The home currency always carries
// rate 1; every other rate converts one unit into the home currency.
var Supported = []model.Currency{
	{Code: "TRY", Name: "Turkish Lira", Symbol: "₺", Rate: 1},
	{Code: "USD", Name: "US Dollar", Symbol: "$", Rate: 34.5},
	{Code: "EUR", Name: "Euro", Symbol: "€", Rate: 36.8},
	{Code: "GBP", Name: "British Pound", Symbol: "£", Rate: 43.2},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF", Rate: 38.1},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$", Rate: 24.3},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$", Rate: 21.8},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥", Rate: 0.23},
}

// Lookup returns the currency for a code, or nil if the code is not in the
// table.
func Lookup(code string) *model.Currency {
	for i := range Supported {
		if Supported[i].Code == code {
			return &Supported[i]
		}
	}
	return nil
}

// IsSupported reports whether the code exists in the currency table.
func IsSupported(code string) bool {
	return Lookup(code) != nil
}

// ConvertToHome converts an amount in the given currency to the home
// currency. Home-currency amounts pass through unchanged, as do amounts in
// codes missing from the table.
func ConvertToHome(amount float64, code string) float64 {
	if code == HomeCode {
		return amount
	}
	c := Lookup(code)
	if c == nil {
		return amount
	}
	return amount * c.Rate
}

// Symbol returns the display symbol for a code, falling back to the code
// itself.
func Symbol(code string) string {
	if c := Lookup(code); c != nil {
		return c.Symbol
	}
	return code
}
