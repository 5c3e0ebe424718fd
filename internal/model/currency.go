package model

// Currency is immutable reference data describing a supported currency.
// Rate is the multiplier that converts one unit of this currency into the
// home currency; the home currency's own rate is 1.
type Currency struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Rate   float64 `json:"rate"`
}
