package models

import "time"

// PricePoint is one daily close for a symbol.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// PriceSeries is an ordered (oldest first) sequence of daily closes.
// The pipeline treats it as read-only input.
type PriceSeries struct {
	Symbol string       `json:"symbol"`
	Points []PricePoint `json:"points"`
}
