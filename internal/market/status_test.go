package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2026-08-31 is a Monday.
func mondayAt(hour, minute int) time.Time {
	return time.Date(2026, 8, 31, hour, minute, 0, 0, time.UTC)
}

func TestStatusDuringTradingHours(t *testing.T) {
	status := Status(mondayAt(12, 0))

	assert.True(t, status.IsOpen)
	assert.Equal(t, "Market Close", status.NextEvent)
	assert.Equal(t, mondayAt(16, 0), status.NextEventTime)
	assert.Equal(t, 4*time.Hour, status.TimeUntilNext)
}

func TestStatusBeforeOpen(t *testing.T) {
	status := Status(mondayAt(8, 0))

	assert.False(t, status.IsOpen)
	assert.Equal(t, "Market Open", status.NextEvent)
	assert.Equal(t, mondayAt(9, 30), status.NextEventTime)
}

func TestStatusAfterClose(t *testing.T) {
	status := Status(mondayAt(17, 0))

	assert.False(t, status.IsOpen)
	assert.Equal(t, "Market Open", status.NextEvent)
	// The next session is Tuesday, not next Monday.
	assert.Equal(t, time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC), status.NextEventTime)
}

func TestStatusBoundaries(t *testing.T) {
	assert.True(t, Status(mondayAt(9, 30)).IsOpen, "opening bell is open")
	assert.True(t, Status(mondayAt(16, 0)).IsOpen, "closing bell is still open")
	assert.False(t, Status(mondayAt(9, 29)).IsOpen)
	assert.False(t, Status(mondayAt(16, 1)).IsOpen)
}

func TestStatusWeekend(t *testing.T) {
	saturday := time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC)
	status := Status(saturday)

	assert.False(t, status.IsOpen)
	assert.Equal(t, "Market Open", status.NextEvent)
	assert.Equal(t, time.Date(2026, 9, 7, 9, 30, 0, 0, time.UTC), status.NextEventTime)
	assert.Equal(t, time.Monday, status.NextEventTime.Weekday())
}

func TestValidSymbol(t *testing.T) {
	tests := []struct {
		symbol string
		valid  bool
	}{
		{"AAPL", true},
		{"aapl", true},
		{" msft ", true},
		{"F", true},
		{"GOOGL", true},
		{"TOOLONG", false},
		{"", false},
		{"BRK.B", false},
		{"1234", false},
		{"AA PL", false},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidSymbol(tt.symbol))
		})
	}
}

func TestNormalizeSymbol(t *testing.T) {
	assert.Equal(t, "AAPL", NormalizeSymbol(" aapl "))
	assert.Equal(t, "MSFT", NormalizeSymbol("MSFT"))
}

func TestPopularSymbolsAreValid(t *testing.T) {
	seen := make(map[string]bool, len(PopularSymbols))
	for _, symbol := range PopularSymbols {
		assert.True(t, ValidSymbol(symbol), symbol)
		assert.False(t, seen[symbol], "duplicate symbol %s", symbol)
		seen[symbol] = true
	}
}
