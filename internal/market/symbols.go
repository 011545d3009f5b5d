package market

import "strings"

// PopularSymbols is the default tracked symbol list, grouped by sector in
// source order.
var PopularSymbols = []string{
	// Technology
	"AAPL", "GOOGL", "MSFT", "AMZN", "META", "TSLA", "NVDA", "NFLX", "ADBE", "CRM",
	"ORCL", "INTC", "AMD", "PYPL", "SHOP",
	// Financial services
	"JPM", "BAC", "WFC", "GS", "MS", "C", "AXP", "BLK", "SCHW", "USB",
	// Healthcare
	"JNJ", "PFE", "UNH", "ABT", "TMO", "DHR", "BMY", "ABBV", "MRK", "GILD",
	// Consumer
	"KO", "PEP", "PG", "WMT", "HD", "MCD", "DIS", "NKE", "SBUX", "TGT",
	// Energy
	"XOM", "CVX", "COP", "EOG", "SLB",
	// Industrial
	"BA", "CAT", "GE", "MMM", "HON", "UPS", "FDX", "RTX", "LMT", "NOC",
}

// ValidSymbol reports whether a string looks like a stock ticker:
// 1 to 5 letters after trimming and uppercasing.
func ValidSymbol(symbol string) bool {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if len(symbol) < 1 || len(symbol) > 5 {
		return false
	}
	for _, r := range symbol {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// NormalizeSymbol trims and uppercases a ticker.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
