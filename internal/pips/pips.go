// Package pips derives pip sizes per instrument class and converts
// between price distances, points and risk-reward ratios.
package pips

import "strings"

// DefaultPipSize is the generic forex pip size.
const DefaultPipSize = 0.0001

// pipRule pairs a predicate with the pip size it implies. Rules are
// evaluated top to bottom; order carries the priority semantics
// (JPY before the metals family, exact futures codes before the
// default).
type pipRule struct {
	name  string
	match func(sym string) bool
	size  float64
}

var metalEnergyCryptoKeywords = []string{
	"XAU", "XAG", "XPT", "XPD", "GOLD", "SILVER",
	"OIL", "WTI", "BRENT", "NGAS", "NATGAS",
	"BTC", "ETH", "SOL", "XRP", "LTC", "ADA", "DOGE", "BNB", "CRYPTO",
}

var indexKeywords = []string{
	"SPX", "US500", "NAS", "US100", "NDX", "US30", "DOW", "DJI",
	"GER", "DAX", "DE40", "UK100", "FTSE", "FRA40", "CAC",
	"JP225", "NIKKEI", "NI225", "AUS200", "HK50", "STOXX", "US2000",
}

// futuresPipSizes holds per-contract tick sizes for the curated codes.
var futuresPipSizes = map[string]float64{
	"ES":  0.25,
	"NQ":  0.25,
	"YM":  1,
	"RTY": 0.1,
	"GC":  0.1,
	"CL":  0.01,
}

var pipRules = []pipRule{
	{
		name:  "jpy pairs",
		match: func(sym string) bool { return strings.Contains(sym, "JPY") },
		size:  0.01,
	},
	{
		name:  "metals, energies, crypto",
		match: containsAnyOf(metalEnergyCryptoKeywords),
		size:  0.01,
	},
	{
		name:  "indices",
		match: containsAnyOf(indexKeywords),
		size:  1,
	},
	{
		name: "futures codes",
		match: func(sym string) bool {
			_, ok := futuresPipSizes[sym]
			return ok
		},
		// size resolved per contract in PipSize
	},
}

func containsAnyOf(keywords []string) func(string) bool {
	return func(sym string) bool {
		for _, kw := range keywords {
			if strings.Contains(sym, kw) {
				return true
			}
		}
		return false
	}
}

// PipSize resolves the pip size of a symbol by evaluating the ordered
// rule list against the uppercased raw input. Always returns a value
// strictly greater than zero.
func PipSize(symbol string) float64 {
	sym := strings.ToUpper(strings.TrimSpace(symbol))
	for _, rule := range pipRules {
		if !rule.match(sym) {
			continue
		}
		if rule.size > 0 {
			return rule.size
		}
		return futuresPipSizes[sym]
	}
	return DefaultPipSize
}
