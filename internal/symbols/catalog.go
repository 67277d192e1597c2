package symbols

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// instrumentTable maps canonical keys to display forms. Keys must be
// uppercase alphanumeric (the NormalizeKey form). Extending the table
// is a data change, not a logic change.
var instrumentTable = map[string]string{
	// Forex majors
	"EURUSD": "EUR/USD",
	"GBPUSD": "GBP/USD",
	"USDJPY": "USD/JPY",
	"USDCHF": "USD/CHF",
	"AUDUSD": "AUD/USD",
	"NZDUSD": "NZD/USD",
	"USDCAD": "USD/CAD",

	// Forex crosses
	"EURGBP": "EUR/GBP",
	"EURJPY": "EUR/JPY",
	"EURCHF": "EUR/CHF",
	"EURAUD": "EUR/AUD",
	"EURNZD": "EUR/NZD",
	"EURCAD": "EUR/CAD",
	"GBPJPY": "GBP/JPY",
	"GBPCHF": "GBP/CHF",
	"GBPAUD": "GBP/AUD",
	"GBPNZD": "GBP/NZD",
	"GBPCAD": "GBP/CAD",
	"AUDJPY": "AUD/JPY",
	"AUDNZD": "AUD/NZD",
	"AUDCAD": "AUD/CAD",
	"AUDCHF": "AUD/CHF",
	"NZDJPY": "NZD/JPY",
	"NZDCAD": "NZD/CAD",
	"NZDCHF": "NZD/CHF",
	"CADJPY": "CAD/JPY",
	"CADCHF": "CAD/CHF",
	"CHFJPY": "CHF/JPY",

	// FX minors / exotics
	"USDSEK": "USD/SEK",
	"USDNOK": "USD/NOK",
	"USDMXN": "USD/MXN",
	"USDZAR": "USD/ZAR",
	"USDTRY": "USD/TRY",
	"USDSGD": "USD/SGD",
	"USDHKD": "USD/HKD",
	"USDPLN": "USD/PLN",

	// Metals
	"XAUUSD": "XAU/USD",
	"GOLD":   "XAU/USD",
	"XAGUSD": "XAG/USD",
	"SILVER": "XAG/USD",
	"XPTUSD": "XPT/USD",
	"XPDUSD": "XPD/USD",

	// Energies
	"USOIL":  "WTI",
	"WTI":    "WTI",
	"CRUDE":  "WTI",
	"UKOIL":  "BRENT",
	"BRENT":  "BRENT",
	"NGAS":   "NATGAS",
	"NATGAS": "NATGAS",

	// Agriculturals
	"WHEAT":  "WHEAT",
	"CORN":   "CORN",
	"SOYBEAN": "SOYBEAN",
	"COFFEE": "COFFEE",
	"SUGAR":  "SUGAR",
	"COTTON": "COTTON",
	"COCOA":  "COCOA",

	// Indices
	"SPX500": "SPX500",
	"US500":  "SPX500",
	"SPX":    "SPX500",
	"NAS100": "NAS100",
	"US100":  "NAS100",
	"NDX":    "NAS100",
	"US30":   "US30",
	"DJI":    "US30",
	"DOW":    "US30",
	"GER40":  "GER40",
	"DAX":    "GER40",
	"DE40":   "GER40",
	"UK100":  "UK100",
	"FTSE":   "UK100",
	"FTSE100": "UK100",
	"JP225":  "JP225",
	"NIKKEI": "JP225",
	"NI225":  "JP225",
	"FRA40":  "FRA40",
	"CAC40":  "FRA40",
	"AUS200": "AUS200",
	"HK50":   "HK50",
	"STOXX50": "STOXX50",
	"RUSSELL2000": "US2000",
	"US2000": "US2000",

	// Cryptocurrencies
	"BTCUSD": "BTC/USD",
	"BITCOIN": "BTC/USD",
	"ETHUSD": "ETH/USD",
	"ETHEREUM": "ETH/USD",
	"SOLUSD": "SOL/USD",
	"XRPUSD": "XRP/USD",
	"LTCUSD": "LTC/USD",
	"ADAUSD": "ADA/USD",
	"DOGEUSD": "DOGE/USD",
	"BNBUSD": "BNB/USD",

	// Futures contract codes
	"ES":  "ES",
	"NQ":  "NQ",
	"YM":  "YM",
	"RTY": "RTY",
	"GC":  "GC",
	"CL":  "CL",
	"MES": "MES",
	"MNQ": "MNQ",
}

// Catalog is an immutable instrument lookup table. The zero value is
// unusable; construct via DefaultCatalog or WithExtras.
type Catalog struct {
	entries map[string]string
}

// DefaultCatalog returns the built-in instrument table.
func DefaultCatalog() *Catalog {
	return &Catalog{entries: instrumentTable}
}

// WithExtras returns a new catalog containing the built-in table merged
// with user-supplied YAML entries (key: display). Extra keys are
// normalized before insertion; extras override built-ins on collision.
func (c *Catalog) WithExtras(yamlData []byte) (*Catalog, error) {
	var extras map[string]string
	if err := yaml.Unmarshal(yamlData, &extras); err != nil {
		return nil, fmt.Errorf("parsing catalog extras: %w", err)
	}

	merged := make(map[string]string, len(c.entries)+len(extras))
	for k, v := range c.entries {
		merged[k] = v
	}
	for k, v := range extras {
		key := NormalizeKey(k)
		if key == "" || v == "" {
			continue
		}
		merged[key] = v
	}
	return &Catalog{entries: merged}, nil
}

// Display looks up the canonical display form for a normalized key.
func (c *Catalog) Display(key string) (string, bool) {
	v, ok := c.entries[key]
	return v, ok
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
