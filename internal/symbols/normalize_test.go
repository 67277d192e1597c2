package symbols

import "testing"

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"lowercase", "eurusd", "EURUSD"},
		{"slash", "EUR/USD", "EURUSD"},
		{"whitespace", "  eur usd ", "EURUSD"},
		{"punctuation", "eur-usd.", "EURUSD"},
		{"digits kept", "nas100", "NAS100"},
		{"empty", "", ""},
		{"only punctuation", "--//--", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeKey(tt.raw); got != tt.want {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeKey_Idempotent(t *testing.T) {
	inputs := []string{"eur/usd", "  GOLD  ", "nas-100", "", "Xau.Usd", "btc usd!"}
	for _, raw := range inputs {
		once := NormalizeKey(raw)
		twice := NormalizeKey(once)
		if once != twice {
			t.Errorf("NormalizeKey not idempotent for %q: %q != %q", raw, once, twice)
		}
	}
}

func TestFormatDisplay_TableHits(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"eurusd", "EUR/USD"},
		{"EUR/USD", "EUR/USD"},
		{"GOLD", "XAU/USD"},
		{"xauusd", "XAU/USD"},
		{"silver", "XAG/USD"},
		{"us30", "US30"},
		{"spx500", "SPX500"},
		{"bitcoin", "BTC/USD"},
		{"es", "ES"},
		{"gc", "GC"},
	}
	for _, tt := range tests {
		if got := FormatDisplay(tt.raw); got != tt.want {
			t.Errorf("FormatDisplay(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestFormatDisplay_FallbackChain(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		// Digit check runs before any length heuristic: a 6-char
		// numeric ticker must not be slash-split.
		{"numeric ticker passes through", "DE30", "DE30"},
		{"six chars with digits not split", "AB12CD", "AB12CD"},
		{"six letters split 3/3", "sekjpy", "SEK/JPY"},
		{"seven letter X-USD split 3/4", "xptusdt", "XPT/USDT"},
		{"seven letters no X prefix unchanged", "ABCDEFG", "ABCDEFG"},
		{"short unknown unchanged", "ZW", "ZW"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDisplay(tt.raw); got != tt.want {
				t.Errorf("FormatDisplay(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormatDisplay_StableUnderReapplication(t *testing.T) {
	inputs := []string{"eurusd", "GOLD", "sekjpy", "xptusdt", "DE30", "zw"}
	for _, raw := range inputs {
		once := FormatDisplay(raw)
		twice := FormatDisplay(once)
		if once != twice {
			t.Errorf("FormatDisplay unstable for %q: %q != %q", raw, once, twice)
		}
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		query  string
		want   bool
	}{
		{"exact", "EURUSD", "eurusd", true},
		{"query substring of symbol", "EURUSD", "eur", true},
		{"symbol substring of query", "EUR", "eurusd", true},
		{"via display form", "GOLD", "xau", true},
		{"empty query matches", "EURUSD", "", true},
		{"no relation", "EURUSD", "nikkei", false},
		{"punctuation ignored", "eur/usd", "EUR-USD", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.symbol, tt.query); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.symbol, tt.query, got, tt.want)
			}
		})
	}
}
