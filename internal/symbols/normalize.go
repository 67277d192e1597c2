// Package symbols canonicalizes free-text instrument identifiers into
// a stable key and a display form.
package symbols

import (
	"strings"

	"trade-journal-lab/internal/domain"
)

// NormalizeKey strips all non-alphanumeric characters and uppercases
// the rest. Empty input yields an empty string, not an error.
// Idempotent: NormalizeKey(NormalizeKey(s)) == NormalizeKey(s).
func NormalizeKey(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z':
			sb.WriteRune(r - ('a' - 'A'))
		case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// FormatDisplay resolves the canonical display form of a free-text
// instrument string against the default catalog.
func FormatDisplay(raw string) string {
	return DefaultCatalog().FormatDisplay(raw)
}

// FormatDisplay looks up the normalized key in the catalog. On a miss
// the fallback chain runs in strict priority order: keys containing a
// digit pass through unchanged (numeric tickers must not be
// slash-split), then a 6-letter key splits 3/3 as an FX pair, then a
// 7-letter X..USD.. key splits 3/4, otherwise the key passes through.
func (c *Catalog) FormatDisplay(raw string) string {
	key := NormalizeKey(raw)
	if key == "" {
		return ""
	}
	if display, ok := c.Display(key); ok {
		return display
	}
	if strings.ContainsAny(key, "0123456789") {
		return key
	}
	if len(key) == 6 {
		return key[:3] + "/" + key[3:]
	}
	if len(key) == 7 && key[0] == 'X' && strings.Contains(key, "USD") {
		return key[:3] + "/" + key[3:]
	}
	return key
}

// Normalize returns both forms of a symbol in one call.
func Normalize(raw string) domain.NormalizedSymbol {
	return domain.NormalizedSymbol{
		CanonicalKey: NormalizeKey(raw),
		DisplayForm:  FormatDisplay(raw),
	}
}

// Matches reports whether a candidate symbol matches a filter query:
// exact normalized match, substring containment in either direction,
// or containment after display-formatting the candidate.
func Matches(symbol, query string) bool {
	s := NormalizeKey(symbol)
	q := NormalizeKey(query)
	if q == "" {
		return true
	}
	if s != "" && (strings.Contains(s, q) || strings.Contains(q, s)) {
		return true
	}
	d := NormalizeKey(FormatDisplay(symbol))
	if d == "" {
		return false
	}
	return strings.Contains(d, q) || strings.Contains(q, d)
}
