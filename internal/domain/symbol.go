package domain

// NormalizedSymbol pairs the stable lookup key of an instrument with
// its canonical display form. CanonicalKey is uppercase alphanumeric
// and stable under case, whitespace and punctuation variation of the
// same input.
type NormalizedSymbol struct {
	CanonicalKey string
	DisplayForm  string // e.g. "EUR/USD"
}
