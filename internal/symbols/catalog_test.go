package symbols

import "testing"

func TestCatalog_WithExtras(t *testing.T) {
	extras := []byte("vix75: \"VIX 75\"\n\"ger-30\": GER30\n")

	cat, err := DefaultCatalog().WithExtras(extras)
	if err != nil {
		t.Fatalf("WithExtras: %v", err)
	}

	// Extra keys are normalized before insertion.
	if got := cat.FormatDisplay("VIX/75"); got != "VIX 75" {
		t.Errorf("FormatDisplay(VIX/75) = %q, want %q", got, "VIX 75")
	}
	if got := cat.FormatDisplay("ger30"); got != "GER30" {
		t.Errorf("FormatDisplay(ger30) = %q, want %q", got, "GER30")
	}

	// Built-ins survive the merge.
	if got := cat.FormatDisplay("eurusd"); got != "EUR/USD" {
		t.Errorf("FormatDisplay(eurusd) = %q, want %q", got, "EUR/USD")
	}

	// The default catalog is not mutated.
	if _, ok := DefaultCatalog().Display("VIX75"); ok {
		t.Error("WithExtras mutated the default catalog")
	}
}

func TestCatalog_WithExtras_Invalid(t *testing.T) {
	if _, err := DefaultCatalog().WithExtras([]byte("not: [valid")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestCatalog_WithExtras_SkipsEmptyEntries(t *testing.T) {
	cat, err := DefaultCatalog().WithExtras([]byte("\"--\": FOO\nbar: \"\"\n"))
	if err != nil {
		t.Fatalf("WithExtras: %v", err)
	}
	if cat.Len() != DefaultCatalog().Len() {
		t.Errorf("expected empty-key and empty-value entries to be skipped, got %d entries vs %d", cat.Len(), DefaultCatalog().Len())
	}
}
