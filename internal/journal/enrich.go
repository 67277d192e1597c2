package journal

import (
	"fmt"

	"trade-journal-lab/internal/domain"
	"trade-journal-lab/internal/idhash"
	"trade-journal-lab/internal/pips"
	"trade-journal-lab/internal/symbols"
)

// Enrich fills the derived fields an imported row may lack: a
// deterministic ID, the win flag from the outcome sign, and realized
// points from the entry/exit prices. Records already carrying a value
// are left untouched.
func Enrich(records []*domain.TradeRecord) {
	seen := make(map[string]int, len(records))
	for _, t := range records {
		if t.ID == "" {
			t.ID = deriveID(t, seen)
		}

		if t.Win == nil {
			if o := t.Outcome(); o != 0 {
				win := o > 0
				t.Win = &win
			}
		}

		if t.RealizedPoints == nil && t.EntryPrice != nil && t.ExitPrice != nil {
			pts := realizedPoints(t)
			t.RealizedPoints = &pts
		}
	}
}

func deriveID(t *domain.TradeRecord, seen map[string]int) string {
	var ms int64
	if ts, ok := t.CalendarTime(); ok {
		ms = ts.UnixMilli()
	}
	id := idhash.TradeID(symbols.NormalizeKey(t.Symbol), string(t.Direction), ms)
	n := seen[id]
	seen[id]++
	// Identical imported rows hash alike; suffix the duplicates so the
	// store still accepts them.
	if n > 0 {
		return fmt.Sprintf("%s-%d", id, n+1)
	}
	return id
}

// realizedPoints is the entry-to-exit distance in rounded points,
// signed by trade direction.
func realizedPoints(t *domain.TradeRecord) float64 {
	mag := float64(pips.PointsFromPrices(*t.EntryPrice, *t.ExitPrice, t.Symbol))
	if *t.ExitPrice < *t.EntryPrice {
		mag = -mag
	}
	if t.Direction == domain.DirectionSell {
		mag = -mag
	}
	return mag
}
