package metrics

import (
	"sort"

	"trade-journal-lab/internal/domain"
)

// SessionBreakdown aggregates trades per session label. Unlabeled
// trades land in the "unspecified" bucket.
func SessionBreakdown(records []*domain.TradeRecord) []domain.LabelStats {
	return breakdown(records, (*domain.TradeRecord).SessionLabel)
}

// SetupBreakdown aggregates trades per setup label.
func SetupBreakdown(records []*domain.TradeRecord) []domain.LabelStats {
	return breakdown(records, (*domain.TradeRecord).SetupLabel)
}

func breakdown(records []*domain.TradeRecord, label func(*domain.TradeRecord) string) []domain.LabelStats {
	byLabel := make(map[string]*domain.LabelStats)
	for _, t := range records {
		l := label(t)
		stats, ok := byLabel[l]
		if !ok {
			stats = &domain.LabelStats{Label: l}
			byLabel[l] = stats
		}
		stats.Trades++
		if t.IsWin() {
			stats.Wins++
		}
		stats.NetOutcome += t.Outcome()
	}

	out := make([]domain.LabelStats, 0, len(byLabel))
	for _, stats := range byLabel {
		if stats.Trades > 0 {
			stats.WinRate = float64(stats.Wins) / float64(stats.Trades) * 100
		}
		out = append(out, *stats)
	}

	// Sorted by trade count DESC, label ASC for deterministic output.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Trades != out[j].Trades {
			return out[i].Trades > out[j].Trades
		}
		return out[i].Label < out[j].Label
	})
	return out
}
