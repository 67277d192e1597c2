// Package metrics computes aggregate performance figures over a trade
// sequence: win rate, expectancy, streaks, drawdown and a bounded
// consistency score.
package metrics

import (
	"math"
	"sort"
	"time"

	"trade-journal-lab/internal/domain"
	"trade-journal-lab/internal/pips"
)

// Compute calculates the full MetricsResult from a slice of trades.
// Records are sorted by entry time ASC, ID ASC before the
// order-dependent passes (streaks, drawdown). Empty input returns the
// zero result with nil extremes; no field is ever NaN or Inf.
func Compute(records []*domain.TradeRecord) *domain.MetricsResult {
	n := len(records)
	res := &domain.MetricsResult{TotalTrades: n}
	if n == 0 {
		return res
	}

	sorted := sortChronological(records)

	outcomes := make([]float64, n)
	wins := 0
	for i, t := range sorted {
		outcomes[i] = t.Outcome()
		if t.IsWin() {
			wins++
		}
	}
	res.Wins = wins
	res.Losses = n - wins
	res.WinRate = float64(wins) / float64(n) * 100

	res.AvgWin = meanPositive(outcomes)
	res.AvgLoss = meanAbsNegative(outcomes)

	// Standard expectancy formula; operand order matters for the
	// per-100-trades projection.
	p := res.WinRate / 100
	res.Expectancy = (p * res.AvgWin) - ((1 - p) * res.AvgLoss)
	res.ProjectedPer100 = res.Expectancy * 100

	res.MaxWinStreak, res.MaxLossStreak = computeStreaks(sorted)
	res.MaxDrawdown, res.AvgDrawdown = computeDrawdown(outcomes)

	res.AvgAchievedRR = meanRR(sorted, achievedRR)
	res.AvgTargetRR = meanRR(sorted, targetRR)

	emotional := 0
	for _, t := range sorted {
		if t.Emotional != nil && *t.Emotional {
			emotional++
		}
	}
	res.EmotionalTradePct = float64(emotional) / float64(n) * 100
	res.ConsistencyScore = computeConsistency(res.WinRate, res.AvgAchievedRR, res.EmotionalTradePct)

	for _, o := range outcomes {
		res.NetOutcome += o
	}

	res.BestTrade, res.WorstTrade = computeExtremes(sorted, outcomes)

	return res
}

// sortChronological returns a sorted copy; the input is never mutated.
func sortChronological(records []*domain.TradeRecord) []*domain.TradeRecord {
	sorted := make([]*domain.TradeRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, _ := sorted[i].CalendarTime()
		tj, _ := sorted[j].CalendarTime()
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

func meanPositive(outcomes []float64) float64 {
	sum, count := 0.0, 0
	for _, o := range outcomes {
		if o > 0 {
			sum += o
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func meanAbsNegative(outcomes []float64) float64 {
	sum, count := 0.0, 0
	for _, o := range outcomes {
		if o < 0 {
			sum += -o
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// computeStreaks scans left to right tracking the current streak type
// and length. A streak is committed into its maximum on a type flip,
// and the streak still open at the end of the scan is flushed as well,
// so a trailing best streak is never under-reported.
func computeStreaks(trades []*domain.TradeRecord) (maxWin, maxLoss int) {
	current := 0
	currentIsWin := false

	commit := func() {
		if current == 0 {
			return
		}
		if currentIsWin {
			if current > maxWin {
				maxWin = current
			}
		} else if current > maxLoss {
			maxLoss = current
		}
	}

	for _, t := range trades {
		win := t.IsWin()
		if current == 0 || win == currentIsWin {
			currentIsWin = win
			current++
			continue
		}
		commit()
		currentIsWin = win
		current = 1
	}
	commit()
	return maxWin, maxLoss
}

// computeDrawdown walks cumulative equity against its running peak.
// Only strictly positive excursions below the peak count toward the
// average.
func computeDrawdown(outcomes []float64) (maxDD, avgDD float64) {
	cumulative := 0.0
	peak := 0.0
	sum, count := 0.0, 0

	for _, o := range outcomes {
		cumulative += o
		if cumulative > peak {
			peak = cumulative
		}
		dd := peak - cumulative
		if dd > maxDD {
			maxDD = dd
		}
		if dd > 0 {
			sum += dd
			count++
		}
	}
	if count > 0 {
		avgDD = sum / float64(count)
	}
	return maxDD, avgDD
}

// computeConsistency scores how much of the win rate is backed by
// achieved RR versus emotionally flagged trading. The max(0.1, ...)
// guard keeps the denominator away from zero when no trade is flagged.
func computeConsistency(winRatePct, avgAchievedRR, emotionalPct float64) float64 {
	score := (winRatePct / 100 * avgAchievedRR) / math.Max(0.1, emotionalPct/100) * 10
	if math.IsNaN(score) || math.IsInf(score, 0) || score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func computeExtremes(trades []*domain.TradeRecord, outcomes []float64) (best, worst *domain.TradeExtreme) {
	for i, t := range trades {
		o := outcomes[i]
		if best == nil || o > best.Outcome {
			best = &domain.TradeExtreme{TradeID: t.ID, Symbol: t.Symbol, Outcome: o}
		}
		if worst == nil || o < worst.Outcome {
			worst = &domain.TradeExtreme{TradeID: t.ID, Symbol: t.Symbol, Outcome: o}
		}
	}
	return best, worst
}

// meanRR averages an RR derivation over the trades that carry enough
// data for it. Every value has already passed the SafeRR gate.
func meanRR(trades []*domain.TradeRecord, derive func(*domain.TradeRecord) (float64, bool)) float64 {
	sum, count := 0.0, 0
	for _, t := range trades {
		if rr, ok := derive(t); ok {
			sum += rr
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// targetRR derives the planned reward/risk of a trade, preferring
// point distances over the price triple.
func targetRR(t *domain.TradeRecord) (float64, bool) {
	if t.StopLossPoints != nil && t.TargetPoints != nil {
		return pips.SafeRR(pips.RRFromPoints(*t.StopLossPoints, *t.TargetPoints)), true
	}
	if t.EntryPrice != nil && t.TargetPrice != nil && t.StopLossPrice != nil {
		return pips.SafeRR(pips.RRFromPrices(*t.EntryPrice, *t.TargetPrice, *t.StopLossPrice)), true
	}
	return 0, false
}

// achievedRR derives how many R the trade actually captured.
func achievedRR(t *domain.TradeRecord) (float64, bool) {
	risk := riskPoints(t)
	if risk <= 0 {
		return 0, false
	}
	if t.RealizedPoints != nil {
		return pips.SafeRR(*t.RealizedPoints / risk), true
	}
	if t.EntryPrice != nil && t.ExitPrice != nil {
		return pips.SafeRR(signedPoints(t) / risk), true
	}
	return 0, false
}

// riskPoints resolves the risked distance in points.
func riskPoints(t *domain.TradeRecord) float64 {
	if t.StopLossPoints != nil && *t.StopLossPoints > 0 {
		return *t.StopLossPoints
	}
	if t.EntryPrice != nil && t.StopLossPrice != nil {
		return float64(pips.PointsFromPrices(*t.EntryPrice, *t.StopLossPrice, t.Symbol))
	}
	return 0
}

// signedPoints is the entry-to-exit distance in points, signed by
// trade direction.
func signedPoints(t *domain.TradeRecord) float64 {
	pip := pips.PipSize(t.Symbol)
	diff := (*t.ExitPrice - *t.EntryPrice) / pip
	if t.Direction == domain.DirectionSell {
		diff = -diff
	}
	if math.IsNaN(diff) || math.IsInf(diff, 0) {
		return 0
	}
	return diff
}

// ComputeRange filters the sequence to trades whose calendar timestamp
// falls within [from, to] before computing. Records without any
// timestamp are excluded.
func ComputeRange(records []*domain.TradeRecord, from, to time.Time) *domain.MetricsResult {
	var filtered []*domain.TradeRecord
	for _, t := range records {
		ts, ok := t.CalendarTime()
		if !ok {
			continue
		}
		if ts.Before(from) || ts.After(to) {
			continue
		}
		filtered = append(filtered, t)
	}
	return Compute(filtered)
}
