package pips

import "math"

// MaxRR caps any risk-reward ratio. A near-zero risk denominator would
// otherwise produce an outlier that skews every downstream average.
const MaxRR = 50.0

// PointsFromPrices converts an absolute price distance into rounded
// points for the symbol. Returns 0 when either price is non-finite or
// the pip size is non-positive.
func PointsFromPrices(priceA, priceB float64, symbol string) int {
	if !isFinite(priceA) || !isFinite(priceB) {
		return 0
	}
	pip := PipSize(symbol)
	if pip <= 0 {
		return 0
	}
	return int(math.Round(math.Abs(priceA-priceB) / pip))
}

// PriceFromPoints converts a point distance back into a price distance.
func PriceFromPoints(points float64, symbol string) float64 {
	return points * PipSize(symbol)
}

// RRFromPoints computes reward/risk from point distances. Returns 0
// when either argument is not strictly positive.
func RRFromPoints(riskPoints, rewardPoints float64) float64 {
	if riskPoints <= 0 || rewardPoints <= 0 {
		return 0
	}
	return rewardPoints / riskPoints
}

// RRFromPrices computes |tp-entry| / |entry-sl| clamped to [0, MaxRR].
func RRFromPrices(entry, tp, sl float64) float64 {
	if !isFinite(entry) || !isFinite(tp) || !isFinite(sl) {
		return 0
	}
	risk := math.Abs(entry - sl)
	if risk == 0 {
		return 0
	}
	return SafeRR(math.Abs(tp-entry) / risk)
}

// AchievedRRFromAmount computes realized outcome relative to the risked
// amount. Returns 0 when the risk amount is 0 or non-finite.
func AchievedRRFromAmount(realizedAmount, riskAmount float64) float64 {
	if !isFinite(riskAmount) || riskAmount == 0 {
		return 0
	}
	return realizedAmount / riskAmount
}

// SafeRR is the single gatekeeper every RR value passes through before
// entering an aggregate: non-finite input yields 0, the result is
// clamped to [0, MaxRR].
func SafeRR(value float64) float64 {
	if !isFinite(value) || value < 0 {
		return 0
	}
	if value > MaxRR {
		return MaxRR
	}
	return value
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
