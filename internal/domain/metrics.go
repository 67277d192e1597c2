package domain

// TradeExtreme attributes a single best or worst outcome to the trade
// that produced it. A nil *TradeExtreme means "no data", never ±Inf.
type TradeExtreme struct {
	TradeID string
	Symbol  string
	Outcome float64
}

// MetricsResult is the aggregate output of the metrics computation.
// Every numeric field is finite; empty inputs produce the zero value
// with nil extremes.
type MetricsResult struct {
	TotalTrades int
	Wins        int
	Losses      int

	WinRate float64 // percent, 0..100
	AvgWin  float64 // mean of strictly positive outcomes
	AvgLoss float64 // mean of |strictly negative outcomes|

	// Expectancy per trade, and its projection over 100 trades.
	Expectancy      float64
	ProjectedPer100 float64

	MaxWinStreak  int
	MaxLossStreak int

	MaxDrawdown float64
	AvgDrawdown float64 // mean of strictly positive excursions below peak

	AvgAchievedRR float64
	AvgTargetRR   float64

	// ConsistencyScore is bounded to [0, 100].
	ConsistencyScore  float64
	EmotionalTradePct float64

	NetOutcome float64

	BestTrade  *TradeExtreme
	WorstTrade *TradeExtreme
}

// LabelStats aggregates trades sharing one session or setup label.
type LabelStats struct {
	Label      string
	Trades     int
	Wins       int
	WinRate    float64 // percent, 0..100
	NetOutcome float64
}
