package domain

// MistakeCategory classifies the free-text loss reason of the largest
// loss in the record set.
type MistakeCategory string

const (
	MistakeEarlyExit    MistakeCategory = "EARLY_EXIT"
	MistakeEntryQuality MistakeCategory = "ENTRY_QUALITY"
	MistakeOther        MistakeCategory = "OTHER"
)

// Summary is the narrative portion of the coaching output.
type Summary struct {
	Headline string
	Detail   string

	WinRate         float64
	EarlyExitStreak bool
	EarlyExitCount  int
}

// MistakeAnalysis explains the single largest-magnitude loss.
type MistakeAnalysis struct {
	TradeID     string
	Symbol      string
	LossAmount  float64 // magnitude, positive
	Category    MistakeCategory
	Explanation string
	Remediation string
}

// ActionPlan holds advisory numeric guardrails derived from metrics.
// Heuristics, not guarantees.
type ActionPlan struct {
	MaxTradesPerDay     int
	MaxStopPoints       int
	MinRewardRisk       float64
	StopAfterLossStreak int
}

// Insights is the full coaching output. Mistake is nil when the record
// set contains no losing trade.
type Insights struct {
	Summary Summary
	Mistake *MistakeAnalysis
	Plan    ActionPlan
}
