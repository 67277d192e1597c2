package domain

import (
	"math"
	"time"
)

// Direction is the side a trade was opened on.
type Direction string

const (
	DirectionBuy  Direction = "BUY"
	DirectionSell Direction = "SELL"
)

// TradeResult classifies how a trade was closed.
type TradeResult string

const (
	ResultTakeProfit TradeResult = "TAKE_PROFIT"
	ResultStopLoss   TradeResult = "STOP_LOSS"
	ResultBreakeven  TradeResult = "BREAKEVEN"
	ResultManual     TradeResult = "MANUAL"
)

// LabelUnspecified is the sentinel bucket for records without a
// session or setup label.
const LabelUnspecified = "unspecified"

// TradeRecord is the immutable input unit of the analytics engine.
// Every numeric field the journal may leave blank is a pointer; nil
// means "not recorded" and defaults to zero at the aggregation boundary.
type TradeRecord struct {
	ID        string
	Symbol    string // free-text instrument string as entered
	Direction Direction

	// Timestamps. EntryAt drives calendar bucketing; CreatedAt is the
	// fallback when the user never filled in an entry time.
	EntryAt   *time.Time
	ExitAt    *time.Time
	CreatedAt time.Time

	// Prices and point distances. Point-based fields may substitute
	// for the price-based ones.
	EntryPrice     *float64
	ExitPrice      *float64
	StopLossPrice  *float64
	TargetPrice    *float64
	StopLossPoints *float64
	TargetPoints   *float64

	Result TradeResult

	// Signed outcome. RealizedAmount is authoritative when present,
	// RealizedPoints otherwise.
	RealizedAmount *float64
	RealizedPoints *float64

	// Win may be stored explicitly; when nil it is derived from the
	// sign of the resolved outcome.
	Win *bool

	// Free-text classification labels.
	Session string
	Setup   string

	// Emotional marks a trade the user flagged as emotionally driven.
	Emotional *bool

	// LossReason is the user's free-text note on why a loss happened.
	LossReason string
}

// Outcome resolves the single signed numeric outcome of the trade,
// preferring RealizedAmount over RealizedPoints. Missing or non-finite
// values resolve to 0.
func (t *TradeRecord) Outcome() float64 {
	if v := finiteOrNil(t.RealizedAmount); v != nil {
		return *v
	}
	if v := finiteOrNil(t.RealizedPoints); v != nil {
		return *v
	}
	return 0
}

// IsWin reports whether the trade counts as a win: the stored flag when
// present, otherwise a strictly positive outcome.
func (t *TradeRecord) IsWin() bool {
	if t.Win != nil {
		return *t.Win
	}
	return t.Outcome() > 0
}

// SessionLabel returns the session label or the sentinel bucket.
func (t *TradeRecord) SessionLabel() string {
	if t.Session == "" {
		return LabelUnspecified
	}
	return t.Session
}

// SetupLabel returns the setup label or the sentinel bucket.
func (t *TradeRecord) SetupLabel() string {
	if t.Setup == "" {
		return LabelUnspecified
	}
	return t.Setup
}

// DurationMinutes returns the held duration in whole minutes, floored
// at zero. Returns 0 when either timestamp is missing.
func (t *TradeRecord) DurationMinutes() int {
	if t.EntryAt == nil || t.ExitAt == nil {
		return 0
	}
	d := t.ExitAt.Sub(*t.EntryAt)
	if d < 0 {
		return 0
	}
	return int(d.Minutes())
}

// CalendarTime returns the timestamp that places the trade on the
// calendar: EntryAt, falling back to CreatedAt. ok is false when
// neither is set; such records are excluded from calendar views.
func (t *TradeRecord) CalendarTime() (time.Time, bool) {
	if t.EntryAt != nil {
		return *t.EntryAt, true
	}
	if !t.CreatedAt.IsZero() {
		return t.CreatedAt, true
	}
	return time.Time{}, false
}

func finiteOrNil(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	return v
}
