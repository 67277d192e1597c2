package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayCell is one real calendar day inside a month view. A day with no
// trades is still a real cell (empty Trades, zero total); only days
// outside the target month are represented as nil slots in a WeekRow.
type DayCell struct {
	DateKey  string // YYYY-MM-DD
	Date     time.Time
	Trades   []*TradeRecord
	TotalPnl decimal.Decimal
}

// WeekRow is one Sunday-first calendar row. Slots holding days outside
// the target month are nil padding.
type WeekRow struct {
	Days [7]*DayCell
}

// MonthView is a full month of week rows plus month-level roll-ups.
type MonthView struct {
	Year  int
	Month time.Month

	Weeks []WeekRow

	TotalTrades int
	NetPnl      decimal.Decimal
}

// MonthAggregate is the per-month roll-up used by YearView.
type MonthAggregate struct {
	Month  time.Month
	Trades int
	NetPnl decimal.Decimal
}

// YearView aggregates twelve months. BestMonth is nil when the year
// holds no trades.
type YearView struct {
	Year   int
	Months [12]MonthAggregate

	TotalTrades int
	NetPnl      decimal.Decimal
	AvgPerMonth decimal.Decimal
	BestMonth   *MonthAggregate
}
