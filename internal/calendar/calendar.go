// Package calendar groups trades by local calendar date and rolls the
// day buckets up into week, month and year views.
package calendar

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"trade-journal-lab/internal/domain"
)

const dateKeyLayout = "2006-01-02"

// DateKey formats the calendar date of a timestamp in loc.
func DateKey(ts time.Time, loc *time.Location) string {
	return ts.In(loc).Format(dateKeyLayout)
}

// DayBuckets groups records by local calendar date of their entry
// time (created-at fallback). Records without any timestamp are
// excluded entirely. Trades within a bucket are ordered by time ASC,
// ID ASC.
func DayBuckets(records []*domain.TradeRecord, loc *time.Location) map[string]*domain.DayCell {
	if loc == nil {
		loc = time.Local
	}

	buckets := make(map[string]*domain.DayCell)
	for _, t := range records {
		ts, ok := t.CalendarTime()
		if !ok {
			continue
		}
		local := ts.In(loc)
		key := local.Format(dateKeyLayout)

		cell, exists := buckets[key]
		if !exists {
			cell = &domain.DayCell{
				DateKey: key,
				Date:    time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc),
			}
			buckets[key] = cell
		}
		cell.Trades = append(cell.Trades, t)
		cell.TotalPnl = cell.TotalPnl.Add(decimal.NewFromFloat(t.Outcome()))
	}

	for _, cell := range buckets {
		sort.SliceStable(cell.Trades, func(i, j int) bool {
			ti, _ := cell.Trades[i].CalendarTime()
			tj, _ := cell.Trades[j].CalendarTime()
			if !ti.Equal(tj) {
				return ti.Before(tj)
			}
			return cell.Trades[i].ID < cell.Trades[j].ID
		})
	}
	return buckets
}

// MonthOf builds the month view for (year, month): Sunday-first week
// rows where days outside the month are nil padding slots and days
// inside the month are always real cells, trades or not.
func MonthOf(records []*domain.TradeRecord, year int, month time.Month, loc *time.Location) *domain.MonthView {
	if loc == nil {
		loc = time.Local
	}

	buckets := DayBuckets(records, loc)

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	view := &domain.MonthView{Year: year, Month: month}

	week := domain.WeekRow{}
	slot := int(first.Weekday()) // Sunday-first: leading nil padding

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, loc)
		key := date.Format(dateKeyLayout)

		cell := buckets[key]
		if cell == nil {
			// A real in-month day with zero trades, not a padding slot.
			cell = &domain.DayCell{DateKey: key, Date: date}
		}
		week.Days[slot] = cell
		view.TotalTrades += len(cell.Trades)
		view.NetPnl = view.NetPnl.Add(cell.TotalPnl)

		slot++
		if slot == 7 {
			view.Weeks = append(view.Weeks, week)
			week = domain.WeekRow{}
			slot = 0
		}
	}
	if slot > 0 {
		view.Weeks = append(view.Weeks, week)
	}
	return view
}

// YearOf builds twelve month aggregates plus year-level roll-ups.
func YearOf(records []*domain.TradeRecord, year int, loc *time.Location) *domain.YearView {
	if loc == nil {
		loc = time.Local
	}

	view := &domain.YearView{Year: year}
	for i := range view.Months {
		view.Months[i].Month = time.Month(i + 1)
	}

	for _, cell := range DayBuckets(records, loc) {
		if cell.Date.Year() != year {
			continue
		}
		m := &view.Months[int(cell.Date.Month())-1]
		m.Trades += len(cell.Trades)
		m.NetPnl = m.NetPnl.Add(cell.TotalPnl)

		view.TotalTrades += len(cell.Trades)
		view.NetPnl = view.NetPnl.Add(cell.TotalPnl)
	}

	view.AvgPerMonth = view.NetPnl.Div(decimal.NewFromInt(12))

	for i := range view.Months {
		m := view.Months[i]
		if m.Trades == 0 {
			continue
		}
		if view.BestMonth == nil || m.NetPnl.GreaterThan(view.BestMonth.NetPnl) {
			best := m
			view.BestMonth = &best
		}
	}
	return view
}
