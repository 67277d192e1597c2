package reporting

import (
	"fmt"
	"strings"

	"trade-journal-lab/internal/domain"
)

// RenderDailyCSV renders the per-day P&L of a month view as CSV.
// Padding slots are skipped; real zero-trade days are emitted with a
// zero row so the series stays gapless.
func RenderDailyCSV(month *domain.MonthView) string {
	var sb strings.Builder
	sb.WriteString("date,trades,net_pnl\n")
	if month == nil {
		return sb.String()
	}
	for _, week := range month.Weeks {
		for _, cell := range week.Days {
			if cell == nil {
				continue
			}
			sb.WriteString(fmt.Sprintf("%s,%d,%s\n",
				cell.DateKey, len(cell.Trades), cell.TotalPnl.StringFixed(2)))
		}
	}
	return sb.String()
}
