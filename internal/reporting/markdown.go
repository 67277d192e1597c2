package reporting

import (
	"fmt"
	"strings"
	"time"

	"trade-journal-lab/internal/domain"
)

// RenderMarkdown renders the report as a Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	sb.WriteString("# Performance Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))

	renderMetrics(&sb, r)
	renderLabelStats(&sb, "Sessions", r.Sessions)
	renderLabelStats(&sb, "Setups", r.Setups)
	renderMonth(&sb, r)
	renderYear(&sb, r)
	renderInsights(&sb, r)

	return sb.String()
}

func renderMetrics(sb *strings.Builder, r *Report) {
	sb.WriteString("## Metrics\n\n")
	m := r.Metrics
	if m == nil || m.TotalTrades == 0 {
		sb.WriteString("No trades recorded.\n\n")
		return
	}

	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total Trades | %d |\n", m.TotalTrades))
	sb.WriteString(fmt.Sprintf("| Wins / Losses | %d / %d |\n", m.Wins, m.Losses))
	sb.WriteString(fmt.Sprintf("| Win Rate | %.1f%% |\n", m.WinRate))
	sb.WriteString(fmt.Sprintf("| Avg Win / Avg Loss | %.2f / %.2f |\n", m.AvgWin, m.AvgLoss))
	sb.WriteString(fmt.Sprintf("| Expectancy | %.2f |\n", m.Expectancy))
	sb.WriteString(fmt.Sprintf("| Projected per 100 trades | %.2f |\n", m.ProjectedPer100))
	sb.WriteString(fmt.Sprintf("| Max Win / Loss Streak | %d / %d |\n", m.MaxWinStreak, m.MaxLossStreak))
	sb.WriteString(fmt.Sprintf("| Max / Avg Drawdown | %.2f / %.2f |\n", m.MaxDrawdown, m.AvgDrawdown))
	sb.WriteString(fmt.Sprintf("| Avg Achieved / Target RR | %.2f / %.2f |\n", m.AvgAchievedRR, m.AvgTargetRR))
	sb.WriteString(fmt.Sprintf("| Consistency Score | %.0f |\n", m.ConsistencyScore))
	sb.WriteString(fmt.Sprintf("| Net Outcome | %.2f |\n", m.NetOutcome))

	if m.BestTrade != nil {
		sb.WriteString(fmt.Sprintf("| Best Trade | %s %+.2f |\n", m.BestTrade.Symbol, m.BestTrade.Outcome))
	}
	if m.WorstTrade != nil {
		sb.WriteString(fmt.Sprintf("| Worst Trade | %s %+.2f |\n", m.WorstTrade.Symbol, m.WorstTrade.Outcome))
	}
	sb.WriteString("\n")
}

func renderLabelStats(sb *strings.Builder, title string, stats []domain.LabelStats) {
	sb.WriteString("## " + title + "\n\n")
	if len(stats) == 0 {
		sb.WriteString("No data.\n\n")
		return
	}
	sb.WriteString("| Label | Trades | Wins | Win Rate | Net |\n")
	sb.WriteString("|-------|--------|------|----------|-----|\n")
	for _, s := range stats {
		sb.WriteString(fmt.Sprintf("| %s | %d | %d | %.1f%% | %.2f |\n",
			s.Label, s.Trades, s.Wins, s.WinRate, s.NetOutcome))
	}
	sb.WriteString("\n")
}

func renderMonth(sb *strings.Builder, r *Report) {
	if r.Month == nil {
		return
	}
	v := r.Month
	sb.WriteString(fmt.Sprintf("## Calendar — %s %d\n\n", v.Month, v.Year))
	sb.WriteString("| Sun | Mon | Tue | Wed | Thu | Fri | Sat |\n")
	sb.WriteString("|-----|-----|-----|-----|-----|-----|-----|\n")
	for _, week := range v.Weeks {
		sb.WriteString("|")
		for _, cell := range week.Days {
			if cell == nil {
				sb.WriteString(" — |")
				continue
			}
			if len(cell.Trades) == 0 {
				sb.WriteString(fmt.Sprintf(" %d |", cell.Date.Day()))
				continue
			}
			sb.WriteString(fmt.Sprintf(" %d: %d trades, %s |",
				cell.Date.Day(), len(cell.Trades), cell.TotalPnl.StringFixed(2)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("\nMonth total: %d trades, net %s\n\n",
		v.TotalTrades, v.NetPnl.StringFixed(2)))
}

func renderYear(sb *strings.Builder, r *Report) {
	if r.Year == nil {
		return
	}
	v := r.Year
	sb.WriteString(fmt.Sprintf("## Year %d\n\n", v.Year))
	sb.WriteString("| Month | Trades | Net P&L |\n")
	sb.WriteString("|-------|--------|--------|\n")
	for _, m := range v.Months {
		sb.WriteString(fmt.Sprintf("| %s | %d | %s |\n", m.Month, m.Trades, m.NetPnl.StringFixed(2)))
	}
	sb.WriteString(fmt.Sprintf("\nYear net: %s | Avg/month: %s\n", v.NetPnl.StringFixed(2), v.AvgPerMonth.StringFixed(2)))
	if v.BestMonth != nil {
		sb.WriteString(fmt.Sprintf("Best month: %s (%s)\n", v.BestMonth.Month, v.BestMonth.NetPnl.StringFixed(2)))
	}
	sb.WriteString("\n")
}

func renderInsights(sb *strings.Builder, r *Report) {
	if r.Insights == nil {
		return
	}
	ins := r.Insights
	sb.WriteString("## Coaching\n\n")
	sb.WriteString(fmt.Sprintf("**%s** — %s\n\n", ins.Summary.Headline, ins.Summary.Detail))

	if ins.Mistake != nil {
		sb.WriteString("### Largest Loss\n\n")
		sb.WriteString(fmt.Sprintf("%s, -%.2f (%s)\n\n", ins.Mistake.Symbol, ins.Mistake.LossAmount, ins.Mistake.Category))
		sb.WriteString(ins.Mistake.Explanation + "\n\n")
		sb.WriteString("Remediation: " + ins.Mistake.Remediation + "\n\n")
	}

	sb.WriteString("### Action Plan (advisory)\n\n")
	sb.WriteString(fmt.Sprintf("- Max trades per day: %d\n", ins.Plan.MaxTradesPerDay))
	sb.WriteString(fmt.Sprintf("- Max stop size: %d points\n", ins.Plan.MaxStopPoints))
	sb.WriteString(fmt.Sprintf("- Minimum reward:risk: %.1f\n", ins.Plan.MinRewardRisk))
	sb.WriteString(fmt.Sprintf("- Stop after %d consecutive losses\n", ins.Plan.StopAfterLossStreak))
}
