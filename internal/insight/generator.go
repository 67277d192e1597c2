// Package insight turns metrics output into rule-based coaching text.
// Every branch is a deterministic decision table; there is no model
// call anywhere.
package insight

import (
	"fmt"
	"math"
	"strings"

	"trade-journal-lab/internal/domain"
)

// Advisory guardrail constants.
const (
	// earlyExitMin is how many early exits make the streak condition hold.
	earlyExitMin = 3

	minRewardRisk       = 2.0
	stopAfterLossStreak = 2
)

// Generator produces coaching insights from metrics and the raw
// record set.
type Generator struct{}

// NewGenerator creates an insight generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds the full coaching output. Mistake is nil when no
// losing trade exists.
func (g *Generator) Generate(m *domain.MetricsResult, records []*domain.TradeRecord) *domain.Insights {
	earlyExits := countEarlyExits(records)
	return &domain.Insights{
		Summary: buildSummary(m, earlyExits),
		Mistake: analyzeMistake(records),
		Plan:    buildPlan(m),
	}
}

// countEarlyExits counts trades whose exit landed closer to entry than
// half the entry-to-target distance.
func countEarlyExits(records []*domain.TradeRecord) int {
	count := 0
	for _, t := range records {
		if t.EntryPrice == nil || t.ExitPrice == nil || t.TargetPrice == nil {
			continue
		}
		targetDist := math.Abs(*t.TargetPrice - *t.EntryPrice)
		if targetDist <= 0 {
			continue
		}
		if math.Abs(*t.ExitPrice-*t.EntryPrice) < targetDist/2 {
			count++
		}
	}
	return count
}

// buildSummary picks one of four narrative templates: the early-exit
// condition first, then win-rate tiers at 60 and 50.
func buildSummary(m *domain.MetricsResult, earlyExits int) domain.Summary {
	s := domain.Summary{
		WinRate:         m.WinRate,
		EarlyExitCount:  earlyExits,
		EarlyExitStreak: earlyExits >= earlyExitMin,
	}

	switch {
	case s.EarlyExitStreak:
		s.Headline = "Early exits are capping your edge"
		s.Detail = fmt.Sprintf(
			"%d trades closed before reaching half the distance to target. Your win rate of %.0f%% would pay more if winners were left to run.",
			earlyExits, m.WinRate)
	case m.WinRate > 60:
		s.Headline = "Strong edge, protect it"
		s.Detail = fmt.Sprintf(
			"A %.0f%% win rate with %.2f expectancy per trade is a working system. The priority now is consistency, not new setups.",
			m.WinRate, m.Expectancy)
	case m.WinRate > 50:
		s.Headline = "Positive edge, thin margin"
		s.Detail = fmt.Sprintf(
			"You win %.0f%% of trades but the average loss (%.2f) eats into the average win (%.2f). Tighten risk before sizing up.",
			m.WinRate, m.AvgLoss, m.AvgWin)
	default:
		s.Headline = "Defense first"
		s.Detail = fmt.Sprintf(
			"At a %.0f%% win rate the account survives on risk control. Cut size, log every entry reason, and rebuild from the setups that actually paid.",
			m.WinRate)
	}
	return s
}

// mistakeRule maps loss-reason keywords to an explanation/remediation
// pair. Rules are evaluated top to bottom; first keyword hit wins.
type mistakeRule struct {
	category    domain.MistakeCategory
	keywords    []string
	explanation string
	remediation string
}

var mistakeRules = []mistakeRule{
	{
		category:    domain.MistakeEarlyExit,
		keywords:    []string{"early", "too soon", "exit", "closed"},
		explanation: "The largest loss traces back to exit management: the position was closed off-plan.",
		remediation: "Pre-commit the exit before entry and let the stop or target take you out.",
	},
	{
		category:    domain.MistakeEntryQuality,
		keywords:    []string{"entry", "late", "chase", "chased", "fomo"},
		explanation: "The largest loss came from a low-quality entry taken outside the plan.",
		remediation: "Require a written setup match before entering; skip anything you would not screenshot.",
	},
}

var defaultMistakeRule = mistakeRule{
	category:    domain.MistakeOther,
	explanation: "The largest loss has no recognizable pattern in its notes.",
	remediation: "Journal the reason for every loss; unclassified losses cannot be fixed.",
}

// analyzeMistake finds the single largest-magnitude loss and
// classifies its free-text reason by substring match.
func analyzeMistake(records []*domain.TradeRecord) *domain.MistakeAnalysis {
	var worst *domain.TradeRecord
	worstOutcome := 0.0
	for _, t := range records {
		if o := t.Outcome(); o < worstOutcome {
			worstOutcome = o
			worst = t
		}
	}
	if worst == nil {
		return nil
	}

	rule := classifyLossReason(worst.LossReason)
	return &domain.MistakeAnalysis{
		TradeID:     worst.ID,
		Symbol:      worst.Symbol,
		LossAmount:  -worstOutcome,
		Category:    rule.category,
		Explanation: rule.explanation,
		Remediation: rule.remediation,
	}
}

func classifyLossReason(reason string) mistakeRule {
	lower := strings.ToLower(reason)
	for _, rule := range mistakeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule
			}
		}
	}
	return defaultMistakeRule
}

// buildPlan derives the advisory numeric guardrails from metrics.
func buildPlan(m *domain.MetricsResult) domain.ActionPlan {
	maxTrades := int(math.Floor(m.MaxDrawdown / 15))
	if maxTrades < 2 {
		maxTrades = 2
	}
	return domain.ActionPlan{
		MaxTradesPerDay:     maxTrades,
		MaxStopPoints:       int(math.Round(m.MaxDrawdown / 2)),
		MinRewardRisk:       minRewardRisk,
		StopAfterLossStreak: stopAfterLossStreak,
	}
}
