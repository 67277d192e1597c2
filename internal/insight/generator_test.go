package insight

import (
	"testing"

	"trade-journal-lab/internal/domain"
)

func fp(v float64) *float64 { return &v }

func earlyExitTrade(id string) *domain.TradeRecord {
	// Target 100 points away, exit only 20 points in: early exit.
	return &domain.TradeRecord{
		ID:          id,
		Symbol:      "EURUSD",
		EntryPrice:  fp(1.1000),
		ExitPrice:   fp(1.1020),
		TargetPrice: fp(1.1100),
	}
}

func TestCountEarlyExits(t *testing.T) {
	records := []*domain.TradeRecord{
		earlyExitTrade("a"),
		// Exit beyond half the target distance: not early.
		{ID: "b", EntryPrice: fp(1.1000), ExitPrice: fp(1.1080), TargetPrice: fp(1.1100)},
		// Missing target: skipped.
		{ID: "c", EntryPrice: fp(1.1000), ExitPrice: fp(1.1001)},
	}
	if got := countEarlyExits(records); got != 1 {
		t.Errorf("countEarlyExits = %d, want 1", got)
	}
}

func TestBuildSummary_Templates(t *testing.T) {
	tests := []struct {
		name         string
		winRate      float64
		earlyExits   int
		wantHeadline string
	}{
		{"early exit condition wins", 70, 3, "Early exits are capping your edge"},
		{"strong", 65, 0, "Strong edge, protect it"},
		{"thin margin", 55, 2, "Positive edge, thin margin"},
		{"boundary 60 falls to thin margin", 60, 0, "Positive edge, thin margin"},
		{"defense", 40, 0, "Defense first"},
		{"boundary 50 falls to defense", 50, 0, "Defense first"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &domain.MetricsResult{WinRate: tt.winRate}
			s := buildSummary(m, tt.earlyExits)
			if s.Headline != tt.wantHeadline {
				t.Errorf("headline = %q, want %q", s.Headline, tt.wantHeadline)
			}
		})
	}
}

func TestAnalyzeMistake_Classification(t *testing.T) {
	tests := []struct {
		name   string
		reason string
		want   domain.MistakeCategory
	}{
		{"early exit keyword", "panicked and closed too soon", domain.MistakeEarlyExit},
		{"entry keyword", "chased the breakout late", domain.MistakeEntryQuality},
		{"unclassified", "news spike", domain.MistakeOther},
		{"empty reason", "", domain.MistakeOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []*domain.TradeRecord{
				{ID: "small", RealizedAmount: fp(-10)},
				{ID: "big", RealizedAmount: fp(-200), LossReason: tt.reason},
			}
			got := analyzeMistake(records)
			if got == nil {
				t.Fatal("expected a mistake analysis")
			}
			if got.TradeID != "big" {
				t.Errorf("TradeID = %q, want the largest loss", got.TradeID)
			}
			if got.LossAmount != 200 {
				t.Errorf("LossAmount = %v, want 200", got.LossAmount)
			}
			if got.Category != tt.want {
				t.Errorf("Category = %q, want %q", got.Category, tt.want)
			}
			if got.Explanation == "" || got.Remediation == "" {
				t.Error("explanation/remediation must not be empty")
			}
		})
	}
}

func TestAnalyzeMistake_NoLosses(t *testing.T) {
	records := []*domain.TradeRecord{
		{ID: "a", RealizedAmount: fp(50)},
	}
	if got := analyzeMistake(records); got != nil {
		t.Errorf("expected nil for a set without losses, got %+v", got)
	}
}

func TestBuildPlan(t *testing.T) {
	tests := []struct {
		name        string
		maxDD       float64
		wantTrades  int
		wantStopPts int
	}{
		{"large drawdown", 60, 4, 30},
		{"floor at two", 10, 2, 5},
		{"zero drawdown", 0, 2, 0},
		{"rounding", 45, 3, 23},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := buildPlan(&domain.MetricsResult{MaxDrawdown: tt.maxDD})
			if plan.MaxTradesPerDay != tt.wantTrades {
				t.Errorf("MaxTradesPerDay = %d, want %d", plan.MaxTradesPerDay, tt.wantTrades)
			}
			if plan.MaxStopPoints != tt.wantStopPts {
				t.Errorf("MaxStopPoints = %d, want %d", plan.MaxStopPoints, tt.wantStopPts)
			}
			if plan.MinRewardRisk != 2 || plan.StopAfterLossStreak != 2 {
				t.Errorf("fixed rules changed: %+v", plan)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	records := []*domain.TradeRecord{
		earlyExitTrade("a"),
		{ID: "b", RealizedAmount: fp(-120), LossReason: "exited early again"},
	}
	m := &domain.MetricsResult{WinRate: 55, MaxDrawdown: 45}

	ins := NewGenerator().Generate(m, records)
	if ins.Summary.Headline == "" {
		t.Error("summary headline missing")
	}
	if ins.Mistake == nil || ins.Mistake.Category != domain.MistakeEarlyExit {
		t.Errorf("Mistake = %+v, want early-exit classification", ins.Mistake)
	}
	if ins.Plan.MaxTradesPerDay != 3 {
		t.Errorf("MaxTradesPerDay = %d, want 3", ins.Plan.MaxTradesPerDay)
	}
}
