package pipeline

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-journal-lab/internal/domain"
	"trade-journal-lab/internal/storage/memory"
)

func fp(v float64) *float64 { return &v }

func seedStore(t *testing.T) *memory.TradeStore {
	t.Helper()
	store := memory.NewTradeStore()
	mk := func(id string, day int, outcome float64) *domain.TradeRecord {
		ts := time.Date(2026, time.April, day, 10, 0, 0, 0, time.UTC)
		return &domain.TradeRecord{
			ID:             id,
			Symbol:         "EURUSD",
			EntryAt:        &ts,
			RealizedAmount: fp(outcome),
		}
	}
	require.NoError(t, store.InsertBulk(context.Background(), []*domain.TradeRecord{
		mk("a", 6, 100),
		mk("b", 7, -40),
		mk("c", 8, 60),
	}))
	return store
}

func TestPipeline_Run(t *testing.T) {
	dir := t.TempDir()
	fixed := time.Date(2026, 4, 30, 12, 0, 0, 0, time.UTC)

	p := New(seedStore(t), dir).
		WithClock(func() time.Time { return fixed }).
		WithLocation(time.UTC)

	res, err := p.Run(context.Background(), 2026, time.April)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Report.Metrics.TotalTrades)
	require.NotNil(t, res.Report.Month)
	assert.Equal(t, 3, res.Report.Month.TotalTrades)

	md, err := os.ReadFile(res.ReportPath)
	require.NoError(t, err)
	assert.Contains(t, string(md), "Generated: 2026-04-30T12:00:00Z")
	assert.Contains(t, string(md), "## Calendar — April 2026")

	csv, err := os.ReadFile(res.CSVPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(csv), "date,trades,net_pnl\n"))
}

func TestPipeline_RunDeterministic(t *testing.T) {
	fixed := time.Date(2026, 4, 30, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return fixed }

	store := seedStore(t)
	first, err := New(store, t.TempDir()).WithClock(clock).WithLocation(time.UTC).
		Run(context.Background(), 2026, time.April)
	require.NoError(t, err)
	second, err := New(store, t.TempDir()).WithClock(clock).WithLocation(time.UTC).
		Run(context.Background(), 2026, time.April)
	require.NoError(t, err)

	a, err := os.ReadFile(first.ReportPath)
	require.NoError(t, err)
	b, err := os.ReadFile(second.ReportPath)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestPipeline_EmptyStore(t *testing.T) {
	p := New(memory.NewTradeStore(), t.TempDir()).WithLocation(time.UTC)

	res, err := p.Run(context.Background(), 2026, time.April)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Report.Metrics.TotalTrades)

	md, err := os.ReadFile(res.ReportPath)
	require.NoError(t, err)
	assert.Contains(t, string(md), "No trades recorded.")
}
