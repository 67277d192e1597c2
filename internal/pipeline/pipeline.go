// Package pipeline wires the analytics stages together: load the
// record set from the store, compute metrics, build calendar views,
// generate insights and render the report files.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"trade-journal-lab/internal/calendar"
	"trade-journal-lab/internal/insight"
	"trade-journal-lab/internal/metrics"
	"trade-journal-lab/internal/reporting"
	"trade-journal-lab/internal/storage"
)

// Output file names inside the output directory.
const (
	ReportFileName = "PERFORMANCE_REPORT.md"
	CSVFileName    = "DAILY_PNL.csv"
)

// Result holds everything one pipeline run produced.
type Result struct {
	Report     *reporting.Report
	ReportPath string
	CSVPath    string
}

// Pipeline runs the full analytics pass over a trade store.
type Pipeline struct {
	store     storage.TradeStore
	outputDir string
	loc       *time.Location
	now       func() time.Time
}

// New creates a pipeline writing into outputDir.
func New(store storage.TradeStore, outputDir string) *Pipeline {
	return &Pipeline{
		store:     store,
		outputDir: outputDir,
		loc:       time.Local,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock for deterministic output.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// WithLocation sets the calendar bucketing timezone.
func (p *Pipeline) WithLocation(loc *time.Location) *Pipeline {
	p.loc = loc
	return p
}

// Run computes the full report for the given target month and writes
// the Markdown and CSV files.
func (p *Pipeline) Run(ctx context.Context, year int, month time.Month) (*Result, error) {
	records, err := p.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading trades: %w", err)
	}
	log.WithField("trades", len(records)).Info("computing performance analytics")

	m := metrics.Compute(records)
	log.WithFields(log.Fields{
		"win_rate":   fmt.Sprintf("%.1f", m.WinRate),
		"expectancy": fmt.Sprintf("%.2f", m.Expectancy),
	}).Debug("metrics computed")

	report := &reporting.Report{
		GeneratedAt: p.now(),
		Metrics:     m,
		Sessions:    metrics.SessionBreakdown(records),
		Setups:      metrics.SetupBreakdown(records),
		Month:       calendar.MonthOf(records, year, month, p.loc),
		Year:        calendar.YearOf(records, year, p.loc),
		Insights:    insight.NewGenerator().Generate(m, records),
	}

	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	res := &Result{
		Report:     report,
		ReportPath: filepath.Join(p.outputDir, ReportFileName),
		CSVPath:    filepath.Join(p.outputDir, CSVFileName),
	}

	if err := os.WriteFile(res.ReportPath, []byte(reporting.RenderMarkdown(report)), 0o644); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}
	if err := os.WriteFile(res.CSVPath, []byte(reporting.RenderDailyCSV(report.Month)), 0o644); err != nil {
		return nil, fmt.Errorf("writing csv: %w", err)
	}

	log.WithFields(log.Fields{
		"report": res.ReportPath,
		"csv":    res.CSVPath,
	}).Info("report written")
	return res, nil
}
