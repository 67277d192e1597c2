package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"trade-journal-lab/internal/calendar"
	"trade-journal-lab/internal/config"
	"trade-journal-lab/internal/domain"
	"trade-journal-lab/internal/insight"
	"trade-journal-lab/internal/journal"
	"trade-journal-lab/internal/logging"
	"trade-journal-lab/internal/metrics"
	"trade-journal-lab/internal/pipeline"
	"trade-journal-lab/internal/reporting"
	"trade-journal-lab/internal/storage/memory"
	"trade-journal-lab/internal/symbols"
)

func main() {
	app := &cli.App{
		Name:  "journal",
		Usage: "trading journal performance analytics",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "journal", Aliases: []string{"j"}, Usage: "path to exported journal JSON"},
			&cli.StringFlag{Name: "output-dir", Aliases: []string{"o"}, Usage: "directory for generated reports"},
			&cli.StringFlag{Name: "extras", Usage: "YAML file extending the instrument catalog"},
			&cli.StringFlag{Name: "month", Usage: "target month as YYYY-MM (default: current)"},
			&cli.StringFlag{Name: "tz", Usage: "IANA timezone for calendar bucketing"},
		},
		Commands: []*cli.Command{
			{
				Name:   "report",
				Usage:  "generate the full Markdown + CSV performance report",
				Action: runReport,
			},
			{
				Name:   "metrics",
				Usage:  "print aggregate metrics to stdout",
				Action: runMetrics,
			},
			{
				Name:   "calendar",
				Usage:  "print the per-day P&L of the target month as CSV",
				Action: runCalendar,
			},
			{
				Name:      "symbols",
				Usage:     "list journal instruments, optionally filtered",
				ArgsUsage: "[query]",
				Action:    runSymbols,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}

// setup loads config, configures logging and reads the journal file.
func setup(c *cli.Context) (*config.Config, []*domain.TradeRecord, *time.Location, error) {
	cfg, err := config.Load(c.String("journal"), c.String("output-dir"), c.String("extras"))
	if err != nil {
		return nil, nil, nil, err
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		return nil, nil, nil, err
	}

	tz := c.String("tz")
	if tz == "" {
		tz = cfg.Timezone
	}
	loc := time.Local
	if tz != "" {
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("loading timezone %q: %w", tz, err)
		}
	}

	records, err := journal.Load(cfg.JournalPath)
	if err != nil {
		return nil, nil, nil, err
	}
	log.WithField("trades", len(records)).Debug("journal loaded")
	return cfg, records, loc, nil
}

// targetMonth parses --month or defaults to the current month.
func targetMonth(c *cli.Context) (int, time.Month, error) {
	raw := c.String("month")
	if raw == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	parsed, err := time.Parse("2006-01", raw)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --month %q, want YYYY-MM: %w", raw, err)
	}
	return parsed.Year(), parsed.Month(), nil
}

func seededStore(ctx context.Context, records []*domain.TradeRecord) (*memory.TradeStore, error) {
	store := memory.NewTradeStore()
	if err := store.InsertBulk(ctx, records); err != nil {
		return nil, fmt.Errorf("seeding trade store: %w", err)
	}
	return store, nil
}

func runReport(c *cli.Context) error {
	cfg, records, loc, err := setup(c)
	if err != nil {
		return err
	}
	year, month, err := targetMonth(c)
	if err != nil {
		return err
	}

	store, err := seededStore(c.Context, records)
	if err != nil {
		return err
	}

	res, err := pipeline.New(store, cfg.OutputDir).WithLocation(loc).Run(c.Context, year, month)
	if err != nil {
		return err
	}

	fmt.Println("Report generated:")
	fmt.Printf("  - %s\n", res.ReportPath)
	fmt.Printf("  - %s\n", res.CSVPath)
	return nil
}

func runMetrics(c *cli.Context) error {
	_, records, _, err := setup(c)
	if err != nil {
		return err
	}

	store, err := seededStore(c.Context, records)
	if err != nil {
		return err
	}

	m, err := metrics.NewAggregator(store).ComputeAll(c.Context)
	if err != nil {
		return err
	}

	fmt.Printf("Trades:        %d (%d wins / %d losses)\n", m.TotalTrades, m.Wins, m.Losses)
	fmt.Printf("Win rate:      %.1f%%\n", m.WinRate)
	fmt.Printf("Expectancy:    %.2f (%.2f per 100 trades)\n", m.Expectancy, m.ProjectedPer100)
	fmt.Printf("Streaks:       %d wins / %d losses\n", m.MaxWinStreak, m.MaxLossStreak)
	fmt.Printf("Drawdown:      %.2f max / %.2f avg\n", m.MaxDrawdown, m.AvgDrawdown)
	fmt.Printf("RR:            %.2f achieved / %.2f target\n", m.AvgAchievedRR, m.AvgTargetRR)
	fmt.Printf("Consistency:   %.0f\n", m.ConsistencyScore)
	if m.BestTrade != nil {
		fmt.Printf("Best trade:    %s %+.2f\n", m.BestTrade.Symbol, m.BestTrade.Outcome)
	}
	if m.WorstTrade != nil {
		fmt.Printf("Worst trade:   %s %+.2f\n", m.WorstTrade.Symbol, m.WorstTrade.Outcome)
	}

	ins := insight.NewGenerator().Generate(m, records)
	fmt.Printf("\n%s\n%s\n", ins.Summary.Headline, ins.Summary.Detail)
	return nil
}

func runCalendar(c *cli.Context) error {
	_, records, loc, err := setup(c)
	if err != nil {
		return err
	}
	year, month, err := targetMonth(c)
	if err != nil {
		return err
	}

	view := calendar.MonthOf(records, year, month, loc)
	fmt.Print(reporting.RenderDailyCSV(view))
	return nil
}

func runSymbols(c *cli.Context) error {
	cfg, records, _, err := setup(c)
	if err != nil {
		return err
	}

	catalog := symbols.DefaultCatalog()
	if cfg.CatalogExtra != "" {
		data, err := os.ReadFile(cfg.CatalogExtra)
		if err != nil {
			return fmt.Errorf("reading catalog extras: %w", err)
		}
		catalog, err = catalog.WithExtras(data)
		if err != nil {
			return err
		}
	}

	query := c.Args().First()
	seen := map[string]bool{}
	var keys []string
	for _, t := range records {
		key := symbols.NormalizeKey(t.Symbol)
		if key == "" || seen[key] {
			continue
		}
		if query != "" && !symbols.Matches(t.Symbol, query) {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Printf("%-12s %s\n", key, catalog.FormatDisplay(key))
	}
	return nil
}
