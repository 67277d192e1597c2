package reporting

import (
	"time"

	"trade-journal-lab/internal/domain"
)

// Report is the assembled performance report for one journal.
type Report struct {
	GeneratedAt time.Time

	Metrics  *domain.MetricsResult
	Sessions []domain.LabelStats
	Setups   []domain.LabelStats

	Month *domain.MonthView
	Year  *domain.YearView

	Insights *domain.Insights
}
