// Package journal loads exported journal files and enriches imported
// rows with the fields the engine derives. File I/O lives here, in the
// application shell; the engine itself only ever sees record slices.
package journal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"trade-journal-lab/internal/domain"
)

// tradeJSON is the wire shape of one exported journal row. Money and
// price fields go through decimal so both JSON numbers and quoted
// strings parse.
type tradeJSON struct {
	ID        string     `json:"id"`
	Symbol    string     `json:"symbol"`
	Direction string     `json:"direction"`
	EntryAt   *time.Time `json:"entry_at"`
	ExitAt    *time.Time `json:"exit_at"`
	CreatedAt *time.Time `json:"created_at"`

	EntryPrice     *decimal.Decimal `json:"entry_price"`
	ExitPrice      *decimal.Decimal `json:"exit_price"`
	StopLossPrice  *decimal.Decimal `json:"stop_loss_price"`
	TargetPrice    *decimal.Decimal `json:"target_price"`
	StopLossPoints *decimal.Decimal `json:"stop_loss_points"`
	TargetPoints   *decimal.Decimal `json:"target_points"`

	Result string `json:"result"`

	RealizedAmount *decimal.Decimal `json:"realized_amount"`
	RealizedPoints *decimal.Decimal `json:"realized_points"`

	Win        *bool  `json:"win"`
	Session    string `json:"session"`
	Setup      string `json:"setup"`
	Emotional  *bool  `json:"emotional"`
	LossReason string `json:"loss_reason"`
}

// Load reads a journal export file and returns enriched records.
func Load(path string) ([]*domain.TradeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening journal file: %w", err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	Enrich(records)
	return records, nil
}

// Parse decodes a JSON array of trade rows into domain records without
// enrichment.
func Parse(r io.Reader) ([]*domain.TradeRecord, error) {
	var rows []tradeJSON
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decoding journal export: %w", err)
	}

	records := make([]*domain.TradeRecord, len(rows))
	for i, row := range rows {
		records[i] = row.toDomain()
	}
	return records, nil
}

func (r tradeJSON) toDomain() *domain.TradeRecord {
	t := &domain.TradeRecord{
		ID:         r.ID,
		Symbol:     r.Symbol,
		Direction:  domain.Direction(strings.ToUpper(strings.TrimSpace(r.Direction))),
		EntryAt:    r.EntryAt,
		ExitAt:     r.ExitAt,
		Result:     domain.TradeResult(strings.ToUpper(strings.TrimSpace(r.Result))),
		Win:        r.Win,
		Session:    r.Session,
		Setup:      r.Setup,
		Emotional:  r.Emotional,
		LossReason: r.LossReason,
	}
	if r.CreatedAt != nil {
		t.CreatedAt = *r.CreatedAt
	}

	t.EntryPrice = toFloat(r.EntryPrice)
	t.ExitPrice = toFloat(r.ExitPrice)
	t.StopLossPrice = toFloat(r.StopLossPrice)
	t.TargetPrice = toFloat(r.TargetPrice)
	t.StopLossPoints = toFloat(r.StopLossPoints)
	t.TargetPoints = toFloat(r.TargetPoints)
	t.RealizedAmount = toFloat(r.RealizedAmount)
	t.RealizedPoints = toFloat(r.RealizedPoints)
	return t
}

func toFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f, _ := d.Float64()
	return &f
}
