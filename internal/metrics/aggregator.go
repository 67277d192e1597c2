package metrics

import (
	"context"
	"time"

	"trade-journal-lab/internal/domain"
	"trade-journal-lab/internal/storage"
)

// Aggregator computes metrics over trades supplied by a TradeStore.
// Every call recomputes from the current record set; nothing is cached
// between invocations.
type Aggregator struct {
	store storage.TradeStore
}

// NewAggregator creates a metrics aggregator over a trade store.
func NewAggregator(store storage.TradeStore) *Aggregator {
	return &Aggregator{store: store}
}

// ComputeAll computes metrics over the full record set. An empty store
// yields the zero result, not an error.
func (a *Aggregator) ComputeAll(ctx context.Context) (*domain.MetricsResult, error) {
	trades, err := a.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return Compute(trades), nil
}

// ComputeSymbol computes metrics over the trades of one instrument.
func (a *Aggregator) ComputeSymbol(ctx context.Context, symbol string) (*domain.MetricsResult, error) {
	trades, err := a.store.GetBySymbol(ctx, symbol)
	if err != nil {
		return nil, err
	}
	return Compute(trades), nil
}

// ComputeRange computes metrics over trades within [from, to].
func (a *Aggregator) ComputeRange(ctx context.Context, from, to time.Time) (*domain.MetricsResult, error) {
	trades, err := a.store.GetByTimeRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return Compute(trades), nil
}
