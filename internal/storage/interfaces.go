// Package storage defines the data-source boundary the analytics
// engine consumes trades through. The engine itself never persists
// anything; implementations supply already-fetched record collections.
package storage

import (
	"context"
	"time"

	"trade-journal-lab/internal/domain"
)

// TradeStore provides access to the journal's trade records.
type TradeStore interface {
	// Insert adds a new trade. Returns ErrDuplicateID if the ID exists.
	Insert(ctx context.Context, t *domain.TradeRecord) error

	// InsertBulk adds multiple trades atomically. The whole batch
	// fails on any duplicate.
	InsertBulk(ctx context.Context, trades []*domain.TradeRecord) error

	// GetByID retrieves one trade. Returns ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id string) (*domain.TradeRecord, error)

	// GetAll retrieves every trade ordered by entry time ASC, ID ASC.
	GetAll(ctx context.Context) ([]*domain.TradeRecord, error)

	// GetBySymbol retrieves trades whose symbol normalizes to the same
	// canonical key as the argument, ordered like GetAll.
	GetBySymbol(ctx context.Context, symbol string) ([]*domain.TradeRecord, error)

	// GetByTimeRange retrieves trades whose calendar timestamp falls
	// within [from, to] inclusive, ordered like GetAll. Records with
	// no timestamp at all are never returned.
	GetByTimeRange(ctx context.Context, from, to time.Time) ([]*domain.TradeRecord, error)
}
