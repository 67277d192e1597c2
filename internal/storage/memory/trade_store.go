// Package memory holds the in-memory TradeStore used by the CLI and
// tests. It is the only store implementation: persistence belongs to
// the application shell, not this engine.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"trade-journal-lab/internal/domain"
	"trade-journal-lab/internal/storage"
	"trade-journal-lab/internal/symbols"
)

// TradeStore is an in-memory implementation of storage.TradeStore.
type TradeStore struct {
	mu   sync.RWMutex
	data map[string]*domain.TradeRecord // keyed by trade ID
}

// NewTradeStore creates an empty in-memory trade store.
func NewTradeStore() *TradeStore {
	return &TradeStore{data: make(map[string]*domain.TradeRecord)}
}

// Insert adds a new trade. Returns ErrDuplicateID if the ID exists.
func (s *TradeStore) Insert(_ context.Context, t *domain.TradeRecord) error {
	if t == nil || t.ID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[t.ID]; exists {
		return storage.ErrDuplicateID
	}

	cp := *t
	s.data[t.ID] = &cp
	return nil
}

// InsertBulk adds multiple trades atomically; any duplicate fails the
// whole batch.
func (s *TradeStore) InsertBulk(_ context.Context, trades []*domain.TradeRecord) error {
	if len(trades) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batch := make(map[string]struct{}, len(trades))
	for _, t := range trades {
		if t == nil || t.ID == "" {
			return storage.ErrInvalidInput
		}
		if _, exists := s.data[t.ID]; exists {
			return storage.ErrDuplicateID
		}
		if _, exists := batch[t.ID]; exists {
			return storage.ErrDuplicateID
		}
		batch[t.ID] = struct{}{}
	}

	for _, t := range trades {
		cp := *t
		s.data[t.ID] = &cp
	}
	return nil
}

// GetByID retrieves one trade by ID.
func (s *TradeStore) GetByID(_ context.Context, id string) (*domain.TradeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.data[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

// GetAll retrieves every trade ordered by entry time ASC, ID ASC.
func (s *TradeStore) GetAll(_ context.Context) ([]*domain.TradeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(*domain.TradeRecord) bool { return true }), nil
}

// GetBySymbol retrieves trades matching the canonical key of symbol.
func (s *TradeStore) GetBySymbol(_ context.Context, symbol string) ([]*domain.TradeRecord, error) {
	key := symbols.NormalizeKey(symbol)

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(t *domain.TradeRecord) bool {
		return symbols.NormalizeKey(t.Symbol) == key
	}), nil
}

// GetByTimeRange retrieves trades within [from, to] inclusive.
func (s *TradeStore) GetByTimeRange(_ context.Context, from, to time.Time) ([]*domain.TradeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(t *domain.TradeRecord) bool {
		ts, ok := t.CalendarTime()
		if !ok {
			return false
		}
		return !ts.Before(from) && !ts.After(to)
	}), nil
}

// collect copies matching records out of the map in sorted order.
// Callers must hold at least the read lock.
func (s *TradeStore) collect(match func(*domain.TradeRecord) bool) []*domain.TradeRecord {
	var out []*domain.TradeRecord
	for _, t := range s.data {
		if match(t) {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ti, _ := out[i].CalendarTime()
		tj, _ := out[j].CalendarTime()
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
