package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/eliozeb/dinner-sharing-app/internal/domain"
	"github.com/eliozeb/dinner-sharing-app/internal/kvstore"
)

// Log is the append-only record of completed orders. The full list is
// persisted as one snapshot under the orderHistory key and overwritten
// on every append. Entries are never mutated or deleted.
type Log struct {
	store  kvstore.Store
	logger *log.Logger

	mu sync.Mutex
}

func New(store kvstore.Store, logger *log.Logger) *Log {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Log{store: store, logger: logger}
}

// Append adds the order to the end of the persisted list.
func (l *Log) Append(ctx context.Context, order domain.CompletedOrder) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	orders, err := l.loadLocked(ctx)
	if err != nil {
		return err
	}
	orders = append(orders, order)

	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := l.store.Set(ctx, kvstore.KeyOrderHistory, data); err != nil {
		return fmt.Errorf("persist history: %w", err)
	}
	l.logger.Printf("history: appended order id=%s total=%s items=%d",
		order.ID, domain.FormatCents(order.TotalCents), len(order.Items))
	return nil
}

// List returns all completed orders sorted newest-first.
func (l *Log) List(ctx context.Context) ([]domain.CompletedOrder, error) {
	l.mu.Lock()
	orders, err := l.loadLocked(ctx)
	l.mu.Unlock()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Date.After(orders[j].Date)
	})
	return orders, nil
}

// ListByDate restricts List to orders whose timestamp falls on the
// same calendar day as day, using day's own location for the boundary.
func (l *Log) ListByDate(ctx context.Context, day time.Time) ([]domain.CompletedOrder, error) {
	orders, err := l.List(ctx)
	if err != nil {
		return nil, err
	}

	loc := day.Location()
	wantY, wantM, wantD := day.Date()

	filtered := orders[:0]
	for _, order := range orders {
		y, m, d := order.Date.In(loc).Date()
		if y == wantY && m == wantM && d == wantD {
			filtered = append(filtered, order)
		}
	}
	return filtered, nil
}

// loadLocked reads the persisted snapshot. A missing key is an empty
// log; a malformed snapshot is discarded and the log starts fresh
// rather than propagating the parse failure.
func (l *Log) loadLocked(ctx context.Context) ([]domain.CompletedOrder, error) {
	data, err := l.store.Get(ctx, kvstore.KeyOrderHistory)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load history: %w", err)
	}

	var orders []domain.CompletedOrder
	if err := json.Unmarshal(data, &orders); err != nil {
		l.logger.Printf("history: discarding malformed snapshot: %v", err)
		return nil, nil
	}
	return orders, nil
}
