package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/eliozeb/dinner-sharing-app/internal/domain"
	"github.com/eliozeb/dinner-sharing-app/internal/kvstore"
)

type catalogStore interface {
	Get(id int) (*domain.MenuItem, error)
}

// Manager owns the in-progress order: an ordered list of lines keyed
// by menu item id, at most one line per id. Every mutation overwrites
// the persisted snapshot under the currentOrder key.
type Manager struct {
	store   kvstore.Store
	catalog catalogStore
	logger  *log.Logger

	mu    sync.Mutex
	lines []domain.OrderLine
}

func New(store kvstore.Store, catalog catalogStore, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Manager{store: store, catalog: catalog, logger: logger}
}

// Restore loads the persisted cart snapshot. A missing key means an
// empty cart; a malformed snapshot is discarded and the cart starts
// fresh. Lines whose item id no longer resolves in the catalog are
// dropped.
func (m *Manager) Restore(ctx context.Context) error {
	data, err := m.store.Get(ctx, kvstore.KeyCurrentOrder)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("restore cart: %w", err)
	}

	var lines []domain.OrderLine
	if err := json.Unmarshal(data, &lines); err != nil {
		m.logger.Printf("cart: discarding malformed snapshot: %v", err)
		return nil
	}

	valid := lines[:0]
	for _, line := range lines {
		if line.Quantity < 1 {
			continue
		}
		if _, err := m.catalog.Get(line.Item.ID); errors.Is(err, domain.ErrNotFound) {
			m.logger.Printf("cart: dropping line for unknown item id=%d", line.Item.ID)
			continue
		}
		valid = append(valid, line)
	}

	m.mu.Lock()
	m.lines = valid
	m.mu.Unlock()
	return nil
}

// Add puts one unit of the item into the cart, incrementing the
// existing line if present. An id absent from the catalog is an
// explicit ErrNotFound, not a silent no-op.
func (m *Manager) Add(ctx context.Context, itemID int) error {
	item, err := m.catalog.Get(itemID)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	found := false
	for i := range m.lines {
		if m.lines[i].Item.ID == itemID {
			m.lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		m.lines = append(m.lines, domain.OrderLine{Item: *item, Quantity: 1})
	}
	return m.persistLocked(ctx)
}

// SetQuantity sets the line's quantity to n. n < 1 removes the line;
// a missing line is a no-op.
func (m *Manager) SetQuantity(ctx context.Context, itemID, n int) error {
	if n < 1 {
		return m.Remove(ctx, itemID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.lines {
		if m.lines[i].Item.ID == itemID {
			m.lines[i].Quantity = n
			return m.persistLocked(ctx)
		}
	}
	return nil
}

// Remove deletes the line for itemID, if any.
func (m *Manager) Remove(ctx context.Context, itemID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.lines[:0]
	for _, line := range m.lines {
		if line.Item.ID != itemID {
			kept = append(kept, line)
		}
	}
	m.lines = kept
	return m.persistLocked(ctx)
}

// RemoveAt deletes the line at the given position.
func (m *Manager) RemoveAt(ctx context.Context, index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if index < 0 || index >= len(m.lines) {
		return domain.ErrNotFound
	}
	m.lines = append(m.lines[:index], m.lines[index+1:]...)
	return m.persistLocked(ctx)
}

// Clear empties the cart and deletes the persisted key.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lines = nil
	if err := m.store.Delete(ctx, kvstore.KeyCurrentOrder); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// Lines returns a copy of the current order lines.
func (m *Manager) Lines() []domain.OrderLine {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.OrderLine, len(m.lines))
	copy(out, m.lines)
	return out
}

// TotalCents is the exact cart total. Rounding to two decimals happens
// only when formatting for display.
func (m *Manager) TotalCents() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return domain.LinesTotalCents(m.lines)
}

func (m *Manager) persistLocked(ctx context.Context) error {
	lines := m.lines
	if lines == nil {
		lines = []domain.OrderLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := m.store.Set(ctx, kvstore.KeyCurrentOrder, data); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}
