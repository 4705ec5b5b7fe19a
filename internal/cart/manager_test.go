package cart

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/eliozeb/dinner-sharing-app/internal/domain"
	"github.com/eliozeb/dinner-sharing-app/internal/kvstore"
)

type stubCatalog struct {
	items map[int]domain.MenuItem
	err   error
}

func (s *stubCatalog) Get(id int) (*domain.MenuItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	item, ok := s.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &item, nil
}

func testCatalog() *stubCatalog {
	return &stubCatalog{items: map[int]domain.MenuItem{
		1: {ID: 1, Name: "Margherita Pizza", PriceCents: 1099, Category: "pizza", Rating: 4.5},
		2: {ID: 2, Name: "Caesar Salad", PriceCents: 899, Category: "salad", Rating: 4.2},
	}}
}

func TestAddTwiceDoublesTotal(t *testing.T) {
	m := New(kvstore.NewMemory(), testCatalog(), nil)
	ctx := context.Background()

	if err := m.Add(ctx, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := m.Add(ctx, 1); err != nil {
		t.Fatalf("add again: %v", err)
	}

	if got := m.TotalCents(); got != 2*1099 {
		t.Fatalf("expected total %d, got %d", 2*1099, got)
	}
	lines := m.Lines()
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("expected one line with quantity 2, got %+v", lines)
	}
}

func TestAddUnknownItem(t *testing.T) {
	m := New(kvstore.NewMemory(), testCatalog(), nil)
	err := m.Add(context.Background(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(m.Lines()) != 0 {
		t.Fatalf("cart should be unchanged, got %+v", m.Lines())
	}
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	ctx := context.Background()

	viaSet := New(kvstore.NewMemory(), testCatalog(), nil)
	viaRemove := New(kvstore.NewMemory(), testCatalog(), nil)
	for _, m := range []*Manager{viaSet, viaRemove} {
		if err := m.Add(ctx, 1); err != nil {
			t.Fatalf("add: %v", err)
		}
		if err := m.Add(ctx, 2); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	if err := viaSet.SetQuantity(ctx, 1, 0); err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if err := viaRemove.Remove(ctx, 1); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if !reflect.DeepEqual(viaSet.Lines(), viaRemove.Lines()) {
		t.Fatalf("carts diverged: %+v vs %+v", viaSet.Lines(), viaRemove.Lines())
	}
}

func TestSetQuantityMissingLineIsNoop(t *testing.T) {
	m := New(kvstore.NewMemory(), testCatalog(), nil)
	ctx := context.Background()
	if err := m.Add(ctx, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := m.SetQuantity(ctx, 2, 5); err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	lines := m.Lines()
	if len(lines) != 1 || lines[0].Item.ID != 1 || lines[0].Quantity != 1 {
		t.Fatalf("cart changed unexpectedly: %+v", lines)
	}
}

func TestRemoveAt(t *testing.T) {
	m := New(kvstore.NewMemory(), testCatalog(), nil)
	ctx := context.Background()
	if err := m.Add(ctx, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := m.Add(ctx, 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := m.RemoveAt(ctx, 0); err != nil {
		t.Fatalf("remove at: %v", err)
	}
	lines := m.Lines()
	if len(lines) != 1 || lines[0].Item.ID != 2 {
		t.Fatalf("unexpected lines: %+v", lines)
	}

	if err := m.RemoveAt(ctx, 5); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found for bad index, got %v", err)
	}
}

func TestClearDeletesPersistedKey(t *testing.T) {
	store := kvstore.NewMemory()
	m := New(store, testCatalog(), nil)
	ctx := context.Background()

	if err := m.Add(ctx, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := store.Get(ctx, kvstore.KeyCurrentOrder); err != nil {
		t.Fatalf("snapshot should exist: %v", err)
	}

	if err := m.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(m.Lines()) != 0 {
		t.Fatalf("cart not empty after clear")
	}
	if _, err := store.Get(ctx, kvstore.KeyCurrentOrder); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected key deleted, got %v", err)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	store := kvstore.NewMemory()
	ctx := context.Background()

	first := New(store, testCatalog(), nil)
	if err := first.Add(ctx, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := first.Add(ctx, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := first.SetQuantity(ctx, 2, 3); err != nil {
		t.Fatalf("set quantity: %v", err)
	}

	second := New(store, testCatalog(), nil)
	if err := second.Restore(ctx); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !reflect.DeepEqual(first.Lines(), second.Lines()) {
		t.Fatalf("round trip mismatch: %+v vs %+v", first.Lines(), second.Lines())
	}
}

func TestRestoreDiscardsMalformedSnapshot(t *testing.T) {
	store := kvstore.NewMemory()
	ctx := context.Background()
	if err := store.Set(ctx, kvstore.KeyCurrentOrder, []byte(`{not json`)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	m := New(store, testCatalog(), nil)
	if err := m.Restore(ctx); err != nil {
		t.Fatalf("restore should start fresh, got %v", err)
	}
	if len(m.Lines()) != 0 {
		t.Fatalf("expected empty cart, got %+v", m.Lines())
	}
}

func TestRestoreDropsUnknownItemsAndBadQuantities(t *testing.T) {
	store := kvstore.NewMemory()
	ctx := context.Background()

	snapshot := []domain.OrderLine{
		{Item: domain.MenuItem{ID: 1, Name: "Margherita Pizza", PriceCents: 1099}, Quantity: 2},
		{Item: domain.MenuItem{ID: 99, Name: "Gone"}, Quantity: 1},
		{Item: domain.MenuItem{ID: 2, Name: "Caesar Salad", PriceCents: 899}, Quantity: 0},
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := store.Set(ctx, kvstore.KeyCurrentOrder, data); err != nil {
		t.Fatalf("seed: %v", err)
	}

	m := New(store, testCatalog(), nil)
	if err := m.Restore(ctx); err != nil {
		t.Fatalf("restore: %v", err)
	}
	lines := m.Lines()
	if len(lines) != 1 || lines[0].Item.ID != 1 || lines[0].Quantity != 2 {
		t.Fatalf("unexpected restored lines: %+v", lines)
	}
}
