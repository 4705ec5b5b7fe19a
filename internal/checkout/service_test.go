package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eliozeb/dinner-sharing-app/internal/domain"
)

type stubCart struct {
	lines   []domain.OrderLine
	cleared bool
	clearErr error
}

func (s *stubCart) Lines() []domain.OrderLine { return s.lines }

func (s *stubCart) Clear(_ context.Context) error {
	s.cleared = true
	return s.clearErr
}

type stubHistory struct {
	appended []domain.CompletedOrder
	err      error
}

func (s *stubHistory) Append(_ context.Context, order domain.CompletedOrder) error {
	if s.err != nil {
		return s.err
	}
	s.appended = append(s.appended, order)
	return nil
}

func testLines() []domain.OrderLine {
	return []domain.OrderLine{
		{Item: domain.MenuItem{ID: 1, Name: "Margherita Pizza", PriceCents: 1099}, Quantity: 2},
		{Item: domain.MenuItem{ID: 2, Name: "Caesar Salad", PriceCents: 899}, Quantity: 1},
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	cart := &stubCart{}
	hist := &stubHistory{}
	svc := New(cart, hist, nil)

	_, err := svc.Checkout(context.Background())
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected empty cart error, got %v", err)
	}
	if cart.cleared || len(hist.appended) != 0 {
		t.Fatal("empty checkout must not change state")
	}
}

func TestCheckoutSnapshotsTotalAndClears(t *testing.T) {
	cart := &stubCart{lines: testLines()}
	hist := &stubHistory{}
	svc := New(cart, hist, nil)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	svc.newID = func() string { return "order-1" }

	order, err := svc.Checkout(context.Background())
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	wantTotal := int64(2*1099 + 899)
	if order.TotalCents != wantTotal {
		t.Fatalf("expected total %d, got %d", wantTotal, order.TotalCents)
	}
	if order.ID != "order-1" || !order.Date.Equal(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected order metadata: %+v", order)
	}
	if len(hist.appended) != 1 {
		t.Fatalf("expected one appended order, got %d", len(hist.appended))
	}
	if !cart.cleared {
		t.Fatal("cart should be cleared after checkout")
	}
}

func TestCheckoutHistoryFailureKeepsCart(t *testing.T) {
	cart := &stubCart{lines: testLines()}
	hist := &stubHistory{err: errors.New("kv down")}
	svc := New(cart, hist, nil)

	_, err := svc.Checkout(context.Background())
	if err == nil {
		t.Fatal("expected error when history append fails")
	}
	if cart.cleared {
		t.Fatal("cart must not be cleared when the order was not recorded")
	}
}

func TestCheckoutClearFailureStillReturnsOrder(t *testing.T) {
	cart := &stubCart{lines: testLines(), clearErr: errors.New("kv down")}
	hist := &stubHistory{}
	svc := New(cart, hist, nil)

	order, err := svc.Checkout(context.Background())
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if order == nil || len(hist.appended) != 1 {
		t.Fatal("order should be recorded despite clear failure")
	}
}
