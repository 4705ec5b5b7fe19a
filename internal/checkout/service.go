package checkout

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/eliozeb/dinner-sharing-app/internal/domain"
)

type cartManager interface {
	Lines() []domain.OrderLine
	Clear(ctx context.Context) error
}

type historyLog interface {
	Append(ctx context.Context, order domain.CompletedOrder) error
}

// Service converts the cart into a completed order: it snapshots the
// lines, fixes the total, appends to the history log and clears the
// cart.
type Service struct {
	cart    cartManager
	history historyLog
	logger  *log.Logger
	now     func() time.Time
	newID   func() string
}

func New(cart cartManager, history historyLog, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		cart:    cart,
		history: history,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Checkout completes the current cart. An empty cart returns
// ErrEmptyCart and changes nothing.
func (s *Service) Checkout(ctx context.Context) (*domain.CompletedOrder, error) {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	order := domain.CompletedOrder{
		ID:         s.newID(),
		Items:      lines,
		TotalCents: domain.LinesTotalCents(lines),
		Date:       s.now(),
	}

	if err := s.history.Append(ctx, order); err != nil {
		return nil, fmt.Errorf("record order: %w", err)
	}
	if err := s.cart.Clear(ctx); err != nil {
		// The order is already recorded; the stale cart snapshot will
		// be overwritten by the next mutation.
		s.logger.Printf("checkout: clear cart after order %s: %v", order.ID, err)
	}

	s.logger.Printf("checkout: completed order id=%s total=%s", order.ID, domain.FormatCents(order.TotalCents))
	return &order, nil
}
