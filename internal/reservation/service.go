package reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/eliozeb/dinner-sharing-app/internal/domain"
	"github.com/eliozeb/dinner-sharing-app/internal/kvstore"
)

// Service validates reservation submissions and persists accepted ones.
type Service struct {
	store  kvstore.Store
	logger *log.Logger
	now    func() time.Time
}

func New(store kvstore.Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// Submit validates the form. When valid, the details are stamped and
// written under the currentReservation key; the core never reads them
// back. The validation result is returned either way.
func (s *Service) Submit(ctx context.Context, in Input) (Result, error) {
	result := Validate(in)
	if !result.Valid {
		return result, nil
	}

	details := domain.ReservationDetails{
		Name:      in.Name,
		Email:     in.Email,
		PartySize: in.PartySize,
		Timestamp: s.now(),
	}
	data, err := json.Marshal(details)
	if err != nil {
		return result, fmt.Errorf("encode reservation: %w", err)
	}
	if err := s.store.Set(ctx, kvstore.KeyCurrentReservation, data); err != nil {
		return result, fmt.Errorf("persist reservation: %w", err)
	}

	s.logger.Printf("reservation: accepted name=%s people=%d", details.Name, details.PartySize)
	return result, nil
}
