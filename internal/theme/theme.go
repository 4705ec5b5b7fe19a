package theme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/eliozeb/dinner-sharing-app/internal/domain"
	"github.com/eliozeb/dinner-sharing-app/internal/kvstore"
)

const (
	Light = "light"
	Dark  = "dark"
)

// ErrInvalidTheme rejects values other than "light" and "dark".
var ErrInvalidTheme = errors.New("invalid theme")

// Service stores the display theme preference. It has no coupling to
// the ordering core; the key is read and written independently.
type Service struct {
	store kvstore.Store
}

func New(store kvstore.Store) *Service {
	return &Service{store: store}
}

// Get returns the saved preference, defaulting to light when nothing
// (or something unreadable) is stored.
func (s *Service) Get(ctx context.Context) (string, error) {
	data, err := s.store.Get(ctx, kvstore.KeyTheme)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Light, nil
		}
		return "", err
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil || (value != Light && value != Dark) {
		return Light, nil
	}
	return value, nil
}

// Set persists the preference.
func (s *Service) Set(ctx context.Context, value string) error {
	if value != Light && value != Dark {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, value)
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, kvstore.KeyTheme, data)
}
