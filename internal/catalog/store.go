package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/eliozeb/dinner-sharing-app/internal/domain"
)

// ReloadQuiescence is how long reload requests must stay quiet before
// a pending reload actually runs. Repeated requests inside the window
// cancel and reschedule the pending one.
const ReloadQuiescence = 300 * time.Millisecond

// Store holds the menu catalog. Items are read-only between loads; a
// load swaps the whole slice at once.
type Store struct {
	source string
	client *http.Client
	logger *log.Logger

	mu     sync.RWMutex
	items  []domain.MenuItem
	loaded bool

	reloadMu    sync.Mutex
	reloadTimer *time.Timer
	reloadDelay time.Duration
}

// NewStore builds a Store reading from source, which is either an
// http(s) URL or a local file path. The catalog is empty until Load
// succeeds.
func NewStore(source string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{
		source:      source,
		client:      &http.Client{Timeout: 10 * time.Second},
		logger:      logger,
		reloadDelay: ReloadQuiescence,
	}
}

// Load fetches and replaces the catalog. On failure the previous
// catalog (possibly none) stays in place; there is no automatic retry.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.fetch(ctx)
	if err != nil {
		s.logger.Printf("catalog: load source=%s error=%v", s.source, err)
		return err
	}

	var items []domain.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Printf("catalog: parse source=%s error=%v", s.source, err)
		return fmt.Errorf("parse catalog: %w", err)
	}

	s.mu.Lock()
	s.items = items
	s.loaded = true
	s.mu.Unlock()

	s.logger.Printf("catalog: loaded source=%s count=%d", s.source, len(items))
	return nil
}

// RequestReload schedules a reload after the quiescence window.
// Requests arriving before the window elapses reset the timer, so a
// burst of retry clicks collapses into one fetch.
func (s *Store) RequestReload() {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	if s.reloadTimer != nil {
		s.reloadTimer.Stop()
	}
	s.reloadTimer = time.AfterFunc(s.reloadDelay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.Load(ctx); err != nil {
			s.logger.Printf("catalog: reload failed: %v", err)
		}
	})
}

func (s *Store) fetch(ctx context.Context) ([]byte, error) {
	if strings.HasPrefix(s.source, "http://") || strings.HasPrefix(s.source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.source, nil)
		if err != nil {
			return nil, err
		}
		resp, err := s.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(s.source)
}

// Items returns the catalog in load order, or ErrCatalogUnavailable if
// no load has succeeded yet.
func (s *Store) Items() ([]domain.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, domain.ErrCatalogUnavailable
	}
	out := make([]domain.MenuItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Get looks up a menu item by id.
func (s *Store) Get(id int) (*domain.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, domain.ErrCatalogUnavailable
	}
	for _, item := range s.items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Categories returns distinct categories in first-seen catalog order.
func (s *Store) Categories() ([]string, error) {
	items, err := s.Items()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(items))
	var categories []string
	for _, item := range items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	return categories, nil
}
