package recommend

import (
	"context"
	"sort"

	"github.com/eliozeb/dinner-sharing-app/internal/domain"
)

// maxPerList caps every recommendation list.
const maxPerList = 2

type catalogSource interface {
	Items() ([]domain.MenuItem, error)
}

type historySource interface {
	List(ctx context.Context) ([]domain.CompletedOrder, error)
}

// Recommendations holds the three independently computed lists, each
// ranked and capped at two entries.
type Recommendations struct {
	Popular     []domain.MenuItem `json:"popular"`
	FromHistory []domain.MenuItem `json:"fromHistory"`
	Similar     []domain.MenuItem `json:"similar"`
}

// Visible reports whether the recommendation area should be shown at
// all. Popular alone does not make it visible; it needs at least one
// history-derived list.
func (r Recommendations) Visible() bool {
	return len(r.FromHistory) > 0 || len(r.Similar) > 0
}

// Engine derives recommendations from the catalog and the order
// history log. It holds no state of its own.
type Engine struct {
	catalog catalogSource
	history historySource
}

func New(catalog catalogSource, history historySource) *Engine {
	return &Engine{catalog: catalog, history: history}
}

// Recommendations computes all three lists. The catalog must be
// loaded; history may be empty, in which case only Popular can be
// non-empty.
func (e *Engine) Recommendations(ctx context.Context) (Recommendations, error) {
	items, err := e.catalog.Items()
	if err != nil {
		return Recommendations{}, err
	}
	orders, err := e.history.List(ctx)
	if err != nil {
		return Recommendations{}, err
	}

	return Recommendations{
		Popular:     topRated(items, nil, maxPerList),
		FromHistory: fromHistory(items, orders),
		Similar:     similar(items, orders),
	}, nil
}

// fromHistory finds the single most frequently purchased category
// (ties broken by first encounter, iterating orders oldest to newest)
// and recommends its highest-rated never-purchased items.
func fromHistory(items []domain.MenuItem, orders []domain.CompletedOrder) []domain.MenuItem {
	if len(orders) == 0 {
		return nil
	}

	freq := make(map[string]int)
	var encounterOrder []string
	purchased := make(map[int]bool)

	// Orders arrive newest-first; walk them oldest-first so the
	// tie-break follows historical encounter order.
	for i := len(orders) - 1; i >= 0; i-- {
		for _, line := range orders[i].Items {
			if freq[line.Item.Category] == 0 {
				encounterOrder = append(encounterOrder, line.Item.Category)
			}
			freq[line.Item.Category]++
			purchased[line.Item.ID] = true
		}
	}

	topCategory := ""
	best := 0
	for _, category := range encounterOrder {
		if freq[category] > best {
			best = freq[category]
			topCategory = category
		}
	}
	if topCategory == "" {
		return nil
	}

	keep := func(item domain.MenuItem) bool {
		return item.Category == topCategory && !purchased[item.ID]
	}
	return topRated(items, keep, maxPerList)
}

// similar recommends items sharing the category of the first line of
// the most recent order, excluding that exact item.
func similar(items []domain.MenuItem, orders []domain.CompletedOrder) []domain.MenuItem {
	if len(orders) == 0 || len(orders[0].Items) == 0 {
		return nil
	}
	seed := orders[0].Items[0].Item

	keep := func(item domain.MenuItem) bool {
		return item.Category == seed.Category && item.ID != seed.ID
	}
	return topRated(items, keep, maxPerList)
}

// topRated filters items, sorts them by rating descending with ties
// keeping catalog order, and returns at most limit entries.
func topRated(items []domain.MenuItem, keep func(domain.MenuItem) bool, limit int) []domain.MenuItem {
	var candidates []domain.MenuItem
	for _, item := range items {
		if keep == nil || keep(item) {
			candidates = append(candidates, item)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Rating > candidates[j].Rating
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}
