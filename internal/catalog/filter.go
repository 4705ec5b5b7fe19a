package catalog

import (
	"math"
	"strings"

	"github.com/eliozeb/dinner-sharing-app/internal/domain"
)

// CategoryAll matches every category in Filter.
const CategoryAll = "all"

// Filter returns the subsequence of items whose category matches the
// token (or everything for "all") and whose name or description
// contains the query as a case-insensitive substring. An empty query
// matches everything. Catalog order is preserved; an empty result is a
// valid outcome, not an error.
func Filter(items []domain.MenuItem, category, query string) []domain.MenuItem {
	query = strings.ToLower(strings.TrimSpace(query))

	result := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if category != CategoryAll && item.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.Description), query) {
			continue
		}
		result = append(result, item)
	}
	return result
}

// Stars is a rating broken into renderable star counts out of five.
type Stars struct {
	Full  int `json:"full"`
	Half  int `json:"half"`
	Empty int `json:"empty"`
}

// StarsForRating splits a [0,5] rating into full, half and empty
// stars. A fractional part of at least 0.5 earns the half star.
func StarsForRating(rating float64) Stars {
	full := int(math.Floor(rating))
	half := 0
	if rating-float64(full) >= 0.5 {
		half = 1
	}
	return Stars{Full: full, Half: half, Empty: 5 - full - half}
}
