package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// MenuItem is a single orderable entry from the restaurant catalog.
// Items are immutable once the catalog is loaded.
type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PriceCents  int64   `json:"priceCents"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
}

// menuItemJSON is the on-disk catalog shape: price is a decimal number
// of dollars, not cents.
type menuItemJSON struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
}

// UnmarshalJSON converts the catalog's decimal price to integer cents
// so all downstream arithmetic stays exact.
func (m *MenuItem) UnmarshalJSON(data []byte) error {
	var raw menuItemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Price < 0 {
		return fmt.Errorf("menu item %d: negative price %v", raw.ID, raw.Price)
	}
	if raw.Rating < 0 || raw.Rating > 5 {
		return fmt.Errorf("menu item %d: rating %v out of range", raw.ID, raw.Rating)
	}
	*m = MenuItem{
		ID:          raw.ID,
		Name:        raw.Name,
		Description: raw.Description,
		PriceCents:  DollarsToCents(raw.Price),
		Category:    raw.Category,
		Image:       raw.Image,
		Rating:      raw.Rating,
	}
	return nil
}

// MarshalJSON writes the item back in catalog shape, with a decimal price.
func (m MenuItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(menuItemJSON{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       CentsToDollars(m.PriceCents),
		Category:    m.Category,
		Image:       m.Image,
		Rating:      m.Rating,
	})
}

// DollarsToCents rounds a decimal dollar amount to the nearest cent.
func DollarsToCents(d float64) int64 {
	return int64(math.Round(d * 100))
}

// CentsToDollars is the inverse conversion, for wire and CSV output.
func CentsToDollars(c int64) float64 {
	return float64(c) / 100
}

// FormatCents renders a cent amount as a plain two-decimal string,
// e.g. 1299 -> "12.99".
func FormatCents(c int64) string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}
