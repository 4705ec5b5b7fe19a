package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eliozeb/dinner-sharing-app/internal/domain"
	"github.com/eliozeb/dinner-sharing-app/internal/kvstore"
)

// DemoMenu is the catalog written by Apply when no menu file exists.
// Prices are decimal dollars, matching the catalog wire format.
var DemoMenu = []domain.MenuItem{
	{ID: 1, Name: "Margherita Pizza", Description: "San Marzano tomatoes, fresh mozzarella and basil", PriceCents: 1099, Category: "pizza", Image: "images/margherita.jpg", Rating: 4.5},
	{ID: 2, Name: "Pepperoni Pizza", Description: "Spicy pepperoni with a blend of three cheeses", PriceCents: 1299, Category: "pizza", Image: "images/pepperoni.jpg", Rating: 4.8},
	{ID: 3, Name: "Quattro Formaggi", Description: "Gorgonzola, fontina, parmesan and mozzarella", PriceCents: 1399, Category: "pizza", Image: "images/quattro.jpg", Rating: 4.7},
	{ID: 4, Name: "Caesar Salad", Description: "Romaine, parmesan, croutons and house dressing", PriceCents: 899, Category: "salad", Image: "images/caesar.jpg", Rating: 4.2},
	{ID: 5, Name: "Greek Salad", Description: "Cucumber, olives, feta and oregano vinaigrette", PriceCents: 949, Category: "salad", Image: "images/greek.jpg", Rating: 4.6},
	{ID: 6, Name: "Spaghetti Carbonara", Description: "Guanciale, pecorino and cracked black pepper", PriceCents: 1349, Category: "pasta", Image: "images/carbonara.jpg", Rating: 4.9},
	{ID: 7, Name: "Penne Arrabbiata", Description: "Tomato, garlic and chili over penne rigate", PriceCents: 1149, Category: "pasta", Image: "images/arrabbiata.jpg", Rating: 4.3},
	{ID: 8, Name: "Tiramisu", Description: "Coffee-soaked ladyfingers with mascarpone cream", PriceCents: 699, Category: "dessert", Image: "images/tiramisu.jpg", Rating: 4.9},
	{ID: 9, Name: "Panna Cotta", Description: "Vanilla cream with a raspberry coulis", PriceCents: 649, Category: "dessert", Image: "images/pannacotta.jpg", Rating: 4.4},
}

// Apply writes demo data for manual testing: a menu file at menuPath
// (only when absent) and a small order-history snapshot in the store
// (only when no history exists). Running it twice is a no-op.
func Apply(ctx context.Context, store kvstore.Store, menuPath string) error {
	if err := writeMenuFile(menuPath); err != nil {
		return fmt.Errorf("write menu file: %w", err)
	}
	if err := seedHistory(ctx, store); err != nil {
		return fmt.Errorf("seed history: %w", err)
	}
	return nil
}

func writeMenuFile(path string) error {
	// A remote menu source is not ours to seed.
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(DemoMenu, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func seedHistory(ctx context.Context, store kvstore.Store) error {
	if _, err := store.Get(ctx, kvstore.KeyOrderHistory); err == nil {
		return nil
	}

	yesterday := time.Now().Add(-24 * time.Hour)
	orders := []domain.CompletedOrder{
		{
			ID: uuid.NewString(),
			Items: []domain.OrderLine{
				{Item: DemoMenu[0], Quantity: 1},
				{Item: DemoMenu[7], Quantity: 2},
			},
			TotalCents: DemoMenu[0].PriceCents + 2*DemoMenu[7].PriceCents,
			Date:       yesterday,
		},
	}

	data, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return store.Set(ctx, kvstore.KeyOrderHistory, data)
}
