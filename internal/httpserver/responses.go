package httpserver

import (
	"time"

	"github.com/eliozeb/dinner-sharing-app/internal/catalog"
	"github.com/eliozeb/dinner-sharing-app/internal/domain"
)

type apiMenuItem struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       string        `json:"price"`
	PriceCents  int64         `json:"priceCents"`
	Category    string        `json:"category"`
	Image       string        `json:"image"`
	Rating      float64       `json:"rating"`
	Stars       catalog.Stars `json:"stars"`
}

type apiCartLine struct {
	Item           apiMenuItem `json:"item"`
	Quantity       int         `json:"quantity"`
	LineTotal      string      `json:"lineTotal"`
	LineTotalCents int64       `json:"lineTotalCents"`
}

type apiCart struct {
	Lines      []apiCartLine `json:"lines"`
	Total      string        `json:"total"`
	TotalCents int64         `json:"totalCents"`
}

type apiOrder struct {
	ID         string        `json:"id"`
	Date       time.Time     `json:"date"`
	Items      []apiCartLine `json:"items"`
	Total      string        `json:"total"`
	TotalCents int64         `json:"totalCents"`
}

func toAPIMenuItem(item domain.MenuItem) apiMenuItem {
	return apiMenuItem{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       domain.FormatCents(item.PriceCents),
		PriceCents:  item.PriceCents,
		Category:    item.Category,
		Image:       item.Image,
		Rating:      item.Rating,
		Stars:       catalog.StarsForRating(item.Rating),
	}
}

func toAPIMenuItems(items []domain.MenuItem) []apiMenuItem {
	out := make([]apiMenuItem, 0, len(items))
	for _, item := range items {
		out = append(out, toAPIMenuItem(item))
	}
	return out
}

func toAPICartLine(line domain.OrderLine) apiCartLine {
	return apiCartLine{
		Item:           toAPIMenuItem(line.Item),
		Quantity:       line.Quantity,
		LineTotal:      domain.FormatCents(line.TotalCents()),
		LineTotalCents: line.TotalCents(),
	}
}

func toAPICart(lines []domain.OrderLine, totalCents int64) apiCart {
	out := apiCart{
		Lines:      make([]apiCartLine, 0, len(lines)),
		Total:      domain.FormatCents(totalCents),
		TotalCents: totalCents,
	}
	for _, line := range lines {
		out.Lines = append(out.Lines, toAPICartLine(line))
	}
	return out
}

func toAPIOrder(order domain.CompletedOrder) apiOrder {
	items := make([]apiCartLine, 0, len(order.Items))
	for _, line := range order.Items {
		items = append(items, toAPICartLine(line))
	}
	return apiOrder{
		ID:         order.ID,
		Date:       order.Date,
		Items:      items,
		Total:      domain.FormatCents(order.TotalCents),
		TotalCents: order.TotalCents,
	}
}

func toAPIOrders(orders []domain.CompletedOrder) []apiOrder {
	out := make([]apiOrder, 0, len(orders))
	for _, order := range orders {
		out = append(out, toAPIOrder(order))
	}
	return out
}
