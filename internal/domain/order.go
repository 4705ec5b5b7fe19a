package domain

import "time"

// OrderLine pairs a menu item snapshot with a quantity. Quantity is
// always >= 1; dropping a line to zero removes it from the cart.
type OrderLine struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

// TotalCents is the exact line total at the snapshotted unit price.
func (l OrderLine) TotalCents() int64 {
	return l.Item.PriceCents * int64(l.Quantity)
}

// CompletedOrder is an immutable record created at checkout. Its total
// is fixed at snapshot time; later catalog price changes never alter it.
type CompletedOrder struct {
	ID         string      `json:"id"`
	Items      []OrderLine `json:"items"`
	TotalCents int64       `json:"totalCents"`
	Date       time.Time   `json:"date"`
}

// LinesTotalCents sums price*quantity over a set of order lines.
func LinesTotalCents(lines []OrderLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.TotalCents()
	}
	return total
}
