package history

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/eliozeb/dinner-sharing-app/internal/domain"
)

// csvHeader matches the export format the page always produced.
var csvHeader = []string{"Date", "Items", "Quantity", "Price", "Total"}

// ExportCSV writes every history entry as one row per line item.
// Commas inside item names become semicolons so a naive consumer can
// split on commas; other characters are left alone, a known limitation.
// Oldest entries come first, in append order.
func (l *Log) ExportCSV(ctx context.Context, w io.Writer, loc *time.Location) error {
	l.mu.Lock()
	orders, err := l.loadLocked(ctx)
	l.mu.Unlock()
	if err != nil {
		return err
	}
	if loc == nil {
		loc = time.Local
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, order := range orders {
		date := order.Date.In(loc).Format("2006-01-02 15:04:05")
		for _, line := range order.Items {
			record := []string{
				date,
				strings.ReplaceAll(line.Item.Name, ",", ";"),
				strconv.Itoa(line.Quantity),
				domain.FormatCents(line.Item.PriceCents),
				domain.FormatCents(line.TotalCents()),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
