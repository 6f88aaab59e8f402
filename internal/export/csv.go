package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/alexanderramin/cropcal/internal/contract"
)

var csvHeader = []string{"date", "crop", "category", "event", "description"}

// WriteCSV writes one row per event with an ISO date column.
func WriteCSV(w io.Writer, events []contract.CalendarEvent) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, ev := range events {
		row := []string{
			ev.Date.String(),
			ev.CropName,
			string(ev.Category),
			string(ev.Kind),
			ev.Description,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}
