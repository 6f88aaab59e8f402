package formatter

import (
	"strings"

	"github.com/alexanderramin/cropcal/internal/contract"
	"github.com/alexanderramin/cropcal/internal/domain"
)

const growthBarWidth = 8

// FormatGarden renders the garden entries as a table.
func FormatGarden(resp *contract.GardenResponse) string {
	if len(resp.Entries) == 0 {
		return Dim("Your garden is empty. Add [[garden]] entries to the config file.") + "\n" +
			Warnings(resp.Warnings)
	}

	headers := []string{"CROP", "STATUS", "PLANT", "WINDOW", "HARVEST", "GROWTH", "QTY"}
	rows := make([][]string, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		plant := DateOrDash(e.PlantDate)
		if e.DaysUntilPlanting != nil {
			plant += " " + RelativeDaysStyled(*e.DaysUntilPlanting)
		}

		window := Dim("--")
		if e.Status == domain.GardenPlanned {
			window = WindowPill(e.Window)
		}

		harvest := DateOrDash(e.HarvestDate)
		if e.DaysToHarvest != nil {
			harvest += " " + Dim(RelativeDays(*e.DaysToHarvest))
		}

		growth := Dim("--")
		if e.DaysToHarvest != nil {
			if pct, ok := GrowthFraction(e.PlantDate, e.HarvestDate, resp.Today); ok {
				growth = RenderProgress(pct, growthBarWidth)
			}
		}

		rows = append(rows, []string{
			Bold(e.CropName),
			GardenStatusPill(e.Status),
			plant,
			window,
			harvest,
			growth,
			e.Quantity,
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString(Warnings(resp.Warnings))
	return b.String()
}
