package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cropcal/internal/contract"
)

// FormatDashboard renders the garden overview.
func FormatDashboard(resp *contract.DashboardResponse) string {
	var b strings.Builder

	b.WriteString(Bold(resp.Location) + "\n")
	b.WriteString(Dim(fmt.Sprintf("Last frost %s · today %s",
		LongDate(&resp.LastFrostDate), LongDate(&resp.Today))) + "\n\n")

	next := Dim("--")
	if resp.DaysToNextPlanting != nil {
		next = RelativeDaysStyled(*resp.DaysToNextPlanting)
	}
	stats := [][2]string{
		{"Crops", fmt.Sprintf("%d", resp.TotalCrops)},
		{"Ready to plant", StyleGreen.Render(fmt.Sprintf("%d", resp.ReadyToPlant))},
		{"Overdue", overdueCount(resp.Overdue)},
		{"Growing", StyleAqua.Render(fmt.Sprintf("%d", resp.UpcomingHarvests))},
		{"Next planting", next},
	}
	for _, s := range stats {
		b.WriteString(fmt.Sprintf("  %-16s %s\n", s[0], s[1]))
	}

	b.WriteString("\n" + Header("Plant this week") + "\n")
	if len(resp.PlantThisWeek) == 0 {
		b.WriteString("  " + Dim("Nothing due in the next 7 days.") + "\n")
	} else {
		rows := make([][]string, 0, len(resp.PlantThisWeek))
		for _, p := range resp.PlantThisWeek {
			rows = append(rows, []string{
				Bold(p.CropName),
				CategoryBadge(p.Category),
				RelativeDaysStyled(p.DaysUntil),
				WindowPill(p.Window),
			})
		}
		b.WriteString(RenderTable([]string{"CROP", "CATEGORY", "WHEN", "WINDOW"}, rows))
	}

	if len(resp.Conflicts) > 0 {
		b.WriteString("\n" + Header("Companion conflicts") + "\n")
		b.WriteString(conflictLines(resp.Conflicts))
	}

	b.WriteString(Warnings(resp.Warnings))
	return RenderBox("Dashboard", b.String())
}

func overdueCount(n int) string {
	text := fmt.Sprintf("%d", n)
	if n > 0 {
		return StyleRed.Render(text)
	}
	return text
}
