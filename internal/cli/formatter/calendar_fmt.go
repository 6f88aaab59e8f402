package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cropcal/internal/contract"
)

// FormatCalendar renders a month grid followed by the events of each day.
// Days with events are marked in the grid; today is underlined.
func FormatCalendar(resp *contract.CalendarResponse) string {
	var b strings.Builder

	b.WriteString(monthGrid(resp))

	b.WriteString("\n")
	if resp.EventCount() == 0 {
		b.WriteString(Dim("No planting events this month.") + "\n")
	}
	for _, day := range resp.Days {
		if len(day.Events) == 0 {
			continue
		}
		label := day.Date.In(time.UTC).Format("Mon Jan 2")
		if day.IsToday {
			label = StyleToday.Render(label)
		} else {
			label = Bold(label)
		}
		b.WriteString(label + "\n")
		for _, ev := range day.Events {
			b.WriteString(fmt.Sprintf("  %s  %s\n", EventLabel(ev.Kind), ev.CropName))
		}
	}

	b.WriteString(Warnings(resp.Warnings))

	title := fmt.Sprintf("%s %d", resp.Month, resp.Year)
	if resp.Category != "" {
		title += " · " + string(resp.Category)
	}
	return RenderBox(title, b.String())
}

func monthGrid(resp *contract.CalendarResponse) string {
	if len(resp.Days) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(Dim(" Su  Mo  Tu  We  Th  Fr  Sa") + "\n")

	offset := int(resp.Days[0].Date.In(time.UTC).Weekday())
	b.WriteString(strings.Repeat("    ", offset))

	for i, day := range resp.Days {
		cell := fmt.Sprintf("%3d", day.Date.Day)
		switch {
		case day.IsToday:
			cell = StyleToday.Render(cell)
		case len(day.Events) > 0:
			cell = StyleGreen.Render(cell)
		default:
			cell = StyleFg.Render(cell)
		}
		marker := " "
		if len(day.Events) > 0 {
			marker = StyleGreen.Render("•")
		}
		b.WriteString(cell + marker)
		if (offset+i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}
	if (offset+len(resp.Days))%7 != 0 {
		b.WriteString("\n")
	}
	return b.String()
}
