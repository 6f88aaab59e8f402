package formatter

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/alexanderramin/cropcal/internal/contract"
	"github.com/alexanderramin/cropcal/internal/domain"
)

// FormatPlan renders the planting plan of one crop.
func FormatPlan(resp *contract.PlanResponse) string {
	var b strings.Builder
	crop := resp.Crop

	b.WriteString(cropTitle(crop) + "\n")
	b.WriteString(Dim(fmt.Sprintf("Last frost %s · today %s",
		LongDate(&resp.LastFrostDate), LongDate(&resp.Today))) + "\n\n")

	if resp.Scheduled {
		b.WriteString(fmt.Sprintf("%s  %s\n", WindowPill(resp.Window), RelativeDaysStyled(resp.DaysUntil)))
	} else {
		b.WriteString(Dim("No planting dates are known for this crop.") + "\n")
	}

	if lines := resp.Instructions.Lines(); len(lines) > 0 {
		b.WriteString("\n" + Header("Instructions") + "\n")
		for _, l := range lines {
			b.WriteString("  • " + l + "\n")
		}
	}

	if !resp.Milestones.IsEmpty() {
		b.WriteString("\n")
		b.WriteString(RenderTable([]string{"MILESTONE", "DATE", "WHEN"}, milestoneRows(resp)))
	}

	if len(resp.Succession) > 1 {
		b.WriteString("\n" + Header("Succession sowings") + "\n")
		b.WriteString(successionList(resp.Succession, resp.Today))
	}

	b.WriteString("\n" + Header("Growing notes") + "\n")
	b.WriteString(cropDetails(crop))

	return RenderBox("Plan", b.String())
}

// FormatSuccession renders only the succession schedule of a crop.
func FormatSuccession(resp *contract.PlanResponse) string {
	var b strings.Builder
	b.WriteString(cropTitle(resp.Crop) + "\n\n")

	switch {
	case resp.Crop.Timing.SuccessionIntervalWeeks == nil:
		b.WriteString(Dim(resp.Crop.Name+" is not usually succession planted.") + "\n")
	case len(resp.Succession) == 0:
		b.WriteString(Dim("No sowing dates are known for this crop.") + "\n")
	default:
		b.WriteString(Dim(fmt.Sprintf("Sow every %d weeks:", *resp.Crop.Timing.SuccessionIntervalWeeks)) + "\n")
		b.WriteString(successionList(resp.Succession, resp.Today))
	}
	return RenderBox("Succession", b.String())
}

func cropTitle(c *domain.Crop) string {
	title := Bold(c.Name)
	if c.ScientificName != "" {
		title += " " + Dim("("+c.ScientificName+")")
	}
	return title + "  " + CategoryBadge(c.Category)
}

func milestoneRows(resp *contract.PlanResponse) [][]string {
	m := resp.Milestones
	var rows [][]string
	add := func(label string, d *civil.Date) {
		if d == nil {
			return
		}
		rows = append(rows, []string{label, ShortDate(*d), RelativeDays(d.DaysSince(resp.Today))})
	}
	add("Start indoors", m.IndoorStart)
	add("Transplant", m.Transplant)
	add("Sow from", m.DirectSowEarliest)
	add("Sow until", m.DirectSowLatest)
	add("Harvest", m.EstimatedHarvest)
	return rows
}

func successionList(dates []civil.Date, today civil.Date) string {
	var b strings.Builder
	for i, d := range dates {
		line := fmt.Sprintf("  %d. %s", i+1, LongDate(&d))
		if d.Before(today) {
			line = Dim(line + "  (past)")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func cropDetails(c *domain.Crop) string {
	var b strings.Builder
	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(fmt.Sprintf("  %-16s %s\n", label, value))
	}
	if c.Timing.DaysToMaturity > 0 {
		row("Days to maturity", fmt.Sprintf("%d", c.Timing.DaysToMaturity))
	}
	row("Frost tolerance", string(c.Timing.FrostTolerance))
	row("Planting depth", c.PlantingDepth)
	row("Spacing", c.Spacing)
	if c.SoilTempMinF != nil {
		row("Min soil temp", fmt.Sprintf("%d°F", *c.SoilTempMinF))
	}
	if c.Notes != "" {
		b.WriteString("\n  " + Dim(c.Notes) + "\n")
	}
	if b.Len() == 0 {
		return "  " + Dim("No growing notes.") + "\n"
	}
	return b.String()
}
