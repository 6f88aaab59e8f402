package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cropcal/internal/domain"
)

// FormatCropList renders the catalog as a table.
func FormatCropList(crops []*domain.Crop) string {
	if len(crops) == 0 {
		return Dim("No crops found.") + "\n"
	}

	headers := []string{"ID", "NAME", "CATEGORY", "START", "MATURITY"}
	rows := make([][]string, 0, len(crops))
	for _, c := range crops {
		maturity := Dim("--")
		if c.Timing.DaysToMaturity > 0 {
			maturity = fmt.Sprintf("%dd", c.Timing.DaysToMaturity)
		}
		rows = append(rows, []string{
			Dim(c.ID),
			Bold(c.Name),
			CategoryBadge(c.Category),
			startMethod(c.Timing),
			maturity,
		})
	}

	var b strings.Builder
	b.WriteString(RenderTableAligned(headers, rows, []int{4}))
	b.WriteString("\n" + Dim(fmt.Sprintf("%d crops", len(crops))) + "\n")
	return b.String()
}

// FormatCropDetail renders one crop's reference data.
func FormatCropDetail(c *domain.Crop) string {
	var b strings.Builder
	b.WriteString(cropTitle(c) + "\n\n")
	b.WriteString(Header("Timing") + "\n")
	b.WriteString(timingDetails(c.Timing))
	b.WriteString("\n" + Header("Growing notes") + "\n")
	b.WriteString(cropDetails(c))
	return RenderBox(c.Name, b.String())
}

func startMethod(t domain.CropTimingProfile) string {
	direct := t.DirectSowWeeksBeforeFrost != nil || t.DirectSowWeeksAfterFrost != nil
	switch {
	case t.StartsIndoors() && direct:
		return "indoors or direct"
	case t.StartsIndoors():
		return "indoors"
	case t.TransplantWeeksRelativeToFrost != nil:
		return "transplant"
	case direct:
		return "direct sow"
	default:
		return Dim("--")
	}
}

func timingDetails(t domain.CropTimingProfile) string {
	if !t.HasSchedule() {
		return "  " + Dim("No frost-relative timing.") + "\n"
	}
	var b strings.Builder
	line := func(label string, weeks *int, before bool) {
		if weeks == nil {
			return
		}
		b.WriteString(fmt.Sprintf("  %-16s %s\n", label, frostOffset(*weeks, before)))
	}
	line("Start indoors", t.IndoorStartWeeksBeforeFrost, true)
	line("Transplant", t.TransplantWeeksRelativeToFrost, false)
	line("Sow from", t.DirectSowWeeksBeforeFrost, true)
	line("Sow until", t.DirectSowWeeksAfterFrost, false)
	if t.SuccessionIntervalWeeks != nil {
		b.WriteString(fmt.Sprintf("  %-16s every %d weeks\n", "Succession", *t.SuccessionIntervalWeeks))
	}
	return b.String()
}

// frostOffset describes a week offset. before flips the sign for fields
// counted backwards from the frost date.
func frostOffset(weeks int, before bool) string {
	if before {
		weeks = -weeks
	}
	switch {
	case weeks == 0:
		return "at last frost"
	case weeks < 0:
		return fmt.Sprintf("%d weeks before last frost", -weeks)
	default:
		return fmt.Sprintf("%d weeks after last frost", weeks)
	}
}
