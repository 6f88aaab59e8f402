package formatter

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a growth bar like [████░░░░] 45%. The bar turns
// from aqua to green as the crop nears harvest and to orange once it is due.
func RenderProgress(pct float64, width int) string {
	pct = min(max(pct, 0), 1)
	width = max(width, 2)

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleAqua
	switch {
	case pct >= 1:
		style = StyleHeader
	case pct >= 0.66:
		style = StyleGreen
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// GrowthFraction returns how far today lies between planting and harvest.
// ok is false when the span is unknown or empty.
func GrowthFraction(planted, harvest *civil.Date, today civil.Date) (float64, bool) {
	if planted == nil || harvest == nil {
		return 0, false
	}
	span := harvest.DaysSince(*planted)
	if span <= 0 {
		return 0, false
	}
	return float64(today.DaysSince(*planted)) / float64(span), true
}
