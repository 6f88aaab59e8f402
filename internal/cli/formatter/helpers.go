package formatter

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/alexanderramin/cropcal/internal/planting"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	content = strings.TrimRight(content, "\n")
	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDays describes a signed day offset, e.g. "In 3d" or "2w ago".
func RelativeDays(days int) string {
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// RelativeDaysStyled returns RelativeDays colored by urgency: overdue and
// the next two days are red, the rest of the week yellow.
func RelativeDaysStyled(days int) string {
	text := RelativeDays(days)
	switch {
	case days <= 2:
		return StyleRed.Render(text)
	case days <= 7:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// ShortDate renders a date as "Apr 15".
func ShortDate(d civil.Date) string {
	return d.In(time.UTC).Format("Jan 2")
}

// LongDate renders a date pointer as "April 15, 2024", or "Not set".
func LongDate(d *civil.Date) string {
	return planting.FormatDate(d)
}

// DateOrDash renders a short date or a dimmed dash.
func DateOrDash(d *civil.Date) string {
	if d == nil {
		return Dim("--")
	}
	return ShortDate(*d)
}

// Warnings renders warning lines, or nothing when there are none.
func Warnings(warnings []string) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render("  WARNING: "+w) + "\n")
	}
	return b.String()
}
