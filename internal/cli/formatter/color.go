package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cropcal/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#b8bb26")
	ColorAqua   = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleAqua   = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleToday  = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true).Underline(true)
)

// WindowColor returns the style for a planting window.
func WindowColor(w domain.WindowStatus) lipgloss.Style {
	switch w {
	case domain.WindowOptimal:
		return StyleGreen
	case domain.WindowLate:
		return StyleYellow
	case domain.WindowTooLate:
		return StyleRed
	case domain.WindowTooEarly:
		return StyleBlue
	default:
		return StyleDim
	}
}

// WindowPill returns a colored window indicator such as "● OPTIMAL".
func WindowPill(w domain.WindowStatus) string {
	switch w {
	case domain.WindowOptimal:
		return StyleGreen.Render("● OPTIMAL")
	case domain.WindowLate:
		return StyleYellow.Render("● LATE")
	case domain.WindowTooLate:
		return StyleRed.Render("● TOO LATE")
	case domain.WindowTooEarly:
		return StyleBlue.Render("○ TOO EARLY")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// GardenStatusPill returns a colored indicator for a garden entry status.
func GardenStatusPill(status domain.GardenStatus) string {
	switch status {
	case domain.GardenPlanned, "":
		return StyleBlue.Render("○ Planned")
	case domain.GardenPlanted:
		return StyleGreen.Render("● Planted")
	case domain.GardenHarvesting:
		return StyleYellow.Render("◆ Harvesting")
	case domain.GardenHarvested:
		return StyleDim.Render("✔ Harvested")
	default:
		return StyleDim.Render(string(status))
	}
}

// CategoryBadge returns a purple category label.
func CategoryBadge(c domain.CropCategory) string {
	if c == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(string(c))
}

// EventLabel names a calendar event kind with its color.
func EventLabel(k domain.EventKind) string {
	switch k {
	case domain.EventIndoorStart:
		return StyleAqua.Render("Start indoors")
	case domain.EventTransplant:
		return StyleGreen.Render("Transplant")
	case domain.EventDirectSow:
		return StyleYellow.Render("Direct sow")
	case domain.EventSuccession:
		return StyleYellow.Render("Succession")
	case domain.EventHarvest:
		return StyleHeader.Render("Harvest")
	default:
		return StyleDim.Render(string(k))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
