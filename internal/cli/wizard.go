package cli

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/alexanderramin/cropcal/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// cropcalHuhTheme is huh's base theme recolored with the green garden accent.
func cropcalHuhTheme() *huh.Theme {
	t := huh.ThemeBase()
	accent := lipgloss.NewStyle().Foreground(formatter.ColorGreen)

	t.Focused.Title = accent.Bold(true)
	t.Focused.Base = t.Focused.Base.BorderForeground(formatter.ColorGreen)
	t.Focused.TextInput.Cursor = accent
	t.Focused.TextInput.Prompt = accent
	t.Focused.TextInput.Text = formatter.StyleFg
	t.Focused.TextInput.Placeholder = formatter.StyleDim
	t.Focused.Description = formatter.StyleDim
	t.Focused.ErrorIndicator = formatter.StyleRed
	t.Focused.ErrorMessage = formatter.StyleRed

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = formatter.StyleDim
	t.Blurred.TextInput.Prompt = formatter.StyleDim
	t.Blurred.TextInput.Text = formatter.StyleDim

	return t
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date.
func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := civil.ParseDate(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateRequiredDate accepts only a YYYY-MM-DD date.
func validateRequiredDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("a date is required")
	}
	return validateOptionalDate(s)
}
