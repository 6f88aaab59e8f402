package cli

import "github.com/charmbracelet/huh"

// dateInput returns a huh.Input for a date field with YYYY-MM-DD validation.
func dateInput(title, placeholder string, value *string, required bool) *huh.Input {
	if placeholder == "" {
		placeholder = "2025-04-15"
	}
	validate := validateOptionalDate
	if required {
		validate = validateRequiredDate
	}
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validate)
}

// setupValues are the editable fields of the setup form.
type setupValues struct {
	Location   string
	LastFrost  string
	FirstFrost string
	Zone       string
}

// setupForm returns a themed form collecting the garden profile. Fields are
// pre-filled from values.
func setupForm(values *setupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Location").
				Description("Shown on the dashboard, e.g. city or garden name").
				Placeholder("Portland, OR").
				Value(&values.Location),
			dateInput("Average last spring frost (YYYY-MM-DD)", "", &values.LastFrost, true).
				Description("Every planting date is counted from this day"),
			dateInput("Average first fall frost (YYYY-MM-DD, blank to skip)", "2025-10-30", &values.FirstFrost, false),
			huh.NewInput().
				Title("USDA hardiness zone").
				Placeholder("8b").
				Value(&values.Zone),
		),
	).WithTheme(cropcalHuhTheme()).WithShowHelp(false)
}
