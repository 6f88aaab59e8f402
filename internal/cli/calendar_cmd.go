package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/cropcal/internal/cli/formatter"
	"github.com/alexanderramin/cropcal/internal/contract"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	var month, category string
	var browse bool

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month of planting events for your garden",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			year, m, err := parseMonthFlag(month)
			if err != nil {
				return err
			}
			cat, err := resolveCategory(category)
			if err != nil {
				return err
			}

			if browse {
				if !app.interactive() {
					return errors.New("--browse needs a terminal")
				}
				model := newCalendarBrowser(cmd.Context(), app.Calendar, year, m, cat, app.today)
				_, err := tea.NewProgram(model,
					tea.WithContext(cmd.Context()),
					tea.WithInput(cmd.InOrStdin()),
					tea.WithOutput(cmd.OutOrStdout()),
				).Run()
				return err
			}

			resp, err := app.Calendar.Month(cmd.Context(), contract.CalendarRequest{
				Year:     year,
				Month:    m,
				Category: cat,
				Today:    app.today,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCalendar(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to show as YYYY-MM (default current month)")
	cmd.Flags().StringVar(&category, "category", "", "Only show crops in this category")
	cmd.Flags().BoolVar(&browse, "browse", false, "Page through months interactively")

	return cmd
}
