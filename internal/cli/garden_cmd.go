package cli

import (
	"fmt"

	"github.com/alexanderramin/cropcal/internal/cli/formatter"
	"github.com/alexanderramin/cropcal/internal/contract"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show garden statistics and what to plant this week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewDashboardRequest()
			req.Today = app.today
			if cmd.Flags().Changed("limit") {
				req.ThisWeekLimit = limit
			}

			resp, err := app.Garden.Dashboard(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDashboard(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", contract.DefaultThisWeekLimit, "Maximum crops listed under \"plant this week\"")

	return cmd
}

func newGardenCmd(app *App) *cobra.Command {
	var status, sortBy string

	cmd := &cobra.Command{
		Use:   "garden",
		Short: "List the crops in your garden",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := resolveGardenStatus(status)
			if err != nil {
				return err
			}
			sortKey, err := resolveGardenSort(sortBy)
			if err != nil {
				return err
			}

			resp, err := app.Garden.Garden(cmd.Context(), contract.GardenRequest{
				Today:  app.today,
				Status: st,
				Sort:   sortKey,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGarden(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Only show entries with this status")
	cmd.Flags().StringVar(&sortBy, "sort", "name", "Sort by name, date or window")

	return cmd
}
