package cli

import (
	"fmt"

	"github.com/alexanderramin/cropcal/internal/cli/formatter"
	"github.com/alexanderramin/cropcal/internal/contract"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var succession int

	cmd := &cobra.Command{
		Use:   "plan <crop>",
		Short: "Show planting dates and instructions for a crop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewPlanRequest(args[0])
			req.Today = app.today
			if cmd.Flags().Changed("succession") {
				req.SuccessionCount = &succession
			}

			resp, err := app.Plans.Plan(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&succession, "succession", 0, "Number of succession sowings to list")

	return cmd
}

func newSuccessionCmd(app *App) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "succession <crop>",
		Short: "List succession sowing dates for a crop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}
			req := contract.NewPlanRequest(args[0])
			req.Today = app.today
			req.SuccessionCount = &count

			resp, err := app.Plans.Plan(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSuccession(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 4, "Number of sowings")

	return cmd
}
