package cli

import (
	"fmt"

	"github.com/alexanderramin/cropcal/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCompanionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "companions [crop]",
		Short: "Show companion plants, or conflicts in your garden",
		Long: "With a crop argument, lists the plants it grows well with and the ones\n" +
			"to keep away. Without one, checks your garden for crops that should\n" +
			"not be planted together.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				conflicts, err := app.Companions.Conflicts(ctx)
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.FormatConflicts(conflicts))
				return nil
			}

			resp, err := app.Companions.Companions(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.FormatCompanions(resp))
			return nil
		},
	}

	return cmd
}
