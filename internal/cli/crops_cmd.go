package cli

import (
	"fmt"

	"github.com/alexanderramin/cropcal/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCropsCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "crops [crop]",
		Short: "List the crop catalog or show one crop",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				crop, err := app.Crops.Get(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatter.FormatCropDetail(crop))
				return nil
			}

			cat, err := resolveCategory(category)
			if err != nil {
				return err
			}
			crops, err := app.Crops.List(ctx, cat)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatCropList(crops))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only list crops in this category")

	return cmd
}
