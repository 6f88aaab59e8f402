package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/cropcal/internal/contract"
	"github.com/alexanderramin/cropcal/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		format     string
		outPath    string
		category   string
		succession bool
		count      int
		remind     int
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export your garden's planting events as iCalendar or CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if format != "ics" && format != "csv" {
				return fmt.Errorf("unknown format %q (want ics or csv)", format)
			}
			cat, err := resolveCategory(category)
			if err != nil {
				return err
			}

			resp, err := app.Calendar.Events(cmd.Context(), contract.EventsRequest{
				Category:          cat,
				IncludeSuccession: succession,
				SuccessionCount:   count,
			})
			if err != nil {
				return err
			}

			write := func(w io.Writer) error {
				if format == "csv" {
					return export.WriteCSV(w, resp.Events)
				}
				return export.WriteICS(w, "Planting calendar · "+resp.Location, resp.Events, app.now(),
					export.WithReminder(remind), export.WithLocation(resp.Location))
			}

			if outPath == "" || outPath == "-" {
				return write(cmd.OutOrStdout())
			}
			if err := writeFile(outPath, write); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d events to %s\n", len(resp.Events), outPath)
			for _, w := range resp.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "WARNING: %s\n", w)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "ics", "Output format: ics or csv")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&category, "category", "", "Only export crops in this category")
	cmd.Flags().BoolVar(&succession, "succession", false, "Include succession sowings")
	cmd.Flags().IntVar(&count, "count", 0, "Succession sowings per crop (default from config)")
	cmd.Flags().IntVar(&remind, "remind", 0, "Add a reminder this many days before each event (ics only)")

	return cmd
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return write(f)
}
