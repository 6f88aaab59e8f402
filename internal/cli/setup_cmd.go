package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/cropcal/internal/cli/formatter"
	"github.com/alexanderramin/cropcal/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newSetupCmd(app *App) *cobra.Command {
	var values setupValues

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Save your location and frost dates",
		Long: "Writes the garden profile to the config file. Without --last-frost\n" +
			"and on a terminal, asks for the values interactively.",
		Args: cobra.NoArgs,
		// setup must work before a valid config exists, so it skips Load.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ResolvePath(app.configPath)
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			current := setupValues{
				Location:   cfg.Profile.Location,
				LastFrost:  cfg.Profile.LastFrostDate,
				FirstFrost: cfg.Profile.FirstFrostDate,
				Zone:       cfg.Profile.HardinessZone,
			}
			merged := mergeSetupFlags(current, values, flags)

			if !flags.Changed("last-frost") {
				if !app.interactive() {
					return errors.New("--last-frost is required when not running in a terminal")
				}
				if err := setupForm(&merged).Run(); err != nil {
					return err
				}
			}
			if err := validateRequiredDate(merged.LastFrost); err != nil {
				return fmt.Errorf("--last-frost: %w", err)
			}
			if err := validateOptionalDate(merged.FirstFrost); err != nil {
				return fmt.Errorf("--first-frost: %w", err)
			}

			cfg.Profile = config.ProfileConfig{
				Location:       strings.TrimSpace(merged.Location),
				LastFrostDate:  strings.TrimSpace(merged.LastFrost),
				FirstFrostDate: strings.TrimSpace(merged.FirstFrost),
				HardinessZone:  strings.TrimSpace(merged.Zone),
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), setupSummary(path, cfg))
			return nil
		},
	}

	cmd.Flags().StringVar(&values.LastFrost, "last-frost", "", "Average last spring frost date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&values.FirstFrost, "first-frost", "", "Average first fall frost date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&values.Location, "location", "", "Location name shown on the dashboard")
	cmd.Flags().StringVar(&values.Zone, "zone", "", "USDA hardiness zone")

	return cmd
}

// mergeSetupFlags overlays the flags the user set on the saved values.
func mergeSetupFlags(saved, flags setupValues, fs *pflag.FlagSet) setupValues {
	changed := fs.Changed
	if changed("location") {
		saved.Location = flags.Location
	}
	if changed("last-frost") {
		saved.LastFrost = flags.LastFrost
	}
	if changed("first-frost") {
		saved.FirstFrost = flags.FirstFrost
	}
	if changed("zone") {
		saved.Zone = flags.Zone
	}
	return saved
}

func setupSummary(path string, cfg *config.Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Saved profile to %s\n", path)

	profile, err := cfg.GardenProfile()
	if err != nil {
		return b.String()
	}
	fmt.Fprintf(&b, "  Location    %s\n", profile.DisplayLocation())
	fmt.Fprintf(&b, "  Last frost  %s\n", formatter.LongDate(&profile.LastFrostDate))
	if profile.FirstFrostDate != nil {
		fmt.Fprintf(&b, "  First frost %s\n", formatter.LongDate(profile.FirstFrostDate))
	}
	if days, ok := profile.GrowingSeasonDays(); ok {
		fmt.Fprintf(&b, "  Season      %d frost-free days\n", days)
	}
	if profile.HardinessZone != "" {
		fmt.Fprintf(&b, "  Zone        %s\n", profile.HardinessZone)
	}
	return b.String()
}
