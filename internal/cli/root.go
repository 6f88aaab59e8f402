package cli

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/alexanderramin/cropcal/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Crops      service.CropService
	Plans      service.PlanService
	Garden     service.GardenService
	Calendar   service.CalendarService
	Companions service.CompanionService

	// Load wires the services from the config file named by --config. It
	// runs before every command except setup. Tests leave it nil and set
	// the services directly.
	Load func(configPath string) error

	// IsInteractive reports whether stdin is a terminal, enabling forms.
	IsInteractive func() bool
	// Now returns the wall clock. Nil means time.Now.
	Now func() time.Time

	configPath string
	today      *civil.Date
}

// NewRootCmd creates the top-level "cropcal" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var todayFlag string

	root := &cobra.Command{
		Use:   "cropcal",
		Short: "Planting calendar for home gardeners",
		Long: "cropcal works out when to start seeds, transplant, sow and harvest\n" +
			"from your last spring frost date.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			today, err := parseTodayFlag(todayFlag)
			if err != nil {
				return err
			}
			app.today = today
			if app.Load != nil {
				return app.Load(app.configPath)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&app.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/cropcal/config.toml)")
	root.PersistentFlags().StringVar(&todayFlag, "today", "", "Pretend today is this date (YYYY-MM-DD)")

	root.AddCommand(
		newCropsCmd(app),
		newPlanCmd(app),
		newSuccessionCmd(app),
		newDashboardCmd(app),
		newGardenCmd(app),
		newCalendarCmd(app),
		newCompanionsCmd(app),
		newExportCmd(app),
		newSetupCmd(app),
	)

	return root
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
