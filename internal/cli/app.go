package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/cropcal/internal/catalog"
	"github.com/alexanderramin/cropcal/internal/config"
	"github.com/alexanderramin/cropcal/internal/domain"
	"github.com/alexanderramin/cropcal/internal/repository"
	"github.com/alexanderramin/cropcal/internal/service"
)

// Wire builds the repositories and services for cfg. A config without a
// last frost date still wires; commands that need one report it.
func (a *App) Wire(cfg *config.Config, observer service.UseCaseObserver) error {
	cat, err := catalog.Open(cfg.Catalog)
	if err != nil {
		return err
	}

	var profile *domain.GardenProfile
	profile, err = cfg.GardenProfile()
	if err != nil && !errors.Is(err, config.ErrNoFrostDate) {
		return fmt.Errorf("garden profile: %w", err)
	}

	crops := repository.NewCatalogCropRepo(cat)
	garden := repository.NewMemoryGardenRepo(cfg.GardenEntries())
	profiles := repository.NewMemoryProfileRepo(profile)

	a.Crops = service.NewCropService(crops, observer)
	a.Plans = service.NewPlanService(crops, profiles, cfg.SuccessionCount, observer)
	a.Garden = service.NewGardenService(crops, garden, profiles, observer)
	a.Calendar = service.NewCalendarService(crops, garden, profiles, cfg.SuccessionCount, observer)
	a.Companions = service.NewCompanionService(crops, garden, observer)
	return nil
}
