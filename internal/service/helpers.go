package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/alexanderramin/cropcal/internal/domain"
	"github.com/alexanderramin/cropcal/internal/planting"
	"github.com/alexanderramin/cropcal/internal/repository"
)

// ErrNoProfile is returned when a use case needs a last frost date and the
// gardener has not configured one.
var ErrNoProfile = errors.New("no garden profile configured; run `cropcal setup` first")

// resolveToday returns the requested day or the current local date.
func resolveToday(today *civil.Date) civil.Date {
	if today != nil {
		return *today
	}
	return planting.Today(time.Now())
}

// loadProfile fetches the garden profile and maps a missing profile onto
// ErrNoProfile.
func loadProfile(ctx context.Context, profiles repository.ProfileRepo) (*domain.GardenProfile, error) {
	p, err := profiles.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoProfile
		}
		return nil, fmt.Errorf("loading garden profile: %w", err)
	}
	return p, nil
}

// gardenCrop pairs a garden entry with its catalog crop.
type gardenCrop struct {
	Entry *domain.GardenEntry
	Crop  *domain.Crop
}

// resolveGarden joins garden entries with the catalog. Entries naming an
// unknown crop are skipped and reported as warnings.
func resolveGarden(ctx context.Context, garden repository.GardenRepo, crops repository.CropRepo) ([]gardenCrop, []string, error) {
	entries, err := garden.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading garden: %w", err)
	}

	var resolved []gardenCrop
	var warnings []string
	for _, e := range entries {
		c, err := crops.Find(ctx, e.CropID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				warnings = append(warnings, fmt.Sprintf("garden entry %q is not in the crop catalog", e.CropID))
				continue
			}
			return nil, nil, fmt.Errorf("resolving garden crop %q: %w", e.CropID, err)
		}
		resolved = append(resolved, gardenCrop{Entry: e, Crop: c})
	}
	return resolved, warnings, nil
}

func validateCategory(c domain.CropCategory) error {
	if c != "" && !domain.ValidCategories[string(c)] {
		return fmt.Errorf("unknown category %q (want one of %s)", c, categoryList())
	}
	return nil
}

func categoryList() string {
	names := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
