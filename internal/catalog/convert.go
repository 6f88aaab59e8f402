package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/cropcal/internal/domain"
)

// Convert validates a catalog file and transforms it into domain crops.
func Convert(file *CatalogFile) ([]*domain.Crop, error) {
	if errs := Validate(file); len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}

	crops := make([]*domain.Crop, 0, len(file.Crops))
	for _, c := range file.Crops {
		crops = append(crops, &domain.Crop{
			ID:             strings.ToLower(c.ID),
			Name:           c.Name,
			ScientificName: c.ScientificName,
			Category:       domain.CropCategory(c.Category),
			PlantingDepth:  c.PlantingDepth,
			Spacing:        c.Spacing,
			SoilTempMinF:   copyInt(c.SoilTempMin),
			Companions:     append([]string(nil), c.CompanionPlants...),
			Avoid:          append([]string(nil), c.AvoidPlants...),
			Notes:          c.Notes,
			Timing: domain.CropTimingProfile{
				DaysToMaturity:                 c.DaysToMaturity,
				FrostTolerance:                 domain.FrostTolerance(c.FrostTolerance),
				IndoorStartWeeksBeforeFrost:    copyInt(c.IndoorStartWeeks),
				TransplantWeeksRelativeToFrost: copyInt(c.TransplantWeeks),
				DirectSowWeeksBeforeFrost:      copyInt(c.DirectSowWeeksBeforeFrost),
				DirectSowWeeksAfterFrost:       copyInt(c.DirectSowWeeksAfterFrost),
				SuccessionIntervalWeeks:        copyInt(c.SuccessionPlantingWeeks),
			},
		})
	}
	return crops, nil
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
