package catalog

import (
	"fmt"

	"github.com/alexanderramin/cropcal/internal/domain"
)

// Validate checks the catalog for errors before conversion.
// Returns a slice of all validation errors found.
func Validate(file *CatalogFile) []error {
	var errs []error

	if len(file.Crops) == 0 {
		errs = append(errs, fmt.Errorf("catalog has no crops"))
	}

	seen := make(map[string]bool)
	for i := range file.Crops {
		c := &file.Crops[i]
		prefix := fmt.Sprintf("crops[%d]", i)
		if c.ID != "" {
			prefix = fmt.Sprintf("crops[%s]", c.ID)
		}

		errs = append(errs, validateCrop(prefix, c)...)

		if c.ID != "" {
			if seen[c.ID] {
				errs = append(errs, fmt.Errorf("%s: duplicate id", prefix))
			}
			seen[c.ID] = true
		}
	}

	return errs
}

func validateCrop(prefix string, c *CropImport) []error {
	var errs []error

	if c.ID == "" {
		errs = append(errs, fmt.Errorf("%s.id is required", prefix))
	}
	if c.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", prefix))
	}
	if !domain.ValidCategories[c.Category] {
		errs = append(errs, fmt.Errorf("%s.category: invalid value %q", prefix, c.Category))
	}
	if !domain.ValidFrostTolerances[c.FrostTolerance] {
		errs = append(errs, fmt.Errorf("%s.frost_tolerance: invalid value %q", prefix, c.FrostTolerance))
	}
	if c.DaysToMaturity < 0 {
		errs = append(errs, fmt.Errorf("%s.days_to_maturity must be >= 0", prefix))
	}

	nonNegative := []struct {
		field string
		value *int
	}{
		{"indoor_start_weeks", c.IndoorStartWeeks},
		{"direct_sow_weeks_before_frost", c.DirectSowWeeksBeforeFrost},
		{"direct_sow_weeks_after_frost", c.DirectSowWeeksAfterFrost},
	}
	for _, f := range nonNegative {
		if f.value != nil && *f.value < 0 {
			errs = append(errs, fmt.Errorf("%s.%s must be >= 0", prefix, f.field))
		}
	}

	if c.SuccessionPlantingWeeks != nil && *c.SuccessionPlantingWeeks <= 0 {
		errs = append(errs, fmt.Errorf("%s.succession_planting_weeks must be > 0", prefix))
	}

	return errs
}
