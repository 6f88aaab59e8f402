package repository

import (
	"slices"

	"github.com/alexanderramin/cropcal/internal/domain"
)

// cloneEntry returns a copy of e so callers cannot mutate repository state.
func cloneEntry(e *domain.GardenEntry) *domain.GardenEntry {
	c := *e
	if e.PlannedPlantDate != nil {
		d := *e.PlannedPlantDate
		c.PlannedPlantDate = &d
	}
	if e.ActualPlantDate != nil {
		d := *e.ActualPlantDate
		c.ActualPlantDate = &d
	}
	return &c
}

// cloneCrop returns a deep copy of c. Catalog crops are shared by every
// lookup, so the repository never hands them out directly.
func cloneCrop(c *domain.Crop) *domain.Crop {
	out := *c
	out.Companions = slices.Clone(c.Companions)
	out.Avoid = slices.Clone(c.Avoid)
	out.SoilTempMinF = cloneInt(c.SoilTempMinF)

	t := &out.Timing
	t.IndoorStartWeeksBeforeFrost = cloneInt(t.IndoorStartWeeksBeforeFrost)
	t.TransplantWeeksRelativeToFrost = cloneInt(t.TransplantWeeksRelativeToFrost)
	t.DirectSowWeeksBeforeFrost = cloneInt(t.DirectSowWeeksBeforeFrost)
	t.DirectSowWeeksAfterFrost = cloneInt(t.DirectSowWeeksAfterFrost)
	t.SuccessionIntervalWeeks = cloneInt(t.SuccessionIntervalWeeks)
	return &out
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// cloneProfile returns a copy of p.
func cloneProfile(p *domain.GardenProfile) *domain.GardenProfile {
	c := *p
	if p.FirstFrostDate != nil {
		d := *p.FirstFrostDate
		c.FirstFrostDate = &d
	}
	return &c
}
