// Package planting derives planting and harvest dates for a crop from the
// gardener's last frost date. Every function is pure: "today" is always a
// parameter and nothing reads the system clock.
package planting

import (
	"cloud.google.com/go/civil"
	"github.com/alexanderramin/cropcal/internal/domain"
)

// defaultDirectSowWindowWeeks closes a direct-sow window that only has an
// earliest bound.
const defaultDirectSowWindowWeeks = 4

// Milestones are the dates derived for one crop. Nil means the crop has no
// such milestone.
type Milestones struct {
	IndoorStart       *civil.Date
	Transplant        *civil.Date
	DirectSowEarliest *civil.Date
	DirectSowLatest   *civil.Date
	EstimatedHarvest  *civil.Date
}

// ComputeMilestones converts a timing profile and a last frost date into
// milestone dates. Unset profile fields produce absent milestones.
func ComputeMilestones(p domain.CropTimingProfile, lastFrost civil.Date) Milestones {
	var m Milestones

	if p.IndoorStartWeeksBeforeFrost != nil {
		m.IndoorStart = datePtr(addWeeks(lastFrost, -*p.IndoorStartWeeksBeforeFrost))
	}
	if p.TransplantWeeksRelativeToFrost != nil {
		m.Transplant = datePtr(addWeeks(lastFrost, *p.TransplantWeeksRelativeToFrost))
	}
	if p.DirectSowWeeksBeforeFrost != nil {
		m.DirectSowEarliest = datePtr(addWeeks(lastFrost, -*p.DirectSowWeeksBeforeFrost))
	}
	if p.DirectSowWeeksAfterFrost != nil {
		m.DirectSowLatest = datePtr(addWeeks(lastFrost, *p.DirectSowWeeksAfterFrost))
	}

	// A one-sided window is completed asymmetrically: an earliest-only window
	// gets the default length, a latest-only window collapses to one day.
	switch {
	case m.DirectSowEarliest != nil && m.DirectSowLatest == nil:
		m.DirectSowLatest = datePtr(addWeeks(*m.DirectSowEarliest, defaultDirectSowWindowWeeks))
	case m.DirectSowLatest != nil && m.DirectSowEarliest == nil:
		m.DirectSowEarliest = datePtr(*m.DirectSowLatest)
	}

	if plant := m.EarliestPlantDate(); plant != nil && p.DaysToMaturity > 0 {
		m.EstimatedHarvest = datePtr(plant.AddDays(p.DaysToMaturity))
	}

	return m
}

// EarliestPlantDate returns the earliest of the indoor start, transplant and
// direct-sow-earliest dates, or nil when none exists.
func (m Milestones) EarliestPlantDate() *civil.Date {
	var earliest *civil.Date
	for _, d := range []*civil.Date{m.IndoorStart, m.Transplant, m.DirectSowEarliest} {
		if d == nil {
			continue
		}
		if earliest == nil || d.Before(*earliest) {
			earliest = d
		}
	}
	return earliest
}

// MainDate returns the most actionable milestone: transplant, then the start
// of the direct-sow window, then the indoor start. Nil when none exists.
func (m Milestones) MainDate() *civil.Date {
	switch {
	case m.Transplant != nil:
		return m.Transplant
	case m.DirectSowEarliest != nil:
		return m.DirectSowEarliest
	default:
		return m.IndoorStart
	}
}

// IsEmpty reports whether no milestone could be derived.
func (m Milestones) IsEmpty() bool {
	return m.IndoorStart == nil && m.Transplant == nil &&
		m.DirectSowEarliest == nil && m.DirectSowLatest == nil &&
		m.EstimatedHarvest == nil
}

// mainPlantDate computes milestones and applies the MainDate priority rule.
func mainPlantDate(p domain.CropTimingProfile, lastFrost civil.Date) *civil.Date {
	return ComputeMilestones(p, lastFrost).MainDate()
}

func addWeeks(d civil.Date, weeks int) civil.Date {
	return d.AddDays(7 * weeks)
}

func datePtr(d civil.Date) *civil.Date {
	return &d
}
