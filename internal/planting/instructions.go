package planting

import (
	"cloud.google.com/go/civil"
	"github.com/alexanderramin/cropcal/internal/domain"
)

// Instructions are display sentences for each milestone. Absent milestones
// leave their field nil.
type Instructions struct {
	IndoorStart *string
	Transplant  *string
	DirectSow   *string
	Harvest     *string
}

// FormatInstructions renders the crop's milestones as sentences.
func FormatInstructions(p domain.CropTimingProfile, lastFrost civil.Date) Instructions {
	return InstructionsFor(ComputeMilestones(p, lastFrost))
}

// InstructionsFor renders already computed milestones.
func InstructionsFor(m Milestones) Instructions {
	var in Instructions

	if m.IndoorStart != nil {
		in.IndoorStart = strPtr("Start seeds indoors on " + longDate(*m.IndoorStart))
	}
	if m.Transplant != nil {
		in.Transplant = strPtr("Transplant outdoors on " + longDate(*m.Transplant))
	}

	switch {
	case m.DirectSowEarliest != nil && m.DirectSowLatest != nil:
		if *m.DirectSowEarliest == *m.DirectSowLatest {
			in.DirectSow = strPtr("Direct sow on " + longDate(*m.DirectSowEarliest))
		} else {
			in.DirectSow = strPtr("Direct sow between " + monthDay(*m.DirectSowEarliest) +
				" and " + longDate(*m.DirectSowLatest))
		}
	case m.DirectSowEarliest != nil:
		// Not reachable through ComputeMilestones, which always closes the window.
		in.DirectSow = strPtr("Direct sow starting " + longDate(*m.DirectSowEarliest))
	}

	if m.EstimatedHarvest != nil {
		in.Harvest = strPtr("Estimated harvest: " + longDate(*m.EstimatedHarvest))
	}

	return in
}

// Lines returns the present instructions in calendar order.
func (in Instructions) Lines() []string {
	var lines []string
	for _, s := range []*string{in.IndoorStart, in.Transplant, in.DirectSow, in.Harvest} {
		if s != nil {
			lines = append(lines, *s)
		}
	}
	return lines
}

func strPtr(s string) *string {
	return &s
}
