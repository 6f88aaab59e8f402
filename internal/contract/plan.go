package contract

import (
	"cloud.google.com/go/civil"
	"github.com/alexanderramin/cropcal/internal/domain"
	"github.com/alexanderramin/cropcal/internal/planting"
)

type PlanRequest struct {
	Crop string
	// Today overrides the clock; nil means the current local date.
	Today *civil.Date
	// SuccessionCount overrides the configured number of succession sowings.
	SuccessionCount *int
}

func NewPlanRequest(crop string) PlanRequest {
	return PlanRequest{Crop: crop}
}

type PlanResponse struct {
	Crop          *domain.Crop
	LastFrostDate civil.Date
	Today         civil.Date

	Milestones   planting.Milestones
	Instructions planting.Instructions
	Window       domain.WindowStatus
	// DaysUntil is meaningful only when Scheduled is true.
	DaysUntil  int
	Scheduled  bool
	Succession []civil.Date
}
