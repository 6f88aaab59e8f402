package service

import (
	"context"
	"time"

	"github.com/alexanderramin/cropcal/internal/contract"
	"github.com/alexanderramin/cropcal/internal/planting"
	"github.com/alexanderramin/cropcal/internal/repository"
)

type planService struct {
	crops           repository.CropRepo
	profiles        repository.ProfileRepo
	successionCount int
	observer        UseCaseObserver
}

// NewPlanService builds a PlanService. successionCount is the default number
// of succession sowings listed for crops that support them.
func NewPlanService(
	crops repository.CropRepo,
	profiles repository.ProfileRepo,
	successionCount int,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		crops:           crops,
		profiles:        profiles,
		successionCount: successionCount,
		observer:        useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Plan(ctx context.Context, req contract.PlanRequest) (_ *contract.PlanResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"crop": req.Crop}
	defer func() { observeUseCase(ctx, s.observer, "plan-crop", startedAt, fields, err) }()

	today := resolveToday(req.Today)

	crop, err := s.crops.Find(ctx, req.Crop)
	if err != nil {
		return nil, err
	}
	profile, err := loadProfile(ctx, s.profiles)
	if err != nil {
		return nil, err
	}

	count := s.successionCount
	if req.SuccessionCount != nil {
		count = *req.SuccessionCount
	}

	lastFrost := profile.LastFrostDate
	m := planting.ComputeMilestones(crop.Timing, lastFrost)
	days, scheduled := planting.NextPlanting(crop.Timing, lastFrost, today)
	window := planting.ClassifyWindow(crop.Timing, lastFrost, today)
	fields["window"] = string(window)

	return &contract.PlanResponse{
		Crop:          crop,
		LastFrostDate: lastFrost,
		Today:         today,
		Milestones:    m,
		Instructions:  planting.InstructionsFor(m),
		Window:        window,
		DaysUntil:     days,
		Scheduled:     scheduled,
		Succession:    planting.SuccessionDates(crop.Timing, lastFrost, count),
	}, nil
}
