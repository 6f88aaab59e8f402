package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/alexanderramin/cropcal/internal/contract"
	"github.com/alexanderramin/cropcal/internal/domain"
	"github.com/alexanderramin/cropcal/internal/planting"
	"github.com/alexanderramin/cropcal/internal/repository"
)

// plantThisWeekDays is the look-ahead of the dashboard's "plant this week" list.
const plantThisWeekDays = 7

type gardenService struct {
	crops    repository.CropRepo
	garden   repository.GardenRepo
	profiles repository.ProfileRepo
	observer UseCaseObserver
}

func NewGardenService(
	crops repository.CropRepo,
	garden repository.GardenRepo,
	profiles repository.ProfileRepo,
	observers ...UseCaseObserver,
) GardenService {
	return &gardenService{
		crops:    crops,
		garden:   garden,
		profiles: profiles,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *gardenService) Dashboard(ctx context.Context, req contract.DashboardRequest) (_ *contract.DashboardResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observeUseCase(ctx, s.observer, "dashboard", startedAt, fields, err) }()

	today := resolveToday(req.Today)
	limit := req.ThisWeekLimit
	if limit <= 0 {
		limit = contract.DefaultThisWeekLimit
	}

	profile, err := loadProfile(ctx, s.profiles)
	if err != nil {
		return nil, err
	}
	resolved, warnings, err := resolveGarden(ctx, s.garden, s.crops)
	if err != nil {
		return nil, err
	}

	lastFrost := profile.LastFrostDate
	resp := &contract.DashboardResponse{
		Location:      profile.DisplayLocation(),
		LastFrostDate: lastFrost,
		Today:         today,
		TotalCrops:    len(resolved),
		PlantThisWeek: []contract.PlantingSoon{},
		Warnings:      warnings,
	}

	gardenCrops := make([]*domain.Crop, 0, len(resolved))
	for _, gc := range resolved {
		gardenCrops = append(gardenCrops, gc.Crop)

		if gc.Entry.IsGrowing() {
			resp.UpcomingHarvests++
			continue
		}
		if !gc.Entry.IsPlanned() {
			continue
		}

		window := planting.ClassifyWindow(gc.Crop.Timing, lastFrost, today)
		if window == domain.WindowOptimal {
			resp.ReadyToPlant++
		}

		days, ok := planting.NextPlanting(gc.Crop.Timing, lastFrost, today)
		if !ok {
			continue
		}
		if days < 0 {
			resp.Overdue++
			continue
		}
		if resp.DaysToNextPlanting == nil || days < *resp.DaysToNextPlanting {
			resp.DaysToNextPlanting = domain.IntPtr(days)
		}
		if days <= plantThisWeekDays {
			resp.PlantThisWeek = append(resp.PlantThisWeek, contract.PlantingSoon{
				CropID:    gc.Crop.ID,
				CropName:  gc.Crop.Name,
				Category:  gc.Crop.Category,
				DaysUntil: days,
				Window:    window,
			})
		}
	}

	sort.SliceStable(resp.PlantThisWeek, func(i, j int) bool {
		a, b := resp.PlantThisWeek[i], resp.PlantThisWeek[j]
		if a.DaysUntil != b.DaysUntil {
			return a.DaysUntil < b.DaysUntil
		}
		return a.CropName < b.CropName
	})
	if len(resp.PlantThisWeek) > limit {
		resp.PlantThisWeek = resp.PlantThisWeek[:limit]
	}

	resp.Conflicts = findConflicts(gardenCrops)

	fields["total"] = resp.TotalCrops
	fields["ready"] = resp.ReadyToPlant
	fields["overdue"] = resp.Overdue
	return resp, nil
}

func (s *gardenService) Garden(ctx context.Context, req contract.GardenRequest) (_ *contract.GardenResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"status": string(req.Status), "sort": string(req.Sort)}
	defer func() { observeUseCase(ctx, s.observer, "garden", startedAt, fields, err) }()

	if req.Status != "" && !domain.ValidGardenStatuses[string(req.Status)] {
		return nil, fmt.Errorf("unknown garden status %q", req.Status)
	}
	switch req.Sort {
	case "", contract.GardenSortName, contract.GardenSortDate, contract.GardenSortWindow:
	default:
		return nil, fmt.Errorf("unknown sort %q (want name, date or window)", req.Sort)
	}

	today := resolveToday(req.Today)
	profile, err := loadProfile(ctx, s.profiles)
	if err != nil {
		return nil, err
	}
	resolved, warnings, err := resolveGarden(ctx, s.garden, s.crops)
	if err != nil {
		return nil, err
	}

	views := make([]contract.GardenEntryView, 0, len(resolved))
	for _, gc := range resolved {
		status := gc.Entry.Status
		if status == "" {
			status = domain.GardenPlanned
		}
		if req.Status != "" && status != req.Status {
			continue
		}
		views = append(views, buildEntryView(gc, status, profile.LastFrostDate, today))
	}

	sortEntryViews(views, req.Sort)
	fields["count"] = len(views)

	return &contract.GardenResponse{
		Today:    today,
		Entries:  views,
		Warnings: warnings,
	}, nil
}

func buildEntryView(gc gardenCrop, status domain.GardenStatus, lastFrost, today civil.Date) contract.GardenEntryView {
	crop, entry := gc.Crop, gc.Entry
	m := planting.ComputeMilestones(crop.Timing, lastFrost)

	view := contract.GardenEntryView{
		CropID:   crop.ID,
		CropName: crop.Name,
		Category: crop.Category,
		Status:   status,
		Quantity: entry.Quantity,
		Notes:    entry.Notes,
		Window:   planting.ClassifyWindow(crop.Timing, lastFrost, today),
	}

	switch {
	case entry.ActualPlantDate != nil:
		view.PlantDate = entry.ActualPlantDate
	case entry.PlannedPlantDate != nil:
		view.PlantDate = entry.PlannedPlantDate
	default:
		view.PlantDate = m.MainDate()
	}

	if entry.ActualPlantDate != nil && crop.Timing.DaysToMaturity > 0 {
		h := entry.ActualPlantDate.AddDays(crop.Timing.DaysToMaturity)
		view.HarvestDate = &h
	} else {
		view.HarvestDate = m.EstimatedHarvest
	}

	if status == domain.GardenPlanned && view.PlantDate != nil {
		view.DaysUntilPlanting = domain.IntPtr(view.PlantDate.DaysSince(today))
	}
	if entry.IsGrowing() && view.HarvestDate != nil {
		view.DaysToHarvest = domain.IntPtr(view.HarvestDate.DaysSince(today))
	}
	return view
}

// sortEntryViews orders by crop name, by plant date with undated entries
// last, or by window urgency then plant date. Ties fall back to the name.
func sortEntryViews(views []contract.GardenEntryView, by contract.GardenSort) {
	sort.SliceStable(views, func(i, j int) bool {
		a, b := views[i], views[j]
		if by == contract.GardenSortWindow {
			pa, pb := planting.WindowPriority(a.Window), planting.WindowPriority(b.Window)
			if pa != pb {
				return pa < pb
			}
		}
		if by == contract.GardenSortDate || by == contract.GardenSortWindow {
			if less, decided := comparePlantDates(a.PlantDate, b.PlantDate); decided {
				return less
			}
		}
		return strings.ToLower(a.CropName) < strings.ToLower(b.CropName)
	})
}

// comparePlantDates orders dated entries before undated ones. decided is
// false when the dates do not tell the entries apart.
func comparePlantDates(a, b *civil.Date) (less, decided bool) {
	switch {
	case a == nil && b == nil:
		return false, false
	case a == nil:
		return false, true
	case b == nil:
		return true, true
	case *a == *b:
		return false, false
	default:
		return a.Before(*b), true
	}
}
