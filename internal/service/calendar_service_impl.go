package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"github.com/alexanderramin/cropcal/internal/contract"
	"github.com/alexanderramin/cropcal/internal/domain"
	"github.com/alexanderramin/cropcal/internal/planting"
	"github.com/alexanderramin/cropcal/internal/repository"
)

type calendarService struct {
	crops           repository.CropRepo
	garden          repository.GardenRepo
	profiles        repository.ProfileRepo
	successionCount int
	observer        UseCaseObserver
}

func NewCalendarService(
	crops repository.CropRepo,
	garden repository.GardenRepo,
	profiles repository.ProfileRepo,
	successionCount int,
	observers ...UseCaseObserver,
) CalendarService {
	return &calendarService{
		crops:           crops,
		garden:          garden,
		profiles:        profiles,
		successionCount: successionCount,
		observer:        useCaseObserverOrNoop(observers),
	}
}

func (s *calendarService) Month(ctx context.Context, req contract.CalendarRequest) (_ *contract.CalendarResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"category": string(req.Category)}
	defer func() { observeUseCase(ctx, s.observer, "calendar-month", startedAt, fields, err) }()

	today := resolveToday(req.Today)
	year, month := req.Year, req.Month
	if year == 0 && month == 0 {
		year, month = today.Year, today.Month
	}
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("invalid month %d", month)
	}
	if year < 1 {
		return nil, fmt.Errorf("invalid year %d", year)
	}
	if err := validateCategory(req.Category); err != nil {
		return nil, err
	}
	fields["month"] = fmt.Sprintf("%04d-%02d", year, int(month))

	profile, err := loadProfile(ctx, s.profiles)
	if err != nil {
		return nil, err
	}
	events, warnings, err := s.collect(ctx, profile.LastFrostDate, req.Category, false, 0)
	if err != nil {
		return nil, err
	}

	byDate := make(map[civil.Date][]contract.CalendarEvent)
	for _, ev := range events {
		byDate[ev.Date] = append(byDate[ev.Date], ev)
	}

	first := civil.Date{Year: year, Month: month, Day: 1}
	var days []contract.CalendarDay
	for d := first; d.Month == month; d = d.AddDays(1) {
		days = append(days, contract.CalendarDay{
			Date:    d,
			IsToday: d == today,
			Events:  byDate[d],
		})
	}

	resp := &contract.CalendarResponse{
		Year:     year,
		Month:    month,
		Category: req.Category,
		Days:     days,
		Warnings: warnings,
	}
	fields["events"] = resp.EventCount()
	return resp, nil
}

func (s *calendarService) Events(ctx context.Context, req contract.EventsRequest) (_ *contract.EventsResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"category": string(req.Category), "succession": req.IncludeSuccession}
	defer func() { observeUseCase(ctx, s.observer, "calendar-events", startedAt, fields, err) }()

	if err := validateCategory(req.Category); err != nil {
		return nil, err
	}
	count := s.successionCount
	if req.SuccessionCount > 0 {
		count = req.SuccessionCount
	}

	profile, err := loadProfile(ctx, s.profiles)
	if err != nil {
		return nil, err
	}
	events, warnings, err := s.collect(ctx, profile.LastFrostDate, req.Category, req.IncludeSuccession, count)
	if err != nil {
		return nil, err
	}
	fields["events"] = len(events)

	return &contract.EventsResponse{
		Location: profile.DisplayLocation(),
		Events:   events,
		Warnings: warnings,
	}, nil
}

// collect builds the date-ordered events of every distinct garden crop.
func (s *calendarService) collect(
	ctx context.Context,
	lastFrost civil.Date,
	category domain.CropCategory,
	withSuccession bool,
	successionCount int,
) ([]contract.CalendarEvent, []string, error) {
	resolved, warnings, err := resolveGarden(ctx, s.garden, s.crops)
	if err != nil {
		return nil, nil, err
	}

	seen := make(map[string]bool)
	events := []contract.CalendarEvent{}
	for _, gc := range resolved {
		crop := gc.Crop
		if seen[crop.ID] || (category != "" && crop.Category != category) {
			continue
		}
		seen[crop.ID] = true

		events = append(events, cropEvents(crop, lastFrost)...)
		if withSuccession {
			events = append(events, successionEvents(crop, lastFrost, successionCount)...)
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.Date != b.Date {
			return a.Date.Before(b.Date)
		}
		if a.CropName != b.CropName {
			return a.CropName < b.CropName
		}
		return eventKindOrder(a.Kind) < eventKindOrder(b.Kind)
	})
	return events, warnings, nil
}

func cropEvents(crop *domain.Crop, lastFrost civil.Date) []contract.CalendarEvent {
	m := planting.ComputeMilestones(crop.Timing, lastFrost)

	var events []contract.CalendarEvent
	add := func(d *civil.Date, kind domain.EventKind, desc string) {
		if d == nil {
			return
		}
		events = append(events, contract.CalendarEvent{
			Date:        *d,
			CropID:      crop.ID,
			CropName:    crop.Name,
			Category:    crop.Category,
			Kind:        kind,
			Description: desc,
		})
	}
	add(m.IndoorStart, domain.EventIndoorStart, fmt.Sprintf("Start %s seeds indoors", crop.Name))
	add(m.Transplant, domain.EventTransplant, fmt.Sprintf("Transplant %s outdoors", crop.Name))
	add(m.DirectSowEarliest, domain.EventDirectSow, fmt.Sprintf("Direct sow %s", crop.Name))
	add(m.EstimatedHarvest, domain.EventHarvest, fmt.Sprintf("Harvest %s (estimated)", crop.Name))
	return events
}

// successionEvents lists the follow-up sowings. The first succession date is
// the main planting date, which cropEvents already covers.
func successionEvents(crop *domain.Crop, lastFrost civil.Date, count int) []contract.CalendarEvent {
	dates := planting.SuccessionDates(crop.Timing, lastFrost, count)
	if len(dates) < 2 {
		return nil
	}
	events := make([]contract.CalendarEvent, 0, len(dates)-1)
	for i, d := range dates[1:] {
		events = append(events, contract.CalendarEvent{
			Date:        d,
			CropID:      crop.ID,
			CropName:    crop.Name,
			Category:    crop.Category,
			Kind:        domain.EventSuccession,
			Description: fmt.Sprintf("Succession sowing %d of %d: %s", i+2, len(dates), crop.Name),
		})
	}
	return events
}

func eventKindOrder(k domain.EventKind) int {
	switch k {
	case domain.EventIndoorStart:
		return 0
	case domain.EventTransplant:
		return 1
	case domain.EventDirectSow:
		return 2
	case domain.EventSuccession:
		return 3
	default:
		return 4
	}
}
