package service

import (
	"context"

	"github.com/alexanderramin/cropcal/internal/contract"
	"github.com/alexanderramin/cropcal/internal/domain"
)

type CropService interface {
	List(ctx context.Context, category domain.CropCategory) ([]*domain.Crop, error)
	Get(ctx context.Context, ref string) (*domain.Crop, error)
}

type PlanService interface {
	Plan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
}

type GardenService interface {
	Dashboard(ctx context.Context, req contract.DashboardRequest) (*contract.DashboardResponse, error)
	Garden(ctx context.Context, req contract.GardenRequest) (*contract.GardenResponse, error)
}

type CalendarService interface {
	Month(ctx context.Context, req contract.CalendarRequest) (*contract.CalendarResponse, error)
	Events(ctx context.Context, req contract.EventsRequest) (*contract.EventsResponse, error)
}

type CompanionService interface {
	Companions(ctx context.Context, ref string) (*contract.CompanionResponse, error)
	Conflicts(ctx context.Context) ([]contract.CompanionConflict, error)
}
