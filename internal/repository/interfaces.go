package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/cropcal/internal/domain"
)

// ErrNotFound is returned when a lookup matches nothing.
var ErrNotFound = errors.New("not found")

type CropRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Crop, error)
	// Find resolves a crop by ID or display name, ignoring case.
	Find(ctx context.Context, ref string) (*domain.Crop, error)
	List(ctx context.Context, category domain.CropCategory) ([]*domain.Crop, error)
}

type GardenRepo interface {
	List(ctx context.Context) ([]*domain.GardenEntry, error)
}

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.GardenProfile, error)
}
