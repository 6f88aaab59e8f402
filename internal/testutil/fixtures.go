package testutil

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/alexanderramin/cropcal/internal/domain"
)

// Date builds a civil date without the time.Month conversion noise.
func Date(y, m, d int) civil.Date {
	return civil.Date{Year: y, Month: time.Month(m), Day: d}
}

// DatePtr is Date returning a pointer.
func DatePtr(y, m, d int) *civil.Date {
	v := Date(y, m, d)
	return &v
}

// Crop options
type CropOption func(*domain.Crop)

func WithCategory(c domain.CropCategory) CropOption {
	return func(crop *domain.Crop) {
		crop.Category = c
	}
}

func WithMaturity(days int) CropOption {
	return func(crop *domain.Crop) {
		crop.Timing.DaysToMaturity = days
	}
}

func WithFrostTolerance(t domain.FrostTolerance) CropOption {
	return func(crop *domain.Crop) {
		crop.Timing.FrostTolerance = t
	}
}

// WithIndoorStart sets the indoor start offset in weeks before last frost.
func WithIndoorStart(weeks int) CropOption {
	return func(crop *domain.Crop) {
		crop.Timing.IndoorStartWeeksBeforeFrost = domain.IntPtr(weeks)
	}
}

// WithTransplant sets the signed transplant offset in weeks from last frost.
func WithTransplant(weeks int) CropOption {
	return func(crop *domain.Crop) {
		crop.Timing.TransplantWeeksRelativeToFrost = domain.IntPtr(weeks)
	}
}

// WithDirectSow sets the direct-sow window. Nil leaves a bound unset.
func WithDirectSow(weeksBefore, weeksAfter *int) CropOption {
	return func(crop *domain.Crop) {
		crop.Timing.DirectSowWeeksBeforeFrost = weeksBefore
		crop.Timing.DirectSowWeeksAfterFrost = weeksAfter
	}
}

func WithSuccession(weeks int) CropOption {
	return func(crop *domain.Crop) {
		crop.Timing.SuccessionIntervalWeeks = domain.IntPtr(weeks)
	}
}

func WithCompanions(refs ...string) CropOption {
	return func(crop *domain.Crop) {
		crop.Companions = refs
	}
}

func WithAvoid(refs ...string) CropOption {
	return func(crop *domain.Crop) {
		crop.Avoid = refs
	}
}

// NewTestCrop returns a vegetable with no schedule; the ID is the
// lower-cased name.
func NewTestCrop(name string, opts ...CropOption) *domain.Crop {
	c := &domain.Crop{
		ID:       strings.ToLower(strings.ReplaceAll(name, " ", "-")),
		Name:     name,
		Category: domain.CategoryVegetable,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Garden entry options
type EntryOption func(*domain.GardenEntry)

func WithStatus(s domain.GardenStatus) EntryOption {
	return func(e *domain.GardenEntry) {
		e.Status = s
	}
}

func WithPlannedDate(d civil.Date) EntryOption {
	return func(e *domain.GardenEntry) {
		e.PlannedPlantDate = &d
	}
}

func WithActualDate(d civil.Date) EntryOption {
	return func(e *domain.GardenEntry) {
		e.ActualPlantDate = &d
	}
}

func WithQuantity(q string) EntryOption {
	return func(e *domain.GardenEntry) {
		e.Quantity = q
	}
}

// NewTestEntry returns a planned garden entry for cropID.
func NewTestEntry(cropID string, opts ...EntryOption) *domain.GardenEntry {
	e := &domain.GardenEntry{CropID: cropID, Status: domain.GardenPlanned}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewTestProfile returns a profile with only a last frost date.
func NewTestProfile(lastFrost civil.Date) *domain.GardenProfile {
	return &domain.GardenProfile{LastFrostDate: lastFrost}
}
