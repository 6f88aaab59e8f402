package contract

import (
	"cloud.google.com/go/civil"
	"github.com/alexanderramin/cropcal/internal/domain"
)

const DefaultThisWeekLimit = 5

type DashboardRequest struct {
	Today *civil.Date
	// ThisWeekLimit caps the "plant this week" list.
	ThisWeekLimit int
}

func NewDashboardRequest() DashboardRequest {
	return DashboardRequest{ThisWeekLimit: DefaultThisWeekLimit}
}

// PlantingSoon is a planned crop whose main planting date is close.
type PlantingSoon struct {
	CropID    string
	CropName  string
	Category  domain.CropCategory
	DaysUntil int
	Window    domain.WindowStatus
}

type DashboardResponse struct {
	Location      string
	LastFrostDate civil.Date
	Today         civil.Date

	TotalCrops       int
	ReadyToPlant     int
	Overdue          int
	UpcomingHarvests int
	// DaysToNextPlanting is nil when no planned crop has an upcoming date.
	DaysToNextPlanting *int

	PlantThisWeek []PlantingSoon
	Conflicts     []CompanionConflict
	Warnings      []string
}

type GardenSort string

const (
	GardenSortName GardenSort = "name"
	GardenSortDate GardenSort = "date"
	// GardenSortWindow puts the most urgent planting windows first.
	GardenSortWindow GardenSort = "window"
)

type GardenRequest struct {
	Today *civil.Date
	// Status filters entries; empty means all.
	Status domain.GardenStatus
	Sort   GardenSort
}

type GardenEntryView struct {
	CropID   string
	CropName string
	Category domain.CropCategory
	Status   domain.GardenStatus
	Quantity string
	Notes    string

	PlantDate *civil.Date
	Window    domain.WindowStatus
	// DaysUntilPlanting is set for planned entries with a scheduled date.
	DaysUntilPlanting *int
	HarvestDate       *civil.Date
	// DaysToHarvest is set for growing entries with a known harvest date.
	DaysToHarvest *int
}

type GardenResponse struct {
	Today    civil.Date
	Entries  []GardenEntryView
	Warnings []string
}
