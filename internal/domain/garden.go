package domain

import "cloud.google.com/go/civil"

// GardenEntry is one crop the user is growing or plans to grow.
type GardenEntry struct {
	CropID           string
	Status           GardenStatus
	PlannedPlantDate *civil.Date
	ActualPlantDate  *civil.Date
	Quantity         string
	Notes            string
}

// IsPlanned reports whether the entry still waits to be planted.
func (g *GardenEntry) IsPlanned() bool {
	return g.Status == GardenPlanned || g.Status == ""
}

// IsGrowing reports whether the entry is in the ground and heading to harvest.
func (g *GardenEntry) IsGrowing() bool {
	return g.Status == GardenPlanted || g.Status == GardenHarvesting
}
