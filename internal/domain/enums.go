package domain

type FrostTolerance string

const (
	FrostSensitive FrostTolerance = "sensitive"
	FrostTolerant  FrostTolerance = "tolerant"
	FrostHardy     FrostTolerance = "hardy"
)

// ValidFrostTolerances is the canonical set of accepted frost tolerance strings.
var ValidFrostTolerances = map[string]bool{
	"sensitive": true, "tolerant": true, "hardy": true,
}

type CropCategory string

const (
	CategoryVegetable CropCategory = "Vegetable"
	CategoryFruit     CropCategory = "Fruit"
	CategoryHerb      CropCategory = "Herb"
	CategoryGrain     CropCategory = "Grain"
	CategoryLegume    CropCategory = "Legume"
)

// Categories lists every crop category in display order.
var Categories = []CropCategory{
	CategoryVegetable, CategoryFruit, CategoryHerb, CategoryGrain, CategoryLegume,
}

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[string]bool{
	"Vegetable": true, "Fruit": true, "Herb": true, "Grain": true, "Legume": true,
}

// WindowStatus is the coarse classification of how timely planting is
// relative to a given day.
type WindowStatus string

const (
	WindowTooEarly WindowStatus = "too-early"
	WindowOptimal  WindowStatus = "optimal"
	WindowLate     WindowStatus = "late"
	WindowTooLate  WindowStatus = "too-late"
)

type GardenStatus string

const (
	GardenPlanned    GardenStatus = "planned"
	GardenPlanted    GardenStatus = "planted"
	GardenHarvesting GardenStatus = "harvesting"
	GardenHarvested  GardenStatus = "harvested"
)

// ValidGardenStatuses is the canonical set of accepted garden entry statuses.
var ValidGardenStatuses = map[string]bool{
	"planned": true, "planted": true, "harvesting": true, "harvested": true,
}

// EventKind identifies a milestone on the planting calendar.
type EventKind string

const (
	EventIndoorStart EventKind = "indoor"
	EventTransplant  EventKind = "transplant"
	EventDirectSow   EventKind = "sow"
	EventHarvest     EventKind = "harvest"
	EventSuccession  EventKind = "succession"
)
