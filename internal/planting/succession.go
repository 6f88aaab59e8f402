package planting

import (
	"cloud.google.com/go/civil"
	"github.com/alexanderramin/cropcal/internal/domain"
)

// SuccessionDates returns count sowing dates spaced by the crop's succession
// interval, starting at the main planting date. It returns an empty slice
// when the crop has no interval, count is below one, or nothing is scheduled.
func SuccessionDates(p domain.CropTimingProfile, lastFrost civil.Date, count int) []civil.Date {
	if p.SuccessionIntervalWeeks == nil || *p.SuccessionIntervalWeeks <= 0 || count < 1 {
		return []civil.Date{}
	}

	first := mainPlantDate(p, lastFrost)
	if first == nil {
		return []civil.Date{}
	}

	dates := make([]civil.Date, count)
	dates[0] = *first
	for i := 1; i < count; i++ {
		dates[i] = addWeeks(dates[i-1], *p.SuccessionIntervalWeeks)
	}
	return dates
}
