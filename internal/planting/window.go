package planting

import (
	"cloud.google.com/go/civil"
	"github.com/alexanderramin/cropcal/internal/domain"
)

// Window band edges, in days from today to the main planting date.
const (
	tooEarlyAfterDays = 28
	optimalUntilDays  = -7
	lateUntilDays     = -28
)

// ClassifyWindow reports how timely planting is on today. Crops without any
// milestone are reported as optimal so incomplete data never blocks a caller.
func ClassifyWindow(p domain.CropTimingProfile, lastFrost civil.Date, today civil.Date) domain.WindowStatus {
	days, ok := NextPlanting(p, lastFrost, today)
	if !ok {
		return domain.WindowOptimal
	}
	return WindowForDays(days)
}

// WindowForDays maps a signed day offset onto the window bands. The bands
// cover every integer exactly once.
func WindowForDays(daysUntil int) domain.WindowStatus {
	switch {
	case daysUntil > tooEarlyAfterDays:
		return domain.WindowTooEarly
	case daysUntil >= optimalUntilDays:
		return domain.WindowOptimal
	case daysUntil >= lateUntilDays:
		return domain.WindowLate
	default:
		return domain.WindowTooLate
	}
}

// DaysUntilPlanting returns the signed number of days from today to the main
// planting date. Negative values are overdue. It returns 0 both for "today"
// and for "nothing scheduled"; use NextPlanting to tell them apart.
func DaysUntilPlanting(p domain.CropTimingProfile, lastFrost civil.Date, today civil.Date) int {
	days, _ := NextPlanting(p, lastFrost, today)
	return days
}

// NextPlanting is DaysUntilPlanting with an explicit flag that is false when
// the crop has no planting milestone.
func NextPlanting(p domain.CropTimingProfile, lastFrost civil.Date, today civil.Date) (int, bool) {
	main := mainPlantDate(p, lastFrost)
	if main == nil {
		return 0, false
	}
	return main.DaysSince(today), true
}

// WindowPriority returns a sort priority (lower = more urgent).
func WindowPriority(w domain.WindowStatus) int {
	switch w {
	case domain.WindowOptimal:
		return 0
	case domain.WindowLate:
		return 1
	case domain.WindowTooEarly:
		return 2
	default:
		return 3
	}
}
