package contract

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/alexanderramin/cropcal/internal/domain"
)

type CalendarRequest struct {
	Year     int
	Month    time.Month
	Category domain.CropCategory
	Today    *civil.Date
}

type CalendarEvent struct {
	Date        civil.Date
	CropID      string
	CropName    string
	Category    domain.CropCategory
	Kind        domain.EventKind
	Description string
}

type CalendarDay struct {
	Date    civil.Date
	IsToday bool
	Events  []CalendarEvent
}

type CalendarResponse struct {
	Year     int
	Month    time.Month
	Category domain.CropCategory
	Days     []CalendarDay
	Warnings []string
}

// EventCount returns the number of events in the month.
func (r *CalendarResponse) EventCount() int {
	n := 0
	for _, d := range r.Days {
		n += len(d.Events)
	}
	return n
}

type EventsRequest struct {
	Category          domain.CropCategory
	IncludeSuccession bool
	// SuccessionCount overrides the configured count when positive.
	SuccessionCount int
}

type EventsResponse struct {
	Location string
	Events   []CalendarEvent
	Warnings []string
}
