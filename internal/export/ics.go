// Package export writes planting events to files other tools understand:
// iCalendar for calendar apps and CSV for spreadsheets.
package export

import (
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/civil"
	"github.com/alexanderramin/cropcal/internal/contract"
	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const ICSProductID = "-//cropcal//Planting Calendar//EN"

// uidNamespace scopes event UIDs so re-exports replace earlier imports
// instead of duplicating them.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://cropcal.app/events"))

// ICSOption customizes WriteICS.
type ICSOption func(*icsConfig)

type icsConfig struct {
	reminderDays int
	location     string
}

// WithReminder adds a display alarm the given number of days before each
// event. Zero or negative values add no alarm.
func WithReminder(daysBefore int) ICSOption {
	return func(c *icsConfig) { c.reminderDays = daysBefore }
}

// WithLocation sets the LOCATION property of every event.
func WithLocation(location string) ICSOption {
	return func(c *icsConfig) { c.location = location }
}

// WriteICS writes events as an iCalendar file of all-day events. now is the
// DTSTAMP of every event. Escaping and line folding are left to golang-ical.
func WriteICS(w io.Writer, name string, events []contract.CalendarEvent, now time.Time, opts ...ICSOption) error {
	var cfg icsConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	cal := ics.NewCalendar()
	cal.SetProductId(ICSProductID)
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ics.MethodPublish)
	cal.SetXWRCalName(name)

	for _, ev := range events {
		event := cal.AddEvent(EventUID(ev) + "@cropcal")
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(icsDay(ev.Date))
		event.SetAllDayEndAt(icsDay(ev.Date.AddDays(1)))
		event.SetSummary(ev.Description)
		event.AddProperty(ics.ComponentPropertyCategories, string(ev.Category))
		if cfg.location != "" {
			event.SetLocation(cfg.location)
		}
		event.SetTimeTransparency(ics.TransparencyTransparent)
		if cfg.reminderDays > 0 {
			alarm := event.AddAlarm()
			alarm.SetAction(ics.ActionDisplay)
			alarm.SetDescription(ev.Description)
			alarm.SetTrigger(fmt.Sprintf("-P%dD", cfg.reminderDays))
		}
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	return nil
}

// EventUID derives a stable identifier from the crop, event kind and date.
func EventUID(ev contract.CalendarEvent) string {
	key := fmt.Sprintf("%s/%s/%s", ev.CropID, ev.Kind, ev.Date)
	return uuid.NewSHA1(uidNamespace, []byte(key)).String()
}

// icsDay is midnight UTC of d; all-day properties only keep the date part.
func icsDay(d civil.Date) time.Time {
	return d.In(time.UTC)
}
