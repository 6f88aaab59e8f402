package planting

import (
	"time"

	"cloud.google.com/go/civil"
)

const (
	longDateLayout = "January 2, 2006"
	monthDayLayout = "January 2"

	// NotSetText is shown for a missing date.
	NotSetText = "Not set"
	// InvalidDateText is shown for a date that cannot be parsed.
	InvalidDateText = "Invalid date"
)

// ParseDate parses an ISO YYYY-MM-DD calendar date.
func ParseDate(s string) (civil.Date, error) {
	return civil.ParseDate(s)
}

// FormatDate renders d as "Month D, YYYY". It never fails: nil yields
// NotSetText and an impossible date yields InvalidDateText.
func FormatDate(d *civil.Date) string {
	if d == nil {
		return NotSetText
	}
	if !d.IsValid() {
		return InvalidDateText
	}
	return longDate(*d)
}

// FormatDateString is FormatDate for an ISO date string, as stored by callers.
func FormatDateString(s string) string {
	if s == "" {
		return NotSetText
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		return InvalidDateText
	}
	return FormatDate(&d)
}

// IsPast reports whether d falls strictly before today.
func IsPast(d, today civil.Date) bool {
	return d.Before(today)
}

// DaysFromToday returns the signed number of days from today to d.
func DaysFromToday(d, today civil.Date) int {
	return d.DaysSince(today)
}

// Today returns the calendar date of t in its own location.
func Today(t time.Time) civil.Date {
	return civil.DateOf(t)
}

func longDate(d civil.Date) string {
	return d.In(time.UTC).Format(longDateLayout)
}

func monthDay(d civil.Date) string {
	return d.In(time.UTC).Format(monthDayLayout)
}
