package domain

import "cloud.google.com/go/civil"

// GardenProfile is the user's location data. LastFrostDate anchors every
// planting calculation.
type GardenProfile struct {
	Location       string
	LastFrostDate  civil.Date
	FirstFrostDate *civil.Date
	HardinessZone  string
}

// HasFrostDate reports whether a usable last frost date is configured.
func (p *GardenProfile) HasFrostDate() bool {
	return p != nil && !p.LastFrostDate.IsZero() && p.LastFrostDate.IsValid()
}

// DisplayLocation returns the location label, falling back to a generic name.
func (p *GardenProfile) DisplayLocation() string {
	return CoalesceStr(p.Location, "Your Garden")
}

// GrowingSeasonDays returns the number of frost-free days between the last
// and first frost, and false when no first frost date is known.
func (p *GardenProfile) GrowingSeasonDays() (int, bool) {
	if p.FirstFrostDate == nil || !p.HasFrostDate() {
		return 0, false
	}
	return p.FirstFrostDate.DaysSince(p.LastFrostDate), true
}
