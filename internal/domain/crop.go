package domain

import "strings"

// CropTimingProfile holds the agronomic offsets the planting engine works
// from. Nil week fields mean "not set"; zero is a real value.
type CropTimingProfile struct {
	DaysToMaturity int
	FrostTolerance FrostTolerance

	IndoorStartWeeksBeforeFrost    *int
	TransplantWeeksRelativeToFrost *int
	DirectSowWeeksBeforeFrost      *int
	DirectSowWeeksAfterFrost       *int
	SuccessionIntervalWeeks        *int
}

// HasSchedule reports whether any of the four milestone offsets is set.
func (p CropTimingProfile) HasSchedule() bool {
	return p.IndoorStartWeeksBeforeFrost != nil ||
		p.TransplantWeeksRelativeToFrost != nil ||
		p.DirectSowWeeksBeforeFrost != nil ||
		p.DirectSowWeeksAfterFrost != nil
}

// StartsIndoors reports whether the crop is normally started under cover.
func (p CropTimingProfile) StartsIndoors() bool {
	return p.IndoorStartWeeksBeforeFrost != nil
}

type Crop struct {
	ID             string
	Name           string
	ScientificName string
	Category       CropCategory
	PlantingDepth  string
	Spacing        string
	SoilTempMinF   *int
	Companions     []string
	Avoid          []string
	Notes          string

	Timing CropTimingProfile
}

// Matches reports whether ref names this crop by ID or display name,
// ignoring case and surrounding whitespace.
func (c *Crop) Matches(ref string) bool {
	ref = strings.TrimSpace(ref)
	return strings.EqualFold(c.ID, ref) || strings.EqualFold(c.Name, ref)
}

// IsCompanion reports whether other appears in the crop's companion list.
func (c *Crop) IsCompanion(other *Crop) bool {
	return listMentions(c.Companions, other)
}

// Dislikes reports whether other appears in the crop's avoid list.
func (c *Crop) Dislikes(other *Crop) bool {
	return listMentions(c.Avoid, other)
}

func listMentions(refs []string, other *Crop) bool {
	for _, r := range refs {
		if other.Matches(r) {
			return true
		}
	}
	return false
}
