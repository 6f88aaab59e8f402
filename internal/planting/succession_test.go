package planting

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/alexanderramin/cropcal/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSuccessionDates_ThreeSowings(t *testing.T) {
	p := domain.CropTimingProfile{DirectSowWeeksBeforeFrost: ptr(2), SuccessionIntervalWeeks: ptr(3)}
	ref := date(2024, 5, 1)
	d := date(2024, 4, 17)

	got := SuccessionDates(p, ref, 3)
	assert.Equal(t, []civil.Date{d, d.AddDays(21), d.AddDays(42)}, got)
}

func TestSuccessionDates_StartsAtMainDate(t *testing.T) {
	p := domain.CropTimingProfile{
		IndoorStartWeeksBeforeFrost:    ptr(6),
		TransplantWeeksRelativeToFrost: ptr(2),
		SuccessionIntervalWeeks:        ptr(2),
	}
	got := SuccessionDates(p, date(2024, 5, 15), 2)
	assert.Equal(t, []civil.Date{date(2024, 5, 29), date(2024, 6, 12)}, got)
}

func TestSuccessionDates_Empty(t *testing.T) {
	ref := date(2024, 5, 1)
	cases := map[string]struct {
		profile domain.CropTimingProfile
		count   int
	}{
		"no interval":   {domain.CropTimingProfile{DirectSowWeeksBeforeFrost: ptr(2)}, 3},
		"zero count":    {domain.CropTimingProfile{DirectSowWeeksBeforeFrost: ptr(2), SuccessionIntervalWeeks: ptr(2)}, 0},
		"negative":      {domain.CropTimingProfile{DirectSowWeeksBeforeFrost: ptr(2), SuccessionIntervalWeeks: ptr(2)}, -1},
		"no main date":  {domain.CropTimingProfile{SuccessionIntervalWeeks: ptr(2)}, 3},
		"zero interval": {domain.CropTimingProfile{DirectSowWeeksBeforeFrost: ptr(2), SuccessionIntervalWeeks: ptr(0)}, 3},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := SuccessionDates(tc.profile, ref, tc.count)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestSuccessionDates_LengthMatchesCount(t *testing.T) {
	p := domain.CropTimingProfile{TransplantWeeksRelativeToFrost: ptr(0), SuccessionIntervalWeeks: ptr(1)}
	for count := 1; count <= 10; count++ {
		assert.Len(t, SuccessionDates(p, date(2024, 5, 1), count), count)
	}
}
