package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"cloud.google.com/go/civil"
	"github.com/alexanderramin/cropcal/internal/contract"
	"github.com/alexanderramin/cropcal/internal/domain"
	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvents() []contract.CalendarEvent {
	return []contract.CalendarEvent{
		{
			Date:        civil.Date{Year: 2024, Month: time.March, Day: 4},
			CropID:      "tomato",
			CropName:    "Tomato",
			Category:    domain.CategoryVegetable,
			Kind:        domain.EventIndoorStart,
			Description: "Start Tomato seeds indoors",
		},
		{
			Date:        civil.Date{Year: 2024, Month: time.April, Day: 30},
			CropID:      "pea",
			CropName:    "Pea, Snap",
			Category:    domain.CategoryLegume,
			Kind:        domain.EventHarvest,
			Description: "Harvest Pea, Snap (estimated)",
		},
	}
}

var exportNow = time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)

// unfold joins folded iCalendar content lines back together.
func unfold(s string) string {
	return strings.ReplaceAll(s, "\r\n ", "")
}

func TestWriteICS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteICS(&buf, "Portland, OR planting", sampleEvents(), exportNow))
	out := unfold(buf.String())

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
	assert.Contains(t, out, "VERSION:2.0\r\n")
	assert.Contains(t, out, "PRODID:"+ICSProductID+"\r\n")
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "X-WR-CALNAME:Portland")
	assert.Contains(t, out, "DTSTAMP:20240102T150405Z\r\n")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20240304\r\n")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20240305\r\n")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20240501\r\n", "end date rolls into the next month")
	assert.Contains(t, out, "SUMMARY:Harvest Pea\\, Snap (estimated)\r\n")
	assert.Contains(t, out, "UID:"+EventUID(sampleEvents()[0])+"@cropcal\r\n")
	assert.NotContains(t, out, "VALARM")
	assert.NotContains(t, out, "LOCATION")
}

func TestWriteICS_Options(t *testing.T) {
	var buf bytes.Buffer
	err := WriteICS(&buf, "Garden", sampleEvents()[:1], exportNow,
		WithReminder(2), WithLocation("Backyard"))
	require.NoError(t, err)
	out := unfold(buf.String())

	assert.Contains(t, out, "BEGIN:VALARM\r\n")
	assert.Contains(t, out, "ACTION:DISPLAY\r\n")
	assert.Contains(t, out, "TRIGGER:-P2D\r\n")
	assert.Contains(t, out, "LOCATION:Backyard\r\n")
}

func TestWriteICS_FoldsLongLines(t *testing.T) {
	location := "Riverside Allotments, Plot 14, North Bank, Springfield Township, Greene County, Ohio"
	events := sampleEvents()
	events[0].Description = "Start Brandywine heirloom tomato seeds indoors under grow lights in the greenhouse"

	var buf bytes.Buffer
	require.NoError(t, WriteICS(&buf, "Planting calendar · "+location, events, exportNow,
		WithLocation(location)))
	out := buf.String()

	lines := strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n")
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 75, "content line too long: %q", line)
		assert.True(t, utf8.ValidString(line), "fold split a UTF-8 sequence: %q", line)
		assert.NotContains(t, line, "\n")
	}
	assert.Contains(t, out, "\r\n ", "long properties are folded onto continuation lines")

	unfolded := unfold(out)
	assert.Contains(t, unfolded, "Springfield Township")
	assert.Contains(t, unfolded, "Greene County")
	assert.Contains(t, unfolded, "under grow lights in the greenhouse")

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, cal.Events(), 2)
	loc := cal.Events()[0].GetProperty(ics.ComponentPropertyLocation)
	require.NotNil(t, loc)
	assert.Contains(t, loc.Value, "Greene County")
}

func TestEventUID_Stable(t *testing.T) {
	events := sampleEvents()
	assert.Equal(t, EventUID(events[0]), EventUID(events[0]))
	assert.NotEqual(t, EventUID(events[0]), EventUID(events[1]))

	moved := events[0]
	moved.Date = moved.Date.AddDays(7)
	assert.NotEqual(t, EventUID(events[0]), EventUID(moved))

	var a, b bytes.Buffer
	require.NoError(t, WriteICS(&a, "x", events, exportNow))
	require.NoError(t, WriteICS(&b, "x", events, exportNow))
	assert.Equal(t, a.String(), b.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteICS_WriteError(t *testing.T) {
	err := WriteICS(failingWriter{}, "x", sampleEvents(), exportNow)
	assert.ErrorContains(t, err, "disk full")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleEvents()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,crop,category,event,description", lines[0])
	assert.Equal(t, "2024-03-04,Tomato,Vegetable,indoor,Start Tomato seeds indoors", lines[1])
	assert.Equal(t, `2024-04-30,"Pea, Snap",Legume,harvest,"Harvest Pea, Snap (estimated)"`, lines[2])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "date,crop,category,event,description\n", buf.String())
}

func TestWriteCSV_WriteError(t *testing.T) {
	assert.Error(t, WriteCSV(failingWriter{}, sampleEvents()))
}
