package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/cropcal/internal/config"
	"github.com/alexanderramin/cropcal/internal/repository"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig is a garden in Portland with the bundled catalog.
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Profile = config.ProfileConfig{
		Location:      "Portland, OR",
		LastFrostDate: "2024-04-15",
	}
	cfg.Garden = []config.GardenItem{
		{Crop: "tomato", Quantity: "6 plants"},
		{Crop: "lettuce"},
		{Crop: "potato", Status: "planted", ActualPlantDate: "2024-04-03"},
	}
	return cfg
}

// testApp wires a full App from testConfig for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	app := &App{
		Now: func() time.Time { return time.Date(2024, 4, 20, 9, 0, 0, 0, time.UTC) },
	}
	require.NoError(t, app.Wire(testConfig(), nil))
	return app
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- crops ---

func TestCropsCmd_List(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "crops")
	require.NoError(t, err)
	assert.Contains(t, out, "Tomato")
	assert.Contains(t, out, "17 crops")
}

func TestCropsCmd_CategoryFilter(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "crops", "--category", "herb")
	require.NoError(t, err)
	assert.Contains(t, out, "Basil")
	assert.NotContains(t, out, "Tomato")

	_, err = executeCmd(t, testApp(t), "crops", "--category", "shrub")
	assert.ErrorContains(t, err, "unknown category")
}

func TestCropsCmd_Detail(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "crops", "tomato")
	require.NoError(t, err)
	assert.Contains(t, out, "Solanum lycopersicum")
	assert.Contains(t, out, "6 weeks before last frost")
}

// --- plan / succession ---

func TestPlanCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "plan", "Tomato", "--today", "2024-04-20")
	require.NoError(t, err)
	assert.Contains(t, out, "Start seeds indoors on March 4, 2024")
	assert.Contains(t, out, "Transplant outdoors on April 29, 2024")
	assert.Contains(t, out, "Estimated harvest: May 18, 2024")
	assert.Contains(t, out, "OPTIMAL")
	assert.Contains(t, out, "In 9d")
}

func TestPlanCmd_DirectSowRange(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "plan", "lettuce", "--today", "2024-03-01", "--succession", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Direct sow between March 18 and April 29, 2024")
	assert.Contains(t, out, "SUCCESSION SOWINGS")
	assert.Contains(t, out, "2. April 1, 2024")
}

func TestPlanCmd_Errors(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "plan", "dragonfruit")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = executeCmd(t, testApp(t), "plan")
	assert.Error(t, err)

	_, err = executeCmd(t, testApp(t), "plan", "tomato", "--today", "April 20")
	assert.ErrorContains(t, err, "--today")
}

func TestPlanCmd_NoProfile(t *testing.T) {
	cfg := testConfig()
	cfg.Profile = config.ProfileConfig{}
	app := &App{}
	require.NoError(t, app.Wire(cfg, nil))

	_, err := executeCmd(t, app, "plan", "tomato")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cropcal setup")
}

func TestSuccessionCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "succession", "lettuce", "--count", "3", "--today", "2024-03-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Sow every 2 weeks")
	assert.Contains(t, out, "1. March 18, 2024")
	assert.Contains(t, out, "3. April 15, 2024")

	out, err = executeCmd(t, testApp(t), "succession", "tomato")
	require.NoError(t, err)
	assert.Contains(t, out, "not usually succession planted")

	_, err = executeCmd(t, testApp(t), "succession", "lettuce", "--count", "0")
	assert.ErrorContains(t, err, "--count")
}

// --- dashboard / garden ---

func TestDashboardCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "dashboard", "--today", "2024-04-20")
	require.NoError(t, err)
	assert.Contains(t, out, "Portland, OR")
	assert.Contains(t, out, "Ready to plant")
	assert.Contains(t, out, "Tomato and Potato should not share a bed")
}

func TestGardenCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "garden", "--sort", "date", "--today", "2024-04-20")
	require.NoError(t, err)

	lettuce := strings.Index(out, "Lettuce")
	potato := strings.Index(out, "Potato")
	tomato := strings.Index(out, "Tomato")
	require.True(t, lettuce >= 0 && potato >= 0 && tomato >= 0, out)
	assert.Less(t, lettuce, potato)
	assert.Less(t, potato, tomato)
	assert.Contains(t, out, "6 plants")

	out, err = executeCmd(t, testApp(t), "garden", "--status", "planted")
	require.NoError(t, err)
	assert.Contains(t, out, "Potato")
	assert.NotContains(t, out, "Tomato")

	out, err = executeCmd(t, testApp(t), "garden", "--sort", "window", "--today", "2024-04-20")
	require.NoError(t, err)
	lettuce = strings.Index(out, "Lettuce")
	potato = strings.Index(out, "Potato")
	tomato = strings.Index(out, "Tomato")
	require.True(t, lettuce >= 0 && potato >= 0 && tomato >= 0, out)
	assert.Less(t, tomato, potato, "optimal before late")
	assert.Less(t, potato, lettuce, "late before too late")

	_, err = executeCmd(t, testApp(t), "garden", "--sort", "size")
	assert.ErrorContains(t, err, "unknown sort")
}

// --- calendar ---

func TestCalendarCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "calendar", "--month", "2024-04", "--today", "2024-04-20")
	require.NoError(t, err)
	assert.Contains(t, out, "APRIL 2024")
	assert.Contains(t, out, "Mon Apr 29")
	assert.Contains(t, out, "Tomato")

	out, err = executeCmd(t, testApp(t), "calendar", "--month", "2024-03", "--category", "herb")
	require.NoError(t, err)
	assert.Contains(t, out, "No planting events this month.")

	_, err = executeCmd(t, testApp(t), "calendar", "--month", "April")
	assert.ErrorContains(t, err, "--month")
}

func TestCalendarCmd_BrowseNeedsTerminal(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "calendar", "--browse")
	assert.ErrorContains(t, err, "--browse needs a terminal")
}

// --- companions ---

func TestCompanionsCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "companions", "tomato")
	require.NoError(t, err)
	assert.Contains(t, out, "Grows well with")
	assert.Contains(t, out, "Basil")
	assert.Contains(t, out, "[ not in catalog ]")

	out, err = executeCmd(t, testApp(t), "companions")
	require.NoError(t, err)
	assert.Contains(t, out, "Tomato and Potato")
}

// --- export ---

func TestExportCmd_CSVToStdout(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "export", "--format", "csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "date,crop,category,event,description\n"))
	assert.Contains(t, out, "2024-03-04,Tomato,Vegetable,indoor,Start Tomato seeds indoors")
}

func TestExportCmd_ICSToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garden.ics")
	out, err := executeCmd(t, testApp(t), "export", "-o", path, "--succession", "--remind", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	ics := string(data)
	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "X-WR-CALNAME:Planting calendar · Portland")
	assert.Contains(t, ics, "DTSTAMP:20240420T090000Z")
	assert.Contains(t, ics, "Succession sowing")
	assert.Contains(t, ics, "TRIGGER:-P1D")
}

func TestExportCmd_BadFormat(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "export", "--format", "pdf")
	assert.ErrorContains(t, err, "unknown format")
}

// --- setup ---

func TestSetupCmd_WritesProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cropcal", "config.toml")
	out, err := executeCmd(t, &App{}, "setup", "--config", path,
		"--last-frost", "2024-04-15", "--first-frost", "2024-10-30",
		"--location", "Portland, OR", "--zone", "8b")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved profile to "+path)
	assert.Contains(t, out, "198 frost-free days")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2024-04-15", cfg.Profile.LastFrostDate)
	assert.Equal(t, "8b", cfg.Profile.HardinessZone)
}

func TestSetupCmd_KeepsGardenAndUnsetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, config.Save(path, testConfig()))

	_, err := executeCmd(t, &App{}, "setup", "--config", path, "--last-frost", "2024-04-01")
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2024-04-01", cfg.Profile.LastFrostDate)
	assert.Equal(t, "Portland, OR", cfg.Profile.Location)
	assert.Len(t, cfg.Garden, 3)
}

func TestSetupCmd_RequiresFrostDateWhenNotInteractive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	app := &App{IsInteractive: func() bool { return false }}

	_, err := executeCmd(t, app, "setup", "--config", path)
	assert.ErrorContains(t, err, "--last-frost is required")

	_, err = executeCmd(t, app, "setup", "--config", path, "--last-frost", "15/04/2024")
	assert.ErrorContains(t, err, "YYYY-MM-DD")
	assert.NoFileExists(t, path)
}

func TestSetupCmd_SkipsLoad(t *testing.T) {
	app := &App{Load: func(string) error {
		t.Fatal("setup must not load services")
		return nil
	}}
	path := filepath.Join(t.TempDir(), "config.toml")
	_, err := executeCmd(t, app, "setup", "--config", path, "--last-frost", "2024-04-15")
	assert.NoError(t, err)
}

// --- root ---

func TestRootCmd_LoadReceivesConfigFlag(t *testing.T) {
	app := testApp(t)
	var got string
	app.Load = func(path string) error {
		got = path
		return nil
	}

	_, err := executeCmd(t, app, "--config", "/tmp/garden.toml", "crops")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/garden.toml", got)
}

func TestMergeSetupFlags_OnlyChangedFlagsWin(t *testing.T) {
	var values setupValues
	fs := pflag.NewFlagSet("setup", pflag.ContinueOnError)
	fs.StringVar(&values.LastFrost, "last-frost", "", "")
	fs.StringVar(&values.Location, "location", "", "")
	fs.StringVar(&values.FirstFrost, "first-frost", "", "")
	fs.StringVar(&values.Zone, "zone", "", "")
	require.NoError(t, fs.Parse([]string{"--zone", "8b", "--first-frost", ""}))

	saved := setupValues{Location: "Portland, OR", LastFrost: "2024-04-15", FirstFrost: "2024-10-20", Zone: "8a"}
	got := mergeSetupFlags(saved, values, fs)

	assert.Equal(t, "Portland, OR", got.Location)
	assert.Equal(t, "2024-04-15", got.LastFrost)
	assert.Equal(t, "", got.FirstFrost, "an explicitly blank flag clears the saved value")
	assert.Equal(t, "8b", got.Zone)
}
