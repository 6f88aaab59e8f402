// Package config loads and saves the cropcal TOML configuration: the garden
// profile, the garden list and command defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/alexanderramin/cropcal/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

const (
	// FileName is the config file name inside the config directory.
	FileName = "config.toml"
	appDir   = "cropcal"

	defaultSuccessionCount = 4
	defaultLogLevel        = "warn"
)

// ErrNoFrostDate is returned when a command needs a last frost date and
// none is configured.
var ErrNoFrostDate = errors.New("no last frost date configured (run `cropcal setup` or set CROPCAL_LAST_FROST)")

// Config mirrors the TOML file.
type Config struct {
	Catalog         string        `toml:"catalog,omitempty"`
	SuccessionCount int           `toml:"succession_count,omitempty"`
	LogLevel        string        `toml:"log_level,omitempty"`
	Profile         ProfileConfig `toml:"profile"`
	Garden          []GardenItem  `toml:"garden,omitempty"`
}

// ProfileConfig holds the location settings. Dates are ISO strings.
type ProfileConfig struct {
	Location       string `toml:"location,omitempty"`
	LastFrostDate  string `toml:"last_frost_date,omitempty"`
	FirstFrostDate string `toml:"first_frost_date,omitempty"`
	HardinessZone  string `toml:"hardiness_zone,omitempty"`
}

// GardenItem is one [[garden]] entry.
type GardenItem struct {
	Crop             string `toml:"crop"`
	Status           string `toml:"status,omitempty"`
	PlannedPlantDate string `toml:"planned_plant_date,omitempty"`
	ActualPlantDate  string `toml:"actual_plant_date,omitempty"`
	Quantity         string `toml:"quantity,omitempty"`
	Notes            string `toml:"notes,omitempty"`
}

// Default returns a Config with defaults applied and no profile.
func Default() *Config {
	return &Config{
		SuccessionCount: defaultSuccessionCount,
		LogLevel:        defaultLogLevel,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/cropcal/config.toml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("finding home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appDir, FileName), nil
}

// ResolvePath picks the config path: explicit flag, then CROPCAL_CONFIG,
// then DefaultPath.
func ResolvePath(flagPath string) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	if v := os.Getenv("CROPCAL_CONFIG"); v != "" {
		return v, nil
	}
	return DefaultPath()
}

// Load reads the config at path. A missing file yields the defaults.
// Environment overrides are applied last and the result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults
	default:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	applyEnv(cfg)
	if cfg.SuccessionCount <= 0 {
		cfg.SuccessionCount = defaultSuccessionCount
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("CROPCAL_LAST_FROST"); v != "" {
		cfg.Profile.LastFrostDate = v
	}
	if v := os.Getenv("CROPCAL_CATALOG"); v != "" {
		cfg.Catalog = v
	}
	if v := os.Getenv("CROPCAL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CROPCAL_SUCCESSION_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SuccessionCount = n
		}
	}
}

// Save writes cfg to path, creating the directory when needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks dates, statuses and the log level.
func (c *Config) Validate() error {
	var errs []error

	if c.Profile.LastFrostDate != "" {
		if _, err := civil.ParseDate(c.Profile.LastFrostDate); err != nil {
			errs = append(errs, fmt.Errorf("profile.last_frost_date: invalid date %q (expected YYYY-MM-DD)", c.Profile.LastFrostDate))
		}
	}
	if c.Profile.FirstFrostDate != "" {
		if _, err := civil.ParseDate(c.Profile.FirstFrostDate); err != nil {
			errs = append(errs, fmt.Errorf("profile.first_frost_date: invalid date %q (expected YYYY-MM-DD)", c.Profile.FirstFrostDate))
		}
	}

	for i, g := range c.Garden {
		if g.Crop == "" {
			errs = append(errs, fmt.Errorf("garden[%d].crop is required", i))
		}
		if g.Status != "" && !domain.ValidGardenStatuses[g.Status] {
			errs = append(errs, fmt.Errorf("garden[%d].status: invalid value %q", i, g.Status))
		}
		dates := []struct{ field, value string }{
			{"planned_plant_date", g.PlannedPlantDate},
			{"actual_plant_date", g.ActualPlantDate},
		}
		for _, d := range dates {
			if d.value == "" {
				continue
			}
			if _, err := civil.ParseDate(d.value); err != nil {
				errs = append(errs, fmt.Errorf("garden[%d].%s: invalid date %q", i, d.field, d.value))
			}
		}
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// GardenProfile converts the profile section. It returns ErrNoFrostDate
// when no last frost date is set.
func (c *Config) GardenProfile() (*domain.GardenProfile, error) {
	if c.Profile.LastFrostDate == "" {
		return nil, ErrNoFrostDate
	}
	last, err := civil.ParseDate(c.Profile.LastFrostDate)
	if err != nil {
		return nil, fmt.Errorf("parsing last_frost_date: %w", err)
	}
	p := &domain.GardenProfile{
		Location:      c.Profile.Location,
		LastFrostDate: last,
		HardinessZone: c.Profile.HardinessZone,
	}
	if c.Profile.FirstFrostDate != "" {
		first, err := civil.ParseDate(c.Profile.FirstFrostDate)
		if err != nil {
			return nil, fmt.Errorf("parsing first_frost_date: %w", err)
		}
		p.FirstFrostDate = &first
	}
	return p, nil
}

// GardenEntries converts the [[garden]] list. Call Validate first.
func (c *Config) GardenEntries() []*domain.GardenEntry {
	entries := make([]*domain.GardenEntry, 0, len(c.Garden))
	for _, g := range c.Garden {
		status := domain.GardenStatus(g.Status)
		if status == "" {
			status = domain.GardenPlanned
		}
		entries = append(entries, &domain.GardenEntry{
			CropID:           strings.ToLower(strings.TrimSpace(g.Crop)),
			Status:           status,
			PlannedPlantDate: parseOptionalDate(g.PlannedPlantDate),
			ActualPlantDate:  parseOptionalDate(g.ActualPlantDate),
			Quantity:         g.Quantity,
			Notes:            g.Notes,
		})
	}
	return entries
}

func parseOptionalDate(s string) *civil.Date {
	if s == "" {
		return nil
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		return nil
	}
	return &d
}

// ParseLogLevel maps a config level name onto a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log_level: invalid value %q", s)
	}
}
