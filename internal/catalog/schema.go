package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a catalog file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// CatalogFile is the top-level structure of a crop catalog file.
type CatalogFile struct {
	Crops []CropImport `json:"crops" yaml:"crops"`
}

// CropImport defines one crop in a catalog file. Week offsets are pointers
// so an omitted field stays distinct from an explicit zero.
type CropImport struct {
	ID             string `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	ScientificName string `json:"scientific_name,omitempty" yaml:"scientific_name,omitempty"`
	Category       string `json:"category" yaml:"category"`
	DaysToMaturity int    `json:"days_to_maturity" yaml:"days_to_maturity"`
	FrostTolerance string `json:"frost_tolerance" yaml:"frost_tolerance"`
	PlantingDepth  string `json:"planting_depth,omitempty" yaml:"planting_depth,omitempty"`
	Spacing        string `json:"spacing,omitempty" yaml:"spacing,omitempty"`
	SoilTempMin    *int   `json:"soil_temp_min,omitempty" yaml:"soil_temp_min,omitempty"`

	IndoorStartWeeks          *int `json:"indoor_start_weeks,omitempty" yaml:"indoor_start_weeks,omitempty"`
	TransplantWeeks           *int `json:"transplant_weeks,omitempty" yaml:"transplant_weeks,omitempty"`
	DirectSowWeeksBeforeFrost *int `json:"direct_sow_weeks_before_frost,omitempty" yaml:"direct_sow_weeks_before_frost,omitempty"`
	DirectSowWeeksAfterFrost  *int `json:"direct_sow_weeks_after_frost,omitempty" yaml:"direct_sow_weeks_after_frost,omitempty"`
	SuccessionPlantingWeeks   *int `json:"succession_planting_weeks,omitempty" yaml:"succession_planting_weeks,omitempty"`

	CompanionPlants []string `json:"companion_plants,omitempty" yaml:"companion_plants,omitempty"`
	AvoidPlants     []string `json:"avoid_plants,omitempty" yaml:"avoid_plants,omitempty"`
	Notes           string   `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// FormatForPath infers the catalog format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported catalog extension %q (expected .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// LoadFile reads and parses a catalog file from disk.
func LoadFile(path string) (*CatalogFile, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes catalog data in the given format.
func Parse(data []byte, format Format) (*CatalogFile, error) {
	var file CatalogFile
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing catalog JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing catalog YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
	return &file, nil
}
