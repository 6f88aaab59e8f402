package catalog

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/alexanderramin/cropcal/internal/domain"
)

//go:embed crops.yaml
var defaultCatalog []byte

// Catalog is an immutable, name-ordered set of crops.
type Catalog struct {
	crops []*domain.Crop
	byID  map[string]*domain.Crop
}

// New builds a Catalog from converted crops.
func New(crops []*domain.Crop) *Catalog {
	sorted := append([]*domain.Crop(nil), crops...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	byID := make(map[string]*domain.Crop, len(sorted))
	for _, c := range sorted {
		byID[c.ID] = c
	}
	return &Catalog{crops: sorted, byID: byID}
}

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	file, err := Parse(defaultCatalog, FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("loading bundled catalog: %w", err)
	}
	crops, err := Convert(file)
	if err != nil {
		return nil, fmt.Errorf("loading bundled catalog: %w", err)
	}
	return New(crops), nil
}

// Open loads a catalog from path, or the bundled catalog when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	file, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	crops, err := Convert(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return New(crops), nil
}

// Get returns the crop with the exact ID.
func (c *Catalog) Get(id string) (*domain.Crop, bool) {
	crop, ok := c.byID[id]
	return crop, ok
}

// Find resolves a crop by ID or display name, ignoring case.
func (c *Catalog) Find(ref string) (*domain.Crop, bool) {
	if crop, ok := c.byID[ref]; ok {
		return crop, true
	}
	for _, crop := range c.crops {
		if crop.Matches(ref) {
			return crop, true
		}
	}
	return nil, false
}

// List returns crops in name order, optionally restricted to one category.
// An empty category returns every crop.
func (c *Catalog) List(category domain.CropCategory) []*domain.Crop {
	if category == "" {
		return append([]*domain.Crop(nil), c.crops...)
	}
	var out []*domain.Crop
	for _, crop := range c.crops {
		if crop.Category == category {
			out = append(out, crop)
		}
	}
	return out
}

// Len returns the number of crops.
func (c *Catalog) Len() int {
	return len(c.crops)
}
