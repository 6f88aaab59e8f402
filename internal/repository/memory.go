package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cropcal/internal/catalog"
	"github.com/alexanderramin/cropcal/internal/domain"
)

// CatalogCropRepo implements CropRepo over an immutable crop catalog. It
// returns copies, so callers may modify the crops they get.
type CatalogCropRepo struct {
	catalog *catalog.Catalog
}

// NewCatalogCropRepo creates a CatalogCropRepo.
func NewCatalogCropRepo(c *catalog.Catalog) *CatalogCropRepo {
	return &CatalogCropRepo{catalog: c}
}

func (r *CatalogCropRepo) GetByID(_ context.Context, id string) (*domain.Crop, error) {
	c, ok := r.catalog.Get(id)
	if !ok {
		return nil, fmt.Errorf("crop %q: %w", id, ErrNotFound)
	}
	return cloneCrop(c), nil
}

func (r *CatalogCropRepo) Find(_ context.Context, ref string) (*domain.Crop, error) {
	c, ok := r.catalog.Find(ref)
	if !ok {
		return nil, fmt.Errorf("crop %q: %w", ref, ErrNotFound)
	}
	return cloneCrop(c), nil
}

func (r *CatalogCropRepo) List(_ context.Context, category domain.CropCategory) ([]*domain.Crop, error) {
	crops := r.catalog.List(category)
	for i, c := range crops {
		crops[i] = cloneCrop(c)
	}
	return crops, nil
}

// MemoryGardenRepo implements GardenRepo over a fixed list of entries,
// typically the [[garden]] section of the config file.
type MemoryGardenRepo struct {
	entries []*domain.GardenEntry
}

// NewMemoryGardenRepo creates a MemoryGardenRepo holding copies of entries.
func NewMemoryGardenRepo(entries []*domain.GardenEntry) *MemoryGardenRepo {
	copied := make([]*domain.GardenEntry, 0, len(entries))
	for _, e := range entries {
		copied = append(copied, cloneEntry(e))
	}
	return &MemoryGardenRepo{entries: copied}
}

func (r *MemoryGardenRepo) List(_ context.Context) ([]*domain.GardenEntry, error) {
	out := make([]*domain.GardenEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, cloneEntry(e))
	}
	return out, nil
}

// MemoryProfileRepo implements ProfileRepo. A nil profile means none is
// configured and Get returns ErrNotFound.
type MemoryProfileRepo struct {
	profile *domain.GardenProfile
}

// NewMemoryProfileRepo creates a MemoryProfileRepo.
func NewMemoryProfileRepo(p *domain.GardenProfile) *MemoryProfileRepo {
	if p != nil {
		p = cloneProfile(p)
	}
	return &MemoryProfileRepo{profile: p}
}

func (r *MemoryProfileRepo) Get(_ context.Context) (*domain.GardenProfile, error) {
	if !r.profile.HasFrostDate() {
		return nil, fmt.Errorf("garden profile: %w", ErrNotFound)
	}
	return cloneProfile(r.profile), nil
}
