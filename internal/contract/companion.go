package contract

import "github.com/alexanderramin/cropcal/internal/domain"

// CompanionRef names a companion. CropID is empty when the name is not in
// the catalog.
type CompanionRef struct {
	Name   string
	CropID string
}

type CompanionResponse struct {
	Crop *domain.Crop
	Good []CompanionRef
	Bad  []CompanionRef
}

// CompanionConflict is a pair of garden crops where at least one lists the
// other as a plant to avoid.
type CompanionConflict struct {
	CropA string
	CropB string
}
