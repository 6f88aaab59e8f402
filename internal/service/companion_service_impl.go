package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/cropcal/internal/contract"
	"github.com/alexanderramin/cropcal/internal/domain"
	"github.com/alexanderramin/cropcal/internal/repository"
)

type companionService struct {
	crops    repository.CropRepo
	garden   repository.GardenRepo
	observer UseCaseObserver
}

func NewCompanionService(
	crops repository.CropRepo,
	garden repository.GardenRepo,
	observers ...UseCaseObserver,
) CompanionService {
	return &companionService{
		crops:    crops,
		garden:   garden,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *companionService) Companions(ctx context.Context, ref string) (_ *contract.CompanionResponse, err error) {
	startedAt := time.Now()
	defer func() {
		observeUseCase(ctx, s.observer, "companions", startedAt, map[string]any{"crop": ref}, err)
	}()

	crop, err := s.crops.Find(ctx, ref)
	if err != nil {
		return nil, err
	}

	good, err := s.resolveRefs(ctx, crop.Companions)
	if err != nil {
		return nil, err
	}
	bad, err := s.resolveRefs(ctx, crop.Avoid)
	if err != nil {
		return nil, err
	}
	return &contract.CompanionResponse{Crop: crop, Good: good, Bad: bad}, nil
}

func (s *companionService) Conflicts(ctx context.Context) (_ []contract.CompanionConflict, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observeUseCase(ctx, s.observer, "companion-conflicts", startedAt, fields, err) }()

	resolved, _, err := resolveGarden(ctx, s.garden, s.crops)
	if err != nil {
		return nil, err
	}
	crops := make([]*domain.Crop, len(resolved))
	for i, gc := range resolved {
		crops[i] = gc.Crop
	}
	conflicts := findConflicts(crops)
	fields["count"] = len(conflicts)
	return conflicts, nil
}

// resolveRefs links companion names to catalog crops. Names the catalog does
// not know are kept with an empty CropID.
func (s *companionService) resolveRefs(ctx context.Context, names []string) ([]contract.CompanionRef, error) {
	refs := make([]contract.CompanionRef, 0, len(names))
	for _, name := range names {
		ref := contract.CompanionRef{Name: name}
		c, err := s.crops.Find(ctx, name)
		switch {
		case err == nil:
			ref.Name = c.Name
			ref.CropID = c.ID
		case !errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("resolving companion %q: %w", name, err)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// findConflicts returns each unordered pair of distinct crops where either
// side lists the other as a plant to avoid. Duplicate garden entries of the
// same crop count once.
func findConflicts(crops []*domain.Crop) []contract.CompanionConflict {
	seen := make(map[string]bool)
	unique := make([]*domain.Crop, 0, len(crops))
	for _, c := range crops {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		unique = append(unique, c)
	}

	conflicts := []contract.CompanionConflict{}
	for i := 0; i < len(unique); i++ {
		for j := i + 1; j < len(unique); j++ {
			a, b := unique[i], unique[j]
			if a.Dislikes(b) || b.Dislikes(a) {
				conflicts = append(conflicts, contract.CompanionConflict{CropA: a.Name, CropB: b.Name})
			}
		}
	}
	return conflicts
}
