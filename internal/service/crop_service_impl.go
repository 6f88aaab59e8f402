package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/cropcal/internal/domain"
	"github.com/alexanderramin/cropcal/internal/repository"
)

type cropService struct {
	crops    repository.CropRepo
	observer UseCaseObserver
}

func NewCropService(crops repository.CropRepo, observers ...UseCaseObserver) CropService {
	return &cropService{
		crops:    crops,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *cropService) List(ctx context.Context, category domain.CropCategory) (_ []*domain.Crop, err error) {
	startedAt := time.Now()
	fields := map[string]any{"category": string(category)}
	defer func() { observeUseCase(ctx, s.observer, "list-crops", startedAt, fields, err) }()

	if err := validateCategory(category); err != nil {
		return nil, err
	}
	crops, err := s.crops.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("listing crops: %w", err)
	}
	fields["count"] = len(crops)
	return crops, nil
}

func (s *cropService) Get(ctx context.Context, ref string) (_ *domain.Crop, err error) {
	startedAt := time.Now()
	defer func() {
		observeUseCase(ctx, s.observer, "get-crop", startedAt, map[string]any{"crop": ref}, err)
	}()

	c, err := s.crops.Find(ctx, ref)
	if err != nil {
		return nil, err
	}
	return c, nil
}
