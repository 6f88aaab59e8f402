package service

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/alexanderramin/cropcal/internal/contract"
	"github.com/alexanderramin/cropcal/internal/domain"
	"github.com/alexanderramin/cropcal/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_TransplantedCrop(t *testing.T) {
	repos := setupRepos(t)
	svc := NewPlanService(repos.crops, repos.profiles, 4)

	req := contract.NewPlanRequest("Tomato")
	req.Today = datePtr(2024, 4, 20)
	resp, err := svc.Plan(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "tomato", resp.Crop.ID)
	assert.Equal(t, lastFrost, resp.LastFrostDate)
	assert.Equal(t, date(2024, 3, 4), *resp.Milestones.IndoorStart)
	assert.Equal(t, date(2024, 4, 29), *resp.Milestones.Transplant)
	assert.Equal(t, date(2024, 5, 13), *resp.Milestones.EstimatedHarvest)
	assert.Nil(t, resp.Milestones.DirectSowEarliest)

	require.NotNil(t, resp.Instructions.IndoorStart)
	assert.Equal(t, "Start seeds indoors on March 4, 2024", *resp.Instructions.IndoorStart)
	assert.Nil(t, resp.Instructions.DirectSow)

	assert.True(t, resp.Scheduled)
	assert.Equal(t, 9, resp.DaysUntil)
	assert.Equal(t, domain.WindowOptimal, resp.Window)
	assert.Empty(t, resp.Succession)
}

func TestPlan_SuccessionCount(t *testing.T) {
	repos := setupRepos(t)
	svc := NewPlanService(repos.crops, repos.profiles, 4)
	ctx := context.Background()

	req := contract.NewPlanRequest("radish")
	req.Today = datePtr(2024, 3, 1)

	resp, err := svc.Plan(ctx, req)
	require.NoError(t, err)
	assert.Len(t, resp.Succession, 4, "configured default applies")

	three := 3
	req.SuccessionCount = &three
	resp, err = svc.Plan(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, []civil.Date{date(2024, 3, 18), date(2024, 4, 1), date(2024, 4, 15)}, resp.Succession)
	assert.Equal(t, "Direct sow between March 18 and April 15, 2024", *resp.Instructions.DirectSow)
	assert.Equal(t, domain.WindowOptimal, resp.Window)
	assert.Equal(t, 17, resp.DaysUntil)
}

func TestPlan_UnscheduledCrop(t *testing.T) {
	repos := setupRepos(t)
	svc := NewPlanService(repos.crops, repos.profiles, 4)

	req := contract.NewPlanRequest("garlic")
	req.Today = datePtr(2024, 4, 20)
	resp, err := svc.Plan(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.Milestones.IsEmpty())
	assert.False(t, resp.Scheduled)
	assert.Equal(t, 0, resp.DaysUntil)
	assert.Equal(t, domain.WindowOptimal, resp.Window)
	assert.Empty(t, resp.Instructions.Lines())
}

func TestPlan_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown crop", func(t *testing.T) {
		repos := setupRepos(t)
		svc := NewPlanService(repos.crops, repos.profiles, 4)
		_, err := svc.Plan(ctx, contract.NewPlanRequest("dragonfruit"))
		assert.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("no profile", func(t *testing.T) {
		repos := setupReposWith(t, nil, nil)
		svc := NewPlanService(repos.crops, repos.profiles, 4)
		_, err := svc.Plan(ctx, contract.NewPlanRequest("tomato"))
		assert.ErrorIs(t, err, ErrNoProfile)
	})
}

func TestPlan_ReportsToObserver(t *testing.T) {
	repos := setupRepos(t)
	obs := &recordingObserver{}
	svc := NewPlanService(repos.crops, repos.profiles, 4, obs)
	ctx := context.Background()

	req := contract.NewPlanRequest("tomato")
	req.Today = datePtr(2024, 4, 20)
	_, err := svc.Plan(ctx, req)
	require.NoError(t, err)

	ev := obs.last(t)
	assert.Equal(t, "plan-crop", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, "optimal", ev.Fields["window"])

	_, err = svc.Plan(ctx, contract.NewPlanRequest("nope"))
	require.Error(t, err)
	ev = obs.last(t)
	assert.False(t, ev.Success)
	assert.Error(t, ev.Err)
}
