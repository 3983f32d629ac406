package service

import (
	"context"
	"testing"
	"time"

	"tcmcare-data/internal/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestWellnessService(clock func() time.Time) *WellnessService {
	return NewWellnessService(
		repository.NewMemoryIngredientsRepository(),
		repository.NewMemoryRecipesRepository(),
		zap.NewNop(),
		clock,
	)
}

func TestCurrentSeason(t *testing.T) {
	require.Equal(t, "spring", CurrentSeason(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, "summer", CurrentSeason(time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, "autumn", CurrentSeason(time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, "winter", CurrentSeason(time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, "winter", CurrentSeason(time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC)))
}

func TestSeasonPlan(t *testing.T) {
	svc := newTestWellnessService(fixedClock) // 2025-03-10 → spring
	ctx := context.Background()

	// 缺省取当前季节
	plan, err := svc.SeasonPlan(ctx, "")
	require.NoError(t, err)
	require.Equal(t, "spring", plan.Season)
	require.True(t, plan.IsCurrent)
	require.NotEmpty(t, plan.Principles)

	// 指定非当前季节
	plan, err = svc.SeasonPlan(ctx, "winter")
	require.NoError(t, err)
	require.Equal(t, "winter", plan.Season)
	require.False(t, plan.IsCurrent)

	_, err = svc.SeasonPlan(ctx, "rainy")
	require.Error(t, err)
}

func TestCheckFoodPairing(t *testing.T) {
	svc := newTestWellnessService(fixedClock)
	ctx := context.Background()

	resp, err := svc.CheckFoodPairing(ctx, "螃蟹", "柿子")
	require.NoError(t, err)
	require.True(t, resp.Incompatible)
	require.NotEmpty(t, resp.Reason)

	// 次序无关
	resp, err = svc.CheckFoodPairing(ctx, "柿子", "螃蟹")
	require.NoError(t, err)
	require.True(t, resp.Incompatible)

	resp, err = svc.CheckFoodPairing(ctx, "山药", "大米")
	require.NoError(t, err)
	require.False(t, resp.Incompatible)
	require.Empty(t, resp.Reason)

	_, err = svc.CheckFoodPairing(ctx, "", "柿子")
	require.Error(t, err)
}

func TestRecommendSeasonalWithConstitution(t *testing.T) {
	svc := newTestWellnessService(fixedClock)

	rec, err := svc.RecommendSeasonal(context.Background(), "qi_deficiency", 5)
	require.NoError(t, err)
	require.Equal(t, "spring", rec.Season)
	require.NotEmpty(t, rec.Ingredients)
	for _, ing := range rec.Ingredients {
		require.Contains(t, ing.SuitableConstitutions, "qi_deficiency")
	}
}
