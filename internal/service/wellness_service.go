package service

import (
	"context"
	"fmt"
	"time"

	"tcmcare-data/internal/domain"
	"tcmcare-data/internal/repository"

	"go.uber.org/zap"
)

// WellnessService 四季养生与食物搭配服务
type WellnessService struct {
	ingredients repository.IngredientsRepository
	recipes     repository.RecipesRepository
	logger      *zap.Logger

	now func() time.Time
}

// NewWellnessService 创建养生服务
func NewWellnessService(
	ingredients repository.IngredientsRepository,
	recipes repository.RecipesRepository,
	logger *zap.Logger,
	now func() time.Time,
) *WellnessService {
	return &WellnessService{
		ingredients: ingredients,
		recipes:     recipes,
		logger:      logger,
		now:         now,
	}
}

// CurrentSeason 公历月份近似划分四季（3-5 春、6-8 夏、9-11 秋、12-2 冬）
func CurrentSeason(t time.Time) string {
	switch t.Month() {
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	case time.September, time.October, time.November:
		return "autumn"
	default:
		return "winter"
	}
}

// SeasonPlanResponse 季节养生方案（前端格式）
type SeasonPlanResponse struct {
	domain.SeasonPlan
	IsCurrent bool `json:"is_current"`
}

// SeasonPlan 按季节返回养生方案；season 为空取当前季节
func (s *WellnessService) SeasonPlan(_ context.Context, season string) (*SeasonPlanResponse, error) {
	current := CurrentSeason(s.now())
	if season == "" {
		season = current
	}
	plan, ok := domain.SeasonPlanFor(season)
	if !ok {
		return nil, fmt.Errorf("unknown season %q", season)
	}
	return &SeasonPlanResponse{SeasonPlan: plan, IsCurrent: season == current}, nil
}

// SeasonalRecommendation 当季 + 体质的组合推荐
type SeasonalRecommendation struct {
	Season      string               `json:"season"`
	SeasonName  string               `json:"season_name"`
	Principles  []string             `json:"principles"`
	Ingredients []*domain.Ingredient `json:"ingredients"`
	Recipes     []*domain.Recipe     `json:"recipes"`
}

// RecommendSeasonal 结合当前季节与体质给出食材/食谱推荐
// 体质为空时只返回季节方案中点名的条目
func (s *WellnessService) RecommendSeasonal(ctx context.Context, constitution string, limit int) (*SeasonalRecommendation, error) {
	if limit <= 0 {
		limit = 5
	}

	season := CurrentSeason(s.now())
	plan, _ := domain.SeasonPlanFor(season)
	rec := &SeasonalRecommendation{
		Season:     plan.Season,
		SeasonName: plan.SeasonName,
		Principles: plan.Principles,
	}

	if constitution != "" {
		suitable, _, err := s.ingredients.RecommendForConstitution(ctx, constitution, limit)
		if err != nil {
			return nil, err
		}
		recipes, err := s.recipes.RecommendForConstitution(ctx, constitution, limit)
		if err != nil {
			return nil, err
		}
		rec.Ingredients = suitable
		rec.Recipes = recipes
		return rec, nil
	}

	// 无体质时按季节方案点名的条目在目录里检索
	for _, name := range plan.Ingredients {
		if len(rec.Ingredients) >= limit {
			break
		}
		items, _, err := s.ingredients.ListIngredients(ctx, repository.IngredientFilters{Search: name}, 1, 1)
		if err != nil {
			return nil, err
		}
		rec.Ingredients = append(rec.Ingredients, items...)
	}
	for _, name := range plan.Recipes {
		if len(rec.Recipes) >= limit {
			break
		}
		items, _, err := s.recipes.ListRecipes(ctx, repository.RecipeFilters{Search: name}, 1, 1)
		if err != nil {
			return nil, err
		}
		rec.Recipes = append(rec.Recipes, items...)
	}
	return rec, nil
}

// PairingResponse 食物搭配查询结论
type PairingResponse struct {
	FoodA        string `json:"food_a"`
	FoodB        string `json:"food_b"`
	Incompatible bool   `json:"incompatible"`
	Reason       string `json:"reason,omitempty"`
}

// CheckFoodPairing 查两种食物是否相克
func (s *WellnessService) CheckFoodPairing(_ context.Context, foodA, foodB string) (*PairingResponse, error) {
	if foodA == "" || foodB == "" {
		return nil, fmt.Errorf("both food_a and food_b are required")
	}

	resp := &PairingResponse{FoodA: foodA, FoodB: foodB}
	if pairing, found := domain.CheckPairing(foodA, foodB); found {
		resp.Incompatible = true
		resp.Reason = pairing.Reason
	}
	return resp, nil
}
