package service

import (
	"context"

	"tcmcare-data/internal/domain"
	"tcmcare-data/internal/repository"

	"go.uber.org/zap"
)

// CatalogService 食材/食谱/穴位目录服务
// 出接口前统一把图片相对路径补全为可访问地址
type CatalogService struct {
	ingredients repository.IngredientsRepository
	recipes     repository.RecipesRepository
	acupoints   repository.AcupointsRepository
	assets      *AssetClient
	logger      *zap.Logger
}

// NewCatalogService 创建目录服务
func NewCatalogService(
	ingredients repository.IngredientsRepository,
	recipes repository.RecipesRepository,
	acupoints repository.AcupointsRepository,
	assets *AssetClient,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		ingredients: ingredients,
		recipes:     recipes,
		acupoints:   acupoints,
		assets:      assets,
		logger:      logger,
	}
}

// PagedIngredients 食材分页结果
type PagedIngredients struct {
	Items []*domain.Ingredient `json:"items"`
	Total int                  `json:"total"`
	Page  int                  `json:"page"`
	Size  int                  `json:"size"`
}

// ListIngredients 分页查询食材
func (s *CatalogService) ListIngredients(ctx context.Context, filters repository.IngredientFilters, page, size int) (*PagedIngredients, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	items, total, err := s.ingredients.ListIngredients(ctx, filters, page, size)
	if err != nil {
		return nil, err
	}
	for _, ing := range items {
		ing.ImageURL = s.assets.PublicURL(ing.ImageURL)
	}
	return &PagedIngredients{Items: items, Total: total, Page: page, Size: size}, nil
}

// GetIngredient 食材详情
func (s *CatalogService) GetIngredient(ctx context.Context, id int) (*domain.Ingredient, error) {
	ing, err := s.ingredients.GetIngredient(ctx, id)
	if err != nil {
		return nil, err
	}
	ing.ImageURL = s.assets.PublicURL(ing.ImageURL)
	return ing, nil
}

// IngredientCategories 食材分类列表
func (s *CatalogService) IngredientCategories(ctx context.Context) ([]string, error) {
	return s.ingredients.ListCategories(ctx)
}

// PagedRecipes 食谱分页结果
type PagedRecipes struct {
	Items []*domain.Recipe `json:"items"`
	Total int              `json:"total"`
	Page  int              `json:"page"`
	Size  int              `json:"size"`
}

// ListRecipes 分页查询食谱
func (s *CatalogService) ListRecipes(ctx context.Context, filters repository.RecipeFilters, page, size int) (*PagedRecipes, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	items, total, err := s.recipes.ListRecipes(ctx, filters, page, size)
	if err != nil {
		return nil, err
	}
	for _, rec := range items {
		rec.ImageURL = s.assets.PublicURL(rec.ImageURL)
	}
	return &PagedRecipes{Items: items, Total: total, Page: page, Size: size}, nil
}

// GetRecipe 食谱详情
func (s *CatalogService) GetRecipe(ctx context.Context, id int) (*domain.Recipe, error) {
	rec, err := s.recipes.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	rec.ImageURL = s.assets.PublicURL(rec.ImageURL)
	return rec, nil
}

// RecommendRecipes 按体质推荐食谱
func (s *CatalogService) RecommendRecipes(ctx context.Context, constitution string, limit int) ([]*domain.Recipe, error) {
	recipes, err := s.recipes.RecommendForConstitution(ctx, constitution, limit)
	if err != nil {
		return nil, err
	}
	for _, rec := range recipes {
		rec.ImageURL = s.assets.PublicURL(rec.ImageURL)
	}
	return recipes, nil
}

// PagedAcupoints 穴位分页结果
type PagedAcupoints struct {
	Items []*domain.Acupoint `json:"items"`
	Total int                `json:"total"`
	Page  int                `json:"page"`
	Size  int                `json:"size"`
}

// ListAcupoints 分页查询穴位
func (s *CatalogService) ListAcupoints(ctx context.Context, filters repository.AcupointFilters, page, size int) (*PagedAcupoints, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	items, total, err := s.acupoints.ListAcupoints(ctx, filters, page, size)
	if err != nil {
		return nil, err
	}
	for _, ap := range items {
		ap.ImageURL = s.assets.PublicURL(ap.ImageURL)
	}
	return &PagedAcupoints{Items: items, Total: total, Page: page, Size: size}, nil
}

// GetAcupoint 穴位详情
func (s *CatalogService) GetAcupoint(ctx context.Context, id int) (*domain.Acupoint, error) {
	ap, err := s.acupoints.GetAcupoint(ctx, id)
	if err != nil {
		return nil, err
	}
	ap.ImageURL = s.assets.PublicURL(ap.ImageURL)
	return ap, nil
}

// RecommendAcupoints 按体质推荐穴位
func (s *CatalogService) RecommendAcupoints(ctx context.Context, constitution string, limit int) ([]*domain.Acupoint, error) {
	acupoints, err := s.acupoints.RecommendForConstitution(ctx, constitution, limit)
	if err != nil {
		return nil, err
	}
	for _, ap := range acupoints {
		ap.ImageURL = s.assets.PublicURL(ap.ImageURL)
	}
	return acupoints, nil
}
