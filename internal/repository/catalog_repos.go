package repository

import (
	"context"

	"tcmcare-data/internal/domain"
)

// IngredientFilters 食材列表过滤条件
type IngredientFilters struct {
	Category     string
	Nature       string
	Constitution string // 体质代码，匹配 suitable_constitutions
	Search       string // 名称/功效模糊搜索
}

// IngredientsRepository 食材目录接口
type IngredientsRepository interface {
	ListIngredients(ctx context.Context, filters IngredientFilters, page, size int) ([]*domain.Ingredient, int, error)
	GetIngredient(ctx context.Context, ingredientID int) (*domain.Ingredient, error)
	ListCategories(ctx context.Context) ([]string, error)
	// RecommendForConstitution 返回（宜食, 忌食）两组
	RecommendForConstitution(ctx context.Context, constitution string, limit int) ([]*domain.Ingredient, []*domain.Ingredient, error)
	InsertIngredient(ctx context.Context, ingredient *domain.Ingredient) (int, error)
}

// RecipeFilters 食谱列表过滤条件
type RecipeFilters struct {
	RecipeType   string
	Difficulty   string
	Constitution string
	Search       string
}

// RecipesRepository 食谱目录接口
type RecipesRepository interface {
	ListRecipes(ctx context.Context, filters RecipeFilters, page, size int) ([]*domain.Recipe, int, error)
	GetRecipe(ctx context.Context, recipeID int) (*domain.Recipe, error)
	RecommendForConstitution(ctx context.Context, constitution string, limit int) ([]*domain.Recipe, error)
	InsertRecipe(ctx context.Context, recipe *domain.Recipe) (int, error)
}

// AcupointFilters 穴位列表过滤条件
type AcupointFilters struct {
	Meridian string
	BodyPart string
	Search   string
}

// AcupointsRepository 穴位目录接口
type AcupointsRepository interface {
	ListAcupoints(ctx context.Context, filters AcupointFilters, page, size int) ([]*domain.Acupoint, int, error)
	GetAcupoint(ctx context.Context, acupointID int) (*domain.Acupoint, error)
	RecommendForConstitution(ctx context.Context, constitution string, limit int) ([]*domain.Acupoint, error)
	InsertAcupoint(ctx context.Context, acupoint *domain.Acupoint) (int, error)
}
