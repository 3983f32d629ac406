package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"tcmcare-data/internal/domain"
)

// 内存目录实现：无数据库部署时从内置样例数据启动，测试也用它

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func paginate(total, page, size int) (lo, hi int) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	lo = (page - 1) * size
	if lo > total {
		lo = total
	}
	hi = lo + size
	if hi > total {
		hi = total
	}
	return lo, hi
}

// ---- 食材 ----

// MemoryIngredientsRepository 内存食材目录
type MemoryIngredientsRepository struct {
	mu    sync.RWMutex
	items []domain.Ingredient
}

// NewMemoryIngredientsRepository 创建带内置样例数据的内存食材目录
func NewMemoryIngredientsRepository() *MemoryIngredientsRepository {
	r := &MemoryIngredientsRepository{}
	r.items = append(r.items, domain.SeedIngredients...)
	return r
}

var _ IngredientsRepository = (*MemoryIngredientsRepository)(nil)

func (r *MemoryIngredientsRepository) ListIngredients(_ context.Context, filters IngredientFilters, page, size int) ([]*domain.Ingredient, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*domain.Ingredient
	for i := range r.items {
		ing := r.items[i]
		if filters.Category != "" && ing.Category != filters.Category {
			continue
		}
		if filters.Nature != "" && ing.Nature != filters.Nature {
			continue
		}
		if filters.Constitution != "" && !containsString(ing.SuitableConstitutions, filters.Constitution) {
			continue
		}
		if filters.Search != "" && !strings.Contains(ing.Name, filters.Search) && !strings.Contains(ing.Effects, filters.Search) {
			continue
		}
		copied := ing
		matched = append(matched, &copied)
	}
	total := len(matched)
	lo, hi := paginate(total, page, size)
	return matched[lo:hi], total, nil
}

func (r *MemoryIngredientsRepository) GetIngredient(_ context.Context, ingredientID int) (*domain.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].IngredientID == ingredientID {
			copied := r.items[i]
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("ingredient %d: %w", ingredientID, ErrNotFound)
}

func (r *MemoryIngredientsRepository) ListCategories(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var categories []string
	for i := range r.items {
		c := r.items[i].Category
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories, nil
}

func (r *MemoryIngredientsRepository) RecommendForConstitution(_ context.Context, constitution string, limit int) ([]*domain.Ingredient, []*domain.Ingredient, error) {
	if constitution == "" {
		return nil, nil, fmt.Errorf("constitution is required")
	}
	if limit <= 0 {
		limit = 10
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var suitable, avoid []*domain.Ingredient
	for i := range r.items {
		ing := r.items[i]
		if len(suitable) < limit && containsString(ing.SuitableConstitutions, constitution) {
			copied := ing
			suitable = append(suitable, &copied)
		}
		if len(avoid) < limit && containsString(ing.AvoidConstitutions, constitution) {
			copied := ing
			avoid = append(avoid, &copied)
		}
	}
	return suitable, avoid, nil
}

func (r *MemoryIngredientsRepository) InsertIngredient(_ context.Context, ingredient *domain.Ingredient) (int, error) {
	if ingredient.Name == "" {
		return 0, fmt.Errorf("name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := 1
	for i := range r.items {
		if r.items[i].IngredientID >= id {
			id = r.items[i].IngredientID + 1
		}
	}
	copied := *ingredient
	copied.IngredientID = id
	r.items = append(r.items, copied)
	return id, nil
}

// ---- 食谱 ----

// MemoryRecipesRepository 内存食谱目录
type MemoryRecipesRepository struct {
	mu    sync.RWMutex
	items []domain.Recipe
}

// NewMemoryRecipesRepository 创建带内置样例数据的内存食谱目录
func NewMemoryRecipesRepository() *MemoryRecipesRepository {
	r := &MemoryRecipesRepository{}
	r.items = append(r.items, domain.SeedRecipes...)
	return r
}

var _ RecipesRepository = (*MemoryRecipesRepository)(nil)

func (r *MemoryRecipesRepository) ListRecipes(_ context.Context, filters RecipeFilters, page, size int) ([]*domain.Recipe, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*domain.Recipe
	for i := range r.items {
		rec := r.items[i]
		if filters.RecipeType != "" && rec.RecipeType != filters.RecipeType {
			continue
		}
		if filters.Difficulty != "" && rec.Difficulty != filters.Difficulty {
			continue
		}
		if filters.Constitution != "" && !containsString(rec.SuitableConstitutions, filters.Constitution) {
			continue
		}
		if filters.Search != "" && !strings.Contains(rec.Name, filters.Search) && !strings.Contains(rec.Effects, filters.Search) {
			continue
		}
		copied := rec
		matched = append(matched, &copied)
	}
	total := len(matched)
	lo, hi := paginate(total, page, size)
	return matched[lo:hi], total, nil
}

func (r *MemoryRecipesRepository) GetRecipe(_ context.Context, recipeID int) (*domain.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].RecipeID == recipeID {
			copied := r.items[i]
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("recipe %d: %w", recipeID, ErrNotFound)
}

func (r *MemoryRecipesRepository) RecommendForConstitution(_ context.Context, constitution string, limit int) ([]*domain.Recipe, error) {
	if constitution == "" {
		return nil, fmt.Errorf("constitution is required")
	}
	if limit <= 0 {
		limit = 10
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var recipes []*domain.Recipe
	for i := range r.items {
		if len(recipes) >= limit {
			break
		}
		if containsString(r.items[i].SuitableConstitutions, constitution) {
			copied := r.items[i]
			recipes = append(recipes, &copied)
		}
	}
	return recipes, nil
}

func (r *MemoryRecipesRepository) InsertRecipe(_ context.Context, recipe *domain.Recipe) (int, error) {
	if recipe.Name == "" {
		return 0, fmt.Errorf("name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := 1
	for i := range r.items {
		if r.items[i].RecipeID >= id {
			id = r.items[i].RecipeID + 1
		}
	}
	copied := *recipe
	copied.RecipeID = id
	r.items = append(r.items, copied)
	return id, nil
}

// ---- 穴位 ----

// MemoryAcupointsRepository 内存穴位目录
type MemoryAcupointsRepository struct {
	mu    sync.RWMutex
	items []domain.Acupoint
}

// NewMemoryAcupointsRepository 创建带内置样例数据的内存穴位目录
func NewMemoryAcupointsRepository() *MemoryAcupointsRepository {
	r := &MemoryAcupointsRepository{}
	r.items = append(r.items, domain.SeedAcupoints...)
	return r
}

var _ AcupointsRepository = (*MemoryAcupointsRepository)(nil)

func (r *MemoryAcupointsRepository) ListAcupoints(_ context.Context, filters AcupointFilters, page, size int) ([]*domain.Acupoint, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*domain.Acupoint
	for i := range r.items {
		ap := r.items[i]
		if filters.Meridian != "" && ap.Meridian != filters.Meridian {
			continue
		}
		if filters.BodyPart != "" && ap.BodyPart != filters.BodyPart {
			continue
		}
		if filters.Search != "" &&
			!strings.Contains(ap.Name, filters.Search) &&
			!strings.Contains(strings.ToLower(ap.Pinyin), strings.ToLower(filters.Search)) &&
			!strings.Contains(strings.ToLower(ap.Code), strings.ToLower(filters.Search)) {
			continue
		}
		copied := ap
		matched = append(matched, &copied)
	}
	total := len(matched)
	lo, hi := paginate(total, page, size)
	return matched[lo:hi], total, nil
}

func (r *MemoryAcupointsRepository) GetAcupoint(_ context.Context, acupointID int) (*domain.Acupoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].AcupointID == acupointID {
			copied := r.items[i]
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("acupoint %d: %w", acupointID, ErrNotFound)
}

func (r *MemoryAcupointsRepository) RecommendForConstitution(_ context.Context, constitution string, limit int) ([]*domain.Acupoint, error) {
	if constitution == "" {
		return nil, fmt.Errorf("constitution is required")
	}
	if limit <= 0 {
		limit = 10
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var acupoints []*domain.Acupoint
	for i := range r.items {
		if len(acupoints) >= limit {
			break
		}
		if containsString(r.items[i].SuitableConstitutions, constitution) {
			copied := r.items[i]
			acupoints = append(acupoints, &copied)
		}
	}
	return acupoints, nil
}

func (r *MemoryAcupointsRepository) InsertAcupoint(_ context.Context, acupoint *domain.Acupoint) (int, error) {
	if acupoint.Name == "" {
		return 0, fmt.Errorf("name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := 1
	for i := range r.items {
		if r.items[i].AcupointID >= id {
			id = r.items[i].AcupointID + 1
		}
	}
	copied := *acupoint
	copied.AcupointID = id
	r.items = append(r.items, copied)
	return id, nil
}
