package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"tcmcare-data/internal/domain"
)

// PostgresRecipesRepository 食谱目录 Repository（Postgres 实现）
type PostgresRecipesRepository struct {
	db *sql.DB
}

// NewPostgresRecipesRepository 创建食谱 Repository
func NewPostgresRecipesRepository(db *sql.DB) *PostgresRecipesRepository {
	return &PostgresRecipesRepository{db: db}
}

var _ RecipesRepository = (*PostgresRecipesRepository)(nil)

const recipeColumns = `
	recipe_id, name,
	COALESCE(recipe_type, '') AS recipe_type,
	COALESCE(difficulty, '') AS difficulty,
	COALESCE(description, '') AS description,
	COALESCE(effects, '') AS effects,
	COALESCE(ingredients, '') AS ingredients,
	COALESCE(steps, '') AS steps,
	COALESCE(cook_minutes, 0) AS cook_minutes,
	COALESCE(suitable_constitutions, '[]'::jsonb) AS suitable_constitutions,
	COALESCE(avoid_constitutions, '[]'::jsonb) AS avoid_constitutions,
	COALESCE(image_url, '') AS image_url`

func scanRecipe(scanner interface{ Scan(...any) error }) (*domain.Recipe, error) {
	var rec domain.Recipe
	var suitable, avoid []byte
	err := scanner.Scan(
		&rec.RecipeID,
		&rec.Name,
		&rec.RecipeType,
		&rec.Difficulty,
		&rec.Description,
		&rec.Effects,
		&rec.Ingredients,
		&rec.Steps,
		&rec.CookMinutes,
		&suitable,
		&avoid,
		&rec.ImageURL,
	)
	if err != nil {
		return nil, err
	}
	rec.SuitableConstitutions = scanStrings(suitable)
	rec.AvoidConstitutions = scanStrings(avoid)
	return &rec, nil
}

// ListRecipes 分页查询食谱列表
func (r *PostgresRecipesRepository) ListRecipes(ctx context.Context, filters RecipeFilters, page, size int) ([]*domain.Recipe, int, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}

	where := []string{"1=1"}
	var args []any
	if filters.RecipeType != "" {
		args = append(args, filters.RecipeType)
		where = append(where, fmt.Sprintf("recipe_type = $%d", len(args)))
	}
	if filters.Difficulty != "" {
		args = append(args, filters.Difficulty)
		where = append(where, fmt.Sprintf("difficulty = $%d", len(args)))
	}
	if filters.Constitution != "" {
		args = append(args, filters.Constitution)
		where = append(where, fmt.Sprintf("suitable_constitutions ? $%d", len(args)))
	}
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		where = append(where, fmt.Sprintf("(name LIKE $%d OR effects LIKE $%d)", len(args), len(args)))
	}
	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM recipes WHERE " + whereClause
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count recipes: %w", err)
	}

	args = append(args, size, (page-1)*size)
	listQuery := fmt.Sprintf(
		"SELECT %s FROM recipes WHERE %s ORDER BY recipe_id LIMIT $%d OFFSET $%d",
		recipeColumns, whereClause, len(args)-1, len(args),
	)
	rows, err := r.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []*domain.Recipe
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate recipes: %w", err)
	}
	return recipes, total, nil
}

// GetRecipe 按 ID 查询食谱
func (r *PostgresRecipesRepository) GetRecipe(ctx context.Context, recipeID int) (*domain.Recipe, error) {
	query := fmt.Sprintf("SELECT %s FROM recipes WHERE recipe_id = $1", recipeColumns)
	rec, err := scanRecipe(r.db.QueryRowContext(ctx, query, recipeID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("recipe %d: %w", recipeID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return rec, nil
}

// RecommendForConstitution 按体质推荐食谱
func (r *PostgresRecipesRepository) RecommendForConstitution(ctx context.Context, constitution string, limit int) ([]*domain.Recipe, error) {
	if constitution == "" {
		return nil, fmt.Errorf("constitution is required")
	}
	if limit <= 0 {
		limit = 10
	}

	query := fmt.Sprintf(
		"SELECT %s FROM recipes WHERE suitable_constitutions ? $1 ORDER BY recipe_id LIMIT $2",
		recipeColumns,
	)
	rows, err := r.db.QueryContext(ctx, query, constitution, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to recommend recipes: %w", err)
	}
	defer rows.Close()

	var recipes []*domain.Recipe
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}
	return recipes, nil
}

// InsertRecipe 新增食谱（seed/导入用）
func (r *PostgresRecipesRepository) InsertRecipe(ctx context.Context, recipe *domain.Recipe) (int, error) {
	if recipe.Name == "" {
		return 0, fmt.Errorf("name is required")
	}

	var id int
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO recipes (
			name, recipe_type, difficulty, description, effects,
			ingredients, steps, cook_minutes,
			suitable_constitutions, avoid_constitutions, image_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING recipe_id
	`,
		recipe.Name,
		recipe.RecipeType,
		recipe.Difficulty,
		recipe.Description,
		recipe.Effects,
		recipe.Ingredients,
		recipe.Steps,
		recipe.CookMinutes,
		jsonStrings(recipe.SuitableConstitutions),
		jsonStrings(recipe.AvoidConstitutions),
		recipe.ImageURL,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert recipe: %w", err)
	}
	return id, nil
}
