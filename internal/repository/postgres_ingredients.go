package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"tcmcare-data/internal/domain"
)

// PostgresIngredientsRepository 食材目录 Repository（Postgres 实现）
type PostgresIngredientsRepository struct {
	db *sql.DB
}

// NewPostgresIngredientsRepository 创建食材 Repository
func NewPostgresIngredientsRepository(db *sql.DB) *PostgresIngredientsRepository {
	return &PostgresIngredientsRepository{db: db}
}

var _ IngredientsRepository = (*PostgresIngredientsRepository)(nil)

const ingredientColumns = `
	ingredient_id, name,
	COALESCE(category, '') AS category,
	COALESCE(nature, '') AS nature,
	COALESCE(flavor, '') AS flavor,
	COALESCE(meridians, '') AS meridians,
	COALESCE(effects, '') AS effects,
	COALESCE(description, '') AS description,
	COALESCE(suitable_constitutions, '[]'::jsonb) AS suitable_constitutions,
	COALESCE(avoid_constitutions, '[]'::jsonb) AS avoid_constitutions,
	COALESCE(image_url, '') AS image_url`

func scanIngredient(scanner interface{ Scan(...any) error }) (*domain.Ingredient, error) {
	var ing domain.Ingredient
	var suitable, avoid []byte
	err := scanner.Scan(
		&ing.IngredientID,
		&ing.Name,
		&ing.Category,
		&ing.Nature,
		&ing.Flavor,
		&ing.Meridians,
		&ing.Effects,
		&ing.Description,
		&suitable,
		&avoid,
		&ing.ImageURL,
	)
	if err != nil {
		return nil, err
	}
	ing.SuitableConstitutions = scanStrings(suitable)
	ing.AvoidConstitutions = scanStrings(avoid)
	return &ing, nil
}

// ListIngredients 分页查询食材列表
func (r *PostgresIngredientsRepository) ListIngredients(ctx context.Context, filters IngredientFilters, page, size int) ([]*domain.Ingredient, int, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}

	where := []string{"1=1"}
	var args []any
	if filters.Category != "" {
		args = append(args, filters.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if filters.Nature != "" {
		args = append(args, filters.Nature)
		where = append(where, fmt.Sprintf("nature = $%d", len(args)))
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
	countQuery := "SELECT COUNT(*) FROM ingredients WHERE " + whereClause
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count ingredients: %w", err)
	}

	args = append(args, size, (page-1)*size)
	listQuery := fmt.Sprintf(
		"SELECT %s FROM ingredients WHERE %s ORDER BY ingredient_id LIMIT $%d OFFSET $%d",
		ingredientColumns, whereClause, len(args)-1, len(args),
	)
	rows, err := r.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list ingredients: %w", err)
	}
	defer rows.Close()

	var ingredients []*domain.Ingredient
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ingredients = append(ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate ingredients: %w", err)
	}
	return ingredients, total, nil
}

// GetIngredient 按 ID 查询食材
func (r *PostgresIngredientsRepository) GetIngredient(ctx context.Context, ingredientID int) (*domain.Ingredient, error) {
	query := fmt.Sprintf("SELECT %s FROM ingredients WHERE ingredient_id = $1", ingredientColumns)
	ing, err := scanIngredient(r.db.QueryRowContext(ctx, query, ingredientID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("ingredient %d: %w", ingredientID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}
	return ing, nil
}

// ListCategories 食材分类列表
func (r *PostgresIngredientsRepository) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT category FROM ingredients WHERE category IS NOT NULL AND category <> '' ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredient categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return categories, nil
}

// RecommendForConstitution 按体质返回宜食与忌食食材
func (r *PostgresIngredientsRepository) RecommendForConstitution(ctx context.Context, constitution string, limit int) ([]*domain.Ingredient, []*domain.Ingredient, error) {
	if constitution == "" {
		return nil, nil, fmt.Errorf("constitution is required")
	}
	if limit <= 0 {
		limit = 10
	}

	suitable, err := r.queryByConstitutionField(ctx, "suitable_constitutions", constitution, limit)
	if err != nil {
		return nil, nil, err
	}
	avoid, err := r.queryByConstitutionField(ctx, "avoid_constitutions", constitution, limit)
	if err != nil {
		return nil, nil, err
	}
	return suitable, avoid, nil
}

func (r *PostgresIngredientsRepository) queryByConstitutionField(ctx context.Context, field, constitution string, limit int) ([]*domain.Ingredient, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM ingredients WHERE %s ? $1 ORDER BY ingredient_id LIMIT $2",
		ingredientColumns, field,
	)
	rows, err := r.db.QueryContext(ctx, query, constitution, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query ingredients by %s: %w", field, err)
	}
	defer rows.Close()

	var ingredients []*domain.Ingredient
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ingredients = append(ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ingredients: %w", err)
	}
	return ingredients, nil
}

// InsertIngredient 新增食材（seed/导入用）
func (r *PostgresIngredientsRepository) InsertIngredient(ctx context.Context, ingredient *domain.Ingredient) (int, error) {
	if ingredient.Name == "" {
		return 0, fmt.Errorf("name is required")
	}

	var id int
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO ingredients (
			name, category, nature, flavor, meridians, effects, description,
			suitable_constitutions, avoid_constitutions, image_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ingredient_id
	`,
		ingredient.Name,
		ingredient.Category,
		ingredient.Nature,
		ingredient.Flavor,
		ingredient.Meridians,
		ingredient.Effects,
		ingredient.Description,
		jsonStrings(ingredient.SuitableConstitutions),
		jsonStrings(ingredient.AvoidConstitutions),
		ingredient.ImageURL,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert ingredient: %w", err)
	}
	return id, nil
}
