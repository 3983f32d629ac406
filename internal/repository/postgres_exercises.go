package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"tcmcare-data/internal/domain"
)

// PostgresExercisesRepository 运动/功法库 Repository（Postgres 实现）
type PostgresExercisesRepository struct {
	db *sql.DB
}

// NewPostgresExercisesRepository 创建运动 Repository
func NewPostgresExercisesRepository(db *sql.DB) *PostgresExercisesRepository {
	return &PostgresExercisesRepository{db: db}
}

var _ ExercisesRepository = (*PostgresExercisesRepository)(nil)

const exerciseColumns = `
	exercise_id, name,
	COALESCE(name_en, '') AS name_en,
	COALESCE(description, '') AS description,
	COALESCE(exercise_type, '') AS exercise_type,
	COALESCE(difficulty, '') AS difficulty,
	COALESCE(duration_seconds, 0) AS duration_seconds,
	COALESCE(repetitions, '') AS repetitions,
	COALESCE(instructions, '') AS instructions,
	COALESCE(benefits, '') AS benefits,
	COALESCE(contraindications, '') AS contraindications,
	COALESCE(target_constitutions, '[]'::jsonb) AS target_constitutions,
	COALESCE(video_url, '') AS video_url,
	COALESCE(image_url, '') AS image_url,
	COALESCE(view_count, 0) AS view_count`

func scanExercise(scanner interface{ Scan(...any) error }) (*domain.Exercise, error) {
	var ex domain.Exercise
	var target []byte
	err := scanner.Scan(
		&ex.ExerciseID,
		&ex.Name,
		&ex.NameEn,
		&ex.Description,
		&ex.ExerciseType,
		&ex.Difficulty,
		&ex.DurationSeconds,
		&ex.Repetitions,
		&ex.Instructions,
		&ex.Benefits,
		&ex.Contraindicated,
		&target,
		&ex.VideoURL,
		&ex.ImageURL,
		&ex.ViewCount,
	)
	if err != nil {
		return nil, err
	}
	ex.TargetConstitutions = scanStrings(target)
	return &ex, nil
}

// ListExercises 分页查询运动列表
func (r *PostgresExercisesRepository) ListExercises(ctx context.Context, filters ExerciseFilters, page, size int) ([]*domain.Exercise, int, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}

	where := []string{"1=1"}
	var args []any
	if filters.ExerciseType != "" {
		args = append(args, filters.ExerciseType)
		where = append(where, fmt.Sprintf("exercise_type = $%d", len(args)))
	}
	if filters.Difficulty != "" {
		args = append(args, filters.Difficulty)
		where = append(where, fmt.Sprintf("difficulty = $%d", len(args)))
	}
	if filters.Constitution != "" {
		args = append(args, filters.Constitution)
		where = append(where, fmt.Sprintf("target_constitutions ? $%d", len(args)))
	}
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		where = append(where, fmt.Sprintf("(name LIKE $%d OR benefits LIKE $%d)", len(args), len(args)))
	}
	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM exercises WHERE " + whereClause
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count exercises: %w", err)
	}

	args = append(args, size, (page-1)*size)
	listQuery := fmt.Sprintf(
		"SELECT %s FROM exercises WHERE %s ORDER BY exercise_id LIMIT $%d OFFSET $%d",
		exerciseColumns, whereClause, len(args)-1, len(args),
	)
	rows, err := r.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*domain.Exercise
	for rows.Next() {
		ex, err := scanExercise(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan exercise: %w", err)
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate exercises: %w", err)
	}
	return exercises, total, nil
}

// GetExercise 按 ID 查询运动
func (r *PostgresExercisesRepository) GetExercise(ctx context.Context, exerciseID int) (*domain.Exercise, error) {
	query := fmt.Sprintf("SELECT %s FROM exercises WHERE exercise_id = $1", exerciseColumns)
	ex, err := scanExercise(r.db.QueryRowContext(ctx, query, exerciseID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("exercise %d: %w", exerciseID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get exercise: %w", err)
	}
	return ex, nil
}

// RecommendForConstitution 按体质返回适合的运动
func (r *PostgresExercisesRepository) RecommendForConstitution(ctx context.Context, constitution string, limit int) ([]*domain.Exercise, error) {
	if constitution == "" {
		return nil, fmt.Errorf("constitution is required")
	}
	if limit <= 0 {
		limit = 10
	}

	query := fmt.Sprintf(
		"SELECT %s FROM exercises WHERE target_constitutions ? $1 ORDER BY exercise_id LIMIT $2",
		exerciseColumns,
	)
	rows, err := r.db.QueryContext(ctx, query, constitution, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query exercises by constitution: %w", err)
	}
	defer rows.Close()

	var exercises []*domain.Exercise
	for rows.Next() {
		ex, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate exercises: %w", err)
	}
	return exercises, nil
}

// IncrementViewCount 浏览计数 +1
func (r *PostgresExercisesRepository) IncrementViewCount(ctx context.Context, exerciseID int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE exercises SET view_count = COALESCE(view_count, 0) + 1 WHERE exercise_id = $1`, exerciseID)
	if err != nil {
		return fmt.Errorf("failed to increment exercise view count: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check exercise update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("exercise %d: %w", exerciseID, ErrNotFound)
	}
	return nil
}

// InsertExercise 新增运动（seed/导入用）
func (r *PostgresExercisesRepository) InsertExercise(ctx context.Context, exercise *domain.Exercise) (int, error) {
	query := `
		INSERT INTO exercises (
			name, name_en, description, exercise_type, difficulty,
			duration_seconds, repetitions, instructions, benefits, contraindications,
			target_constitutions, video_url, image_url, view_count
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING exercise_id
	`
	var id int
	err := r.db.QueryRowContext(ctx, query,
		exercise.Name,
		exercise.NameEn,
		exercise.Description,
		exercise.ExerciseType,
		exercise.Difficulty,
		exercise.DurationSeconds,
		exercise.Repetitions,
		exercise.Instructions,
		exercise.Benefits,
		exercise.Contraindicated,
		jsonStrings(exercise.TargetConstitutions),
		exercise.VideoURL,
		exercise.ImageURL,
		exercise.ViewCount,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert exercise: %w", err)
	}
	return id, nil
}
