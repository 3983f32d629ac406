package repository

import (
	"context"
	"database/sql"
	"fmt"

	"tcmcare-data/internal/domain"
)

// PostgresRoutinesRepository 起居作息方案 Repository（Postgres 实现）
type PostgresRoutinesRepository struct {
	db *sql.DB
}

// NewPostgresRoutinesRepository 创建作息 Repository
func NewPostgresRoutinesRepository(db *sql.DB) *PostgresRoutinesRepository {
	return &PostgresRoutinesRepository{db: db}
}

var _ RoutinesRepository = (*PostgresRoutinesRepository)(nil)

const routineColumns = `
	routine_id, name,
	COALESCE(description, '') AS description,
	COALESCE(target_constitutions, '[]'::jsonb) AS target_constitutions,
	COALESCE(wake_time, '') AS wake_time,
	COALESCE(sleep_time, '') AS sleep_time,
	COALESCE(morning_routine, '[]'::jsonb) AS morning_routine,
	COALESCE(afternoon_routine, '[]'::jsonb) AS afternoon_routine,
	COALESCE(evening_routine, '[]'::jsonb) AS evening_routine,
	COALESCE(meal_timings, '[]'::jsonb) AS meal_timings,
	COALESCE(tips, '[]'::jsonb) AS tips`

func scanRoutine(scanner interface{ Scan(...any) error }) (*domain.DailyRoutine, error) {
	var rt domain.DailyRoutine
	var target, morning, afternoon, evening, meals, tips []byte
	err := scanner.Scan(
		&rt.RoutineID,
		&rt.Name,
		&rt.Description,
		&target,
		&rt.WakeTime,
		&rt.SleepTime,
		&morning,
		&afternoon,
		&evening,
		&meals,
		&tips,
	)
	if err != nil {
		return nil, err
	}
	rt.TargetConstitutions = scanStrings(target)
	rt.MorningRoutine = scanStrings(morning)
	rt.AfternoonRoutine = scanStrings(afternoon)
	rt.EveningRoutine = scanStrings(evening)
	rt.MealTimings = scanStrings(meals)
	rt.Tips = scanStrings(tips)
	return &rt, nil
}

// ListRoutines 分页查询作息方案
func (r *PostgresRoutinesRepository) ListRoutines(ctx context.Context, page, size int) ([]*domain.DailyRoutine, int, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 10
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM daily_routines`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count routines: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM daily_routines ORDER BY routine_id LIMIT $1 OFFSET $2",
		routineColumns,
	)
	rows, err := r.db.QueryContext(ctx, query, size, (page-1)*size)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list routines: %w", err)
	}
	defer rows.Close()

	var routines []*domain.DailyRoutine
	for rows.Next() {
		rt, err := scanRoutine(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan routine: %w", err)
		}
		routines = append(routines, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate routines: %w", err)
	}
	return routines, total, nil
}

// GetRoutineByConstitution 按体质查询作息方案
func (r *PostgresRoutinesRepository) GetRoutineByConstitution(ctx context.Context, constitution string) (*domain.DailyRoutine, error) {
	if constitution == "" {
		return nil, fmt.Errorf("constitution is required")
	}

	query := fmt.Sprintf(
		"SELECT %s FROM daily_routines WHERE target_constitutions ? $1 ORDER BY routine_id LIMIT 1",
		routineColumns,
	)
	rt, err := scanRoutine(r.db.QueryRowContext(ctx, query, constitution))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("routine for %s: %w", constitution, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get routine: %w", err)
	}
	return rt, nil
}

// InsertRoutine 新增作息方案（seed 用）
func (r *PostgresRoutinesRepository) InsertRoutine(ctx context.Context, routine *domain.DailyRoutine) (int, error) {
	query := `
		INSERT INTO daily_routines (
			name, description, target_constitutions, wake_time, sleep_time,
			morning_routine, afternoon_routine, evening_routine, meal_timings, tips
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING routine_id
	`
	var id int
	err := r.db.QueryRowContext(ctx, query,
		routine.Name,
		routine.Description,
		jsonStrings(routine.TargetConstitutions),
		routine.WakeTime,
		routine.SleepTime,
		jsonStrings(routine.MorningRoutine),
		jsonStrings(routine.AfternoonRoutine),
		jsonStrings(routine.EveningRoutine),
		jsonStrings(routine.MealTimings),
		jsonStrings(routine.Tips),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert routine: %w", err)
	}
	return id, nil
}
