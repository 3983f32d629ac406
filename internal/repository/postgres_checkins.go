package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"tcmcare-data/internal/domain"
)

// PostgresCheckinsRepository 每周打卡 Repository（Postgres 实现）
type PostgresCheckinsRepository struct {
	db *sql.DB
}

// NewPostgresCheckinsRepository 创建打卡 Repository
func NewPostgresCheckinsRepository(db *sql.DB) *PostgresCheckinsRepository {
	return &PostgresCheckinsRepository{db: db}
}

var _ CheckinsRepository = (*PostgresCheckinsRepository)(nil)

// SaveCheckin 插入或整周覆盖，按 (user_id, week_start) 幂等
func (r *PostgresCheckinsRepository) SaveCheckin(ctx context.Context, checkin *domain.WeeklyCheckin) error {
	days, err := json.Marshal(checkin.Days)
	if err != nil {
		return fmt.Errorf("failed to marshal checkin days: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO weekly_checkins (
			checkin_id, user_id, constitution, week_start, days, created_at, updated_at
		) VALUES ($1::uuid, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, week_start) DO UPDATE SET
			constitution = EXCLUDED.constitution,
			days = EXCLUDED.days,
			updated_at = EXCLUDED.updated_at
	`,
		checkin.CheckinID,
		checkin.UserID,
		checkin.Constitution,
		checkin.WeekStart,
		days,
		checkin.CreatedAt,
		checkin.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save checkin: %w", err)
	}
	return nil
}

const checkinColumns = `
	checkin_id, user_id,
	COALESCE(constitution, '') AS constitution,
	week_start, days, created_at, updated_at`

func scanCheckin(scanner interface{ Scan(...any) error }) (*domain.WeeklyCheckin, error) {
	var c domain.WeeklyCheckin
	var days []byte
	err := scanner.Scan(
		&c.CheckinID,
		&c.UserID,
		&c.Constitution,
		&c.WeekStart,
		&days,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(days) > 0 {
		if err := json.Unmarshal(days, &c.Days); err != nil {
			return nil, fmt.Errorf("failed to unmarshal checkin days: %w", err)
		}
	}
	return &c, nil
}

// GetCheckin 按 ID 查询打卡记录
func (r *PostgresCheckinsRepository) GetCheckin(ctx context.Context, checkinID string) (*domain.WeeklyCheckin, error) {
	query := fmt.Sprintf("SELECT %s FROM weekly_checkins WHERE checkin_id = $1::uuid", checkinColumns)
	c, err := scanCheckin(r.db.QueryRowContext(ctx, query, checkinID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("checkin %s: %w", checkinID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get checkin: %w", err)
	}
	return c, nil
}

// GetCheckinByWeek 按用户和周一日期查询
func (r *PostgresCheckinsRepository) GetCheckinByWeek(ctx context.Context, userID string, weekStart time.Time) (*domain.WeeklyCheckin, error) {
	query := fmt.Sprintf("SELECT %s FROM weekly_checkins WHERE user_id = $1 AND week_start = $2", checkinColumns)
	c, err := scanCheckin(r.db.QueryRowContext(ctx, query, userID, weekStart))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("checkin for %s week %s: %w", userID, weekStart.Format("2006-01-02"), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get checkin by week: %w", err)
	}
	return c, nil
}

// ListCheckinsByUser 按周倒序查询用户打卡历史
func (r *PostgresCheckinsRepository) ListCheckinsByUser(ctx context.Context, userID string, limit int) ([]*domain.WeeklyCheckin, error) {
	if limit <= 0 {
		limit = 12
	}

	query := fmt.Sprintf("SELECT %s FROM weekly_checkins WHERE user_id = $1 ORDER BY week_start DESC LIMIT $2", checkinColumns)
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkins: %w", err)
	}
	defer rows.Close()

	var checkins []*domain.WeeklyCheckin
	for rows.Next() {
		c, err := scanCheckin(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checkin: %w", err)
		}
		checkins = append(checkins, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate checkins: %w", err)
	}
	return checkins, nil
}
