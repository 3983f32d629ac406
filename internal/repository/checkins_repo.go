package repository

import (
	"context"
	"time"

	"tcmcare-data/internal/domain"
)

// CheckinsRepository 每周打卡存取接口
type CheckinsRepository interface {
	// SaveCheckin 插入或整周覆盖（同 user_id + week_start 唯一）
	SaveCheckin(ctx context.Context, checkin *domain.WeeklyCheckin) error
	GetCheckin(ctx context.Context, checkinID string) (*domain.WeeklyCheckin, error)
	// GetCheckinByWeek 按用户与周一日期查询，无记录返回 ErrNotFound
	GetCheckinByWeek(ctx context.Context, userID string, weekStart time.Time) (*domain.WeeklyCheckin, error)
	// ListCheckinsByUser 按 week_start 倒序
	ListCheckinsByUser(ctx context.Context, userID string, limit int) ([]*domain.WeeklyCheckin, error)
}
