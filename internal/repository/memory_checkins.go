package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"tcmcare-data/internal/domain"
)

// MemoryCheckinsRepository 内存打卡实现
type MemoryCheckinsRepository struct {
	mu       sync.RWMutex
	checkins map[string]*domain.WeeklyCheckin // checkin_id -> record
}

// NewMemoryCheckinsRepository 创建内存打卡 Repository
func NewMemoryCheckinsRepository() *MemoryCheckinsRepository {
	return &MemoryCheckinsRepository{
		checkins: make(map[string]*domain.WeeklyCheckin),
	}
}

var _ CheckinsRepository = (*MemoryCheckinsRepository)(nil)

func sameWeek(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (r *MemoryCheckinsRepository) SaveCheckin(_ context.Context, checkin *domain.WeeklyCheckin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// 同 user + week 覆盖，保持旧 checkin_id 与 created_at
	for id, existing := range r.checkins {
		if existing.UserID == checkin.UserID && sameWeek(existing.WeekStart, checkin.WeekStart) {
			copied := *checkin
			copied.CheckinID = id
			copied.CreatedAt = existing.CreatedAt
			r.checkins[id] = &copied
			return nil
		}
	}

	copied := *checkin
	r.checkins[checkin.CheckinID] = &copied
	return nil
}

func (r *MemoryCheckinsRepository) GetCheckin(_ context.Context, checkinID string) (*domain.WeeklyCheckin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.checkins[checkinID]
	if !ok {
		return nil, fmt.Errorf("checkin %s: %w", checkinID, ErrNotFound)
	}
	copied := *c
	return &copied, nil
}

func (r *MemoryCheckinsRepository) GetCheckinByWeek(_ context.Context, userID string, weekStart time.Time) (*domain.WeeklyCheckin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.checkins {
		if c.UserID == userID && sameWeek(c.WeekStart, weekStart) {
			copied := *c
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("checkin for %s week %s: %w", userID, weekStart.Format("2006-01-02"), ErrNotFound)
}

func (r *MemoryCheckinsRepository) ListCheckinsByUser(_ context.Context, userID string, limit int) ([]*domain.WeeklyCheckin, error) {
	if limit <= 0 {
		limit = 12
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var checkins []*domain.WeeklyCheckin
	for _, c := range r.checkins {
		if c.UserID == userID {
			copied := *c
			checkins = append(checkins, &copied)
		}
	}
	sort.Slice(checkins, func(i, j int) bool {
		return checkins[i].WeekStart.After(checkins[j].WeekStart)
	})
	if len(checkins) > limit {
		checkins = checkins[:limit]
	}
	return checkins, nil
}
