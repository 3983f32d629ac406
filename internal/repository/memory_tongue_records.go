package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"tcmcare-data/internal/domain"
)

// MemoryTongueRecordsRepository 内存版舌诊记录 Repository
type MemoryTongueRecordsRepository struct {
	mu      sync.RWMutex
	records []*domain.TongueRecord
}

// NewMemoryTongueRecordsRepository 创建内存舌诊记录 Repository
func NewMemoryTongueRecordsRepository() *MemoryTongueRecordsRepository {
	return &MemoryTongueRecordsRepository{}
}

var _ TongueRecordsRepository = (*MemoryTongueRecordsRepository)(nil)

func (r *MemoryTongueRecordsRepository) SaveRecord(_ context.Context, record *domain.TongueRecord) error {
	if record.RecordID == "" {
		return fmt.Errorf("record_id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := *record
	r.records = append(r.records, &kept)
	return nil
}

func (r *MemoryTongueRecordsRepository) ListRecordsByUser(_ context.Context, userID string, limit int) ([]*domain.TongueRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []*domain.TongueRecord
	for _, record := range r.records {
		if record.UserID == userID {
			kept := *record
			records = append(records, &kept)
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
