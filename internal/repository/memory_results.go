package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"tcmcare-data/internal/domain"
)

// MemoryResultsRepository 内存版结果 Repository
// DB 未就绪时的本地联调实现，也用于 handler/service 单测
type MemoryResultsRepository struct {
	mu      sync.RWMutex
	results map[string]*domain.AssessmentResult
}

// NewMemoryResultsRepository 创建内存结果 Repository
func NewMemoryResultsRepository() *MemoryResultsRepository {
	return &MemoryResultsRepository{results: make(map[string]*domain.AssessmentResult)}
}

var _ ResultsRepository = (*MemoryResultsRepository)(nil)

func (r *MemoryResultsRepository) SaveResult(_ context.Context, result *domain.AssessmentResult) error {
	if result.ResultID == "" {
		return fmt.Errorf("result_id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := *result
	r.results[result.ResultID] = &kept
	return nil
}

func (r *MemoryResultsRepository) GetResult(_ context.Context, resultID string) (*domain.AssessmentResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result, ok := r.results[resultID]
	if !ok {
		return nil, fmt.Errorf("assessment result %s: %w", resultID, ErrNotFound)
	}
	kept := *result
	return &kept, nil
}

func (r *MemoryResultsRepository) ListResultsByUser(_ context.Context, userID string, limit int) ([]*domain.AssessmentResult, error) {
	if limit <= 0 {
		limit = 10
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var results []*domain.AssessmentResult
	for _, result := range r.results {
		if result.UserID == userID {
			kept := *result
			results = append(results, &kept)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
