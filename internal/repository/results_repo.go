package repository

import (
	"context"
	"errors"

	"tcmcare-data/internal/domain"
)

// ErrNotFound 查询对象不存在（handler 层据此映射 404）
var ErrNotFound = errors.New("not found")

// ResultsRepository 体质测试结果存取接口
type ResultsRepository interface {
	SaveResult(ctx context.Context, result *domain.AssessmentResult) error
	GetResult(ctx context.Context, resultID string) (*domain.AssessmentResult, error)
	ListResultsByUser(ctx context.Context, userID string, limit int) ([]*domain.AssessmentResult, error)
}
