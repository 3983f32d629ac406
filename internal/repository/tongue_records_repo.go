package repository

import (
	"context"

	"tcmcare-data/internal/domain"
)

// TongueRecordsRepository 舌诊记录存取接口
type TongueRecordsRepository interface {
	SaveRecord(ctx context.Context, record *domain.TongueRecord) error
	ListRecordsByUser(ctx context.Context, userID string, limit int) ([]*domain.TongueRecord, error)
}
