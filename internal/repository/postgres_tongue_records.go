package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"tcmcare-data/internal/domain"
)

// PostgresTongueRecordsRepository 舌诊记录 Repository（Postgres 实现）
type PostgresTongueRecordsRepository struct {
	db *sql.DB
}

// NewPostgresTongueRecordsRepository 创建舌诊记录 Repository
func NewPostgresTongueRecordsRepository(db *sql.DB) *PostgresTongueRecordsRepository {
	return &PostgresTongueRecordsRepository{db: db}
}

var _ TongueRecordsRepository = (*PostgresTongueRecordsRepository)(nil)

// SaveRecord 保存舌诊记录
func (r *PostgresTongueRecordsRepository) SaveRecord(ctx context.Context, record *domain.TongueRecord) error {
	if record.RecordID == "" {
		return fmt.Errorf("record_id is required")
	}

	query := `
		INSERT INTO tongue_records (
			record_id, user_id, result_id,
			tongue_color, tongue_shape, coating_color, coating_thickness,
			constitution_tendency, confidence, scores, advice, created_at
		) VALUES ($1, NULLIF($2, ''), NULLIF($3, '')::uuid, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		record.RecordID,
		record.UserID,
		record.ResultID,
		record.TongueColor,
		record.TongueShape,
		record.CoatingColor,
		record.CoatingThickness,
		record.ConstitutionTendency,
		record.Confidence,
		rawOrEmptyObject(record.Scores),
		rawOrEmptyObject(record.Advice),
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert tongue record: %w", err)
	}
	return nil
}

// ListRecordsByUser 按用户查询最近的舌诊记录，新的在前
func (r *PostgresTongueRecordsRepository) ListRecordsByUser(ctx context.Context, userID string, limit int) ([]*domain.TongueRecord, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT
			record_id::text,
			COALESCE(user_id, '') AS user_id,
			COALESCE(result_id::text, '') AS result_id,
			tongue_color, tongue_shape, coating_color, coating_thickness,
			constitution_tendency,
			confidence,
			COALESCE(scores, '{}'::jsonb) AS scores,
			COALESCE(advice, '{}'::jsonb) AS advice,
			created_at
		FROM tongue_records
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list tongue records: %w", err)
	}
	defer rows.Close()

	var records []*domain.TongueRecord
	for rows.Next() {
		var record domain.TongueRecord
		var scores, advice json.RawMessage
		if err := rows.Scan(
			&record.RecordID,
			&record.UserID,
			&record.ResultID,
			&record.TongueColor,
			&record.TongueShape,
			&record.CoatingColor,
			&record.CoatingThickness,
			&record.ConstitutionTendency,
			&record.Confidence,
			&scores,
			&advice,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tongue record: %w", err)
		}
		record.Scores = scores
		record.Advice = advice
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tongue records: %w", err)
	}
	return records, nil
}
