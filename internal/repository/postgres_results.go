package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"tcmcare-data/internal/domain"
)

// PostgresResultsRepository 体质测试结果 Repository（Postgres 实现）
type PostgresResultsRepository struct {
	db *sql.DB
}

// NewPostgresResultsRepository 创建结果 Repository
func NewPostgresResultsRepository(db *sql.DB) *PostgresResultsRepository {
	return &PostgresResultsRepository{db: db}
}

// 确保实现了接口
var _ ResultsRepository = (*PostgresResultsRepository)(nil)

// SaveResult 保存测试结果；结果创建后不变更，不做 upsert
func (r *PostgresResultsRepository) SaveResult(ctx context.Context, result *domain.AssessmentResult) error {
	if result.ResultID == "" {
		return fmt.Errorf("result_id is required")
	}

	query := `
		INSERT INTO assessment_results (
			result_id, user_id, primary_constitution, primary_name,
			secondary, scores, reason_code, answers, schema_version,
			platform, ip_address, user_agent, created_at
		) VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), NULLIF($12, ''), $13)
	`
	_, err := r.db.ExecContext(ctx, query,
		result.ResultID,
		result.UserID,
		result.Primary,
		result.PrimaryName,
		rawOrEmptyArray(result.Secondary),
		rawOrEmptyObject(result.Scores),
		result.ReasonCode,
		rawOrEmptyArray(result.Answers),
		result.SchemaVersion,
		result.Platform,
		result.IPAddress,
		result.UserAgent,
		result.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert assessment result: %w", err)
	}
	return nil
}

// GetResult 按结果 ID 查询
func (r *PostgresResultsRepository) GetResult(ctx context.Context, resultID string) (*domain.AssessmentResult, error) {
	if resultID == "" {
		return nil, fmt.Errorf("result_id is required")
	}

	query := `
		SELECT
			result_id::text,
			COALESCE(user_id, '') AS user_id,
			primary_constitution,
			primary_name,
			COALESCE(secondary, '[]'::jsonb) AS secondary,
			COALESCE(scores, '{}'::jsonb) AS scores,
			reason_code,
			COALESCE(answers, '[]'::jsonb) AS answers,
			schema_version,
			COALESCE(platform, 'unknown') AS platform,
			COALESCE(ip_address, '') AS ip_address,
			COALESCE(user_agent, '') AS user_agent,
			created_at
		FROM assessment_results
		WHERE result_id = $1::uuid
	`

	var result domain.AssessmentResult
	var secondary, scores, answers json.RawMessage
	err := r.db.QueryRowContext(ctx, query, resultID).Scan(
		&result.ResultID,
		&result.UserID,
		&result.Primary,
		&result.PrimaryName,
		&secondary,
		&scores,
		&result.ReasonCode,
		&answers,
		&result.SchemaVersion,
		&result.Platform,
		&result.IPAddress,
		&result.UserAgent,
		&result.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("assessment result %s: %w", resultID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get assessment result: %w", err)
	}

	result.Secondary = secondary
	result.Scores = scores
	result.Answers = answers
	return &result, nil
}

// ListResultsByUser 按用户查询最近的测试结果，新的在前
func (r *PostgresResultsRepository) ListResultsByUser(ctx context.Context, userID string, limit int) ([]*domain.AssessmentResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT
			result_id::text,
			COALESCE(user_id, '') AS user_id,
			primary_constitution,
			primary_name,
			COALESCE(secondary, '[]'::jsonb) AS secondary,
			COALESCE(scores, '{}'::jsonb) AS scores,
			reason_code,
			COALESCE(answers, '[]'::jsonb) AS answers,
			schema_version,
			COALESCE(platform, 'unknown') AS platform,
			COALESCE(ip_address, '') AS ip_address,
			COALESCE(user_agent, '') AS user_agent,
			created_at
		FROM assessment_results
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessment results: %w", err)
	}
	defer rows.Close()

	var results []*domain.AssessmentResult
	for rows.Next() {
		var result domain.AssessmentResult
		var secondary, scores, answers json.RawMessage
		if err := rows.Scan(
			&result.ResultID,
			&result.UserID,
			&result.Primary,
			&result.PrimaryName,
			&secondary,
			&scores,
			&result.ReasonCode,
			&answers,
			&result.SchemaVersion,
			&result.Platform,
			&result.IPAddress,
			&result.UserAgent,
			&result.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan assessment result: %w", err)
		}
		result.Secondary = secondary
		result.Scores = scores
		result.Answers = answers
		results = append(results, &result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assessment results: %w", err)
	}
	return results, nil
}

// rawOrEmptyArray JSONB 数组字段兜底
func rawOrEmptyArray(raw json.RawMessage) []byte {
	if len(raw) == 0 {
		return []byte("[]")
	}
	return raw
}

// rawOrEmptyObject JSONB 对象字段兜底
func rawOrEmptyObject(raw json.RawMessage) []byte {
	if len(raw) == 0 {
		return []byte("{}")
	}
	return raw
}
