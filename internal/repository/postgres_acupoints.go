package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"tcmcare-data/internal/domain"
)

// PostgresAcupointsRepository 穴位目录 Repository（Postgres 实现）
type PostgresAcupointsRepository struct {
	db *sql.DB
}

// NewPostgresAcupointsRepository 创建穴位 Repository
func NewPostgresAcupointsRepository(db *sql.DB) *PostgresAcupointsRepository {
	return &PostgresAcupointsRepository{db: db}
}

var _ AcupointsRepository = (*PostgresAcupointsRepository)(nil)

const acupointColumns = `
	acupoint_id, name,
	COALESCE(pinyin, '') AS pinyin,
	COALESCE(code, '') AS code,
	COALESCE(meridian, '') AS meridian,
	COALESCE(body_part, '') AS body_part,
	COALESCE(location, '') AS location,
	COALESCE(functions, '') AS functions,
	COALESCE(indications, '') AS indications,
	COALESCE(technique, '') AS technique,
	COALESCE(suitable_constitutions, '[]'::jsonb) AS suitable_constitutions,
	COALESCE(image_url, '') AS image_url`

func scanAcupoint(scanner interface{ Scan(...any) error }) (*domain.Acupoint, error) {
	var ap domain.Acupoint
	var suitable []byte
	err := scanner.Scan(
		&ap.AcupointID,
		&ap.Name,
		&ap.Pinyin,
		&ap.Code,
		&ap.Meridian,
		&ap.BodyPart,
		&ap.Location,
		&ap.Functions,
		&ap.Indications,
		&ap.Technique,
		&suitable,
		&ap.ImageURL,
	)
	if err != nil {
		return nil, err
	}
	ap.SuitableConstitutions = scanStrings(suitable)
	return &ap, nil
}

// ListAcupoints 分页查询穴位列表
func (r *PostgresAcupointsRepository) ListAcupoints(ctx context.Context, filters AcupointFilters, page, size int) ([]*domain.Acupoint, int, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}

	where := []string{"1=1"}
	var args []any
	if filters.Meridian != "" {
		args = append(args, filters.Meridian)
		where = append(where, fmt.Sprintf("meridian = $%d", len(args)))
	}
	if filters.BodyPart != "" {
		args = append(args, filters.BodyPart)
		where = append(where, fmt.Sprintf("body_part = $%d", len(args)))
	}
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		where = append(where, fmt.Sprintf("(name LIKE $%d OR pinyin ILIKE $%d OR code ILIKE $%d)", len(args), len(args), len(args)))
	}
	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM acupoints WHERE " + whereClause
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count acupoints: %w", err)
	}

	args = append(args, size, (page-1)*size)
	listQuery := fmt.Sprintf(
		"SELECT %s FROM acupoints WHERE %s ORDER BY acupoint_id LIMIT $%d OFFSET $%d",
		acupointColumns, whereClause, len(args)-1, len(args),
	)
	rows, err := r.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list acupoints: %w", err)
	}
	defer rows.Close()

	var acupoints []*domain.Acupoint
	for rows.Next() {
		ap, err := scanAcupoint(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan acupoint: %w", err)
		}
		acupoints = append(acupoints, ap)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate acupoints: %w", err)
	}
	return acupoints, total, nil
}

// GetAcupoint 按 ID 查询穴位
func (r *PostgresAcupointsRepository) GetAcupoint(ctx context.Context, acupointID int) (*domain.Acupoint, error) {
	query := fmt.Sprintf("SELECT %s FROM acupoints WHERE acupoint_id = $1", acupointColumns)
	ap, err := scanAcupoint(r.db.QueryRowContext(ctx, query, acupointID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("acupoint %d: %w", acupointID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get acupoint: %w", err)
	}
	return ap, nil
}

// RecommendForConstitution 按体质推荐穴位
func (r *PostgresAcupointsRepository) RecommendForConstitution(ctx context.Context, constitution string, limit int) ([]*domain.Acupoint, error) {
	if constitution == "" {
		return nil, fmt.Errorf("constitution is required")
	}
	if limit <= 0 {
		limit = 10
	}

	query := fmt.Sprintf(
		"SELECT %s FROM acupoints WHERE suitable_constitutions ? $1 ORDER BY acupoint_id LIMIT $2",
		acupointColumns,
	)
	rows, err := r.db.QueryContext(ctx, query, constitution, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to recommend acupoints: %w", err)
	}
	defer rows.Close()

	var acupoints []*domain.Acupoint
	for rows.Next() {
		ap, err := scanAcupoint(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan acupoint: %w", err)
		}
		acupoints = append(acupoints, ap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate acupoints: %w", err)
	}
	return acupoints, nil
}

// InsertAcupoint 新增穴位（seed/Excel 导入用）
func (r *PostgresAcupointsRepository) InsertAcupoint(ctx context.Context, acupoint *domain.Acupoint) (int, error) {
	if acupoint.Name == "" {
		return 0, fmt.Errorf("name is required")
	}

	var id int
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO acupoints (
			name, pinyin, code, meridian, body_part,
			location, functions, indications, technique,
			suitable_constitutions, image_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING acupoint_id
	`,
		acupoint.Name,
		acupoint.Pinyin,
		acupoint.Code,
		acupoint.Meridian,
		acupoint.BodyPart,
		acupoint.Location,
		acupoint.Functions,
		acupoint.Indications,
		acupoint.Technique,
		jsonStrings(acupoint.SuitableConstitutions),
		acupoint.ImageURL,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert acupoint: %w", err)
	}
	return id, nil
}
