package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"tcmcare-data/internal/domain"
)

// PostgresCoursesRepository 养生课程 Repository（Postgres 实现）
type PostgresCoursesRepository struct {
	db *sql.DB
}

// NewPostgresCoursesRepository 创建课程 Repository
func NewPostgresCoursesRepository(db *sql.DB) *PostgresCoursesRepository {
	return &PostgresCoursesRepository{db: db}
}

var _ CoursesRepository = (*PostgresCoursesRepository)(nil)

const courseColumns = `
	course_id, title,
	COALESCE(description, '') AS description,
	COALESCE(category, '') AS category,
	COALESCE(content_type, '') AS content_type,
	COALESCE(content_url, '') AS content_url,
	COALESCE(duration_minutes, 0) AS duration_minutes,
	COALESCE(author, '') AS author,
	COALESCE(author_title, '') AS author_title,
	COALESCE(cover_image, '') AS cover_image,
	COALESCE(suitable_constitutions, '[]'::jsonb) AS suitable_constitutions,
	COALESCE(seasons, '[]'::jsonb) AS seasons,
	COALESCE(view_count, 0) AS view_count`

func scanCourse(scanner interface{ Scan(...any) error }) (*domain.Course, error) {
	var c domain.Course
	var suitable, seasons []byte
	err := scanner.Scan(
		&c.CourseID,
		&c.Title,
		&c.Description,
		&c.Category,
		&c.ContentType,
		&c.ContentURL,
		&c.DurationMin,
		&c.Author,
		&c.AuthorTitle,
		&c.CoverImage,
		&suitable,
		&seasons,
		&c.ViewCount,
	)
	if err != nil {
		return nil, err
	}
	c.SuitableConstitutions = scanStrings(suitable)
	c.Seasons = scanStrings(seasons)
	return &c, nil
}

// ListCourses 分页查询课程列表
func (r *PostgresCoursesRepository) ListCourses(ctx context.Context, filters CourseFilters, page, size int) ([]*domain.Course, int, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}

	where := []string{"1=1"}
	var args []any
	if filters.Category != "" {
		args = append(args, filters.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if filters.ContentType != "" {
		args = append(args, filters.ContentType)
		where = append(where, fmt.Sprintf("content_type = $%d", len(args)))
	}
	if filters.Constitution != "" {
		args = append(args, filters.Constitution)
		where = append(where, fmt.Sprintf("suitable_constitutions ? $%d", len(args)))
	}
	if filters.Season != "" {
		args = append(args, filters.Season)
		where = append(where, fmt.Sprintf("seasons ? $%d", len(args)))
	}
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		where = append(where, fmt.Sprintf("(title LIKE $%d OR description LIKE $%d)", len(args), len(args)))
	}
	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM courses WHERE " + whereClause
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count courses: %w", err)
	}

	args = append(args, size, (page-1)*size)
	listQuery := fmt.Sprintf(
		"SELECT %s FROM courses WHERE %s ORDER BY course_id LIMIT $%d OFFSET $%d",
		courseColumns, whereClause, len(args)-1, len(args),
	)
	rows, err := r.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate courses: %w", err)
	}
	return courses, total, nil
}

// GetCourse 按 ID 查询课程
func (r *PostgresCoursesRepository) GetCourse(ctx context.Context, courseID int) (*domain.Course, error) {
	query := fmt.Sprintf("SELECT %s FROM courses WHERE course_id = $1", courseColumns)
	c, err := scanCourse(r.db.QueryRowContext(ctx, query, courseID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("course %d: %w", courseID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return c, nil
}

// ListCategories 课程分类列表
func (r *PostgresCoursesRepository) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT category FROM courses WHERE category IS NOT NULL AND category <> '' ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to list course categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return categories, nil
}

// RecommendForConstitution 按体质返回适合的课程
func (r *PostgresCoursesRepository) RecommendForConstitution(ctx context.Context, constitution string, limit int) ([]*domain.Course, error) {
	if constitution == "" {
		return nil, fmt.Errorf("constitution is required")
	}
	if limit <= 0 {
		limit = 10
	}

	query := fmt.Sprintf(
		"SELECT %s FROM courses WHERE suitable_constitutions ? $1 ORDER BY course_id LIMIT $2",
		courseColumns,
	)
	rows, err := r.db.QueryContext(ctx, query, constitution, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses by constitution: %w", err)
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate courses: %w", err)
	}
	return courses, nil
}

// IncrementViewCount 浏览计数 +1
func (r *PostgresCoursesRepository) IncrementViewCount(ctx context.Context, courseID int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE courses SET view_count = COALESCE(view_count, 0) + 1 WHERE course_id = $1`, courseID)
	if err != nil {
		return fmt.Errorf("failed to increment course view count: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check course update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("course %d: %w", courseID, ErrNotFound)
	}
	return nil
}

// InsertCourse 新增课程（seed/导入用）
func (r *PostgresCoursesRepository) InsertCourse(ctx context.Context, course *domain.Course) (int, error) {
	query := `
		INSERT INTO courses (
			title, description, category, content_type, content_url,
			duration_minutes, author, author_title, cover_image,
			suitable_constitutions, seasons, view_count
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING course_id
	`
	var id int
	err := r.db.QueryRowContext(ctx, query,
		course.Title,
		course.Description,
		course.Category,
		course.ContentType,
		course.ContentURL,
		course.DurationMin,
		course.Author,
		course.AuthorTitle,
		course.CoverImage,
		jsonStrings(course.SuitableConstitutions),
		jsonStrings(course.Seasons),
		course.ViewCount,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert course: %w", err)
	}
	return id, nil
}
