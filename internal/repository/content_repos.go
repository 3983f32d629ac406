package repository

import (
	"context"

	"tcmcare-data/internal/domain"
)

// ExerciseFilters 运动列表过滤条件
type ExerciseFilters struct {
	ExerciseType string
	Difficulty   string
	Constitution string // 体质代码，匹配 target_constitutions
	Search       string // 名称/功效模糊搜索
}

// ExercisesRepository 运动/功法库接口
type ExercisesRepository interface {
	ListExercises(ctx context.Context, filters ExerciseFilters, page, size int) ([]*domain.Exercise, int, error)
	GetExercise(ctx context.Context, exerciseID int) (*domain.Exercise, error)
	RecommendForConstitution(ctx context.Context, constitution string, limit int) ([]*domain.Exercise, error)
	IncrementViewCount(ctx context.Context, exerciseID int) error
	InsertExercise(ctx context.Context, exercise *domain.Exercise) (int, error)
}

// CourseFilters 课程列表过滤条件
type CourseFilters struct {
	Category     string
	ContentType  string
	Constitution string
	Season       string
	Search       string
}

// CoursesRepository 养生课程接口
type CoursesRepository interface {
	ListCourses(ctx context.Context, filters CourseFilters, page, size int) ([]*domain.Course, int, error)
	GetCourse(ctx context.Context, courseID int) (*domain.Course, error)
	ListCategories(ctx context.Context) ([]string, error)
	RecommendForConstitution(ctx context.Context, constitution string, limit int) ([]*domain.Course, error)
	IncrementViewCount(ctx context.Context, courseID int) error
	InsertCourse(ctx context.Context, course *domain.Course) (int, error)
}

// RoutinesRepository 起居作息方案接口
type RoutinesRepository interface {
	ListRoutines(ctx context.Context, page, size int) ([]*domain.DailyRoutine, int, error)
	GetRoutineByConstitution(ctx context.Context, constitution string) (*domain.DailyRoutine, error)
	InsertRoutine(ctx context.Context, routine *domain.DailyRoutine) (int, error)
}
