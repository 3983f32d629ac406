package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"tcmcare-data/internal/domain"
)

// MemoryExercisesRepository 内存运动库，种子数据兜底
type MemoryExercisesRepository struct {
	mu    sync.RWMutex
	items []domain.Exercise
}

// NewMemoryExercisesRepository 创建并载入种子运动
func NewMemoryExercisesRepository() *MemoryExercisesRepository {
	items := make([]domain.Exercise, len(domain.SeedExercises))
	copy(items, domain.SeedExercises)
	return &MemoryExercisesRepository{items: items}
}

var _ ExercisesRepository = (*MemoryExercisesRepository)(nil)

func (r *MemoryExercisesRepository) ListExercises(_ context.Context, filters ExerciseFilters, page, size int) ([]*domain.Exercise, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*domain.Exercise
	for i := range r.items {
		ex := r.items[i]
		if filters.ExerciseType != "" && ex.ExerciseType != filters.ExerciseType {
			continue
		}
		if filters.Difficulty != "" && ex.Difficulty != filters.Difficulty {
			continue
		}
		if filters.Constitution != "" && !containsString(ex.TargetConstitutions, filters.Constitution) {
			continue
		}
		if filters.Search != "" &&
			!strings.Contains(ex.Name, filters.Search) &&
			!strings.Contains(ex.Benefits, filters.Search) {
			continue
		}
		copied := ex
		matched = append(matched, &copied)
	}
	total := len(matched)
	lo, hi := paginate(total, page, size)
	return matched[lo:hi], total, nil
}

func (r *MemoryExercisesRepository) GetExercise(_ context.Context, exerciseID int) (*domain.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].ExerciseID == exerciseID {
			copied := r.items[i]
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("exercise %d: %w", exerciseID, ErrNotFound)
}

func (r *MemoryExercisesRepository) RecommendForConstitution(_ context.Context, constitution string, limit int) ([]*domain.Exercise, error) {
	if constitution == "" {
		return nil, fmt.Errorf("constitution is required")
	}
	if limit <= 0 {
		limit = 10
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var exercises []*domain.Exercise
	for i := range r.items {
		if len(exercises) >= limit {
			break
		}
		if containsString(r.items[i].TargetConstitutions, constitution) {
			copied := r.items[i]
			exercises = append(exercises, &copied)
		}
	}
	return exercises, nil
}

func (r *MemoryExercisesRepository) IncrementViewCount(_ context.Context, exerciseID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ExerciseID == exerciseID {
			r.items[i].ViewCount++
			return nil
		}
	}
	return fmt.Errorf("exercise %d: %w", exerciseID, ErrNotFound)
}

func (r *MemoryExercisesRepository) InsertExercise(_ context.Context, exercise *domain.Exercise) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for i := range r.items {
		if r.items[i].ExerciseID > maxID {
			maxID = r.items[i].ExerciseID
		}
	}
	copied := *exercise
	copied.ExerciseID = maxID + 1
	r.items = append(r.items, copied)
	return copied.ExerciseID, nil
}

// MemoryCoursesRepository 内存课程库，种子数据兜底
type MemoryCoursesRepository struct {
	mu    sync.RWMutex
	items []domain.Course
}

// NewMemoryCoursesRepository 创建并载入种子课程
func NewMemoryCoursesRepository() *MemoryCoursesRepository {
	items := make([]domain.Course, len(domain.SeedCourses))
	copy(items, domain.SeedCourses)
	return &MemoryCoursesRepository{items: items}
}

var _ CoursesRepository = (*MemoryCoursesRepository)(nil)

func (r *MemoryCoursesRepository) ListCourses(_ context.Context, filters CourseFilters, page, size int) ([]*domain.Course, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*domain.Course
	for i := range r.items {
		c := r.items[i]
		if filters.Category != "" && c.Category != filters.Category {
			continue
		}
		if filters.ContentType != "" && c.ContentType != filters.ContentType {
			continue
		}
		if filters.Constitution != "" && !containsString(c.SuitableConstitutions, filters.Constitution) {
			continue
		}
		if filters.Season != "" && !containsString(c.Seasons, filters.Season) {
			continue
		}
		if filters.Search != "" &&
			!strings.Contains(c.Title, filters.Search) &&
			!strings.Contains(c.Description, filters.Search) {
			continue
		}
		copied := c
		matched = append(matched, &copied)
	}
	total := len(matched)
	lo, hi := paginate(total, page, size)
	return matched[lo:hi], total, nil
}

func (r *MemoryCoursesRepository) GetCourse(_ context.Context, courseID int) (*domain.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].CourseID == courseID {
			copied := r.items[i]
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("course %d: %w", courseID, ErrNotFound)
}

func (r *MemoryCoursesRepository) ListCategories(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var categories []string
	for i := range r.items {
		c := r.items[i].Category
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *MemoryCoursesRepository) RecommendForConstitution(_ context.Context, constitution string, limit int) ([]*domain.Course, error) {
	if constitution == "" {
		return nil, fmt.Errorf("constitution is required")
	}
	if limit <= 0 {
		limit = 10
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var courses []*domain.Course
	for i := range r.items {
		if len(courses) >= limit {
			break
		}
		if containsString(r.items[i].SuitableConstitutions, constitution) {
			copied := r.items[i]
			courses = append(courses, &copied)
		}
	}
	return courses, nil
}

func (r *MemoryCoursesRepository) IncrementViewCount(_ context.Context, courseID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].CourseID == courseID {
			r.items[i].ViewCount++
			return nil
		}
	}
	return fmt.Errorf("course %d: %w", courseID, ErrNotFound)
}

func (r *MemoryCoursesRepository) InsertCourse(_ context.Context, course *domain.Course) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for i := range r.items {
		if r.items[i].CourseID > maxID {
			maxID = r.items[i].CourseID
		}
	}
	copied := *course
	copied.CourseID = maxID + 1
	r.items = append(r.items, copied)
	return copied.CourseID, nil
}

// MemoryRoutinesRepository 内存作息方案库，种子数据兜底
type MemoryRoutinesRepository struct {
	mu    sync.RWMutex
	items []domain.DailyRoutine
}

// NewMemoryRoutinesRepository 创建并载入种子作息方案
func NewMemoryRoutinesRepository() *MemoryRoutinesRepository {
	items := make([]domain.DailyRoutine, len(domain.SeedRoutines))
	copy(items, domain.SeedRoutines)
	return &MemoryRoutinesRepository{items: items}
}

var _ RoutinesRepository = (*MemoryRoutinesRepository)(nil)

func (r *MemoryRoutinesRepository) ListRoutines(_ context.Context, page, size int) ([]*domain.DailyRoutine, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var all []*domain.DailyRoutine
	for i := range r.items {
		copied := r.items[i]
		all = append(all, &copied)
	}
	total := len(all)
	lo, hi := paginate(total, page, size)
	return all[lo:hi], total, nil
}

func (r *MemoryRoutinesRepository) GetRoutineByConstitution(_ context.Context, constitution string) (*domain.DailyRoutine, error) {
	if constitution == "" {
		return nil, fmt.Errorf("constitution is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if containsString(r.items[i].TargetConstitutions, constitution) {
			copied := r.items[i]
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("routine for %s: %w", constitution, ErrNotFound)
}

func (r *MemoryRoutinesRepository) InsertRoutine(_ context.Context, routine *domain.DailyRoutine) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for i := range r.items {
		if r.items[i].RoutineID > maxID {
			maxID = r.items[i].RoutineID
		}
	}
	copied := *routine
	copied.RoutineID = maxID + 1
	r.items = append(r.items, copied)
	return copied.RoutineID, nil
}
