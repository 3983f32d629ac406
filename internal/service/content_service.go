package service

import (
	"context"

	"tcmcare-data/internal/assessment"
	"tcmcare-data/internal/domain"
	"tcmcare-data/internal/repository"

	"go.uber.org/zap"
)

// ContentService 运动功法/养生课程/起居作息内容服务
type ContentService struct {
	exercises repository.ExercisesRepository
	courses   repository.CoursesRepository
	routines  repository.RoutinesRepository
	assets    *AssetClient
	logger    *zap.Logger
}

// NewContentService 创建内容服务
func NewContentService(
	exercises repository.ExercisesRepository,
	courses repository.CoursesRepository,
	routines repository.RoutinesRepository,
	assets *AssetClient,
	logger *zap.Logger,
) *ContentService {
	return &ContentService{
		exercises: exercises,
		courses:   courses,
		routines:  routines,
		assets:    assets,
		logger:    logger,
	}
}

// PagedExercises 运动分页结果
type PagedExercises struct {
	Items []*domain.Exercise `json:"items"`
	Total int                `json:"total"`
	Page  int                `json:"page"`
	Size  int                `json:"size"`
}

// ListExercises 分页查询运动
func (s *ContentService) ListExercises(ctx context.Context, filters repository.ExerciseFilters, page, size int) (*PagedExercises, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	items, total, err := s.exercises.ListExercises(ctx, filters, page, size)
	if err != nil {
		return nil, err
	}
	for _, ex := range items {
		s.fillExerciseURLs(ex)
	}
	return &PagedExercises{Items: items, Total: total, Page: page, Size: size}, nil
}

// GetExercise 运动详情，每次查看计一次浏览
func (s *ContentService) GetExercise(ctx context.Context, id int) (*domain.Exercise, error) {
	ex, err := s.exercises.GetExercise(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.exercises.IncrementViewCount(ctx, id); err != nil {
		s.logger.Warn("increment exercise view count failed", zap.Int("exercise_id", id), zap.Error(err))
	} else {
		ex.ViewCount++
	}
	s.fillExerciseURLs(ex)
	return ex, nil
}

// ExerciseTypes 运动类型字典
func (s *ContentService) ExerciseTypes() []domain.ExerciseType {
	return domain.ExerciseTypes
}

// RecommendExercises 按体质推荐运动
func (s *ContentService) RecommendExercises(ctx context.Context, constitution string, limit int) ([]*domain.Exercise, error) {
	exercises, err := s.exercises.RecommendForConstitution(ctx, constitution, limit)
	if err != nil {
		return nil, err
	}
	for _, ex := range exercises {
		s.fillExerciseURLs(ex)
	}
	return exercises, nil
}

const planSlotLimit = 5

// DailyExercisePlan 按时段编排的一日运动方案
type DailyExercisePlan struct {
	Constitution string             `json:"constitution"`
	Morning      []*domain.Exercise `json:"morning"`
	Afternoon    []*domain.Exercise `json:"afternoon"`
	Evening      []*domain.Exercise `json:"evening"`
}

// DailyPlan 按体质生成一日运动编排
// 早：入门动作打底，八段锦/易筋经补充；午：进阶动作；
// 晚：高阶气功与呼吸法，太极/呼吸/气功类补充。每时段最多 5 项。
func (s *ContentService) DailyPlan(ctx context.Context, constitution string) (*DailyExercisePlan, error) {
	if _, err := assessment.ParseConstitution(constitution); err != nil {
		return nil, err
	}
	pool, err := s.exercises.RecommendForConstitution(ctx, constitution, 50)
	if err != nil {
		return nil, err
	}
	for _, ex := range pool {
		s.fillExerciseURLs(ex)
	}

	plan := &DailyExercisePlan{Constitution: constitution}
	inMorning := make(map[int]bool)
	inEvening := make(map[int]bool)

	for _, ex := range pool {
		switch ex.Difficulty {
		case "beginner":
			if len(plan.Morning) < planSlotLimit {
				plan.Morning = append(plan.Morning, ex)
				inMorning[ex.ExerciseID] = true
			}
		case "intermediate":
			if len(plan.Afternoon) < planSlotLimit {
				plan.Afternoon = append(plan.Afternoon, ex)
			}
		case "advanced":
			if (ex.ExerciseType == "qigong" || ex.ExerciseType == "breathing") && len(plan.Evening) < planSlotLimit {
				plan.Evening = append(plan.Evening, ex)
				inEvening[ex.ExerciseID] = true
			}
		}
	}
	for _, ex := range pool {
		switch ex.ExerciseType {
		case "baduanjin", "yijinjing":
			if !inMorning[ex.ExerciseID] && len(plan.Morning) < planSlotLimit {
				plan.Morning = append(plan.Morning, ex)
				inMorning[ex.ExerciseID] = true
			}
		case "tai_chi", "breathing", "qigong":
			if !inEvening[ex.ExerciseID] && len(plan.Evening) < planSlotLimit {
				plan.Evening = append(plan.Evening, ex)
				inEvening[ex.ExerciseID] = true
			}
		}
	}
	return plan, nil
}

// DayExercises 周计划中单日的安排
type DayExercises struct {
	Day       int                `json:"day"` // 1-7
	Exercises []*domain.Exercise `json:"exercises"`
}

// WeeklyExercisePlan 按周推进的运动计划
type WeeklyExercisePlan struct {
	Constitution string         `json:"constitution"`
	Week         int            `json:"week"`
	Days         []DayExercises `json:"days"`
}

// WeeklyPlan 按体质与周数生成七天计划
// 第 1 周只排入门动作，第 2 周入门+进阶混排，第 3 周起全量轮换；每天 3 项
func (s *ContentService) WeeklyPlan(ctx context.Context, constitution string, week int) (*WeeklyExercisePlan, error) {
	if _, err := assessment.ParseConstitution(constitution); err != nil {
		return nil, err
	}
	if week <= 0 {
		week = 1
	}
	all, err := s.exercises.RecommendForConstitution(ctx, constitution, 50)
	if err != nil {
		return nil, err
	}
	for _, ex := range all {
		s.fillExerciseURLs(ex)
	}

	var pool []*domain.Exercise
	switch {
	case week == 1:
		for _, ex := range all {
			if ex.Difficulty == "beginner" {
				pool = append(pool, ex)
			}
		}
	case week == 2:
		for _, ex := range all {
			if ex.Difficulty == "beginner" || ex.Difficulty == "intermediate" {
				pool = append(pool, ex)
			}
		}
	default:
		pool = all
	}

	plan := &WeeklyExercisePlan{Constitution: constitution, Week: week}
	for day := 0; day < 7; day++ {
		entry := DayExercises{Day: day + 1}
		if len(pool) > 0 {
			start := (day * 2) % len(pool)
			for j := 0; j < 3 && j < len(pool); j++ {
				entry.Exercises = append(entry.Exercises, pool[(start+j)%len(pool)])
			}
		}
		plan.Days = append(plan.Days, entry)
	}
	return plan, nil
}

// PagedCourses 课程分页结果
type PagedCourses struct {
	Items []*domain.Course `json:"items"`
	Total int              `json:"total"`
	Page  int              `json:"page"`
	Size  int              `json:"size"`
}

// ListCourses 分页查询课程
func (s *ContentService) ListCourses(ctx context.Context, filters repository.CourseFilters, page, size int) (*PagedCourses, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	items, total, err := s.courses.ListCourses(ctx, filters, page, size)
	if err != nil {
		return nil, err
	}
	for _, c := range items {
		s.fillCourseURLs(c)
	}
	return &PagedCourses{Items: items, Total: total, Page: page, Size: size}, nil
}

// GetCourse 课程详情，每次查看计一次浏览
func (s *ContentService) GetCourse(ctx context.Context, id int) (*domain.Course, error) {
	c, err := s.courses.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.courses.IncrementViewCount(ctx, id); err != nil {
		s.logger.Warn("increment course view count failed", zap.Int("course_id", id), zap.Error(err))
	} else {
		c.ViewCount++
	}
	s.fillCourseURLs(c)
	return c, nil
}

// CourseCategories 课程分类列表
func (s *ContentService) CourseCategories(ctx context.Context) ([]string, error) {
	return s.courses.ListCategories(ctx)
}

// RecommendCourses 按体质推荐课程
func (s *ContentService) RecommendCourses(ctx context.Context, constitution string, limit int) ([]*domain.Course, error) {
	courses, err := s.courses.RecommendForConstitution(ctx, constitution, limit)
	if err != nil {
		return nil, err
	}
	for _, c := range courses {
		s.fillCourseURLs(c)
	}
	return courses, nil
}

// CoursesBySeason 按季节查询课程
func (s *ContentService) CoursesBySeason(ctx context.Context, season string, page, size int) (*PagedCourses, error) {
	return s.ListCourses(ctx, repository.CourseFilters{Season: season}, page, size)
}

// PagedRoutines 作息方案分页结果
type PagedRoutines struct {
	Items []*domain.DailyRoutine `json:"items"`
	Total int                    `json:"total"`
	Page  int                    `json:"page"`
	Size  int                    `json:"size"`
}

// ListRoutines 分页查询作息方案
func (s *ContentService) ListRoutines(ctx context.Context, page, size int) (*PagedRoutines, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 10
	}
	items, total, err := s.routines.ListRoutines(ctx, page, size)
	if err != nil {
		return nil, err
	}
	return &PagedRoutines{Items: items, Total: total, Page: page, Size: size}, nil
}

// RoutineForConstitution 按体质取作息方案
func (s *ContentService) RoutineForConstitution(ctx context.Context, constitution string) (*domain.DailyRoutine, error) {
	if _, err := assessment.ParseConstitution(constitution); err != nil {
		return nil, err
	}
	return s.routines.GetRoutineByConstitution(ctx, constitution)
}

func (s *ContentService) fillExerciseURLs(ex *domain.Exercise) {
	ex.ImageURL = s.assets.PublicURL(ex.ImageURL)
	ex.VideoURL = s.assets.PublicURL(ex.VideoURL)
}

func (s *ContentService) fillCourseURLs(c *domain.Course) {
	c.CoverImage = s.assets.PublicURL(c.CoverImage)
	c.ContentURL = s.assets.PublicURL(c.ContentURL)
}
