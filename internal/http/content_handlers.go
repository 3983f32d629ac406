package httpapi

import (
	"net/http"

	"tcmcare-data/internal/repository"
	"tcmcare-data/internal/service"

	"go.uber.org/zap"
)

// ContentHandler 运动/课程/作息内容 Handler
type ContentHandler struct {
	svc    *service.ContentService
	logger *zap.Logger
}

// NewContentHandler 创建内容 Handler
func NewContentHandler(svc *service.ContentService, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{svc: svc, logger: logger}
}

// ListExercises 运动列表
// GET /api/v1/exercises?type=&difficulty=&constitution=&search=&page=1&size=20
func (h *ContentHandler) ListExercises(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := repository.ExerciseFilters{
		ExerciseType: q.Get("type"),
		Difficulty:   q.Get("difficulty"),
		Constitution: q.Get("constitution"),
		Search:       q.Get("search"),
	}
	paged, err := h.svc.ListExercises(r.Context(), filters, parseInt(q.Get("page"), 1), parseInt(q.Get("size"), 20))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(paged))
}

// GetExercise 运动详情
// GET /api/v1/exercises/{id}
func (h *ContentHandler) GetExercise(w http.ResponseWriter, r *http.Request, id int) {
	ex, err := h.svc.GetExercise(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(ex))
}

// ExerciseTypes 运动类型字典
// GET /api/v1/exercises/types
func (h *ContentHandler) ExerciseTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Ok(h.svc.ExerciseTypes()))
}

// RecommendExercises 按体质推荐运动
// GET /api/v1/exercises/recommend?constitution=qi_deficiency&limit=10
func (h *ContentHandler) RecommendExercises(w http.ResponseWriter, r *http.Request) {
	constitution := r.URL.Query().Get("constitution")
	if constitution == "" {
		writeJSON(w, http.StatusBadRequest, FailWithCode(ResultInvalid, "constitution is required"))
		return
	}
	exercises, err := h.svc.RecommendExercises(r.Context(), constitution, parseInt(r.URL.Query().Get("limit"), 10))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(exercises))
}

// DailyPlan 一日运动编排
// GET /api/v1/exercises/daily?constitution=qi_deficiency
func (h *ContentHandler) DailyPlan(w http.ResponseWriter, r *http.Request) {
	constitution := r.URL.Query().Get("constitution")
	if constitution == "" {
		writeJSON(w, http.StatusBadRequest, FailWithCode(ResultInvalid, "constitution is required"))
		return
	}
	plan, err := h.svc.DailyPlan(r.Context(), constitution)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(plan))
}

// WeeklyPlan 按周推进的运动计划
// GET /api/v1/exercises/plan?constitution=qi_deficiency&week=1
func (h *ContentHandler) WeeklyPlan(w http.ResponseWriter, r *http.Request) {
	constitution := r.URL.Query().Get("constitution")
	if constitution == "" {
		writeJSON(w, http.StatusBadRequest, FailWithCode(ResultInvalid, "constitution is required"))
		return
	}
	plan, err := h.svc.WeeklyPlan(r.Context(), constitution, parseInt(r.URL.Query().Get("week"), 1))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(plan))
}

// ListCourses 课程列表
// GET /api/v1/courses?category=&content_type=&constitution=&season=&search=&page=1&size=20
func (h *ContentHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := repository.CourseFilters{
		Category:     q.Get("category"),
		ContentType:  q.Get("content_type"),
		Constitution: q.Get("constitution"),
		Season:       q.Get("season"),
		Search:       q.Get("search"),
	}
	paged, err := h.svc.ListCourses(r.Context(), filters, parseInt(q.Get("page"), 1), parseInt(q.Get("size"), 20))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(paged))
}

// GetCourse 课程详情
// GET /api/v1/courses/{id}
func (h *ContentHandler) GetCourse(w http.ResponseWriter, r *http.Request, id int) {
	c, err := h.svc.GetCourse(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(c))
}

// CourseCategories 课程分类
// GET /api/v1/courses/categories
func (h *ContentHandler) CourseCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.CourseCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(categories))
}

// RecommendCourses 按体质推荐课程
// GET /api/v1/courses/recommend?constitution=qi_deficiency&limit=10
func (h *ContentHandler) RecommendCourses(w http.ResponseWriter, r *http.Request) {
	constitution := r.URL.Query().Get("constitution")
	if constitution == "" {
		writeJSON(w, http.StatusBadRequest, FailWithCode(ResultInvalid, "constitution is required"))
		return
	}
	courses, err := h.svc.RecommendCourses(r.Context(), constitution, parseInt(r.URL.Query().Get("limit"), 10))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(courses))
}

// CoursesBySeason 按季节查询课程
// GET /api/v1/courses/season?season=summer&page=1&size=20
func (h *ContentHandler) CoursesBySeason(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	season := q.Get("season")
	if season == "" {
		writeJSON(w, http.StatusBadRequest, FailWithCode(ResultInvalid, "season is required"))
		return
	}
	paged, err := h.svc.CoursesBySeason(r.Context(), season, parseInt(q.Get("page"), 1), parseInt(q.Get("size"), 20))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(paged))
}

// ListRoutines 作息方案列表
// GET /api/v1/routines?page=1&size=10
func (h *ContentHandler) ListRoutines(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	paged, err := h.svc.ListRoutines(r.Context(), parseInt(q.Get("page"), 1), parseInt(q.Get("size"), 10))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(paged))
}

// RoutineForConstitution 按体质取作息方案
// GET /api/v1/routines/recommend?constitution=qi_deficiency
func (h *ContentHandler) RoutineForConstitution(w http.ResponseWriter, r *http.Request) {
	constitution := r.URL.Query().Get("constitution")
	if constitution == "" {
		writeJSON(w, http.StatusBadRequest, FailWithCode(ResultInvalid, "constitution is required"))
		return
	}
	routine, err := h.svc.RoutineForConstitution(r.Context(), constitution)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(routine))
}
