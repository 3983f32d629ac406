package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Router 使用标准库 http.ServeMux（避免引入第三方路由依赖）
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

// HandleHandler 支持 http.Handler 接口（用于 pprof 等）
func (r *Router) HandleHandler(pattern string, h http.Handler) {
	r.mux.Handle(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func methodOnly(method string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != method {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h(w, req)
	}
}

// RegisterConstitutionRoutes 体质测试路由
func (r *Router) RegisterConstitutionRoutes(h *ConstitutionHandler) {
	r.Handle("/api/v1/constitution/test/submit", methodOnly(http.MethodPost, h.SubmitTest))
	r.Handle("/api/v1/constitution/questions", methodOnly(http.MethodGet, h.Questions))
	r.Handle("/api/v1/constitution/results", methodOnly(http.MethodGet, h.ListResults))
	r.Handle("/api/v1/constitution/recommend/food", methodOnly(http.MethodGet, h.RecommendFood))
	r.Handle("/api/v1/constitution/info", methodOnly(http.MethodGet, h.Info))
	r.Handle("/api/v1/constitution/info/", methodOnly(http.MethodGet, h.Info))

	// result/{id}
	r.Handle("/api/v1/constitution/result/", methodOnly(http.MethodGet, func(w http.ResponseWriter, req *http.Request) {
		id := strings.TrimPrefix(req.URL.Path, "/api/v1/constitution/result/")
		if id == "" || strings.Contains(id, "/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.GetResult(w, req, id)
	}))
}

// RegisterTongueRoutes 舌诊路由
func (r *Router) RegisterTongueRoutes(h *TongueHandler) {
	r.Handle("/api/v1/tongue/analyze", methodOnly(http.MethodPost, h.Analyze))
	r.Handle("/api/v1/tongue/options", methodOnly(http.MethodGet, h.Options))
	r.Handle("/api/v1/tongue/records", methodOnly(http.MethodGet, h.Records))
	r.Handle("/api/v1/tongue/compare", methodOnly(http.MethodPost, h.Compare))
}

// RegisterCatalogRoutes 食材/食谱/穴位目录路由
func (r *Router) RegisterCatalogRoutes(h *CatalogHandler) {
	r.Handle("/api/v1/ingredients", methodOnly(http.MethodGet, h.ListIngredients))
	r.Handle("/api/v1/ingredients/categories", methodOnly(http.MethodGet, h.IngredientCategories))
	r.Handle("/api/v1/ingredients/", methodOnly(http.MethodGet, func(w http.ResponseWriter, req *http.Request) {
		id, ok := pathID(req.URL.Path, "/api/v1/ingredients")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.GetIngredient(w, req, id)
	}))

	r.Handle("/api/v1/recipes", methodOnly(http.MethodGet, h.ListRecipes))
	r.Handle("/api/v1/recipes/recommend", methodOnly(http.MethodGet, h.RecommendRecipes))
	r.Handle("/api/v1/recipes/", methodOnly(http.MethodGet, func(w http.ResponseWriter, req *http.Request) {
		id, ok := pathID(req.URL.Path, "/api/v1/recipes")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.GetRecipe(w, req, id)
	}))

	r.Handle("/api/v1/acupoints", methodOnly(http.MethodGet, h.ListAcupoints))
	r.Handle("/api/v1/acupoints/recommend", methodOnly(http.MethodGet, h.RecommendAcupoints))
	r.Handle("/api/v1/acupoints/", methodOnly(http.MethodGet, func(w http.ResponseWriter, req *http.Request) {
		id, ok := pathID(req.URL.Path, "/api/v1/acupoints")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.GetAcupoint(w, req, id)
	}))
}

// RegisterContentRoutes 运动/课程/作息内容路由
func (r *Router) RegisterContentRoutes(h *ContentHandler) {
	r.Handle("/api/v1/exercises", methodOnly(http.MethodGet, h.ListExercises))
	r.Handle("/api/v1/exercises/types", methodOnly(http.MethodGet, h.ExerciseTypes))
	r.Handle("/api/v1/exercises/recommend", methodOnly(http.MethodGet, h.RecommendExercises))
	r.Handle("/api/v1/exercises/daily", methodOnly(http.MethodGet, h.DailyPlan))
	r.Handle("/api/v1/exercises/plan", methodOnly(http.MethodGet, h.WeeklyPlan))
	r.Handle("/api/v1/exercises/", methodOnly(http.MethodGet, func(w http.ResponseWriter, req *http.Request) {
		id, ok := pathID(req.URL.Path, "/api/v1/exercises")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.GetExercise(w, req, id)
	}))

	r.Handle("/api/v1/courses", methodOnly(http.MethodGet, h.ListCourses))
	r.Handle("/api/v1/courses/categories", methodOnly(http.MethodGet, h.CourseCategories))
	r.Handle("/api/v1/courses/recommend", methodOnly(http.MethodGet, h.RecommendCourses))
	r.Handle("/api/v1/courses/season", methodOnly(http.MethodGet, h.CoursesBySeason))
	r.Handle("/api/v1/courses/", methodOnly(http.MethodGet, func(w http.ResponseWriter, req *http.Request) {
		id, ok := pathID(req.URL.Path, "/api/v1/courses")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.GetCourse(w, req, id)
	}))

	r.Handle("/api/v1/routines", methodOnly(http.MethodGet, h.ListRoutines))
	r.Handle("/api/v1/routines/recommend", methodOnly(http.MethodGet, h.RoutineForConstitution))
}

// RegisterCheckinRoutes 养生打卡路由
func (r *Router) RegisterCheckinRoutes(h *CheckinHandler) {
	r.Handle("/api/v1/checkins", methodOnly(http.MethodPost, h.CheckDay))
	r.Handle("/api/v1/checkins/week", methodOnly(http.MethodGet, h.CurrentWeek))
	r.Handle("/api/v1/checkins/history", methodOnly(http.MethodGet, h.History))
	r.Handle("/api/v1/checkins/streak", methodOnly(http.MethodGet, h.Streak))
	r.Handle("/api/v1/checkins/export", methodOnly(http.MethodGet, h.Export))
}

// RegisterWellnessRoutes 四季养生路由
func (r *Router) RegisterWellnessRoutes(h *WellnessHandler) {
	r.Handle("/api/v1/wellness/seasonal", methodOnly(http.MethodGet, h.SeasonPlan))
	r.Handle("/api/v1/wellness/food-pairing", methodOnly(http.MethodGet, h.FoodPairing))
	r.Handle("/api/v1/wellness/recommend", methodOnly(http.MethodGet, h.RecommendSeasonal))
}

// RegisterHealthRoutes 健康检查路由
func (r *Router) RegisterHealthRoutes(h *HealthHandler) {
	r.Handle("/ping", methodOnly(http.MethodGet, h.Ping))
	r.Handle("/health", methodOnly(http.MethodGet, h.Health))
}
