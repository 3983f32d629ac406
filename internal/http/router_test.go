package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tcmcare-data/internal/assessment"
	"tcmcare-data/internal/config"
	"tcmcare-data/internal/repository"
	"tcmcare-data/internal/service"
	"tcmcare-data/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestRouter 内存后端 + 全部路由，HTTP 层测试共用
func newTestRouter() *Router {
	logger := zap.NewNop()
	now := func() time.Time { return time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC) }
	newID := uuid.NewString

	results := repository.NewMemoryResultsRepository()
	records := repository.NewMemoryTongueRecordsRepository()
	ingredients := repository.NewMemoryIngredientsRepository()
	recipes := repository.NewMemoryRecipesRepository()
	acupoints := repository.NewMemoryAcupointsRepository()
	exercises := repository.NewMemoryExercisesRepository()
	courses := repository.NewMemoryCoursesRepository()
	routines := repository.NewMemoryRoutinesRepository()
	checkins := repository.NewMemoryCheckinsRepository()
	cache := store.NewMemoryKV()
	assets := service.NewAssetClient(config.AssetsConfig{}, logger)

	constitutionSvc := service.NewConstitutionService(results, ingredients, cache, logger, now, newID)
	tongueSvc := service.NewTongueService(records, results, logger, now, newID)
	catalogSvc := service.NewCatalogService(ingredients, recipes, acupoints, assets, logger)
	contentSvc := service.NewContentService(exercises, courses, routines, assets, logger)
	checkinSvc := service.NewCheckinService(checkins, logger, now, newID)
	wellnessSvc := service.NewWellnessService(ingredients, recipes, logger, now)

	router := NewRouter(logger)
	router.RegisterConstitutionRoutes(NewConstitutionHandler(constitutionSvc, logger))
	router.RegisterTongueRoutes(NewTongueHandler(tongueSvc, logger))
	router.RegisterCatalogRoutes(NewCatalogHandler(catalogSvc, logger))
	router.RegisterContentRoutes(NewContentHandler(contentSvc, logger))
	router.RegisterCheckinRoutes(NewCheckinHandler(checkinSvc, logger))
	router.RegisterWellnessRoutes(NewWellnessHandler(wellnessSvc, logger))
	router.RegisterHealthRoutes(NewHealthHandler(nil, cache, logger))
	return router
}

func doJSON(t *testing.T, router *Router, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]any
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	}
	return rec, envelope
}

func submitAnswers(t *testing.T, router *Router, userID string, answers []int) map[string]any {
	t.Helper()
	rec, envelope := doJSON(t, router, http.MethodPost, "/api/v1/constitution/test/submit", map[string]any{
		"user_id": userID,
		"answers": answers,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 0, envelope["code"])
	return envelope["data"].(map[string]any)
}

func peaceAnswers() []int {
	answers := make([]int, 30)
	for i, q := range assessment.CanonicalSchema().Questions {
		if q.Type == assessment.Peace {
			answers[i] = 5
		} else {
			answers[i] = 1
		}
	}
	return answers
}

func TestSubmitAndFetchResult(t *testing.T) {
	router := newTestRouter()

	data := submitAnswers(t, router, "u1", peaceAnswers())
	require.Equal(t, "peace", data["primary"])
	require.Equal(t, "peace_dominant", data["reason_code"])
	require.Equal(t, true, data["primary_is_peace"])
	resultID := data["result_id"].(string)
	require.NotEmpty(t, resultID)

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/v1/constitution/result/"+resultID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 0, envelope["code"])
	got := envelope["data"].(map[string]any)
	require.Equal(t, "peace", got["primary"])
	require.Equal(t, "平和质", got["primary_name"])
}

func TestSubmitValidationErrors(t *testing.T) {
	router := newTestRouter()

	// 29 题
	rec, envelope := doJSON(t, router, http.MethodPost, "/api/v1/constitution/test/submit", map[string]any{
		"answers": make([]int, 29),
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.EqualValues(t, ResultInvalid, envelope["code"])

	// 越界值
	bad := peaceAnswers()
	bad[3] = 9
	rec, envelope = doJSON(t, router, http.MethodPost, "/api/v1/constitution/test/submit", map[string]any{
		"answers": bad,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.EqualValues(t, ResultInvalid, envelope["code"])

	// 非整数
	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/constitution/test/submit", map[string]any{
		"answers": append([]any{"x"}, make([]any, 29)...),
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetResultNotFound(t *testing.T) {
	router := newTestRouter()

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/v1/constitution/result/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.EqualValues(t, ResultNotFound, envelope["code"])
}

func TestQuestionsEndpoint(t *testing.T) {
	router := newTestRouter()

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/v1/constitution/questions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := envelope["data"].(map[string]any)
	require.Len(t, data["questions"], 30)
}

func TestConstitutionInfoEndpoints(t *testing.T) {
	router := newTestRouter()

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/v1/constitution/info", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, envelope["data"], 9)

	rec, envelope = doJSON(t, router, http.MethodGet, "/api/v1/constitution/info/damp_heat", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	info := envelope["data"].(map[string]any)
	require.Equal(t, "湿热质", info["name"])

	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/constitution/info/unknown_type", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTongueAnalyzeAndCompare(t *testing.T) {
	router := newTestRouter()

	// 问卷判定气虚
	answers := make([]int, 30)
	for i, q := range assessment.CanonicalSchema().Questions {
		if q.Type == assessment.QiDeficiency {
			answers[i] = 5
		} else {
			answers[i] = 1
		}
	}
	data := submitAnswers(t, router, "u1", answers)
	require.Equal(t, "qi_deficiency", data["primary"])
	resultID := data["result_id"].(string)

	// 舌象分析（气虚典型舌象）
	rec, envelope := doJSON(t, router, http.MethodPost, "/api/v1/tongue/analyze", map[string]any{
		"user_id":   "u1",
		"result_id": resultID,
		"observation": map[string]string{
			"tongue_color":      "淡白",
			"tongue_shape":      "胖大",
			"coating_color":     "白苔",
			"coating_thickness": "薄苔",
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	analysis := envelope["data"].(map[string]any)
	require.Equal(t, "qi_deficiency", analysis["constitution"])
	require.InDelta(t, 1.0, analysis["confidence"].(float64), 0.001)
	comparison := analysis["comparison"].(map[string]any)
	require.Equal(t, true, comparison["is_consistent"])
	require.Equal(t, "consistent", comparison["message_key"])

	// 单独的 compare 接口（分歧）
	rec, envelope = doJSON(t, router, http.MethodPost, "/api/v1/tongue/compare", map[string]any{
		"result_id":           resultID,
		"tongue_constitution": "damp_heat",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	verdict := envelope["data"].(map[string]any)
	require.Equal(t, false, verdict["is_consistent"])
	require.Equal(t, "divergent", verdict["message_key"])
}

func TestTongueAnalyzeRejectsUnknownFeature(t *testing.T) {
	router := newTestRouter()

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/tongue/analyze", map[string]any{
		"observation": map[string]string{
			"tongue_color":      "绿",
			"tongue_shape":      "正常",
			"coating_color":     "白苔",
			"coating_thickness": "薄苔",
		},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIngredientEndpoints(t *testing.T) {
	router := newTestRouter()

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/v1/ingredients?page=1&size=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	paged := envelope["data"].(map[string]any)
	require.NotEmpty(t, paged["items"])

	rec, envelope = doJSON(t, router, http.MethodGet, "/api/v1/ingredients/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ing := envelope["data"].(map[string]any)
	require.Equal(t, "山药", ing["name"])

	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/ingredients/99999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec, envelope = doJSON(t, router, http.MethodGet, "/api/v1/ingredients/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, envelope["data"])
}

func TestRecommendEndpoints(t *testing.T) {
	router := newTestRouter()

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/v1/constitution/recommend/food?constitution=qi_deficiency", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	food := envelope["data"].(map[string]any)
	require.Equal(t, "气虚质", food["constitution_name"])

	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/recipes/recommend?constitution=qi_deficiency", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/acupoints/recommend?constitution=qi_deficiency", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// 未知体质
	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/constitution/recommend/food?constitution=bogus", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExerciseEndpoints(t *testing.T) {
	router := newTestRouter()

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/v1/exercises?page=1&size=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	paged := envelope["data"].(map[string]any)
	require.NotEmpty(t, paged["items"])

	rec, envelope = doJSON(t, router, http.MethodGet, "/api/v1/exercises/types", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, envelope["data"], 6)

	// 详情累计浏览量
	rec, envelope = doJSON(t, router, http.MethodGet, "/api/v1/exercises/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ex := envelope["data"].(map[string]any)
	require.EqualValues(t, 1, ex["view_count"])

	rec, envelope = doJSON(t, router, http.MethodGet, "/api/v1/exercises/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ex = envelope["data"].(map[string]any)
	require.EqualValues(t, 2, ex["view_count"])

	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/exercises/99999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/exercises/recommend?constitution=qi_deficiency", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestExercisePlanEndpoints(t *testing.T) {
	router := newTestRouter()

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/v1/exercises/daily?constitution=qi_deficiency", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	plan := envelope["data"].(map[string]any)
	require.Equal(t, "qi_deficiency", plan["constitution"])
	require.NotEmpty(t, plan["morning"])

	rec, envelope = doJSON(t, router, http.MethodGet, "/api/v1/exercises/plan?constitution=qi_deficiency&week=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	weekly := envelope["data"].(map[string]any)
	require.Len(t, weekly["days"], 7)

	// 未知体质
	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/exercises/daily?constitution=bogus", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCourseEndpoints(t *testing.T) {
	router := newTestRouter()

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/v1/courses", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	paged := envelope["data"].(map[string]any)
	require.NotEmpty(t, paged["items"])

	rec, envelope = doJSON(t, router, http.MethodGet, "/api/v1/courses/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, envelope["data"])

	rec, envelope = doJSON(t, router, http.MethodGet, "/api/v1/courses/season?season=summer", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	paged = envelope["data"].(map[string]any)
	require.NotEmpty(t, paged["items"])

	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/courses/recommend?constitution=yin_deficiency", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/courses/99999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutineEndpoints(t *testing.T) {
	router := newTestRouter()

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/v1/routines", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	paged := envelope["data"].(map[string]any)
	require.NotEmpty(t, paged["items"])

	rec, envelope = doJSON(t, router, http.MethodGet, "/api/v1/routines/recommend?constitution=qi_deficiency", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	routine := envelope["data"].(map[string]any)
	require.Contains(t, routine["target_constitutions"], "qi_deficiency")

	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/routines/recommend?constitution=bogus", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckinFlow(t *testing.T) {
	router := newTestRouter()

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/v1/checkins", map[string]any{
		"user_id":      "u1",
		"constitution": "peace",
		"day":          1,
		"diet":         true,
		"sleep":        true,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	week := envelope["data"].(map[string]any)
	require.Equal(t, "2025-03-10", week["week_start"])

	rec, envelope = doJSON(t, router, http.MethodGet, "/api/v1/checkins/week?user_id=u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	week = envelope["data"].(map[string]any)
	summary := week["summary"].(map[string]any)
	require.EqualValues(t, 1, summary["days_checked"])

	rec, envelope = doJSON(t, router, http.MethodGet, "/api/v1/checkins/streak?user_id=u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	streak := envelope["data"].(map[string]any)
	require.EqualValues(t, 1, streak["streak"])
}

func TestCheckinExport(t *testing.T) {
	router := newTestRouter()

	_, _ = doJSON(t, router, http.MethodPost, "/api/v1/checkins", map[string]any{
		"user_id": "u1", "day": 1, "diet": true,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/checkins/export?user_id=u1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")
	require.NotEmpty(t, rec.Body.Bytes())
}

func TestWellnessEndpoints(t *testing.T) {
	router := newTestRouter()

	rec, envelope := doJSON(t, router, http.MethodGet, "/api/v1/wellness/seasonal", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	plan := envelope["data"].(map[string]any)
	require.Equal(t, "spring", plan["season"]) // 测试时钟固定在 3 月

	rec, envelope = doJSON(t, router, http.MethodGet, "/api/v1/wellness/food-pairing?food_a=螃蟹&food_b=柿子", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	pairing := envelope["data"].(map[string]any)
	require.Equal(t, true, pairing["incompatible"])

	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/wellness/seasonal?season=rainy", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter()

	rec, envelope := doJSON(t, router, http.MethodGet, "/ping", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "pong", envelope["data"])

	rec, envelope = doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := envelope["data"].(map[string]any)
	require.Equal(t, "ok", health["status"])
	require.Equal(t, "memory", health["storage"])
	require.Equal(t, "0", health["cached_results"])

	// 提交一次后缓存里有一条结果
	submitAnswers(t, router, "u1", peaceAnswers())
	_, envelope = doJSON(t, router, http.MethodGet, "/health", nil)
	health = envelope["data"].(map[string]any)
	require.Equal(t, "1", health["cached_results"])
}

func TestMethodNotAllowed(t *testing.T) {
	router := newTestRouter()

	rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/constitution/test/submit", nil)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec, _ = doJSON(t, router, http.MethodDelete, "/api/v1/tongue/analyze", nil)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
