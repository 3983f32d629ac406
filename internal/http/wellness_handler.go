package httpapi

import (
	"net/http"

	"tcmcare-data/internal/service"

	"go.uber.org/zap"
)

// WellnessHandler 四季养生 Handler
type WellnessHandler struct {
	svc    *service.WellnessService
	logger *zap.Logger
}

// NewWellnessHandler 创建养生 Handler
func NewWellnessHandler(svc *service.WellnessService, logger *zap.Logger) *WellnessHandler {
	return &WellnessHandler{svc: svc, logger: logger}
}

// SeasonPlan 季节养生方案
// GET /api/v1/wellness/seasonal?season=spring（缺省取当前季节）
func (h *WellnessHandler) SeasonPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.svc.SeasonPlan(r.Context(), r.URL.Query().Get("season"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, FailWithCode(ResultInvalid, err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(plan))
}

// FoodPairing 食物搭配查询
// GET /api/v1/wellness/food-pairing?food_a=螃蟹&food_b=柿子
func (h *WellnessHandler) FoodPairing(w http.ResponseWriter, r *http.Request) {
	foodA := r.URL.Query().Get("food_a")
	foodB := r.URL.Query().Get("food_b")
	if foodA == "" || foodB == "" {
		writeJSON(w, http.StatusBadRequest, FailWithCode(ResultInvalid, "food_a and food_b are required"))
		return
	}

	resp, err := h.svc.CheckFoodPairing(r.Context(), foodA, foodB)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp))
}

// RecommendSeasonal 当季推荐
// GET /api/v1/wellness/recommend?constitution=qi_deficiency&limit=5
func (h *WellnessHandler) RecommendSeasonal(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.RecommendSeasonal(r.Context(),
		r.URL.Query().Get("constitution"),
		parseInt(r.URL.Query().Get("limit"), 5))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(rec))
}
