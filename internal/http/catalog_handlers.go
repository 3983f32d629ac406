package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"tcmcare-data/internal/repository"
	"tcmcare-data/internal/service"

	"go.uber.org/zap"
)

// CatalogHandler 食材/食谱/穴位目录 Handler
type CatalogHandler struct {
	svc    *service.CatalogService
	logger *zap.Logger
}

// NewCatalogHandler 创建目录 Handler
func NewCatalogHandler(svc *service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, logger: logger}
}

// 路径末段解析资源 ID；非数字返回 false
func pathID(path, prefix string) (int, bool) {
	rest := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	if rest == "" || strings.Contains(rest, "/") {
		return 0, false
	}
	id, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ListIngredients 食材列表
// GET /api/v1/ingredients?category=&nature=&constitution=&search=&page=1&size=20
func (h *CatalogHandler) ListIngredients(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := repository.IngredientFilters{
		Category:     q.Get("category"),
		Nature:       q.Get("nature"),
		Constitution: q.Get("constitution"),
		Search:       q.Get("search"),
	}
	paged, err := h.svc.ListIngredients(r.Context(), filters, parseInt(q.Get("page"), 1), parseInt(q.Get("size"), 20))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(paged))
}

// GetIngredient 食材详情
// GET /api/v1/ingredients/{id}
func (h *CatalogHandler) GetIngredient(w http.ResponseWriter, r *http.Request, id int) {
	ing, err := h.svc.GetIngredient(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(ing))
}

// IngredientCategories 食材分类
// GET /api/v1/ingredients/categories
func (h *CatalogHandler) IngredientCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.IngredientCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(categories))
}

// ListRecipes 食谱列表
// GET /api/v1/recipes?type=&difficulty=&constitution=&search=&page=1&size=20
func (h *CatalogHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := repository.RecipeFilters{
		RecipeType:   q.Get("type"),
		Difficulty:   q.Get("difficulty"),
		Constitution: q.Get("constitution"),
		Search:       q.Get("search"),
	}
	paged, err := h.svc.ListRecipes(r.Context(), filters, parseInt(q.Get("page"), 1), parseInt(q.Get("size"), 20))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(paged))
}

// GetRecipe 食谱详情
// GET /api/v1/recipes/{id}
func (h *CatalogHandler) GetRecipe(w http.ResponseWriter, r *http.Request, id int) {
	rec, err := h.svc.GetRecipe(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(rec))
}

// RecommendRecipes 按体质推荐食谱
// GET /api/v1/recipes/recommend?constitution=qi_deficiency&limit=10
func (h *CatalogHandler) RecommendRecipes(w http.ResponseWriter, r *http.Request) {
	constitution := r.URL.Query().Get("constitution")
	if constitution == "" {
		writeJSON(w, http.StatusBadRequest, FailWithCode(ResultInvalid, "constitution is required"))
		return
	}
	recipes, err := h.svc.RecommendRecipes(r.Context(), constitution, parseInt(r.URL.Query().Get("limit"), 10))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(recipes))
}

// ListAcupoints 穴位列表
// GET /api/v1/acupoints?meridian=&body_part=&search=&page=1&size=20
func (h *CatalogHandler) ListAcupoints(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := repository.AcupointFilters{
		Meridian: q.Get("meridian"),
		BodyPart: q.Get("body_part"),
		Search:   q.Get("search"),
	}
	paged, err := h.svc.ListAcupoints(r.Context(), filters, parseInt(q.Get("page"), 1), parseInt(q.Get("size"), 20))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(paged))
}

// GetAcupoint 穴位详情
// GET /api/v1/acupoints/{id}
func (h *CatalogHandler) GetAcupoint(w http.ResponseWriter, r *http.Request, id int) {
	ap, err := h.svc.GetAcupoint(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(ap))
}

// RecommendAcupoints 按体质推荐穴位
// GET /api/v1/acupoints/recommend?constitution=qi_deficiency&limit=10
func (h *CatalogHandler) RecommendAcupoints(w http.ResponseWriter, r *http.Request) {
	constitution := r.URL.Query().Get("constitution")
	if constitution == "" {
		writeJSON(w, http.StatusBadRequest, FailWithCode(ResultInvalid, "constitution is required"))
		return
	}
	acupoints, err := h.svc.RecommendAcupoints(r.Context(), constitution, parseInt(r.URL.Query().Get("limit"), 10))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(acupoints))
}
