package httpapi

import (
	"net/http"
	"strings"

	"tcmcare-data/internal/assessment"
	"tcmcare-data/internal/domain"
	"tcmcare-data/internal/service"

	"go.uber.org/zap"
)

// ConstitutionHandler 体质测试 Handler
type ConstitutionHandler struct {
	svc    *service.ConstitutionService
	logger *zap.Logger
}

// NewConstitutionHandler 创建体质测试 Handler
func NewConstitutionHandler(svc *service.ConstitutionService, logger *zap.Logger) *ConstitutionHandler {
	return &ConstitutionHandler{svc: svc, logger: logger}
}

// SubmitTest 提交问卷
// POST /api/v1/constitution/test/submit
func (h *ConstitutionHandler) SubmitTest(w http.ResponseWriter, r *http.Request) {
	var req service.SubmitTestRequest
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, FailWithCode(ResultInvalid, "invalid request body"))
		return
	}
	req.IPAddress = clientIP(r)
	req.UserAgent = r.UserAgent()
	if req.Platform == "" {
		req.Platform = "unknown"
	}

	resp, err := h.svc.SubmitTest(r.Context(), req)
	if err != nil {
		h.logger.Warn("SubmitTest failed", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp))
}

// GetResult 查询测试结果
// GET /api/v1/constitution/result/{id}
func (h *ConstitutionHandler) GetResult(w http.ResponseWriter, r *http.Request, resultID string) {
	resp, err := h.svc.GetResult(r.Context(), resultID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp))
}

// ListResults 查询历史结果
// GET /api/v1/constitution/results?user_id=xx&limit=10
func (h *ConstitutionHandler) ListResults(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, FailWithCode(ResultInvalid, "user_id is required"))
		return
	}
	limit := parseInt(r.URL.Query().Get("limit"), 10)

	summaries, err := h.svc.ListResults(r.Context(), userID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(summaries))
}

// Questions 问卷定义
// GET /api/v1/constitution/questions
func (h *ConstitutionHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Ok(h.svc.Questions()))
}

// RecommendFood 按体质饮食推荐
// GET /api/v1/constitution/recommend/food?constitution=qi_deficiency&limit=10
func (h *ConstitutionHandler) RecommendFood(w http.ResponseWriter, r *http.Request) {
	constitution := r.URL.Query().Get("constitution")
	if constitution == "" {
		writeJSON(w, http.StatusBadRequest, FailWithCode(ResultInvalid, "constitution is required"))
		return
	}
	limit := parseInt(r.URL.Query().Get("limit"), 10)

	rec, err := h.svc.RecommendFood(r.Context(), constitution, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(rec))
}

// Info 体质静态资料
// GET /api/v1/constitution/info          → 全部九种
// GET /api/v1/constitution/info/{code}   → 单个
func (h *ConstitutionHandler) Info(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimPrefix(r.URL.Path, "/api/v1/constitution/info")
	code = strings.Trim(code, "/")

	if code == "" {
		infos := make([]domain.ConstitutionInfo, 0, len(assessment.AllConstitutionTypes()))
		for _, t := range assessment.AllConstitutionTypes() {
			if info, ok := domain.InfoFor(t.Code()); ok {
				infos = append(infos, info)
			}
		}
		writeJSON(w, http.StatusOK, Ok(infos))
		return
	}

	info, ok := domain.InfoFor(code)
	if !ok {
		writeJSON(w, http.StatusNotFound, FailWithCode(ResultNotFound, "unknown constitution: "+code))
		return
	}
	writeJSON(w, http.StatusOK, Ok(info))
}
