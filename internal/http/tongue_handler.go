package httpapi

import (
	"net/http"

	"tcmcare-data/internal/service"

	"go.uber.org/zap"
)

// TongueHandler 舌诊 Handler
type TongueHandler struct {
	svc    *service.TongueService
	logger *zap.Logger
}

// NewTongueHandler 创建舌诊 Handler
func NewTongueHandler(svc *service.TongueService, logger *zap.Logger) *TongueHandler {
	return &TongueHandler{svc: svc, logger: logger}
}

// Analyze 舌象分析
// POST /api/v1/tongue/analyze
func (h *TongueHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req service.AnalyzeTongueRequest
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, FailWithCode(ResultInvalid, "invalid request body"))
		return
	}

	resp, err := h.svc.AnalyzeTongue(r.Context(), req)
	if err != nil {
		h.logger.Warn("AnalyzeTongue failed", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp))
}

// Options 舌象录入候选值
// GET /api/v1/tongue/options
func (h *TongueHandler) Options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Ok(h.svc.Options()))
}

// Records 舌诊历史
// GET /api/v1/tongue/records?user_id=xx&limit=10
func (h *TongueHandler) Records(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, FailWithCode(ResultInvalid, "user_id is required"))
		return
	}
	limit := parseInt(r.URL.Query().Get("limit"), 10)

	records, err := h.svc.ListRecords(r.Context(), userID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(records))
}

// CompareRequest 一致性比较请求
type CompareRequest struct {
	ResultID           string `json:"result_id"`
	TongueConstitution string `json:"tongue_constitution"`
}

// Compare 问卷结果与舌象标签一致性比较
// POST /api/v1/tongue/compare
func (h *TongueHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := readBodyJSON(r, 64<<10, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, FailWithCode(ResultInvalid, "invalid request body"))
		return
	}
	if req.ResultID == "" || req.TongueConstitution == "" {
		writeJSON(w, http.StatusBadRequest, FailWithCode(ResultInvalid, "result_id and tongue_constitution are required"))
		return
	}

	verdict, err := h.svc.Compare(r.Context(), req.ResultID, req.TongueConstitution)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(verdict))
}
