package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"tcmcare-data/internal/service"

	"go.uber.org/zap"
)

// CheckinHandler 养生打卡 Handler
type CheckinHandler struct {
	svc    *service.CheckinService
	logger *zap.Logger
}

// NewCheckinHandler 创建打卡 Handler
func NewCheckinHandler(svc *service.CheckinService, logger *zap.Logger) *CheckinHandler {
	return &CheckinHandler{svc: svc, logger: logger}
}

// CheckDay 单日打卡
// POST /api/v1/checkins
func (h *CheckinHandler) CheckDay(w http.ResponseWriter, r *http.Request) {
	var req service.CheckDayRequest
	if err := readBodyJSON(r, 64<<10, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, FailWithCode(ResultInvalid, "invalid request body"))
		return
	}

	resp, err := h.svc.CheckDay(r.Context(), req)
	if err != nil {
		h.logger.Warn("CheckDay failed", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp))
}

// CurrentWeek 当周打卡
// GET /api/v1/checkins/week?user_id=xx
func (h *CheckinHandler) CurrentWeek(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, FailWithCode(ResultInvalid, "user_id is required"))
		return
	}

	resp, err := h.svc.CurrentWeek(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp))
}

// History 打卡历史
// GET /api/v1/checkins/history?user_id=xx&limit=12
func (h *CheckinHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, FailWithCode(ResultInvalid, "user_id is required"))
		return
	}
	limit := parseInt(r.URL.Query().Get("limit"), 12)

	history, err := h.svc.History(r.Context(), userID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(history))
}

// Streak 连续打卡天数
// GET /api/v1/checkins/streak?user_id=xx
func (h *CheckinHandler) Streak(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, FailWithCode(ResultInvalid, "user_id is required"))
		return
	}

	streak, err := h.svc.Streak(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]int{"streak": streak}))
}

// Export 打卡历史导出 Excel
// GET /api/v1/checkins/export?user_id=xx&limit=12
func (h *CheckinHandler) Export(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, FailWithCode(ResultInvalid, "user_id is required"))
		return
	}
	limit := parseInt(r.URL.Query().Get("limit"), 12)

	history, err := h.svc.History(r.Context(), userID, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := GenerateCheckinExport(history)
	if err != nil {
		h.logger.Error("GenerateCheckinExport failed", zap.Error(err))
		writeError(w, err)
		return
	}

	filename := fmt.Sprintf("checkins_%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
