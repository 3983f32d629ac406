package httpapi

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"tcmcare-data/internal/store"

	"go.uber.org/zap"
)

// HealthHandler 健康检查 Handler
type HealthHandler struct {
	db     *sql.DB  // 可为 nil（内存模式）
	cache  store.KV // 可为 nil
	logger *zap.Logger
}

// NewHealthHandler 创建健康检查 Handler
func NewHealthHandler(db *sql.DB, cache store.KV, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, logger: logger}
}

// Ping 探活
// GET /ping
func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Ok("pong"))
}

// Health 健康状态（含 DB 连通性和缓存结果数）
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{
		"status":  "ok",
		"storage": "memory",
		"time":    time.Now().UTC().Format(time.RFC3339),
	}
	if h.db != nil {
		status["storage"] = "postgres"
		if err := h.db.PingContext(r.Context()); err != nil {
			h.logger.Warn("Health check: database unreachable", zap.Error(err))
			status["status"] = "degraded"
			status["storage"] = "postgres (unreachable)"
		}
	}
	if h.cache != nil {
		keys, err := h.cache.ScanKeys(r.Context(), "result:*")
		if err != nil {
			h.logger.Warn("Health check: cache scan failed", zap.Error(err))
			status["cached_results"] = "unknown"
		} else {
			status["cached_results"] = strconv.Itoa(len(keys))
		}
	}
	writeJSON(w, http.StatusOK, Ok(status))
}
