package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"

	"tcmcare-data/internal/assessment"
	"tcmcare-data/internal/repository"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError 按错误类别映射 HTTP 状态码与业务码
func writeError(w http.ResponseWriter, err error) {
	var verr *assessment.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, FailWithCode(ResultInvalid, verr.Error()))
	case errors.Is(err, assessment.ErrUnknownConstitution),
		errors.Is(err, assessment.ErrInvalidObservation):
		writeJSON(w, http.StatusBadRequest, FailWithCode(ResultInvalid, err.Error()))
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, FailWithCode(ResultNotFound, err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, Fail(err.Error()))
	}
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func readBodyJSON(r *http.Request, maxBytes int64, out any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBytes))
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

// clientIP 反代后优先取 X-Forwarded-For 首个地址
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
