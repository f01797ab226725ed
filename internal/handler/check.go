package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"vt-check-go/internal/service"
)

// 返回给调用方的固定错误信息
const (
	msgURLRequired   = "URL is required."
	msgUnableToFetch = "Unable to fetch report."
)

// CheckHandler URL检查HTTP处理器
type CheckHandler struct {
	service *service.LookupService
	logger  *slog.Logger
}

// NewCheckHandler 创建处理器
func NewCheckHandler(svc *service.LookupService, logger *slog.Logger) *CheckHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CheckHandler{service: svc, logger: logger}
}

// Check 查询URL安全判定
// POST /check
// Body: {"url": "xxx"}
func (h *CheckHandler) Check(w http.ResponseWriter, r *http.Request) {
	req, err := decodeLookupRequest(w, r)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	result, err := h.service.CheckURL(r.Context(), req.URL)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.logger.Debug("url checked", "url", req.URL, "status", result.Status, "malicious", result.Malicious)
	writeJSON(w, http.StatusOK, result)
}

func (h *CheckHandler) writeServiceError(w http.ResponseWriter, err error) {
	var upstreamErr *service.UpstreamError
	switch {
	case errors.Is(err, service.ErrURLRequired):
		writeError(w, http.StatusBadRequest, msgURLRequired)
	case errors.As(err, &upstreamErr):
		h.logger.Warn("virustotal lookup failed", "upstream_status", upstreamErr.StatusCode, "error", upstreamErr.Err)
		writeError(w, http.StatusInternalServerError, msgUnableToFetch)
	default:
		h.logger.Error("url check failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgUnableToFetch)
	}
}
