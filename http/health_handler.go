package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"loan-payment/repository"
)

const healthTimeout = 2 * time.Second

type HealthHandler struct {
	cache  repository.CacheRepository
	logger *slog.Logger
}

func NewHealthHandler(cache repository.CacheRepository, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{cache: cache, logger: logger}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.cache.Ping(ctx); err != nil {
		h.logger.Warn("health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"cache":  err.Error(),
		}, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}
