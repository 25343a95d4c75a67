package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/gophmedia/pkg/api"
)

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger *slog.Logger
	db     Pinger
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *slog.Logger, db Pinger) *HealthHandler {
	return &HealthHandler{
		logger: logger,
		db:     db,
	}
}

// Health обрабатывает GET /api/health
// Health check endpoint для мониторинга, проверяет БД
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.ErrorContext(ctx, "health check failed", slog.Any("error", err))
		sendJSON(h.logger, w, api.HealthResponse{Status: "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	sendJSON(h.logger, w, api.HealthResponse{Status: "ok"}, http.StatusOK)
}
