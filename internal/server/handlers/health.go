package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/walklog/pkg/api"
)

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger  *slog.Logger
	pinger  Pinger
	now     func() time.Time
	version string
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *slog.Logger, pinger Pinger, version string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		pinger:  pinger,
		version: version,
		now:     time.Now,
	}
}

// Health обрабатывает GET /health.
// Клиент использует его как проверку сети перед синхронизацией.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := api.HealthResponse{
		Status:    "OK",
		Timestamp: h.now().UTC(),
		Version:   h.version,
	}

	if h.pinger != nil {
		if err := h.pinger.Ping(r.Context()); err != nil {
			h.logger.ErrorContext(r.Context(), "database is unavailable", slog.Any("error", err))
			resp.Status = "UNAVAILABLE"
			sendJSON(w, h.logger, resp, http.StatusServiceUnavailable)
			return
		}
	}

	sendJSON(w, h.logger, resp, http.StatusOK)
}
