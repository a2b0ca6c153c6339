package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/walklog/pkg/api"
)

// writeError отправляет JSON ответ с ошибкой в формате handlers
func writeError(w http.ResponseWriter, logger *slog.Logger, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode error response", slog.Any("error", err))
	}
}
