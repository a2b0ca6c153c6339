package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/iudanet/walklog/pkg/api"
)

// MaxBodyBytes максимальный размер JSON тела запроса (10 MB)
const MaxBodyBytes = 10 << 20

// errBodyTooLarge тело запроса превышает MaxBodyBytes
var errBodyTooLarge = errors.New("request body too large")

// decodeJSON читает JSON тело запроса с ограничением размера
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errBodyTooLarge
		}
		return fmt.Errorf("failed to decode request body: %w", err)
	}

	return nil
}

// sendDecodeError отвечает на ошибку decodeJSON
func sendDecodeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if errors.Is(err, errBodyTooLarge) {
		sendError(w, logger, "Request body too large", http.StatusRequestEntityTooLarge)
		return
	}
	sendError(w, logger, "Invalid request body", http.StatusBadRequest)
}

// sendJSON отправляет JSON ответ
func sendJSON(w http.ResponseWriter, logger *slog.Logger, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func sendError(w http.ResponseWriter, logger *slog.Logger, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	sendJSON(w, logger, resp, statusCode)
}

// NotFound отвечает на запросы к неизвестным эндпоинтам
func NotFound(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sendError(w, logger, "Endpoint not found", http.StatusNotFound)
	}
}
