package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/iudanet/walklog/internal/models"
	"github.com/iudanet/walklog/internal/server/metrics"
	"github.com/iudanet/walklog/internal/server/storage"
	"github.com/iudanet/walklog/internal/validation"
	"github.com/iudanet/walklog/pkg/api"
)

// WalkHandler обрабатывает запросы к прогулкам пользователя
type WalkHandler struct {
	logger  *slog.Logger
	storage storage.WalkStorage
	metrics *metrics.Metrics
}

// NewWalkHandler создает новый handler для прогулок
func NewWalkHandler(logger *slog.Logger, walkStorage storage.WalkStorage, m *metrics.Metrics) *WalkHandler {
	return &WalkHandler{
		logger:  logger,
		storage: walkStorage,
		metrics: m,
	}
}

// List обрабатывает GET /api/walks
func (h *WalkHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	walks, err := h.storage.ListWalks(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list walks", slog.Any("error", err))
		sendError(w, h.logger, "Internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(w, h.logger, walks, http.StatusOK)
}

// Create обрабатывает POST /api/walks
func (h *WalkHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req api.CreateWalkRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode walk", slog.Any("error", err))
		sendDecodeError(w, h.logger, err)
		return
	}

	walk := models.Walk{
		Date:        req.Date,
		Distance:    req.Distance,
		TimeElapsed: req.TimeElapsed,
	}
	if err := validation.ValidateWalk(walk); err != nil {
		sendError(w, h.logger, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.storage.CreateWalk(ctx, userID, &walk); err != nil {
		if errors.Is(err, storage.ErrDuplicateWalk) {
			sendError(w, h.logger, "A walk with these exact details already exists", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create walk", slog.Any("error", err))
		sendError(w, h.logger, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.metrics.RecordWalks(metrics.WalkCreated, 1)
	h.logger.InfoContext(ctx, "walk created",
		slog.String("user_id", userID),
		slog.String("date", walk.Date.String()))

	sendJSON(w, h.logger, api.CreateWalkResponse{
		Message: "Walk added successfully",
		Walk:    walk,
	}, http.StatusCreated)
}

// syncRequest тело POST /api/walks/sync до проверки типа поля walks
type syncRequest struct {
	Walks json.RawMessage `json:"walks"`
}

// Sync обрабатывает POST /api/walks/sync.
// Все прогулки вставляются в одной транзакции, дубликаты пропускаются.
func (h *WalkHandler) Sync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req syncRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode sync request", slog.Any("error", err))
		sendDecodeError(w, h.logger, err)
		return
	}

	raw := bytes.TrimSpace(req.Walks)
	if len(raw) == 0 || raw[0] != '[' {
		sendError(w, h.logger, "Walks must be an array", http.StatusBadRequest)
		return
	}

	var items []api.CreateWalkRequest
	if err := json.Unmarshal(raw, &items); err != nil {
		sendError(w, h.logger, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	walks := make([]models.Walk, 0, len(items))
	for i, item := range items {
		walk := models.Walk{
			Date:        item.Date,
			Distance:    item.Distance,
			TimeElapsed: item.TimeElapsed,
		}
		if err := validation.ValidateWalk(walk); err != nil {
			sendError(w, h.logger, "Validation failed: walks["+strconv.Itoa(i)+"]."+err.Error(), http.StatusBadRequest)
			return
		}
		walks = append(walks, walk)
	}

	result, err := h.storage.SyncWalks(ctx, userID, walks)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to sync walks", slog.Any("error", err))
		sendError(w, h.logger, "Internal server error during sync", http.StatusInternalServerError)
		return
	}

	h.metrics.RecordWalks(metrics.WalkSyncAdded, result.Added)
	h.metrics.RecordWalks(metrics.WalkSyncSkipped, result.Skipped)
	h.logger.InfoContext(ctx, "walks synced",
		slog.String("user_id", userID),
		slog.Int("added", result.Added),
		slog.Int("skipped", result.Skipped))

	sendJSON(w, h.logger, api.SyncResponse{
		Message: "Sync completed successfully",
		Added:   result.Added,
		Skipped: result.Skipped,
		Total:   len(walks),
	}, http.StatusOK)
}

// Delete обрабатывает DELETE /api/walks/{date}.
// Необязательные параметры distance и timeElapsed сужают удаление до одной записи.
func (h *WalkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	date, err := models.ParseDate(r.PathValue("date"))
	if err != nil {
		sendError(w, h.logger, "Validation failed: date must be in YYYY-MM-DD format", http.StatusBadRequest)
		return
	}

	match, err := parseWalkMatch(r)
	if err != nil {
		sendError(w, h.logger, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	deleted, err := h.storage.DeleteWalks(ctx, userID, date, match)
	if err != nil {
		if errors.Is(err, storage.ErrWalkNotFound) {
			sendError(w, h.logger, "Walk not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete walk", slog.Any("error", err))
		sendError(w, h.logger, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.metrics.RecordWalks(metrics.WalkDeleted, deleted)
	h.logger.InfoContext(ctx, "walk deleted",
		slog.String("user_id", userID),
		slog.String("date", date.String()),
		slog.Int("deleted", deleted))

	sendJSON(w, h.logger, api.DeleteResponse{
		Message: "Walk deleted successfully",
		Deleted: deleted,
	}, http.StatusOK)
}

// DeleteAll обрабатывает DELETE /api/walks/all
func (h *WalkHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	deleted, err := h.storage.DeleteAllWalks(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete walks", slog.Any("error", err))
		sendError(w, h.logger, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.metrics.RecordWalks(metrics.WalkDeleted, deleted)
	h.logger.InfoContext(ctx, "all walks deleted",
		slog.String("user_id", userID),
		slog.Int("deleted", deleted))

	sendJSON(w, h.logger, api.DeleteResponse{
		Message: "All walks deleted successfully",
		Deleted: deleted,
	}, http.StatusOK)
}

// Stats обрабатывает GET /api/stats
func (h *WalkHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	stats, err := h.storage.Stats(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get stats", slog.Any("error", err))
		sendError(w, h.logger, "Internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(w, h.logger, newStatsResponse(stats), http.StatusOK)
}

func (h *WalkHandler) requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		sendError(w, h.logger, "Access token required", http.StatusUnauthorized)
	}
	return userID, ok
}

func newStatsResponse(stats storage.WalkStats) api.StatsResponse {
	resp := api.StatsResponse{
		TotalWalks:    stats.Walks,
		TotalDistance: models.RoundDistance(stats.Distance),
		TotalTime:     stats.Time,
	}
	if stats.Walks > 0 {
		resp.AvgDistance = models.RoundDistance(stats.Distance / float64(stats.Walks))
		resp.AvgTime = math.Round(float64(stats.Time)/float64(stats.Walks)*100) / 100
	}
	return resp
}

// parseWalkMatch разбирает параметры distance и timeElapsed
func parseWalkMatch(r *http.Request) (storage.WalkMatch, error) {
	var match storage.WalkMatch
	query := r.URL.Query()

	if raw := query.Get("distance"); raw != "" {
		distance, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(distance) || math.IsInf(distance, 0) {
			return match, errors.New("distance must be a number")
		}
		match.Distance = &distance
	}

	if raw := query.Get("timeElapsed"); raw != "" {
		elapsed, err := strconv.Atoi(raw)
		if err != nil {
			return match, errors.New("timeElapsed must be an integer")
		}
		match.TimeElapsed = &elapsed
	}

	return match, nil
}
