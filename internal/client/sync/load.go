package sync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/walklog/internal/models"
)

// Load загружает рабочий набор. Если пользователь вошел и сервер доступен,
// серверная копия заменяет локальную целиком. Пока в очереди есть
// неотправленные операции, читается только локальная копия: серверная их
// еще не содержит. Любая ошибка сервера откатывает загрузку на локальную
// копию без ошибки для вызывающего.
func (e *Engine) Load(ctx context.Context) error {
	token, st := e.session()
	if st.Remote() {
		pending, err := e.queue.LoadQueue(ctx)
		if err != nil {
			return fmt.Errorf("failed to load sync queue: %w", err)
		}
		if len(pending) > 0 {
			e.logger.DebugContext(ctx, "sync queue not empty, keeping local copy",
				slog.Int("pending", len(pending)))
			return e.loadLocal(ctx)
		}

		walks, err := e.apiClient.ListWalks(ctx, token)
		if err == nil {
			return e.replaceLocal(ctx, walks)
		}

		e.handleRemoteError(ctx, err)
		e.logger.WarnContext(ctx, "failed to load walks from server, using local copy",
			slog.Any("error", err))
	}

	return e.loadLocal(ctx)
}

// loadLocal читает рабочий набор из локального хранилища
func (e *Engine) loadLocal(ctx context.Context) error {
	walks, err := e.walks.LoadWalks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load local walks: %w", err)
	}

	e.setWalks(ctx, walks)
	return nil
}

// replaceLocal перезаписывает локальную копию серверной
func (e *Engine) replaceLocal(ctx context.Context, walks []models.Walk) error {
	normalized := make([]models.Walk, 0, len(walks))
	for _, w := range walks {
		// Даты и числа уже нормализованы при декодировании ответа
		w.Distance = models.RoundDistance(w.Distance)
		normalized = append(normalized, w)
	}

	if err := e.walks.SaveWalks(ctx, normalized); err != nil {
		return fmt.Errorf("failed to save server walks locally: %w", err)
	}

	e.logger.DebugContext(ctx, "local copy replaced with server copy", slog.Int("walks", len(normalized)))
	e.setWalks(ctx, normalized)
	return nil
}
