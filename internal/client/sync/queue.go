package sync

import (
	"context"
	"fmt"
	"log/slog"
)

// ReplayResult результат повтора очереди
type ReplayResult struct {
	Replayed int // операций применено на сервере
	Skipped  int // операций, уже примененных ранее (конфликт или 404)
}

// SetOnline сообщает движку о смене доступности сервера.
// Переход в онлайн с активной сессией подтверждает неподтвержденный токен
// и повторяет очередь.
func (e *Engine) SetOnline(ctx context.Context, online bool) error {
	e.mu.Lock()
	wasOnline := e.state.Online
	e.state.Online = online
	snapshot := e.state.clone()
	e.mu.Unlock()

	if wasOnline == online {
		return nil
	}

	e.logger.InfoContext(ctx, "connectivity changed", slog.Bool("online", online))
	e.notify(snapshot)

	if !online || !snapshot.Auth.Authenticated() {
		return nil
	}

	if snapshot.Auth == AuthUnverified {
		if err := e.CheckAuth(ctx); err != nil {
			return err
		}
		if _, st := e.session(); !st.Auth.Authenticated() {
			return e.loadLocal(ctx)
		}
	}

	_, err := e.ProcessQueue(ctx)
	return err
}

// ProcessQueue повторяет очередь на сервере в порядке добавления.
// Очередь очищается только после успешного прохода целиком, поэтому при
// сбое посередине уже отправленные операции будут отправлены повторно;
// уникальность на сервере делает такие повторы безвредными.
func (e *Engine) ProcessQueue(ctx context.Context) (*ReplayResult, error) {
	e.replayMu.Lock()
	defer e.replayMu.Unlock()

	result := &ReplayResult{}

	token, st := e.session()
	if !st.Remote() {
		return result, nil
	}

	entries, err := e.queue.LoadQueue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sync queue: %w", err)
	}
	if len(entries) == 0 {
		return result, nil
	}

	e.logger.InfoContext(ctx, "replaying sync queue", slog.Int("entries", len(entries)))

	for i, entry := range entries {
		err := e.apply(ctx, token, entry)
		switch {
		case err == nil:
			result.Replayed++
		case isReplayBenign(entry.Action, err):
			e.logger.DebugContext(ctx, "queued operation already applied",
				slog.String("entry_id", entry.ID),
				slog.String("action", string(entry.Action)))
			result.Skipped++
		default:
			e.handleRemoteError(ctx, err)
			e.logger.ErrorContext(ctx, "queue replay stopped",
				slog.String("entry_id", entry.ID),
				slog.String("action", string(entry.Action)),
				slog.Int("position", i+1),
				slog.Any("error", err))
			if loadErr := e.loadLocal(ctx); loadErr != nil {
				e.logger.ErrorContext(ctx, "failed to reload local walks", slog.Any("error", loadErr))
			}
			return result, fmt.Errorf("queue replay stopped at entry %d of %d: %w", i+1, len(entries), err)
		}
	}

	if err := e.queue.ClearQueue(ctx); err != nil {
		return result, fmt.Errorf("failed to clear sync queue: %w", err)
	}
	e.markSynced(ctx)

	e.logger.InfoContext(ctx, "sync queue replayed",
		slog.Int("replayed", result.Replayed),
		slog.Int("skipped", result.Skipped))

	return result, e.Load(ctx)
}
