package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/iudanet/walklog/internal/client/api"
	"github.com/iudanet/walklog/internal/models"
	"github.com/iudanet/walklog/internal/validation"
)

// ImportResult результат импорта прогулок
type ImportResult struct {
	Imported int // добавлено локально
	Skipped  int // уже были в локальной копии
	Synced   int // приняты сервером
	Queued   int // поставлены в очередь
}

// CreateWalk сохраняет прогулку локально и затем на сервере.
// Локальная запись не откатывается при ошибке сервера: вызывающий получает
// *RemoteWriteError. Сетевые ошибки и 5xx ставят операцию в очередь.
func (e *Engine) CreateWalk(ctx context.Context, walk models.Walk) (models.Walk, error) {
	if err := validation.ValidateWalk(walk); err != nil {
		return walk, err
	}
	walk = e.prepare(walk)

	key := walk.Key()
	if !e.acquire(key) {
		return walk, ErrInFlight
	}
	defer e.release(key)

	if err := e.walks.AppendWalk(ctx, walk); err != nil {
		return walk, fmt.Errorf("failed to save walk locally: %w", err)
	}

	remoteErr := e.pushRemote(ctx, models.NewQueueEntry(models.QueueCreate, &walk))

	return walk, e.reloadAfterWrite(ctx, remoteErr)
}

// DeleteWalk удаляет прогулку, совпадающую по (дата, дистанция, время)
func (e *Engine) DeleteWalk(ctx context.Context, walk models.Walk) error {
	removed, err := e.walks.RemoveWalk(ctx, walk)
	if err != nil {
		return fmt.Errorf("failed to delete walk locally: %w", err)
	}

	remoteErr := e.pushRemote(ctx, models.NewQueueEntry(models.QueueDelete, &removed))

	return e.reloadAfterWrite(ctx, remoteErr)
}

// DeleteAllWalks удаляет все прогулки
func (e *Engine) DeleteAllWalks(ctx context.Context) error {
	if err := e.walks.ClearWalks(ctx); err != nil {
		return fmt.Errorf("failed to clear local walks: %w", err)
	}

	remoteErr := e.pushRemote(ctx, models.NewQueueEntry(models.QueueDeleteAll, nil))

	return e.reloadAfterWrite(ctx, remoteErr)
}

// ImportWalks добавляет прогулки, которых еще нет в локальной копии.
// Новые прогулки отправляются на сервер одним пакетом или ставятся в очередь.
func (e *Engine) ImportWalks(ctx context.Context, walks []models.Walk) (*ImportResult, error) {
	existing, err := e.walks.LoadWalks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load local walks: %w", err)
	}

	seen := make(map[models.WalkKey]struct{}, len(existing)+len(walks))
	for _, w := range existing {
		seen[w.Key()] = struct{}{}
	}

	result := &ImportResult{}
	added := make([]models.Walk, 0, len(walks))
	for _, w := range walks {
		if err := validation.ValidateWalk(w); err != nil {
			return nil, fmt.Errorf("invalid walk %s: %w", w, err)
		}
		if _, dup := seen[w.Key()]; dup {
			result.Skipped++
			continue
		}
		seen[w.Key()] = struct{}{}
		added = append(added, e.prepare(w))
	}

	if len(added) == 0 {
		return result, nil
	}

	if err := e.walks.SaveWalks(ctx, append(existing, added...)); err != nil {
		return nil, fmt.Errorf("failed to save imported walks: %w", err)
	}
	result.Imported = len(added)

	remoteErr := e.pushImport(ctx, added, result)

	return result, e.reloadAfterWrite(ctx, remoteErr)
}

// pushImport отправляет импортированные прогулки пакетом
func (e *Engine) pushImport(ctx context.Context, walks []models.Walk, result *ImportResult) error {
	token, st := e.session()
	if !st.Auth.Authenticated() {
		return nil
	}

	entries := make([]models.QueueEntry, 0, len(walks))
	for i := range walks {
		entries = append(entries, models.NewQueueEntry(models.QueueCreate, &walks[i]))
	}

	if !st.Online {
		if err := e.enqueue(ctx, entries...); err != nil {
			return err
		}
		result.Queued = len(entries)
		return nil
	}

	resp, err := e.apiClient.SyncWalks(ctx, token, walks)
	if err == nil {
		result.Synced = resp.Added
		e.markSynced(ctx)
		return nil
	}

	e.handleRemoteError(ctx, err)
	if !api.IsRetryable(err) {
		return &RemoteWriteError{Op: "import", Err: err}
	}

	if qErr := e.enqueue(ctx, entries...); qErr != nil {
		return qErr
	}
	result.Queued = len(entries)
	return &RemoteWriteError{Op: "import", Err: err, Queued: true}
}

// pushRemote выполняет удаленную часть записи:
// вошел и онлайн - запрос на сервер; вошел и офлайн - очередь; иначе ничего
func (e *Engine) pushRemote(ctx context.Context, entry models.QueueEntry) error {
	token, st := e.session()
	if !st.Auth.Authenticated() {
		return nil
	}

	if !st.Online {
		e.logger.DebugContext(ctx, "offline, queueing operation",
			slog.String("action", string(entry.Action)),
			slog.String("entry_id", entry.ID))
		return e.enqueue(ctx, entry)
	}

	err := e.apply(ctx, token, entry)
	if err == nil || isBenign(entry.Action, err) {
		return nil
	}

	e.handleRemoteError(ctx, err)
	op := string(entry.Action)
	if !api.IsRetryable(err) {
		return &RemoteWriteError{Op: op, Err: err}
	}

	if qErr := e.enqueue(ctx, entry); qErr != nil {
		return qErr
	}
	e.logger.WarnContext(ctx, "server write failed, operation queued",
		slog.String("action", op),
		slog.Any("error", err))

	return &RemoteWriteError{Op: op, Err: err, Queued: true}
}

// apply выполняет одну операцию очереди на сервере
func (e *Engine) apply(ctx context.Context, token string, entry models.QueueEntry) error {
	switch entry.Action {
	case models.QueueCreate:
		if entry.Data == nil {
			return fmt.Errorf("create entry %s has no walk", entry.ID)
		}
		_, err := e.apiClient.CreateWalk(ctx, token, *entry.Data)
		return err
	case models.QueueDelete:
		if entry.Data == nil {
			return fmt.Errorf("delete entry %s has no walk", entry.ID)
		}
		_, err := e.apiClient.DeleteWalk(ctx, token, *entry.Data)
		return err
	case models.QueueDeleteAll:
		_, err := e.apiClient.DeleteAllWalks(ctx, token)
		return err
	default:
		return fmt.Errorf("unknown queue action %q", entry.Action)
	}
}

// isBenign сообщает, что ошибка интерактивной операции означает уже
// выполненное удаление. Конфликт при создании показывается пользователю.
func isBenign(action models.QueueAction, err error) bool {
	switch action {
	case models.QueueDelete, models.QueueDeleteAll:
		return errors.Is(err, api.ErrNotFound)
	default:
		return false
	}
}

// isReplayBenign как isBenign, но при повторе очереди конфликт создания
// тоже означает, что запись уже на сервере
func isReplayBenign(action models.QueueAction, err error) bool {
	if action == models.QueueCreate && errors.Is(err, api.ErrConflict) {
		return true
	}
	return isBenign(action, err)
}

// enqueue сохраняет операции в конец очереди
func (e *Engine) enqueue(ctx context.Context, entries ...models.QueueEntry) error {
	if len(entries) == 1 {
		if err := e.queue.Enqueue(ctx, entries[0]); err != nil {
			return fmt.Errorf("failed to queue %s: %w", entries[0].Action, err)
		}
		return nil
	}

	queue, err := e.queue.LoadQueue(ctx)
	if err != nil {
		return fmt.Errorf("failed to load sync queue: %w", err)
	}
	if err := e.queue.SaveQueue(ctx, append(queue, entries...)); err != nil {
		return fmt.Errorf("failed to save sync queue: %w", err)
	}
	return nil
}

// reloadAfterWrite обновляет рабочий набор после записи.
// Если операция не дошла до сервера, читается только локальная копия:
// серверная еще не содержит изменения и перезаписала бы его.
// Конфликт означает, что сервер уже хранит такую же прогулку.
func (e *Engine) reloadAfterWrite(ctx context.Context, remoteErr error) error {
	var loadErr error
	if remoteErr == nil || errors.Is(remoteErr, api.ErrConflict) {
		loadErr = e.Load(ctx)
	} else {
		loadErr = e.loadLocal(ctx)
	}

	if loadErr != nil {
		return errors.Join(remoteErr, loadErr)
	}
	return remoteErr
}

// prepare присваивает локальные идентификаторы новой прогулке
func (e *Engine) prepare(w models.Walk) models.Walk {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = e.now().UTC()
	}
	w.Distance = models.RoundDistance(w.Distance)
	return w
}
