package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/walklog/internal/client/api"
	"github.com/iudanet/walklog/internal/client/auth"
	"github.com/iudanet/walklog/internal/client/storage"
	pkgapi "github.com/iudanet/walklog/pkg/api"
)

// LoginResult результат входа или регистрации
type LoginResult struct {
	Sync *SyncResult // nil, если пакетная синхронизация не выполнялась или не удалась
	User pkgapi.User
}

// SyncResult результат пакетной отправки локальных прогулок после входа
type SyncResult struct {
	Added   int
	Skipped int
	Total   int
}

// Start выполняет стартовую последовательность: проверка сессии,
// повтор очереди (если сервер доступен) и загрузка рабочего набора
func (e *Engine) Start(ctx context.Context) error {
	if err := e.CheckAuth(ctx); err != nil {
		return err
	}

	// Очередь повторяется до загрузки с сервера, иначе серверная копия
	// перезапишет локальные изменения, которые еще не отправлены
	if _, st := e.session(); st.Remote() {
		if _, err := e.ProcessQueue(ctx); err != nil {
			e.logger.WarnContext(ctx, "startup queue replay failed", slog.Any("error", err))
			return nil
		}
	}

	return e.Load(ctx)
}

// CheckAuth восстанавливает сессию из хранилища и, если сервер доступен,
// подтверждает токен. Ошибки сети оставляют токен неподтвержденным,
// любой не-2xx ответ сервера удаляет его.
func (e *Engine) CheckAuth(ctx context.Context) error {
	session, err := e.auth.Current(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			e.update(func(st *State) {
				if st.Auth != AuthRejected {
					st.Auth = AuthNone
				}
				st.User = nil
			})
			e.setToken("")
			return nil
		}
		return fmt.Errorf("failed to read session: %w", err)
	}

	e.setToken(session.Token)
	user := session.User
	e.update(func(st *State) {
		st.Auth = AuthUnverified
		st.User = &user
	})

	if _, st := e.session(); !st.Online {
		return nil
	}

	verified, err := e.auth.Verify(ctx)
	switch {
	case err == nil:
		verifiedUser := verified.User
		e.update(func(st *State) {
			st.Auth = AuthVerified
			st.User = &verifiedUser
		})
	case api.IsServerResponse(err):
		// Любой ответ сервера кроме 2xx считается отказом
		e.logger.InfoContext(ctx, "stored session rejected by server", slog.Any("error", err))
		e.reject(ctx)
	default:
		// Сервер не ответил: токен остается в силе
		e.logger.WarnContext(ctx, "token verification unavailable, trusting stored session",
			slog.Any("error", err))
	}

	return nil
}

// Login выполняет вход, отправляет локальные прогулки на сервер
// и перезагружает рабочий набор из серверной копии
func (e *Engine) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	session, err := e.auth.Login(ctx, email, password)
	if err != nil {
		e.observeNetwork(err)
		return nil, err
	}
	return e.afterLogin(ctx, session)
}

// Register регистрирует пользователя; дальше как Login
func (e *Engine) Register(ctx context.Context, email, password string) (*LoginResult, error) {
	session, err := e.auth.Register(ctx, email, password)
	if err != nil {
		e.observeNetwork(err)
		return nil, err
	}
	return e.afterLogin(ctx, session)
}

func (e *Engine) afterLogin(ctx context.Context, session *auth.Session) (*LoginResult, error) {
	e.setToken(session.Token)
	user := session.User
	e.update(func(st *State) {
		st.Auth = AuthVerified
		st.User = &user
		// Сервер только что ответил
		st.Online = true
	})

	result := &LoginResult{User: session.User}

	syncResult, err := e.bulkSync(ctx)
	if err != nil {
		e.logger.WarnContext(ctx, "bulk sync after login failed", slog.Any("error", err))
	} else {
		result.Sync = syncResult
	}

	// Остатки очереди от прошлой сессии
	if _, err := e.ProcessQueue(ctx); err != nil {
		e.logger.WarnContext(ctx, "queue replay after login failed", slog.Any("error", err))
		return result, nil
	}

	if err := e.Load(ctx); err != nil {
		return result, err
	}

	return result, nil
}

// bulkSync отправляет всю локальную копию одним запросом.
// Дубликаты сервер пропускает, поэтому повторная отправка безопасна.
func (e *Engine) bulkSync(ctx context.Context) (*SyncResult, error) {
	walks, err := e.walks.LoadWalks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load local walks: %w", err)
	}
	if len(walks) == 0 {
		return &SyncResult{}, nil
	}

	token, _ := e.session()
	resp, err := e.apiClient.SyncWalks(ctx, token, walks)
	if err != nil {
		e.handleRemoteError(ctx, err)
		return nil, err
	}

	result := &SyncResult{Added: resp.Added, Skipped: resp.Skipped, Total: resp.Total}
	e.logger.InfoContext(ctx, "local walks synced to server",
		slog.Int("added", result.Added),
		slog.Int("skipped", result.Skipped),
		slog.Int("total", result.Total))

	e.markSynced(ctx)

	return result, nil
}

// Logout удаляет сессию; локальные данные и очередь сохраняются
func (e *Engine) Logout(ctx context.Context) error {
	if err := e.auth.Logout(ctx); err != nil {
		return err
	}

	e.setToken("")
	e.update(func(st *State) {
		st.Auth = AuthNone
		st.User = nil
	})

	return e.Load(ctx)
}

// reject удаляет сессию после явного отказа сервера
func (e *Engine) reject(ctx context.Context) {
	if err := e.auth.Discard(ctx); err != nil {
		e.logger.ErrorContext(ctx, "failed to discard rejected session", slog.Any("error", err))
	}

	e.setToken("")
	e.update(func(st *State) {
		st.Auth = AuthRejected
		st.User = nil
	})
}

// handleRemoteError реагирует на ошибку сервера: явный отказ в доступе
// удаляет сессию, сетевая ошибка переводит клиента в офлайн
func (e *Engine) handleRemoteError(ctx context.Context, err error) {
	if errors.Is(err, api.ErrUnauthorized) {
		e.logger.InfoContext(ctx, "session rejected by server", slog.Any("error", err))
		e.reject(ctx)
		return
	}
	e.observeNetwork(err)
}

// observeNetwork помечает сервер недоступным при сетевой ошибке.
// Обратный переход делает монитор доступности через SetOnline.
func (e *Engine) observeNetwork(err error) {
	if !errors.Is(err, api.ErrNetwork) {
		return
	}

	e.mu.Lock()
	changed := e.state.Online
	e.state.Online = false
	snapshot := e.state.clone()
	e.mu.Unlock()

	if changed {
		e.logger.Info("server became unreachable")
		e.notify(snapshot)
	}
}

func (e *Engine) setToken(token string) {
	e.mu.Lock()
	e.token = token
	e.mu.Unlock()
}

func (e *Engine) markSynced(ctx context.Context) {
	if err := e.meta.SaveLastSyncTime(ctx, e.now()); err != nil {
		e.logger.WarnContext(ctx, "failed to save last sync time", slog.Any("error", err))
	}
}
