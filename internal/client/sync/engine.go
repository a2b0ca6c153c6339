package sync

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/iudanet/walklog/internal/client/api"
	"github.com/iudanet/walklog/internal/client/auth"
	"github.com/iudanet/walklog/internal/client/storage"
	"github.com/iudanet/walklog/internal/models"
	pkgapi "github.com/iudanet/walklog/pkg/api"
)

// AuthState состояние аутентификации клиента
type AuthState int

const (
	// AuthNone сессии нет, работа только с локальной копией
	AuthNone AuthState = iota
	// AuthUnverified токен есть, но сервер его еще не подтвердил (например, офлайн)
	AuthUnverified
	// AuthVerified сервер подтвердил токен
	AuthVerified
	// AuthRejected сервер явно отверг токен, сессия удалена
	AuthRejected
)

// String реализует fmt.Stringer
func (s AuthState) String() string {
	switch s {
	case AuthUnverified:
		return "unverified"
	case AuthVerified:
		return "verified"
	case AuthRejected:
		return "rejected"
	default:
		return "none"
	}
}

// Authenticated сообщает, считается ли пользователь вошедшим.
// Неподтвержденный токен считается действительным до явного отказа сервера.
func (s AuthState) Authenticated() bool {
	return s == AuthUnverified || s == AuthVerified
}

// State рабочее состояние клиента. Снимок отдается читателям по значению.
type State struct {
	User    *pkgapi.User
	Walks   []models.Walk
	Auth    AuthState
	Pending int  // длина очереди синхронизации
	Online  bool // сервер доступен
}

// Remote сообщает, можно ли сейчас писать на сервер
func (s State) Remote() bool {
	return s.Auth.Authenticated() && s.Online
}

func (s State) clone() State {
	c := s
	c.Walks = slices.Clone(s.Walks)
	if s.User != nil {
		u := *s.User
		c.User = &u
	}
	return c
}

// Engine владеет рабочим набором прогулок и решает, какая копия
// (локальная или серверная) сейчас авторитетна
type Engine struct {
	apiClient api.ClientAPI
	auth      auth.Service
	walks     storage.WalkStorage
	queue     storage.QueueStorage
	meta      storage.MetadataStorage
	logger    *slog.Logger
	now       func() time.Time

	inflight  map[models.WalkKey]struct{}
	listeners map[int]func(State)
	token     string
	state     State
	nextID    int

	mu         sync.RWMutex
	inflightMu sync.Mutex
	listenMu   sync.Mutex
	replayMu   sync.Mutex
}

// NewEngine создает движок синхронизации
func NewEngine(
	apiClient api.ClientAPI,
	authService auth.Service,
	walks storage.WalkStorage,
	queue storage.QueueStorage,
	meta storage.MetadataStorage,
	logger *slog.Logger,
) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		apiClient: apiClient,
		auth:      authService,
		walks:     walks,
		queue:     queue,
		meta:      meta,
		logger:    logger,
		now:       time.Now,
		inflight:  make(map[models.WalkKey]struct{}),
		listeners: make(map[int]func(State)),
		state:     State{Walks: []models.Walk{}},
	}
}

// Snapshot возвращает копию текущего состояния
func (e *Engine) Snapshot() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.clone()
}

// Subscribe регистрирует слушателя, вызываемого после каждого изменения состояния.
// Возвращает функцию отписки.
func (e *Engine) Subscribe(fn func(State)) func() {
	e.listenMu.Lock()
	defer e.listenMu.Unlock()

	id := e.nextID
	e.nextID++
	e.listeners[id] = fn

	return func() {
		e.listenMu.Lock()
		defer e.listenMu.Unlock()
		delete(e.listeners, id)
	}
}

// LastSync возвращает момент последнего успешного обмена с сервером
func (e *Engine) LastSync(ctx context.Context) (time.Time, error) {
	return e.meta.GetLastSyncTime(ctx)
}

// RemoteStats возвращает агрегаты, посчитанные сервером
func (e *Engine) RemoteStats(ctx context.Context) (*pkgapi.StatsResponse, error) {
	token, st := e.session()
	if !st.Auth.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	if !st.Online {
		return nil, ErrOffline
	}

	stats, err := e.apiClient.Stats(ctx, token)
	if err != nil {
		e.handleRemoteError(ctx, err)
		return nil, err
	}
	return stats, nil
}

// session возвращает токен и снимок состояния без копирования записей
func (e *Engine) session() (string, State) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	st := e.state
	st.Walks = nil
	return e.token, st
}

// update применяет изменение состояния под блокировкой и уведомляет слушателей
func (e *Engine) update(fn func(st *State)) {
	e.mu.Lock()
	fn(&e.state)
	snapshot := e.state.clone()
	e.mu.Unlock()

	e.notify(snapshot)
}

func (e *Engine) notify(st State) {
	e.listenMu.Lock()
	listeners := make([]func(State), 0, len(e.listeners))
	for _, fn := range e.listeners {
		listeners = append(listeners, fn)
	}
	e.listenMu.Unlock()

	for _, fn := range listeners {
		fn(st)
	}
}

// setWalks заменяет рабочий набор и обновляет длину очереди
func (e *Engine) setWalks(ctx context.Context, walks []models.Walk) {
	pending := -1
	if entries, err := e.queue.LoadQueue(ctx); err != nil {
		e.logger.WarnContext(ctx, "failed to read sync queue", slog.Any("error", err))
	} else {
		pending = len(entries)
	}

	e.update(func(st *State) {
		st.Walks = slices.Clone(walks)
		if st.Walks == nil {
			st.Walks = []models.Walk{}
		}
		if pending >= 0 {
			st.Pending = pending
		}
	})
}

// acquire помечает прогулку как сохраняемую; false если она уже в работе
func (e *Engine) acquire(key models.WalkKey) bool {
	e.inflightMu.Lock()
	defer e.inflightMu.Unlock()

	if _, busy := e.inflight[key]; busy {
		return false
	}
	e.inflight[key] = struct{}{}
	return true
}

func (e *Engine) release(key models.WalkKey) {
	e.inflightMu.Lock()
	defer e.inflightMu.Unlock()
	delete(e.inflight, key)
}
