package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/walklog/internal/client/api"
	"github.com/iudanet/walklog/internal/client/auth"
	"github.com/iudanet/walklog/internal/client/storage"
	"github.com/iudanet/walklog/internal/models"
	"github.com/iudanet/walklog/internal/validation"
)

func TestAuthState(t *testing.T) {
	assert.False(t, AuthNone.Authenticated())
	assert.True(t, AuthUnverified.Authenticated())
	assert.True(t, AuthVerified.Authenticated())
	assert.False(t, AuthRejected.Authenticated())
	assert.Equal(t, "unverified", AuthUnverified.String())
	assert.Equal(t, "none", AuthState(42).String())
}

// Запись сохраняется локально при любом исходе удаленной записи
func TestCreateWalk_LocalFirstDurability(t *testing.T) {
	ctx := context.Background()

	t.Run("not authenticated", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.engine.SetOnline(ctx, true))

		walk, err := env.engine.CreateWalk(ctx, models.Walk{Date: "2024-01-05", Distance: 2.5, TimeElapsed: 40})
		require.NoError(t, err)
		assert.NotEmpty(t, walk.ID)

		assert.Len(t, env.localWalks(t), 1)
		assert.Empty(t, env.queue(t))
		assert.Empty(t, env.api.CreateWalkCalls())
		assert.Len(t, env.engine.Snapshot().Walks, 1)
	})

	t.Run("authenticated offline queues silently", func(t *testing.T) {
		env := newTestEnv(t)
		env.signIn(t)
		require.NoError(t, env.engine.SetOnline(ctx, false))

		_, err := env.engine.CreateWalk(ctx, models.Walk{Date: "2024-01-05", Distance: 2.5, TimeElapsed: 40})
		require.NoError(t, err)

		assert.Len(t, env.localWalks(t), 1)
		queue := env.queue(t)
		require.Len(t, queue, 1)
		assert.Equal(t, models.QueueCreate, queue[0].Action)
		assert.Empty(t, env.api.CreateWalkCalls())
		assert.Equal(t, 1, env.engine.Snapshot().Pending)
	})

	t.Run("authenticated online, server unreachable", func(t *testing.T) {
		env := newTestEnv(t)
		env.signIn(t)
		env.remote.setDown(true)

		_, err := env.engine.CreateWalk(ctx, models.Walk{Date: "2024-01-05", Distance: 2.5, TimeElapsed: 40})

		var rwErr *RemoteWriteError
		require.ErrorAs(t, err, &rwErr)
		assert.True(t, rwErr.Queued)
		assert.ErrorIs(t, err, api.ErrNetwork)

		assert.Len(t, env.localWalks(t), 1)
		assert.Len(t, env.queue(t), 1)
		st := env.engine.Snapshot()
		assert.False(t, st.Online)
		assert.Len(t, st.Walks, 1)
	})

	t.Run("authenticated online, server error", func(t *testing.T) {
		env := newTestEnv(t)
		env.signIn(t)
		env.remote.setFailOn(func(op string) error {
			if op == "create" {
				return fmt.Errorf("create walk: %w", api.ErrServer)
			}
			return nil
		})

		_, err := env.engine.CreateWalk(ctx, models.Walk{Date: "2024-01-05", Distance: 2.5, TimeElapsed: 40})

		var rwErr *RemoteWriteError
		require.ErrorAs(t, err, &rwErr)
		assert.True(t, rwErr.Queued)
		assert.Len(t, env.localWalks(t), 1)
		assert.Len(t, env.queue(t), 1)
		// Сервер отвечает, просто с ошибкой: офлайн не включается
		assert.True(t, env.engine.Snapshot().Online)
	})

	t.Run("authenticated online, success", func(t *testing.T) {
		env := newTestEnv(t)
		env.signIn(t)

		_, err := env.engine.CreateWalk(ctx, models.Walk{Date: "2024-01-05", Distance: 2.5, TimeElapsed: 40})
		require.NoError(t, err)

		assert.Len(t, env.remote.stored(), 1)
		local := env.localWalks(t)
		require.Len(t, local, 1)
		// После успешной записи локальная копия перезагружена с сервера
		assert.Equal(t, "srv-1", local[0].ID)
		assert.Empty(t, env.queue(t))
	})
}

func TestCreateWalk_Validation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.engine.CreateWalk(context.Background(), models.Walk{Date: "2024-01-05", Distance: 0, TimeElapsed: 40})

	require.Error(t, err)
	assert.True(t, validation.IsValidationError(err))
	assert.Empty(t, env.localWalks(t))
}

func TestCreateWalk_LocalPersistenceFailureIsFatal(t *testing.T) {
	remote := &fakeRemote{}
	client := remote.client()
	walks := &storage.WalkStorageMock{
		AppendWalkFunc: func(ctx context.Context, walk models.Walk) error {
			return errors.New("disk full")
		},
	}
	authMock := &auth.ServiceMock{}
	engine := NewEngine(client, authMock, walks, &storage.QueueStorageMock{}, &storage.MetadataStorageMock{}, slog.New(slog.DiscardHandler))

	_, err := engine.CreateWalk(context.Background(), models.Walk{Date: "2024-01-05", Distance: 1, TimeElapsed: 10})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	var rwErr *RemoteWriteError
	assert.False(t, errors.As(err, &rwErr))
	assert.Empty(t, client.CreateWalkCalls())
}

// Повторная отправка той же тройки дает конфликт и не создает вторую запись
func TestCreateWalk_Deduplication(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.remote.seed(models.Walk{Date: "2024-01-05", Distance: 2.5, TimeElapsed: 40})
	env.signIn(t)

	_, err := env.engine.CreateWalk(ctx, models.Walk{Date: "2024-01-05", Distance: 2.5, TimeElapsed: 40})

	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrConflict)
	var rwErr *RemoteWriteError
	require.ErrorAs(t, err, &rwErr)
	assert.False(t, rwErr.Queued)

	assert.Len(t, env.remote.stored(), 1)
	assert.Empty(t, env.queue(t))
	// Сервер авторитетен: локально одна запись
	assert.Len(t, env.localWalks(t), 1)
}

func TestCreateWalk_InFlightGuard(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.signIn(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	inner := env.api.CreateWalkFunc
	env.api.CreateWalkFunc = func(ctx context.Context, token string, walk models.Walk) (*models.Walk, error) {
		close(entered)
		<-release
		return inner(ctx, token, walk)
	}

	walk := models.Walk{Date: "2024-01-05", Distance: 2.5, TimeElapsed: 40}

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = env.engine.CreateWalk(ctx, walk)
	}()

	<-entered
	_, err := env.engine.CreateWalk(ctx, walk)
	assert.ErrorIs(t, err, ErrInFlight)

	close(release)
	wg.Wait()
	require.NoError(t, firstErr)

	assert.Len(t, env.remote.stored(), 1)
	assert.Len(t, env.api.CreateWalkCalls(), 1)
}

// Загрузка с сервера заменяет локальную копию, а не сливается с ней
func TestLoad_IdempotentReplace(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.remote.seed(
		models.Walk{Date: "2024-01-05", Distance: 2.5, TimeElapsed: 40},
		models.Walk{Date: "2024-01-06", Distance: 1, TimeElapsed: 15},
	)
	require.NoError(t, env.store.SaveWalks(ctx, []models.Walk{models.NewWalk("2023-12-31", 9, 99)}))
	env.signIn(t)

	require.NoError(t, env.engine.Load(ctx))
	first := env.localWalks(t)
	assert.Equal(t, triples(env.remote.stored()), triples(first))

	require.NoError(t, env.engine.Load(ctx))
	second := env.localWalks(t)
	assert.Equal(t, first, second)
	assert.Equal(t, second, env.engine.Snapshot().Walks)
}

// Операция, поставленная в очередь после 5xx, не теряется при следующей
// успешной записи: серверная копия не перезаписывает локальную
func TestLoad_KeepsLocalCopyWhileQueuePending(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.signIn(t)

	failed := false
	env.remote.setFailOn(func(op string) error {
		if op == "create" && !failed {
			failed = true
			return fmt.Errorf("create walk: %w", api.ErrServer)
		}
		return nil
	})

	queued := models.Walk{Date: "2024-01-05", Distance: 3, TimeElapsed: 30}
	_, err := env.engine.CreateWalk(ctx, queued)
	var rwErr *RemoteWriteError
	require.ErrorAs(t, err, &rwErr)
	require.True(t, rwErr.Queued)

	next := models.Walk{Date: "2024-01-06", Distance: 3, TimeElapsed: 30}
	_, err = env.engine.CreateWalk(ctx, next)
	require.NoError(t, err)

	want := triples([]models.Walk{queued, next})
	assert.Equal(t, want, triples(env.localWalks(t)))
	st := env.engine.Snapshot()
	assert.Equal(t, want, triples(st.Walks))
	assert.Equal(t, 1, st.Pending)
	assert.Len(t, env.remote.stored(), 1)

	// После повтора очереди серверная копия снова заменяет локальную
	result, err := env.engine.ProcessQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Replayed)
	assert.Empty(t, env.queue(t))
	assert.Equal(t, want, triples(env.remote.stored()))
	assert.Equal(t, want, triples(env.localWalks(t)))
}

func TestLoad_Fallbacks(t *testing.T) {
	ctx := context.Background()
	local := []models.Walk{models.NewWalk("2024-01-01", 1, 10)}

	t.Run("offline reads local", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.store.SaveWalks(ctx, local))

		require.NoError(t, env.engine.Load(ctx))
		assert.Len(t, env.engine.Snapshot().Walks, 1)
		assert.Empty(t, env.api.ListWalksCalls())
	})

	t.Run("server failure falls back without error", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.store.SaveWalks(ctx, local))
		env.signIn(t)
		env.remote.setFailOn(func(op string) error {
			if op == "list" {
				return fmt.Errorf("list walks: %w", api.ErrServer)
			}
			return nil
		})

		require.NoError(t, env.engine.Load(ctx))
		st := env.engine.Snapshot()
		assert.Len(t, st.Walks, 1)
		assert.Equal(t, AuthVerified, st.Auth)
	})

	t.Run("rejected token clears auth, keeps data", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.store.SaveWalks(ctx, local))
		env.signIn(t)
		env.remote.setRejects(true)

		require.NoError(t, env.engine.Load(ctx))
		st := env.engine.Snapshot()
		assert.Equal(t, AuthRejected, st.Auth)
		assert.Nil(t, st.User)
		assert.Len(t, st.Walks, 1)

		_, err := env.store.GetAuth(ctx)
		assert.ErrorIs(t, err, storage.ErrAuthNotFound)
	})
}

func TestCheckAuth(t *testing.T) {
	ctx := context.Background()
	saveSession := func(t *testing.T, env *testEnv) {
		require.NoError(t, env.store.SaveAuth(ctx, &storage.AuthData{Token: "token-1", UserID: testUser.ID, Email: testUser.Email}))
	}

	t.Run("no session", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.engine.CheckAuth(ctx))
		assert.Equal(t, AuthNone, env.engine.Snapshot().Auth)
	})

	t.Run("offline trusts stored token", func(t *testing.T) {
		env := newTestEnv(t)
		saveSession(t, env)

		require.NoError(t, env.engine.CheckAuth(ctx))
		st := env.engine.Snapshot()
		assert.Equal(t, AuthUnverified, st.Auth)
		require.NotNil(t, st.User)
		assert.Equal(t, testUser.Email, st.User.Email)
		assert.Empty(t, env.api.VerifyCalls())
	})

	t.Run("network error keeps token", func(t *testing.T) {
		env := newTestEnv(t)
		saveSession(t, env)
		require.NoError(t, env.engine.SetOnline(ctx, true))
		env.remote.setDown(true)

		require.NoError(t, env.engine.CheckAuth(ctx))
		assert.Equal(t, AuthUnverified, env.engine.Snapshot().Auth)
		_, err := env.store.GetAuth(ctx)
		assert.NoError(t, err)
	})

	t.Run("explicit rejection discards token", func(t *testing.T) {
		env := newTestEnv(t)
		saveSession(t, env)
		require.NoError(t, env.engine.SetOnline(ctx, true))
		env.remote.setRejects(true)

		require.NoError(t, env.engine.CheckAuth(ctx))
		assert.Equal(t, AuthRejected, env.engine.Snapshot().Auth)
		_, err := env.store.GetAuth(ctx)
		assert.ErrorIs(t, err, storage.ErrAuthNotFound)
	})

	t.Run("server error discards token", func(t *testing.T) {
		for _, kind := range []error{api.ErrServer, api.ErrNotFound} {
			env := newTestEnv(t)
			saveSession(t, env)
			require.NoError(t, env.engine.SetOnline(ctx, true))
			env.remote.setFailOn(func(op string) error {
				if op == "verify" {
					return fmt.Errorf("verify token: %w", kind)
				}
				return nil
			})

			require.NoError(t, env.engine.CheckAuth(ctx))
			assert.Equal(t, AuthRejected, env.engine.Snapshot().Auth, kind.Error())
			_, err := env.store.GetAuth(ctx)
			assert.ErrorIs(t, err, storage.ErrAuthNotFound)
		}
	})

	t.Run("storage failure is returned", func(t *testing.T) {
		authMock := &auth.ServiceMock{
			CurrentFunc: func(ctx context.Context) (*auth.Session, error) {
				return nil, errors.New("bolt: database not open")
			},
		}
		engine := NewEngine(&api.ClientAPIMock{}, authMock, &storage.WalkStorageMock{}, &storage.QueueStorageMock{}, &storage.MetadataStorageMock{}, nil)

		err := engine.CheckAuth(ctx)
		assert.ErrorContains(t, err, "database not open")
	})
}

// Очередь [create A, create B] повторяется строго в порядке добавления
func TestProcessQueue_FIFO(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.signIn(t)
	require.NoError(t, env.engine.SetOnline(ctx, false))

	a := models.Walk{Date: "2024-01-05", Distance: 2.5, TimeElapsed: 40}
	b := models.Walk{Date: "2024-01-06", Distance: 1.2, TimeElapsed: 20}
	_, err := env.engine.CreateWalk(ctx, a)
	require.NoError(t, err)
	_, err = env.engine.CreateWalk(ctx, b)
	require.NoError(t, err)
	require.Len(t, env.queue(t), 2)

	// Переход в онлайн запускает повтор очереди
	require.NoError(t, env.engine.SetOnline(ctx, true))

	calls := env.api.CreateWalkCalls()
	require.Len(t, calls, 2)
	assert.True(t, calls[0].Walk.Matches(a))
	assert.True(t, calls[1].Walk.Matches(b))

	assert.Empty(t, env.queue(t))
	assert.Equal(t, triples(env.remote.stored()), triples(env.localWalks(t)))
	st := env.engine.Snapshot()
	assert.Equal(t, 0, st.Pending)
	assert.Len(t, st.Walks, 2)

	last, err := env.engine.LastSync(ctx)
	require.NoError(t, err)
	assert.False(t, last.IsZero())
}

func TestProcessQueue_StopsOnFailureAndKeepsQueue(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.signIn(t)
	require.NoError(t, env.engine.SetOnline(ctx, false))

	a := models.Walk{Date: "2024-01-05", Distance: 2.5, TimeElapsed: 40}
	b := models.Walk{Date: "2024-01-06", Distance: 1.2, TimeElapsed: 20}
	_, err := env.engine.CreateWalk(ctx, a)
	require.NoError(t, err)
	_, err = env.engine.CreateWalk(ctx, b)
	require.NoError(t, err)

	creates := 0
	env.remote.setFailOn(func(op string) error {
		if op != "create" {
			return nil
		}
		creates++
		if creates == 2 {
			return fmt.Errorf("create walk: %w", api.ErrServer)
		}
		return nil
	})

	err = env.engine.SetOnline(ctx, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrServer)

	// Очередь не очищается частично
	assert.Len(t, env.queue(t), 2)
	assert.Len(t, env.remote.stored(), 1)
	// Локальная копия не перезаписана сервером
	assert.Len(t, env.localWalks(t), 2)

	// Повтор: A уже на сервере (конфликт безвреден), B доходит
	env.remote.setFailOn(nil)
	result, err := env.engine.ProcessQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Replayed)
	assert.Equal(t, 1, result.Skipped)
	assert.Empty(t, env.queue(t))
	assert.Len(t, env.remote.stored(), 2)
}

func TestProcessQueue_NotRemote(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.store.Enqueue(context.Background(), models.NewQueueEntry(models.QueueDeleteAll, nil)))

	result, err := env.engine.ProcessQueue(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.Replayed)
	assert.Len(t, env.queue(t), 1)
	assert.Empty(t, env.api.DeleteAllWalksCalls())
}

func TestDeleteWalk(t *testing.T) {
	ctx := context.Background()
	walk := models.Walk{Date: "2024-01-05", Distance: 2.5, TimeElapsed: 40}

	t.Run("online deletes remotely", func(t *testing.T) {
		env := newTestEnv(t)
		env.remote.seed(walk)
		env.signIn(t)
		require.NoError(t, env.engine.Load(ctx))

		err := env.engine.DeleteWalk(ctx, models.Walk{Date: "2024-01-05", Distance: 2.504, TimeElapsed: 40})
		require.NoError(t, err)

		assert.Empty(t, env.remote.stored())
		assert.Empty(t, env.localWalks(t))
		require.Len(t, env.api.DeleteWalkCalls(), 1)
	})

	t.Run("adjacent hundredths are different walks", func(t *testing.T) {
		env := newTestEnv(t)
		env.signIn(t)

		lower := models.Walk{Date: "2024-01-05", Distance: 3.00, TimeElapsed: 30}
		upper := models.Walk{Date: "2024-01-05", Distance: 3.01, TimeElapsed: 30}
		_, err := env.engine.CreateWalk(ctx, lower)
		require.NoError(t, err)
		_, err = env.engine.CreateWalk(ctx, upper)
		require.NoError(t, err)
		require.Len(t, env.remote.stored(), 2)

		require.NoError(t, env.engine.DeleteWalk(ctx, upper))

		want := triples([]models.Walk{lower})
		assert.Equal(t, want, triples(env.remote.stored()))
		assert.Equal(t, want, triples(env.localWalks(t)))
		assert.Equal(t, want, triples(env.engine.Snapshot().Walks))
	})

	t.Run("offline queues delete", func(t *testing.T) {
		env := newTestEnv(t)
		env.remote.seed(walk)
		env.signIn(t)
		require.NoError(t, env.engine.Load(ctx))
		require.NoError(t, env.engine.SetOnline(ctx, false))

		require.NoError(t, env.engine.DeleteWalk(ctx, walk))

		assert.Empty(t, env.localWalks(t))
		queue := env.queue(t)
		require.Len(t, queue, 1)
		assert.Equal(t, models.QueueDelete, queue[0].Action)
		assert.Len(t, env.remote.stored(), 1)

		require.NoError(t, env.engine.SetOnline(ctx, true))
		assert.Empty(t, env.remote.stored())
		assert.Empty(t, env.queue(t))
	})

	t.Run("missing on server is benign", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.store.SaveWalks(ctx, []models.Walk{models.NewWalk(walk.Date, walk.Distance, walk.TimeElapsed)}))
		env.signIn(t)

		require.NoError(t, env.engine.DeleteWalk(ctx, walk))
		assert.Empty(t, env.queue(t))
	})

	t.Run("missing locally", func(t *testing.T) {
		env := newTestEnv(t)
		err := env.engine.DeleteWalk(ctx, walk)
		assert.ErrorIs(t, err, storage.ErrWalkNotFound)
	})
}

func TestDeleteAllWalks(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.remote.seed(
		models.Walk{Date: "2024-01-05", Distance: 2.5, TimeElapsed: 40},
		models.Walk{Date: "2024-01-06", Distance: 1, TimeElapsed: 15},
	)
	env.signIn(t)
	require.NoError(t, env.engine.Load(ctx))
	require.NoError(t, env.engine.SetOnline(ctx, false))

	require.NoError(t, env.engine.DeleteAllWalks(ctx))
	assert.Empty(t, env.localWalks(t))
	assert.Len(t, env.remote.stored(), 2)

	require.NoError(t, env.engine.SetOnline(ctx, true))
	assert.Empty(t, env.remote.stored())
	assert.Len(t, env.api.DeleteAllWalksCalls(), 1)
}

func TestLogin_BulkSync(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.remote.seed(models.Walk{Date: "2024-01-05", Distance: 2.5, TimeElapsed: 40})

	// Прогулки, накопленные без входа
	for _, w := range []models.Walk{
		{Date: "2024-01-05", Distance: 2.5, TimeElapsed: 40},
		{Date: "2024-01-07", Distance: 3, TimeElapsed: 50},
	} {
		_, err := env.engine.CreateWalk(ctx, w)
		require.NoError(t, err)
	}

	result, err := env.engine.Login(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)
	require.NotNil(t, result.Sync)
	assert.Equal(t, 1, result.Sync.Added)
	assert.Equal(t, 1, result.Sync.Skipped)
	assert.Equal(t, 2, result.Sync.Total)

	st := env.engine.Snapshot()
	assert.Equal(t, AuthVerified, st.Auth)
	assert.True(t, st.Online)
	assert.Len(t, st.Walks, 2)
	assert.Len(t, env.remote.stored(), 2)
}

func TestLogin_BulkSyncFailureDoesNotFailLogin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	_, err := env.engine.CreateWalk(ctx, models.Walk{Date: "2024-01-05", Distance: 2.5, TimeElapsed: 40})
	require.NoError(t, err)

	env.remote.setFailOn(func(op string) error {
		if op == "sync" {
			return fmt.Errorf("sync walks: %w", api.ErrServer)
		}
		return nil
	})

	result, err := env.engine.Login(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)
	assert.Nil(t, result.Sync)
	assert.Equal(t, AuthVerified, env.engine.Snapshot().Auth)
}

func TestLogin_Rejected(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.engine.Login(context.Background(), "alice@example.com", "wrong-password")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrUnauthorized)
	assert.Equal(t, AuthNone, env.engine.Snapshot().Auth)
}

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.engine.Register(context.Background(), "alice@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, testUser.ID, result.User.ID)

	session, err := env.store.GetAuth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-new", session.Token)
}

func TestLogout_KeepsLocalData(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.remote.seed(models.Walk{Date: "2024-01-05", Distance: 2.5, TimeElapsed: 40})
	env.signIn(t)
	require.NoError(t, env.engine.Load(ctx))

	require.NoError(t, env.engine.Logout(ctx))

	st := env.engine.Snapshot()
	assert.Equal(t, AuthNone, st.Auth)
	assert.Len(t, st.Walks, 1)
	assert.Len(t, env.api.LogoutCalls(), 1)
}

func TestImportWalks(t *testing.T) {
	ctx := context.Background()

	input := []models.Walk{
		{Date: "2024-01-05", Distance: 2.5, TimeElapsed: 40},
		{Date: "2024-01-05", Distance: 2.5, TimeElapsed: 40},
		{Date: "2024-01-05", Distance: 1, TimeElapsed: 10},
		{Date: "2024-01-06", Distance: 3, TimeElapsed: 45},
	}

	t.Run("local only", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.engine.CreateWalk(ctx, models.Walk{Date: "2024-01-06", Distance: 3, TimeElapsed: 45})
		require.NoError(t, err)

		result, err := env.engine.ImportWalks(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Imported)
		assert.Equal(t, 2, result.Skipped)
		assert.Zero(t, result.Queued)
		assert.Len(t, env.localWalks(t), 3)
	})

	t.Run("online sends one batch", func(t *testing.T) {
		env := newTestEnv(t)
		env.signIn(t)

		result, err := env.engine.ImportWalks(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, 3, result.Imported)
		assert.Equal(t, 3, result.Synced)
		require.Len(t, env.api.SyncWalksCalls(), 1)
		assert.Len(t, env.remote.stored(), 3)
	})

	t.Run("offline queues each walk", func(t *testing.T) {
		env := newTestEnv(t)
		env.signIn(t)
		require.NoError(t, env.engine.SetOnline(ctx, false))

		result, err := env.engine.ImportWalks(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, 3, result.Queued)
		assert.Len(t, env.queue(t), 3)
	})

	t.Run("invalid walk aborts import", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.engine.ImportWalks(ctx, []models.Walk{{Date: "2024-01-05", Distance: -1, TimeElapsed: 10}})
		require.Error(t, err)
		assert.True(t, validation.IsValidationError(err))
		assert.Empty(t, env.localWalks(t))
	})
}

func TestStart_ReplaysQueueBeforeLoading(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.store.SaveAuth(ctx, &storage.AuthData{Token: "token-1", UserID: testUser.ID}))

	// Прогулка, созданная в прошлом запуске без связи
	offline := models.NewWalk("2024-01-05", 2.5, 40)
	require.NoError(t, env.store.AppendWalk(ctx, offline))
	require.NoError(t, env.store.Enqueue(ctx, models.NewQueueEntry(models.QueueCreate, &offline)))

	require.NoError(t, env.engine.SetOnline(ctx, true))
	require.NoError(t, env.engine.Start(ctx))

	st := env.engine.Snapshot()
	assert.Equal(t, AuthVerified, st.Auth)
	assert.Len(t, st.Walks, 1)
	assert.Equal(t, 0, st.Pending)
	assert.Len(t, env.remote.stored(), 1)
}

func TestSetOnline_VerifiesUnverifiedSession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.store.SaveAuth(ctx, &storage.AuthData{Token: "token-1"}))

	require.NoError(t, env.engine.Start(ctx))
	assert.Equal(t, AuthUnverified, env.engine.Snapshot().Auth)

	env.remote.setRejects(true)
	require.NoError(t, env.engine.SetOnline(ctx, true))
	assert.Equal(t, AuthRejected, env.engine.Snapshot().Auth)
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	var (
		mu     sync.Mutex
		states []State
	)
	unsubscribe := env.engine.Subscribe(func(st State) {
		mu.Lock()
		defer mu.Unlock()
		states = append(states, st)
	})

	_, err := env.engine.CreateWalk(ctx, models.Walk{Date: "2024-01-05", Distance: 2.5, TimeElapsed: 40})
	require.NoError(t, err)

	mu.Lock()
	require.NotEmpty(t, states)
	assert.Len(t, states[len(states)-1].Walks, 1)
	count := len(states)
	mu.Unlock()

	unsubscribe()
	_, err = env.engine.CreateWalk(ctx, models.Walk{Date: "2024-01-06", Distance: 1, TimeElapsed: 10})
	require.NoError(t, err)

	mu.Lock()
	assert.Equal(t, count, len(states))
	mu.Unlock()
}

func TestSnapshot_IsACopy(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	_, err := env.engine.CreateWalk(ctx, models.Walk{Date: "2024-01-05", Distance: 2.5, TimeElapsed: 40})
	require.NoError(t, err)

	st := env.engine.Snapshot()
	st.Walks[0].Distance = 100

	assert.Equal(t, 2.5, env.engine.Snapshot().Walks[0].Distance)
}

func TestRemoteStats(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.engine.RemoteStats(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	env.remote.seed(models.Walk{Date: "2024-01-05", Distance: 2.5, TimeElapsed: 40})
	env.signIn(t)

	stats, err := env.engine.RemoteStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalWalks)

	require.NoError(t, env.engine.SetOnline(ctx, false))
	_, err = env.engine.RemoteStats(ctx)
	assert.ErrorIs(t, err, ErrOffline)
}

func TestRemoteWriteError(t *testing.T) {
	inner := fmt.Errorf("create walk: %w", api.ErrNetwork)

	queued := &RemoteWriteError{Op: "create", Err: inner, Queued: true}
	assert.Contains(t, queued.Error(), "queued")
	assert.ErrorIs(t, queued, api.ErrNetwork)

	failed := &RemoteWriteError{Op: "create", Err: inner}
	assert.Contains(t, failed.Error(), "failed")
}
