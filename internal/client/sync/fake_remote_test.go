package sync

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/walklog/internal/client/api"
	"github.com/iudanet/walklog/internal/client/auth"
	"github.com/iudanet/walklog/internal/client/storage"
	"github.com/iudanet/walklog/internal/client/storage/boltdb"
	"github.com/iudanet/walklog/internal/models"
	pkgapi "github.com/iudanet/walklog/pkg/api"
)

var testUser = pkgapi.User{ID: "user-1", Email: "alice@example.com"}

// fakeRemote серверная копия в памяти с уникальностью по тройке
type fakeRemote struct {
	failOn  func(op string) error
	walks   []models.Walk
	mu      sync.Mutex
	nextID  int
	down    bool
	rejects bool
}

func (f *fakeRemote) setDown(down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.down = down
}

func (f *fakeRemote) setRejects(rejects bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejects = rejects
}

func (f *fakeRemote) setFailOn(fn func(op string) error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failOn = fn
}

func (f *fakeRemote) seed(walks ...models.Walk) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, w := range walks {
		f.add(w)
	}
}

func (f *fakeRemote) stored() []models.Walk {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Walk, len(f.walks))
	copy(out, f.walks)
	return out
}

// check вызывается под f.mu
func (f *fakeRemote) check(op string) error {
	if f.down {
		return fmt.Errorf("%s: dial tcp 127.0.0.1:3001: connection refused: %w", op, api.ErrNetwork)
	}
	if f.rejects && op != "health" {
		return fmt.Errorf("%s: %w", op, api.ErrUnauthorized)
	}
	if f.failOn != nil {
		return f.failOn(op)
	}
	return nil
}

// add вызывается под f.mu
func (f *fakeRemote) add(w models.Walk) bool {
	for _, existing := range f.walks {
		if existing.Matches(w) {
			return false
		}
	}
	f.nextID++
	w.ID = "srv-" + strconv.Itoa(f.nextID)
	f.walks = append(f.walks, w)
	return true
}

func (f *fakeRemote) client() *api.ClientAPIMock {
	return &api.ClientAPIMock{
		RegisterFunc: func(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.AuthResponse, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if err := f.check("register"); err != nil {
				return nil, err
			}
			return &pkgapi.AuthResponse{Token: "token-new", User: testUser}, nil
		},
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.AuthResponse, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.down {
				return nil, f.check("login")
			}
			if req.Password != "secret1" {
				return nil, fmt.Errorf("login: %w", api.ErrUnauthorized)
			}
			return &pkgapi.AuthResponse{Token: "token-1", User: testUser}, nil
		},
		VerifyFunc: func(ctx context.Context, token string) (*pkgapi.VerifyResponse, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if err := f.check("verify"); err != nil {
				return nil, err
			}
			return &pkgapi.VerifyResponse{User: testUser}, nil
		},
		LogoutFunc: func(ctx context.Context, token string) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			return f.check("logout")
		},
		ListWalksFunc: func(ctx context.Context, token string) ([]models.Walk, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if err := f.check("list"); err != nil {
				return nil, err
			}
			out := make([]models.Walk, len(f.walks))
			copy(out, f.walks)
			sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
			return out, nil
		},
		CreateWalkFunc: func(ctx context.Context, token string, walk models.Walk) (*models.Walk, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if err := f.check("create"); err != nil {
				return nil, err
			}
			if !f.add(walk) {
				return nil, fmt.Errorf("create walk: %w", api.ErrConflict)
			}
			created := f.walks[len(f.walks)-1]
			return &created, nil
		},
		SyncWalksFunc: func(ctx context.Context, token string, walks []models.Walk) (*pkgapi.SyncResponse, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if err := f.check("sync"); err != nil {
				return nil, err
			}
			resp := &pkgapi.SyncResponse{Total: len(walks)}
			for _, w := range walks {
				if f.add(w) {
					resp.Added++
				} else {
					resp.Skipped++
				}
			}
			return resp, nil
		},
		DeleteWalkFunc: func(ctx context.Context, token string, walk models.Walk) (*pkgapi.DeleteResponse, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if err := f.check("delete"); err != nil {
				return nil, err
			}
			kept := f.walks[:0]
			deleted := 0
			for _, w := range f.walks {
				if w.Matches(walk) {
					deleted++
					continue
				}
				kept = append(kept, w)
			}
			f.walks = kept
			if deleted == 0 {
				return nil, fmt.Errorf("delete walk: %w", api.ErrNotFound)
			}
			return &pkgapi.DeleteResponse{Deleted: deleted}, nil
		},
		DeleteAllWalksFunc: func(ctx context.Context, token string) (*pkgapi.DeleteResponse, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if err := f.check("deleteAll"); err != nil {
				return nil, err
			}
			n := len(f.walks)
			f.walks = nil
			return &pkgapi.DeleteResponse{Deleted: n}, nil
		},
		StatsFunc: func(ctx context.Context, token string) (*pkgapi.StatsResponse, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if err := f.check("stats"); err != nil {
				return nil, err
			}
			return &pkgapi.StatsResponse{TotalWalks: len(f.walks)}, nil
		},
		HealthFunc: func(ctx context.Context) (*pkgapi.HealthResponse, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if err := f.check("health"); err != nil {
				return nil, err
			}
			return &pkgapi.HealthResponse{Status: "OK"}, nil
		},
	}
}

type testEnv struct {
	engine *Engine
	remote *fakeRemote
	api    *api.ClientAPIMock
	store  *boltdb.Storage
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "engine.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	remote := &fakeRemote{}
	client := remote.client()
	logger := slog.New(slog.DiscardHandler)
	authService := auth.NewService(client, store, logger)

	return &testEnv{
		engine: NewEngine(client, authService, store, store, store, logger),
		remote: remote,
		api:    client,
		store:  store,
	}
}

// signIn сохраняет сессию и подтверждает ее через онлайн проверку
func (env *testEnv) signIn(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, env.store.SaveAuth(ctx, &storage.AuthData{Token: "token-1", UserID: testUser.ID, Email: testUser.Email}))
	require.NoError(t, env.engine.SetOnline(ctx, true))
	require.NoError(t, env.engine.CheckAuth(ctx))
	require.Equal(t, AuthVerified, env.engine.Snapshot().Auth)
}

func (env *testEnv) localWalks(t *testing.T) []models.Walk {
	t.Helper()
	walks, err := env.store.LoadWalks(context.Background())
	require.NoError(t, err)
	return walks
}

func (env *testEnv) queue(t *testing.T) []models.QueueEntry {
	t.Helper()
	entries, err := env.store.LoadQueue(context.Background())
	require.NoError(t, err)
	return entries
}

func triples(walks []models.Walk) []models.WalkKey {
	keys := make([]models.WalkKey, 0, len(walks))
	for _, w := range walks {
		keys = append(keys, w.Key())
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Date != keys[j].Date {
			return keys[i].Date < keys[j].Date
		}
		if keys[i].Distance != keys[j].Distance {
			return keys[i].Distance < keys[j].Distance
		}
		return keys[i].TimeElapsed < keys[j].TimeElapsed
	})
	return keys
}
