package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/iudanet/walklog/internal/client/iocli"
	"github.com/iudanet/walklog/internal/client/storage"
	clientsync "github.com/iudanet/walklog/internal/client/sync"
	"github.com/iudanet/walklog/internal/models"
	pkgapi "github.com/iudanet/walklog/pkg/api"
)

//go:generate moq -out engine_mock.go . Engine Watcher

// PasswordEnv переменная окружения с паролем учетной записи
const PasswordEnv = "WALKLOG_PASSWORD"

// Engine операции движка синхронизации, которые использует CLI
type Engine interface {
	Start(ctx context.Context) error
	Snapshot() clientsync.State
	Login(ctx context.Context, email, password string) (*clientsync.LoginResult, error)
	Register(ctx context.Context, email, password string) (*clientsync.LoginResult, error)
	Logout(ctx context.Context) error
	CreateWalk(ctx context.Context, walk models.Walk) (models.Walk, error)
	DeleteWalk(ctx context.Context, walk models.Walk) error
	DeleteAllWalks(ctx context.Context) error
	ImportWalks(ctx context.Context, walks []models.Walk) (*clientsync.ImportResult, error)
	ProcessQueue(ctx context.Context) (*clientsync.ReplayResult, error)
	Load(ctx context.Context) error
	SetOnline(ctx context.Context, online bool) error
	LastSync(ctx context.Context) (time.Time, error)
	RemoteStats(ctx context.Context) (*pkgapi.StatsResponse, error)
	Subscribe(fn func(clientsync.State)) func()
}

// Watcher монитор доступности сервера
type Watcher interface {
	Probe(ctx context.Context) bool
	Run(ctx context.Context) error
}

// Credentials источники учетных данных для register и login
type Credentials struct {
	Email        string
	PasswordFile string
}

// Cli исполняет команды клиента поверх движка синхронизации
type Cli struct {
	io      iocli.IO
	engine  Engine
	goals   storage.GoalStorage
	watcher Watcher
	now     func() time.Time
}

// New создает Cli
func New(io iocli.IO, engine Engine, goals storage.GoalStorage, watcher Watcher) *Cli {
	return &Cli{
		io:      io,
		engine:  engine,
		goals:   goals,
		watcher: watcher,
		now:     time.Now,
	}
}

// Start определяет доступность сервера и выполняет стартовую последовательность движка
func (c *Cli) Start(ctx context.Context) error {
	online := c.watcher.Probe(ctx)
	if err := c.engine.SetOnline(ctx, online); err != nil {
		return fmt.Errorf("failed to set connectivity: %w", err)
	}
	if err := c.engine.Start(ctx); err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	return nil
}

// readCredentials читает email и пароль.
// Пароль берется по приоритету: переменная окружения, файл, интерактивный ввод.
func (c *Cli) readCredentials(creds Credentials) (string, string, error) {
	email := strings.TrimSpace(creds.Email)
	if email == "" {
		var err error
		email, err = c.io.ReadInput("Email: ")
		if err != nil {
			return "", "", fmt.Errorf("failed to read email: %w", err)
		}
	}

	password, err := c.readPassword(creds.PasswordFile)
	if err != nil {
		return "", "", err
	}
	return email, password, nil
}

func (c *Cli) readPassword(passwordFile string) (string, error) {
	if envPassword := os.Getenv(PasswordEnv); envPassword != "" {
		return envPassword, nil
	}

	if passwordFile != "" {
		content, err := os.ReadFile(passwordFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", errors.New("password file is empty")
		}
		return password, nil
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	return password, nil
}

func (c *Cli) render(tmpl *template.Template, data any) error {
	if err := tmpl.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	return nil
}

// reportRemoteError печатает предупреждение о неудачной записи на сервер.
// Локальная запись при этом уже выполнена, поэтому команда не завершается ошибкой.
func (c *Cli) reportRemoteError(err error) error {
	var remoteErr *clientsync.RemoteWriteError
	if !errors.As(err, &remoteErr) {
		return err
	}
	if remoteErr.Queued {
		c.io.Println("⚠️  Server is unreachable, the change is queued and will be synced later.")
		return nil
	}
	c.io.Printf("⚠️  Saved locally, but the server rejected the change: %v\n", remoteErr.Err)
	return nil
}

func (c *Cli) today() models.Date {
	return models.DateOf(c.now())
}

func (c *Cli) requireSession() (clientsync.State, error) {
	st := c.engine.Snapshot()
	if !st.Auth.Authenticated() {
		return st, errors.New("not authenticated. Please run 'walklog login' first")
	}
	return st, nil
}
