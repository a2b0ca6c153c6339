package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/walklog/internal/client/api"
	"github.com/iudanet/walklog/internal/client/storage"
	"github.com/iudanet/walklog/internal/validation"
	pkgapi "github.com/iudanet/walklog/pkg/api"
)

// service реализует Service поверх API клиента и локального хранилища сессии
type service struct {
	apiClient api.ClientAPI
	store     storage.AuthStorage
	logger    *slog.Logger
}

// Compile-time check
var _ Service = (*service)(nil)

// NewService создает новый сервис авторизации
func NewService(apiClient api.ClientAPI, store storage.AuthStorage, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		apiClient: apiClient,
		store:     store,
		logger:    logger,
	}
}

// Register регистрирует нового пользователя
func (s *service) Register(ctx context.Context, email, password string) (*Session, error) {
	email, err := validateCredentials(email, password)
	if err != nil {
		return nil, err
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return s.save(ctx, resp)
}

// Login выполняет аутентификацию пользователя
func (s *service) Login(ctx context.Context, email, password string) (*Session, error) {
	email, err := validateCredentials(email, password)
	if err != nil {
		return nil, err
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	return s.save(ctx, resp)
}

// Current возвращает сохраненную сессию
func (s *service) Current(ctx context.Context) (*Session, error) {
	data, err := s.store.GetAuth(ctx)
	if err != nil {
		return nil, err
	}

	return &Session{
		Token: data.Token,
		User:  pkgapi.User{ID: data.UserID, Email: data.Email},
	}, nil
}

// Verify проверяет сохраненный токен на сервере
func (s *service) Verify(ctx context.Context) (*Session, error) {
	session, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.apiClient.Verify(ctx, session.Token)
	if err != nil {
		return session, fmt.Errorf("token verification failed: %w", err)
	}

	session.User = resp.User
	return session, nil
}

// Logout выполняет выход из системы
func (s *service) Logout(ctx context.Context) error {
	data, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			s.logger.DebugContext(ctx, "no auth data found during logout")
			return nil
		}
		return fmt.Errorf("failed to get auth data: %w", err)
	}

	// Уведомляем сервер; недоступность сервера не мешает выходу
	if err := s.apiClient.Logout(ctx, data.Token); err != nil {
		s.logger.WarnContext(ctx, "failed to logout on server", slog.Any("error", err))
	}

	return s.Discard(ctx)
}

// Discard удаляет локальную сессию
func (s *service) Discard(ctx context.Context) error {
	if err := s.store.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete local auth data: %w", err)
	}
	return nil
}

func (s *service) save(ctx context.Context, resp *pkgapi.AuthResponse) (*Session, error) {
	data := &storage.AuthData{
		Token:   resp.Token,
		UserID:  resp.User.ID,
		Email:   resp.User.Email,
		SavedAt: time.Now().Unix(),
	}
	if err := s.store.SaveAuth(ctx, data); err != nil {
		return nil, fmt.Errorf("failed to save auth data: %w", err)
	}

	s.logger.InfoContext(ctx, "session saved", slog.String("user_id", resp.User.ID))

	return &Session{Token: resp.Token, User: resp.User}, nil
}

func validateCredentials(email, password string) (string, error) {
	email, err := validation.ValidateEmail(email)
	if err != nil {
		return "", err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return "", err
	}
	return email, nil
}
