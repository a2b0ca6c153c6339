package auth

import (
	"context"

	"github.com/iudanet/walklog/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service управляет сессией пользователя: вход, регистрация, проверка и выход.
// Сохраненный токен считается действительным, пока сервер явно его не отверг.
type Service interface {
	// Register регистрирует пользователя и сохраняет сессию
	Register(ctx context.Context, email, password string) (*Session, error)

	// Login выполняет вход и сохраняет сессию
	Login(ctx context.Context, email, password string) (*Session, error)

	// Current возвращает сохраненную сессию без обращения к серверу
	// Returns storage.ErrAuthNotFound if there is no session
	Current(ctx context.Context) (*Session, error)

	// Verify подтверждает сохраненный токен на сервере.
	// Ошибки сервера возвращаются как есть; решение об удалении сессии
	// принимает вызывающий код.
	Verify(ctx context.Context) (*Session, error)

	// Logout уведомляет сервер (best effort) и удаляет локальную сессию
	Logout(ctx context.Context) error

	// Discard удаляет локальную сессию без обращения к серверу
	Discard(ctx context.Context) error
}

// Session активная сессия пользователя
type Session struct {
	Token string
	User  api.User
}
