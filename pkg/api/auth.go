package api

import "time"

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Email    string `json:"email"`    // email пользователя (логин)
	Password string `json:"password"` // пароль в открытом виде, хешируется на сервере
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User описывает пользователя в ответах сервера.
// Используется клиентом только для отображения.
type User struct {
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	ID        string     `json:"id"`
	Email     string     `json:"email"`
}

// AuthResponse представляет ответ на успешную регистрацию или вход
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"` // JWT access token
	User    User   `json:"user"`
}

// VerifyResponse представляет ответ GET /api/auth/verify
type VerifyResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки (текст HTTP статуса)
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
}

// MessageResponse представляет ответ, содержащий только сообщение
type MessageResponse struct {
	Message string `json:"message"`
}
