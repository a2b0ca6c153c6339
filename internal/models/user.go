package models

import "time"

// User представляет пользователя в системе
type User struct {
	CreatedAt    time.Time `json:"created_at"`    // время создания
	UpdatedAt    time.Time `json:"updated_at"`    // время последнего обновления
	ID           string    `json:"id"`            // UUID пользователя
	Email        string    `json:"email"`         // уникальный email (нормализованный)
	PasswordHash string    `json:"password_hash"` // bcrypt хеш пароля
}

// RevokedToken представляет отозванный access token.
// Токен идентифицируется по claim jti и хранится до истечения срока действия.
type RevokedToken struct {
	ExpiresAt time.Time `json:"expires_at"` // время истечения самого токена
	RevokedAt time.Time `json:"revoked_at"` // время отзыва
	JTI       string    `json:"jti"`        // ID токена (claim jti)
	UserID    string    `json:"user_id"`    // ID пользователя
}
