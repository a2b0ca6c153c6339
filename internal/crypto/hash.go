// Package crypto хеширует и проверяет пароли пользователей.
package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Допустимая стоимость bcrypt
const (
	DefaultCost = 12
	MinCost     = bcrypt.MinCost
	MaxCost     = bcrypt.MaxCost
)

// ErrPasswordMismatch пароль не совпадает с хешем
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword хеширует пароль через bcrypt с указанной стоимостью.
// Стоимость вне допустимого диапазона заменяется на DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	if cost < MinCost || cost > MaxCost {
		cost = DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword сравнивает пароль с сохраненным хешем
func VerifyPassword(password, hash string) error {
	if hash == "" {
		return errors.New("password hash cannot be empty")
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	if err != nil {
		return fmt.Errorf("failed to verify password: %w", err)
	}

	return nil
}
