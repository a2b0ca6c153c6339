package validation

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/iudanet/walklog/internal/models"
)

const (
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 6
	// MinDistance минимальная дистанция прогулки
	MinDistance = 0.01
	// MinTimeElapsed минимальная длительность прогулки в минутах
	MinTimeElapsed = 1
)

// Error ошибка валидации входных данных
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidationError сообщает, является ли err ошибкой валидации
func IsValidationError(err error) bool {
	var vErr *Error
	return errors.As(err, &vErr)
}

func newError(field, format string, args ...any) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

// NormalizeEmail приводит email к каноническому виду
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail проверяет email и возвращает нормализованное значение
func ValidateEmail(email string) (string, error) {
	normalized := NormalizeEmail(email)
	if normalized == "" {
		return "", newError("email", "cannot be empty")
	}

	addr, err := mail.ParseAddress(normalized)
	if err != nil || addr.Address != normalized {
		return "", newError("email", "must be a valid email address")
	}

	// mail.ParseAddress допускает адреса без домена верхнего уровня
	at := strings.LastIndex(normalized, "@")
	if !strings.Contains(normalized[at+1:], ".") {
		return "", newError("email", "must be a valid email address")
	}

	return normalized, nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return newError("password", "cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return newError("password", "must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidateWalk проверяет поля прогулки
func ValidateWalk(w models.Walk) error {
	if w.Date.IsZero() {
		return newError("date", "is required")
	}
	if _, err := models.ParseDate(string(w.Date)); err != nil {
		return newError("date", "must be a valid date in YYYY-MM-DD format")
	}

	if w.Distance < MinDistance {
		return newError("distance", "must be a positive number of at least %.2f", MinDistance)
	}

	if w.TimeElapsed < MinTimeElapsed {
		return newError("timeElapsed", "must be a positive integer of at least %d", MinTimeElapsed)
	}

	return nil
}
