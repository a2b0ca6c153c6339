package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Классы ошибок удаленного сервиса. Проверяются через errors.Is.
var (
	// ErrNetwork сервер недоступен: обрыв соединения, таймаут, DNS
	ErrNetwork = errors.New("network error")

	// ErrValidation сервер отклонил входные данные (400)
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized сервер явно отверг учетные данные или токен (401, 403)
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound запись не найдена (404)
	ErrNotFound = errors.New("not found")

	// ErrConflict запись уже существует (409)
	ErrConflict = errors.New("conflict")

	// ErrServer ошибка на стороне сервера (5xx) или неожиданный ответ
	ErrServer = errors.New("server error")
)

// Error ошибка обращения к удаленному сервису
type Error struct {
	kind       error
	Err        error  // исходная ошибка транспорта, если была
	Op         string // операция клиента, например "create walk"
	Message    string // сообщение сервера
	StatusCode int    // 0 для сетевых ошибок
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Op, e.kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (%d)", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap позволяет errors.Is находить как класс ошибки, так и исходную ошибку
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.Err}
}

// Kind возвращает класс ошибки (одна из Err* переменных пакета)
func (e *Error) Kind() error {
	return e.kind
}

// kindForStatus сопоставляет HTTP статус классу ошибки
func kindForStatus(status int) error {
	switch {
	case status == http.StatusBadRequest:
		return ErrValidation
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return ErrUnauthorized
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusConflict:
		return ErrConflict
	default:
		return ErrServer
	}
}

func networkError(op string, err error) *Error {
	return &Error{kind: ErrNetwork, Op: op, Err: err}
}

func statusError(op string, status int, message string) *Error {
	return &Error{kind: kindForStatus(status), Op: op, StatusCode: status, Message: message}
}

// IsRetryable сообщает, имеет ли смысл повторить операцию позже:
// сервер недоступен или вернул 5xx
func IsRetryable(err error) bool {
	return errors.Is(err, ErrNetwork) || errors.Is(err, ErrServer)
}

// IsServerResponse сообщает, что сервер ответил, но не 2xx.
// Сетевые ошибки и отмена контекста сюда не относятся.
func IsServerResponse(err error) bool {
	for _, kind := range []error{ErrValidation, ErrUnauthorized, ErrNotFound, ErrConflict, ErrServer} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
