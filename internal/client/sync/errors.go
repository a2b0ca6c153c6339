package sync

import (
	"errors"
	"fmt"
)

var (
	// ErrInFlight та же прогулка уже сохраняется параллельным вызовом
	ErrInFlight = errors.New("walk is already being saved")

	// ErrNotAuthenticated операция требует активной сессии
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrOffline операция требует доступного сервера
	ErrOffline = errors.New("server is not reachable")
)

// RemoteWriteError сообщает, что локальная запись выполнена,
// а удаленная нет. Локальное изменение при этом не откатывается.
type RemoteWriteError struct {
	Err    error
	Op     string
	Queued bool // операция поставлена в очередь и будет повторена
}

func (e *RemoteWriteError) Error() string {
	if e.Queued {
		return fmt.Sprintf("%s saved locally, server sync queued: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s saved locally, server sync failed: %v", e.Op, e.Err)
}

func (e *RemoteWriteError) Unwrap() error {
	return e.Err
}
