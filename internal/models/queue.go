package models

import (
	"time"

	"github.com/google/uuid"
)

// QueueAction тип отложенной удаленной операции
type QueueAction string

const (
	QueueCreate    QueueAction = "create"    // создание прогулки
	QueueDelete    QueueAction = "delete"    // удаление одной прогулки
	QueueDeleteAll QueueAction = "deleteAll" // удаление всех прогулок
)

// Valid проверяет, что действие известно
func (a QueueAction) Valid() bool {
	switch a {
	case QueueCreate, QueueDelete, QueueDeleteAll:
		return true
	}
	return false
}

// QueueEntry запись очереди синхронизации
type QueueEntry struct {
	EnqueuedAt time.Time   `json:"enqueuedAt"`
	Data       *Walk       `json:"data,omitempty"` // nil для deleteAll
	ID         string      `json:"id"`
	Action     QueueAction `json:"action"`
}

// NewQueueEntry создает запись очереди с новым ID
func NewQueueEntry(action QueueAction, walk *Walk) QueueEntry {
	var data *Walk
	if walk != nil {
		w := *walk
		data = &w
	}
	return QueueEntry{
		ID:         uuid.NewString(),
		Action:     action,
		Data:       data,
		EnqueuedAt: time.Now().UTC(),
	}
}

// Goals годовые цели по дистанции: год -> целевая дистанция
type Goals map[int]float64

// Get возвращает цель на год и признак ее наличия
func (g Goals) Get(year int) (float64, bool) {
	target, ok := g[year]
	if !ok || target <= 0 {
		return 0, false
	}
	return target, true
}
