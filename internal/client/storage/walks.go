package storage

import (
	"context"

	"github.com/iudanet/walklog/internal/models"
)

//go:generate moq -out walks_mock.go . WalkStorage

// WalkStorage хранит локальную копию записей о прогулках.
// Коллекция хранится целиком одним значением: каждая запись перечитывает
// и перезаписывает весь набор.
type WalkStorage interface {
	// LoadWalks возвращает все записи; пустой слот дает пустой список
	LoadWalks(ctx context.Context) ([]models.Walk, error)

	// SaveWalks заменяет все записи переданными
	SaveWalks(ctx context.Context, walks []models.Walk) error

	// AppendWalk добавляет запись в конец коллекции
	AppendWalk(ctx context.Context, walk models.Walk) error

	// RemoveWalk удаляет запись с тем же ID, а если такой нет, то первую запись,
	// совпадающую по (дата, дистанция, время) через models.Walk.Matches, и возвращает ее.
	// Returns ErrWalkNotFound if nothing matches
	RemoveWalk(ctx context.Context, walk models.Walk) (models.Walk, error)

	// ClearWalks удаляет все записи
	ClearWalks(ctx context.Context) error
}

//go:generate moq -out queue_mock.go . QueueStorage

// QueueStorage хранит очередь отложенных удаленных операций в порядке добавления
type QueueStorage interface {
	// LoadQueue возвращает очередь в порядке FIFO
	LoadQueue(ctx context.Context) ([]models.QueueEntry, error)

	// SaveQueue заменяет очередь целиком
	SaveQueue(ctx context.Context, entries []models.QueueEntry) error

	// Enqueue добавляет запись в конец очереди
	Enqueue(ctx context.Context, entry models.QueueEntry) error

	// ClearQueue очищает очередь
	ClearQueue(ctx context.Context) error
}

//go:generate moq -out goals_mock.go . GoalStorage

// GoalStorage хранит годовые цели по дистанции. Цели не синхронизируются с сервером.
type GoalStorage interface {
	// LoadGoals возвращает все цели
	LoadGoals(ctx context.Context) (models.Goals, error)

	// SetGoal устанавливает цель на год
	SetGoal(ctx context.Context, year int, target float64) error

	// DeleteGoal удаляет цель на год; отсутствие цели не является ошибкой
	DeleteGoal(ctx context.Context, year int) error
}
