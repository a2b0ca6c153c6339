package api

import "github.com/iudanet/walklog/internal/models"

// CreateWalkRequest представляет запрос POST /api/walks
type CreateWalkRequest struct {
	Date        models.Date `json:"date"`
	Distance    float64     `json:"distance"`
	TimeElapsed int         `json:"timeElapsed"`
}

// CreateWalkResponse представляет ответ на создание прогулки
type CreateWalkResponse struct {
	Message string      `json:"message"`
	Walk    models.Walk `json:"walk"`
}

// SyncRequest представляет запрос POST /api/walks/sync.
// Клиент отправляет всю локальную копию сразу после входа.
type SyncRequest struct {
	Walks []CreateWalkRequest `json:"walks"`
}

// SyncResponse представляет результат пакетной синхронизации.
// Дубликаты (нарушение уникальности) молча пропускаются сервером.
type SyncResponse struct {
	Message string `json:"message"`
	Added   int    `json:"added"`
	Skipped int    `json:"skipped"`
	Total   int    `json:"total"`
}

// DeleteResponse представляет ответ на удаление прогулок
type DeleteResponse struct {
	Message string `json:"message"`
	Deleted int    `json:"deleted"`
}

// StatsResponse представляет агрегированную статистику пользователя (GET /api/stats)
type StatsResponse struct {
	TotalWalks    int     `json:"total_walks"`
	TotalDistance float64 `json:"total_distance"`
	AvgDistance   float64 `json:"avg_distance"`
	TotalTime     int     `json:"total_time"`
	AvgTime       float64 `json:"avg_time"`
}

// NewCreateWalkRequest собирает тело запроса из локальной записи
func NewCreateWalkRequest(w models.Walk) CreateWalkRequest {
	return CreateWalkRequest{
		Date:        w.Date,
		Distance:    w.Distance,
		TimeElapsed: w.TimeElapsed,
	}
}
