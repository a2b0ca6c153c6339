package models

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// MatchTolerance допуск при сравнении округленных дистанций: половина сотой,
// поэтому соседние сотые (3.00 и 3.01) считаются разными прогулками
const MatchTolerance = 0.005

// Walk запись об одной прогулке
type Walk struct {
	CreatedAt   time.Time `json:"createdAt,omitempty"` // время создания записи
	ID          string    `json:"id,omitempty"`        // UUID, присваивается при локальном создании
	Date        Date      `json:"date"`                // календарный день
	Distance    float64   `json:"distance"`            // дистанция в милях
	TimeElapsed int       `json:"timeElapsed"`         // длительность в минутах
}

// WalkKey тройка для дедупликации (дата, дистанция, время)
type WalkKey struct {
	Date        Date
	Distance    float64
	TimeElapsed int
}

// NewWalk создает прогулку с новым ID
func NewWalk(date Date, distance float64, timeElapsed int) Walk {
	return Walk{
		ID:          uuid.NewString(),
		Date:        date,
		Distance:    distance,
		TimeElapsed: timeElapsed,
		CreatedAt:   time.Now().UTC(),
	}
}

// Key возвращает тройку дедупликации.
// Дистанция округляется до сотых, так же ее хранит сервер.
func (w Walk) Key() WalkKey {
	return WalkKey{
		Date:        w.Date,
		Distance:    RoundDistance(w.Distance),
		TimeElapsed: w.TimeElapsed,
	}
}

// Matches сравнивает тройки двух прогулок.
// Дистанции сравниваются после округления до сотых с допуском MatchTolerance.
func (w Walk) Matches(other Walk) bool {
	return w.Date == other.Date &&
		w.TimeElapsed == other.TimeElapsed &&
		math.Abs(RoundDistance(w.Distance)-RoundDistance(other.Distance)) < MatchTolerance
}

// Pace темп в минутах на милю; 0 если дистанция нулевая
func (w Walk) Pace() float64 {
	if w.Distance <= 0 {
		return 0
	}
	return float64(w.TimeElapsed) / w.Distance
}

// String реализует fmt.Stringer
func (w Walk) String() string {
	return fmt.Sprintf("%s %.2f mi %d min", w.Date, w.Distance, w.TimeElapsed)
}

// RoundDistance округляет дистанцию до двух знаков после запятой
func RoundDistance(d float64) float64 {
	return math.Round(d*100) / 100
}

type walkJSON struct {
	CreatedAt   *time.Time  `json:"createdAt,omitempty"`
	ID          string      `json:"id,omitempty"`
	Date        Date        `json:"date"`
	Distance    json.Number `json:"distance"`
	TimeElapsed json.Number `json:"timeElapsed"`
}

// UnmarshalJSON принимает числовые поля как числами, так и строками.
// DECIMAL колонки на стороне сервера могут приходить строками.
func (w *Walk) UnmarshalJSON(data []byte) error {
	var raw walkJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	distance, err := parseNumber(raw.Distance)
	if err != nil {
		return fmt.Errorf("invalid distance: %w", err)
	}
	elapsed, err := parseNumber(raw.TimeElapsed)
	if err != nil {
		return fmt.Errorf("invalid timeElapsed: %w", err)
	}

	*w = Walk{
		ID:          raw.ID,
		Date:        raw.Date,
		Distance:    distance,
		TimeElapsed: int(math.Round(elapsed)),
	}
	if raw.CreatedAt != nil {
		w.CreatedAt = *raw.CreatedAt
	}

	return nil
}

func parseNumber(n json.Number) (float64, error) {
	if n == "" {
		return 0, nil
	}
	return n.Float64()
}
