// Package stats содержит чистые функции расчета статистики по журналу прогулок.
// Ни одна функция не обращается к хранилищу или сети, текущее время передается явно.
package stats

import (
	"slices"

	"github.com/iudanet/walklog/internal/models"
)

// Summary общие итоги по набору прогулок
type Summary struct {
	Walks       int     `json:"walks"`
	Distance    float64 `json:"distance"`
	TimeElapsed int     `json:"timeElapsed"`
	AvgDistance float64 `json:"avgDistance"`
	AvgPace     float64 `json:"avgPace"`
}

// Totals считает количество прогулок, суммарную дистанцию и время
func Totals(walks []models.Walk) Summary {
	var s Summary
	for _, w := range walks {
		s.Walks++
		s.Distance += w.Distance
		s.TimeElapsed += w.TimeElapsed
	}
	if s.Walks > 0 {
		s.AvgDistance = s.Distance / float64(s.Walks)
	}
	s.AvgPace = pace(s.TimeElapsed, s.Distance)
	return s
}

// DailyTotal суммы по одному календарному дню
type DailyTotal struct {
	Date        models.Date
	Distance    float64
	TimeElapsed int
}

// Pace темп дня; 0 если дистанция нулевая
func (d DailyTotal) Pace() float64 {
	return pace(d.TimeElapsed, d.Distance)
}

// Consolidate складывает прогулки одного дня и сортирует дни по возрастанию.
// Используется только для графиков, рейтинг работает с исходными записями.
func Consolidate(walks []models.Walk) []DailyTotal {
	byDate := make(map[models.Date]*DailyTotal, len(walks))
	for _, w := range walks {
		day, ok := byDate[w.Date]
		if !ok {
			day = &DailyTotal{Date: w.Date}
			byDate[w.Date] = day
		}
		day.Distance += w.Distance
		day.TimeElapsed += w.TimeElapsed
	}

	result := make([]DailyTotal, 0, len(byDate))
	for _, day := range byDate {
		result = append(result, *day)
	}
	slices.SortFunc(result, func(a, b DailyTotal) int {
		return compareDates(a.Date, b.Date)
	})
	return result
}

// Point значение метрики на дату
type Point struct {
	Date  models.Date `json:"date"`
	Value float64     `json:"value"`
}

// PaceSeries темп каждой прогулки по возрастанию даты без объединения по дням
func PaceSeries(walks []models.Walk) []Point {
	sorted := sortedByDate(walks)
	result := make([]Point, 0, len(sorted))
	for _, w := range sorted {
		result = append(result, Point{Date: w.Date, Value: w.Pace()})
	}
	return result
}

func pace(timeElapsed int, distance float64) float64 {
	if distance <= 0 {
		return 0
	}
	return float64(timeElapsed) / distance
}

func compareDates(a, b models.Date) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func sortedByDate(walks []models.Walk) []models.Walk {
	sorted := slices.Clone(walks)
	slices.SortStableFunc(sorted, func(a, b models.Walk) int {
		return compareDates(a.Date, b.Date)
	})
	return sorted
}

// uniqueDates возвращает отсортированные дни, в которые была хотя бы одна прогулка
func uniqueDates(walks []models.Walk) []models.Date {
	dates := make([]models.Date, 0, len(walks))
	for _, w := range walks {
		if w.Date.IsZero() {
			continue
		}
		dates = append(dates, w.Date)
	}
	slices.Sort(dates)
	return slices.Compact(dates)
}
