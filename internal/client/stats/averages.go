package stats

import (
	"fmt"
)

// Metric метрика для скользящих средних и рейтинга
type Metric string

const (
	MetricDistance Metric = "distance"
	MetricPace     Metric = "pace"
)

// ParseMetric разбирает имя метрики
func ParseMetric(s string) (Metric, error) {
	switch m := Metric(s); m {
	case MetricDistance, MetricPace:
		return m, nil
	}
	return "", fmt.Errorf("unknown metric %q: expected %q or %q", s, MetricDistance, MetricPace)
}

// DefaultWindows окна скользящих средних в днях
var DefaultWindows = []int{7, 14, 30}

// MovingAverages считает скользящее среднее по последним window записям объединенного ряда.
// Ряд короче окна дает пустой результат.
func MovingAverages(daily []DailyTotal, window int, metric Metric) []Point {
	if window <= 0 || len(daily) < window {
		return []Point{}
	}

	result := make([]Point, 0, len(daily)-window+1)
	var sum float64
	for i, day := range daily {
		sum += metricValue(day, metric)
		if i >= window {
			sum -= metricValue(daily[i-window], metric)
		}
		if i >= window-1 {
			result = append(result, Point{Date: day.Date, Value: sum / float64(window)})
		}
	}
	return result
}

// AllMovingAverages считает скользящие средние для всех DefaultWindows
func AllMovingAverages(daily []DailyTotal, metric Metric) map[int][]Point {
	result := make(map[int][]Point, len(DefaultWindows))
	for _, window := range DefaultWindows {
		result[window] = MovingAverages(daily, window, metric)
	}
	return result
}

func metricValue(day DailyTotal, metric Metric) float64 {
	if metric == MetricPace {
		return day.Pace()
	}
	return day.Distance
}
