package stats

import (
	"time"

	"github.com/iudanet/walklog/internal/models"
)

// CumulativeResult накопленная дистанция за год с линией цели и линией тренда
type CumulativeResult struct {
	Actual []Point `json:"actual"`
	Goal   []Point `json:"goal"`
	Trend  []Point `json:"trend"`
	Year   int     `json:"year"`
	Target float64 `json:"target,omitempty"`
	Total  float64 `json:"total"`
}

// HasGoal сообщает, задана ли цель на год
func (c CumulativeResult) HasGoal() bool {
	return c.Target > 0
}

// ProjectedTotal значение линии тренда на последний день года; 0 без тренда
func (c CumulativeResult) ProjectedTotal() float64 {
	if len(c.Trend) == 0 {
		return 0
	}
	return c.Trend[len(c.Trend)-1].Value
}

// ExpectedAt значение линии цели на указанный день; 0 без цели
func (c CumulativeResult) ExpectedAt(day models.Date) float64 {
	for _, p := range c.Goal {
		if p.Date == day {
			return p.Value
		}
	}
	return 0
}

// Cumulative строит ряд накопленной дистанции на каждый день года.
// Дни без прогулок повторяют предыдущее значение.
// Линия цели и линия тренда строятся только при заданной цели на год.
// Тренд это МНК-прямая по точкам (день года, накопленная дистанция) в дни с прогулками,
// отрицательные значения обрезаются до нуля.
func Cumulative(walks []models.Walk, year int, goals models.Goals) CumulativeResult {
	first := models.DateOf(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
	days := daysInYear(year)

	perDay := make(map[models.Date]float64)
	for _, w := range walks {
		if w.Date.IsZero() || w.Date.Year() != year {
			continue
		}
		perDay[w.Date] += w.Distance
	}

	result := CumulativeResult{
		Year:   year,
		Actual: make([]Point, 0, days),
		Goal:   []Point{},
		Trend:  []Point{},
	}

	var (
		running float64
		xs, ys  []float64
	)
	for i := 0; i < days; i++ {
		day := first.AddDays(i)
		if dist, ok := perDay[day]; ok {
			running += dist
			xs = append(xs, float64(i+1))
			ys = append(ys, running)
		}
		result.Actual = append(result.Actual, Point{Date: day, Value: running})
	}
	result.Total = running

	target, ok := goals.Get(year)
	if !ok {
		return result
	}
	result.Target = target

	result.Goal = make([]Point, 0, days)
	for i := 0; i < days; i++ {
		result.Goal = append(result.Goal, Point{
			Date:  first.AddDays(i),
			Value: target * float64(i+1) / float64(days),
		})
	}

	slope, intercept, ok := linearRegression(xs, ys)
	if !ok {
		return result
	}
	result.Trend = make([]Point, 0, days)
	for i := 0; i < days; i++ {
		result.Trend = append(result.Trend, Point{
			Date:  first.AddDays(i),
			Value: max(0, intercept+slope*float64(i+1)),
		})
	}

	return result
}

// linearRegression метод наименьших квадратов; ok=false если точек меньше двух
// или все x совпадают
func linearRegression(xs, ys []float64) (slope, intercept float64, ok bool) {
	n := float64(len(xs))
	if len(xs) < 2 {
		return 0, 0, false
	}

	var sumX, sumY, sumXY, sumXX float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, 0, false
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept, true
}

func daysInYear(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}
