package stats

import (
	"time"

	"github.com/iudanet/walklog/internal/models"
)

// WeekTotals итоги одной недели
type WeekTotals struct {
	Start       models.Date `json:"start"`
	End         models.Date `json:"end"`
	Walks       int         `json:"walks"`
	Distance    float64     `json:"distance"`
	TimeElapsed int         `json:"timeElapsed"`
	Pace        float64     `json:"pace"`
}

// WeeklyComparison сравнение текущей недели с предыдущей
type WeeklyComparison struct {
	ThisWeek       WeekTotals `json:"thisWeek"`
	LastWeek       WeekTotals `json:"lastWeek"`
	WalksChange    float64    `json:"walksChange"`
	DistanceChange float64    `json:"distanceChange"`
	PaceChange     float64    `json:"paceChange"`
}

// Weekly сравнивает текущую неделю (с воскресенья по сегодня включительно)
// с предыдущими семью днями.
func Weekly(walks []models.Walk, now time.Time) WeeklyComparison {
	today := models.DateOf(now)
	thisStart := today.AddDays(-int(today.Weekday()))
	lastStart := thisStart.AddDays(-7)
	lastEnd := thisStart.AddDays(-1)

	this := WeekTotals{Start: thisStart, End: today}
	last := WeekTotals{Start: lastStart, End: lastEnd}

	for _, w := range walks {
		switch {
		case inRange(w.Date, thisStart, today):
			this.add(w)
		case inRange(w.Date, lastStart, lastEnd):
			last.add(w)
		}
	}
	this.Pace = pace(this.TimeElapsed, this.Distance)
	last.Pace = pace(last.TimeElapsed, last.Distance)

	return WeeklyComparison{
		ThisWeek:       this,
		LastWeek:       last,
		WalksChange:    PercentChange(float64(this.Walks), float64(last.Walks)),
		DistanceChange: PercentChange(this.Distance, last.Distance),
		PaceChange:     PaceChange(this.Pace, last.Pace),
	}
}

// PercentChange относительное изменение в процентах.
// Нулевая база дает +100%, если текущее значение положительно, иначе 0.
func PercentChange(current, last float64) float64 {
	if last > 0 {
		return (current - last) / last * 100
	}
	if current > 0 {
		return 100
	}
	return 0
}

// PaceChange изменение темпа в процентах с обратным знаком: снижение темпа положительно
func PaceChange(current, last float64) float64 {
	if last <= 0 {
		return 0
	}
	return (last - current) / last * 100
}

func (w *WeekTotals) add(walk models.Walk) {
	w.Walks++
	w.Distance += walk.Distance
	w.TimeElapsed += walk.TimeElapsed
}

func inRange(d, from, to models.Date) bool {
	return !d.Before(from) && !d.After(to)
}
