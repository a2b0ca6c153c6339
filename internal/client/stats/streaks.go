package stats

import (
	"slices"
	"time"

	"github.com/iudanet/walklog/internal/models"
)

// StreakResult текущая и самая длинная серия дней с прогулками
type StreakResult struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// Streaks считает серии по локальным календарным дням.
// Текущая серия заканчивается сегодня или вчера: пропуск сегодняшнего дня ее не обрывает.
func Streaks(walks []models.Walk, now time.Time) StreakResult {
	dates := uniqueDates(walks)
	if len(dates) == 0 {
		return StreakResult{}
	}

	today := models.DateOf(now)
	yesterday := today.AddDays(-1)

	var result StreakResult

	start := today
	if !contains(dates, today) {
		start = yesterday
	}
	for day := start; contains(dates, day); day = day.AddDays(-1) {
		result.Current++
	}

	run := 1
	result.Longest = 1
	for i := 1; i < len(dates); i++ {
		if dates[i].DaysSince(dates[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		result.Longest = max(result.Longest, run)
	}

	return result
}

func contains(sorted []models.Date, day models.Date) bool {
	_, found := slices.BinarySearch(sorted, day)
	return found
}
