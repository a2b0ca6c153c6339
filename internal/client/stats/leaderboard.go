package stats

import (
	"cmp"
	"slices"

	"github.com/iudanet/walklog/internal/models"
)

// LeaderboardSize количество мест в рейтинге
const LeaderboardSize = 20

// Leaderboard лучшие прогулки: по дистанции по убыванию или по темпу по возрастанию.
// Прогулки одного дня ранжируются отдельно.
func Leaderboard(walks []models.Walk, metric Metric) []models.Walk {
	ranked := slices.Clone(walks)

	switch metric {
	case MetricPace:
		slices.SortStableFunc(ranked, func(a, b models.Walk) int {
			// без дистанции темп не определен, такие записи в конце
			if (a.Distance <= 0) != (b.Distance <= 0) {
				if a.Distance <= 0 {
					return 1
				}
				return -1
			}
			return cmp.Compare(a.Pace(), b.Pace())
		})
	default:
		slices.SortStableFunc(ranked, func(a, b models.Walk) int {
			return cmp.Compare(b.Distance, a.Distance)
		})
	}

	if len(ranked) > LeaderboardSize {
		ranked = ranked[:LeaderboardSize]
	}
	return ranked
}
