package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/walklog/internal/client/stats"
	clientsync "github.com/iudanet/walklog/internal/client/sync"
	"github.com/iudanet/walklog/internal/models"
)

type statsView struct {
	Totals  stats.Summary
	Streaks stats.StreakResult
	Weekly  stats.WeeklyComparison
}

func (c *Cli) runStats(ctx context.Context, remote bool) error {
	walks := c.engine.Snapshot().Walks
	now := c.now()

	view := statsView{
		Totals:  stats.Totals(walks),
		Streaks: stats.Streaks(walks, now),
		Weekly:  stats.Weekly(walks, now),
	}
	if err := c.render(statsTemplate, view); err != nil {
		return err
	}

	if !remote {
		return nil
	}

	resp, err := c.engine.RemoteStats(ctx)
	switch {
	case errors.Is(err, clientsync.ErrNotAuthenticated):
		return errors.New("server statistics require login. Run 'walklog login' first")
	case errors.Is(err, clientsync.ErrOffline):
		return errors.New("server is unreachable, showing local statistics only")
	case err != nil:
		return fmt.Errorf("failed to get server statistics: %w", err)
	}
	return c.render(remoteStatsTemplate, resp)
}

func (c *Cli) runLeaderboard(_ context.Context, metric stats.Metric) error {
	walks := c.engine.Snapshot().Walks
	if len(walks) == 0 {
		c.io.Println("No walks to rank yet. Log some walks to see your leaderboard!")
		return nil
	}

	top := stats.Leaderboard(walks, metric)

	title := "Longest walks"
	if metric == stats.MetricPace {
		title = "Fastest walks"
	}
	c.io.Printf("=== %s (top %d) ===\n\n", title, stats.LeaderboardSize)

	for i, w := range top {
		medal := "  "
		switch i {
		case 0:
			medal = "🥇"
		case 1:
			medal = "🥈"
		case 2:
			medal = "🥉"
		}
		c.io.Printf("%s %2d. %s  %6.2f mi  %4d min  %5.1f min/mi\n",
			medal, i+1, w.Date, w.Distance, w.TimeElapsed, w.Pace())
	}
	return nil
}

func (c *Cli) runAverages(_ context.Context, metric stats.Metric, points int) error {
	daily := stats.Consolidate(c.engine.Snapshot().Walks)
	averages := stats.AllMovingAverages(daily, metric)

	shortest := stats.DefaultWindows[0]
	if len(averages[shortest]) == 0 {
		c.io.Printf("Not enough data: moving averages need at least %d days with walks (have %d).\n",
			shortest, len(daily))
		return nil
	}

	byWindow := make(map[int]map[models.Date]float64, len(averages))
	for window, series := range averages {
		values := make(map[models.Date]float64, len(series))
		for _, p := range series {
			values[p.Date] = p.Value
		}
		byWindow[window] = values
	}

	dates := averages[shortest]
	if points > 0 && len(dates) > points {
		dates = dates[len(dates)-points:]
	}

	unit := "mi"
	if metric == stats.MetricPace {
		unit = "min/mi"
	}
	c.io.Printf("=== Moving averages: %s (%s) ===\n\n", metric, unit)
	c.io.Printf("%-10s", "Date")
	for _, window := range stats.DefaultWindows {
		c.io.Printf("  %8s", fmt.Sprintf("%d-day", window))
	}
	c.io.Println()

	for _, p := range dates {
		c.io.Printf("%-10s", p.Date)
		for _, window := range stats.DefaultWindows {
			if v, ok := byWindow[window][p.Date]; ok {
				c.io.Printf("  %8.2f", v)
			} else {
				c.io.Printf("  %8s", "-")
			}
		}
		c.io.Println()
	}
	return nil
}

type progressView struct {
	Year      int
	Total     float64
	Target    float64
	Percent   float64
	Expected  float64
	Ahead     float64
	Behind    float64
	Projected float64
	HasGoal   bool
	HasTrend  bool
}

func (c *Cli) runProgress(ctx context.Context, year int) error {
	if year == 0 {
		year = c.now().Year()
	}

	goals, err := c.goals.LoadGoals(ctx)
	if err != nil {
		return fmt.Errorf("failed to load goals: %w", err)
	}

	result := stats.Cumulative(c.engine.Snapshot().Walks, year, goals)

	view := progressView{
		Year:    year,
		Total:   result.Total,
		Target:  result.Target,
		HasGoal: result.HasGoal(),
	}
	if view.HasGoal {
		view.Percent = result.Total / result.Target * 100
		view.Expected = c.expectedByNow(result)
		view.Ahead = result.Total - view.Expected
		view.Behind = -view.Ahead
		view.HasTrend = len(result.Trend) > 0
		view.Projected = result.ProjectedTotal()
	}
	return c.render(progressTemplate, view)
}

// expectedByNow значение линии цели на сегодня; для прошедших лет это вся цель, для будущих ноль
func (c *Cli) expectedByNow(result stats.CumulativeResult) float64 {
	today := c.today()
	switch {
	case today.Year() > result.Year:
		return result.Target
	case today.Year() < result.Year:
		return 0
	}
	return result.ExpectedAt(today)
}
