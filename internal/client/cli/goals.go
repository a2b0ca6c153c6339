package cli

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

func (c *Cli) runGoalSet(ctx context.Context, value string, year int) error {
	target, err := strconv.ParseFloat(value, 64)
	if err != nil || target <= 0 {
		return fmt.Errorf("invalid goal %q: must be a positive distance", value)
	}
	if year == 0 {
		year = c.now().Year()
	}

	if err := c.goals.SetGoal(ctx, year, target); err != nil {
		return fmt.Errorf("failed to save goal: %w", err)
	}
	c.io.Printf("✓ Goal for %d set to %.2f mi\n", year, target)
	return nil
}

func (c *Cli) runGoalShow(ctx context.Context, year int) error {
	goals, err := c.goals.LoadGoals(ctx)
	if err != nil {
		return fmt.Errorf("failed to load goals: %w", err)
	}

	if year != 0 {
		target, ok := goals.Get(year)
		if !ok {
			c.io.Printf("No goal set for %d.\n", year)
			return nil
		}
		c.io.Printf("%d: %.2f mi\n", year, target)
		return nil
	}

	if len(goals) == 0 {
		c.io.Println("No goals set. Use 'walklog goal set <distance>' to add one.")
		return nil
	}
	for _, y := range slices.Sorted(maps.Keys(goals)) {
		if target, ok := goals.Get(y); ok {
			c.io.Printf("%d: %.2f mi\n", y, target)
		}
	}
	return nil
}

func (c *Cli) runGoalDelete(ctx context.Context, year int) error {
	if year == 0 {
		year = c.now().Year()
	}
	if err := c.goals.DeleteGoal(ctx, year); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	c.io.Printf("✓ Goal for %d deleted\n", year)
	return nil
}
