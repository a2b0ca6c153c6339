package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/iudanet/walklog/internal/client/storage"
	"github.com/iudanet/walklog/internal/models"
	"github.com/iudanet/walklog/internal/validation"
)

// WalkInput параметры прогулки из флагов команды
type WalkInput struct {
	Date        string
	Distance    float64
	TimeElapsed int
}

func (c *Cli) walkFromInput(in WalkInput) (models.Walk, error) {
	date := c.today()
	if strings.TrimSpace(in.Date) != "" {
		parsed, err := models.ParseDate(in.Date)
		if err != nil {
			return models.Walk{}, err
		}
		date = parsed
	}

	walk := models.Walk{
		Date:        date,
		Distance:    in.Distance,
		TimeElapsed: in.TimeElapsed,
	}
	if err := validation.ValidateWalk(walk); err != nil {
		return models.Walk{}, err
	}
	return walk, nil
}

func (c *Cli) runAdd(ctx context.Context, in WalkInput) error {
	walk, err := c.walkFromInput(in)
	if err != nil {
		return fmt.Errorf("invalid walk: %w", err)
	}

	saved, err := c.engine.CreateWalk(ctx, walk)
	if err != nil {
		if reportErr := c.reportRemoteError(err); reportErr != nil {
			return fmt.Errorf("failed to save walk: %w", reportErr)
		}
	}

	c.io.Printf("✓ Walk saved: %s\n", saved)
	return nil
}

func (c *Cli) runList(_ context.Context, limit int) error {
	walks := c.engine.Snapshot().Walks
	if len(walks) == 0 {
		c.io.Println("No walks logged yet.")
		c.io.Println()
		c.io.Println("Use 'walklog add --distance <mi> --time <min>' to log your first walk.")
		return nil
	}

	sorted := slices.Clone(walks)
	slices.SortStableFunc(sorted, func(a, b models.Walk) int {
		if a.Date != b.Date {
			return strings.Compare(string(b.Date), string(a.Date))
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	c.io.Printf("Showing %d of %d walk(s):\n\n", len(sorted), len(walks))
	return c.render(walkListTemplate, sorted)
}

func (c *Cli) runDelete(ctx context.Context, in WalkInput) error {
	if strings.TrimSpace(in.Date) == "" {
		return errors.New("missing walk date. Usage: walklog delete --date YYYY-MM-DD --distance <mi> --time <min>")
	}
	walk, err := c.walkFromInput(in)
	if err != nil {
		return fmt.Errorf("invalid walk: %w", err)
	}

	err = c.engine.DeleteWalk(ctx, walk)
	if errors.Is(err, storage.ErrWalkNotFound) {
		return fmt.Errorf("walk not found: %s", walk)
	}
	if err != nil {
		if reportErr := c.reportRemoteError(err); reportErr != nil {
			return fmt.Errorf("failed to delete walk: %w", reportErr)
		}
	}

	c.io.Printf("✓ Walk deleted: %s\n", walk)
	return nil
}

func (c *Cli) runDeleteAll(ctx context.Context, confirmed bool) error {
	count := len(c.engine.Snapshot().Walks)
	if count == 0 {
		c.io.Println("No walks to delete.")
		return nil
	}

	if !confirmed {
		answer, err := c.io.ReadInput(fmt.Sprintf("Delete all %d walk(s)? This cannot be undone [y/N]: ", count))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
			c.io.Println("Cancelled.")
			return nil
		}
	}

	if err := c.engine.DeleteAllWalks(ctx); err != nil {
		if reportErr := c.reportRemoteError(err); reportErr != nil {
			return fmt.Errorf("failed to delete walks: %w", reportErr)
		}
	}

	c.io.Printf("✓ Deleted %d walk(s)\n", count)
	return nil
}
