package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/iudanet/walklog/internal/client/csvio"
	"github.com/iudanet/walklog/internal/models"
)

func (c *Cli) runImport(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	parsed, err := csvio.Read(f)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}

	result, err := c.engine.ImportWalks(ctx, parsed.Walks)
	if err != nil {
		return fmt.Errorf("failed to import walks: %w", err)
	}

	c.io.Printf("✓ Imported %d new walk(s)\n", result.Imported)
	if result.Skipped > 0 {
		c.io.Printf("Already logged:   %d\n", result.Skipped)
	}
	if parsed.Skipped > 0 {
		c.io.Printf("Malformed lines:  %d\n", parsed.Skipped)
	}
	if result.Synced > 0 {
		c.io.Printf("Sent to server:   %d\n", result.Synced)
	}
	if result.Queued > 0 {
		c.io.Printf("Queued for sync:  %d\n", result.Queued)
	}
	return nil
}

func (c *Cli) runExport(_ context.Context, path string) (err error) {
	walks := c.engine.Snapshot().Walks
	if len(walks) == 0 {
		return errors.New("no data to export")
	}
	if strings.TrimSpace(path) == "" {
		path = csvio.DefaultFileName(c.now())
	}

	sorted := slices.Clone(walks)
	slices.SortStableFunc(sorted, func(a, b models.Walk) int {
		return strings.Compare(string(a.Date), string(b.Date))
	})

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	if err := csvio.Write(f, sorted); err != nil {
		return fmt.Errorf("failed to export walks: %w", err)
	}

	c.io.Printf("✓ Exported %d walk(s) to %s\n", len(sorted), path)
	return nil
}
