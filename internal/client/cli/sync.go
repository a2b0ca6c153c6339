package cli

import (
	"context"
	"errors"
	"fmt"

	clientsync "github.com/iudanet/walklog/internal/client/sync"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	st, err := c.requireSession()
	if err != nil {
		return err
	}
	if !st.Online {
		return fmt.Errorf("cannot sync: %w", clientsync.ErrOffline)
	}

	result, err := c.engine.ProcessQueue(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}
	if err := c.engine.Load(ctx); err != nil {
		return fmt.Errorf("failed to reload walks: %w", err)
	}

	after := c.engine.Snapshot()
	c.io.Printf("Replayed:         %d change(s)\n", result.Replayed)
	if result.Skipped > 0 {
		c.io.Printf("Already applied:  %d change(s)\n", result.Skipped)
	}
	c.io.Printf("Walks on server:  %d\n", len(after.Walks))
	c.io.Println()
	c.io.Println("✓ Your walks are synchronized with the server.")
	return nil
}

func (c *Cli) runWatch(ctx context.Context) error {
	c.io.Println("Watching server connectivity. Press Ctrl+C to stop.")

	unsubscribe := c.engine.Subscribe(c.printTransition())
	defer unsubscribe()

	if err := c.watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("connectivity monitor failed: %w", err)
	}
	c.io.Println("Stopped.")
	return nil
}

// printTransition печатает смену доступности сервера и длины очереди
func (c *Cli) printTransition() func(clientsync.State) {
	last := c.engine.Snapshot()
	return func(st clientsync.State) {
		if st.Online != last.Online {
			if st.Online {
				c.io.Printf("[%s] server is online\n", c.now().Format("15:04:05"))
			} else {
				c.io.Printf("[%s] server is offline, changes will be queued\n", c.now().Format("15:04:05"))
			}
		}
		if st.Pending != last.Pending {
			c.io.Printf("[%s] pending changes: %d\n", c.now().Format("15:04:05"), st.Pending)
		}
		last = st
	}
}
