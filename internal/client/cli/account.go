package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/walklog/internal/client/api"
	clientsync "github.com/iudanet/walklog/internal/client/sync"
)

func (c *Cli) runRegister(ctx context.Context, creds Credentials) error {
	c.io.Println("=== Register ===")
	c.io.Println()

	email, password, err := c.readCredentials(creds)
	if err != nil {
		return err
	}

	result, err := c.engine.Register(ctx, email, password)
	if err != nil {
		return describeAuthError("registration failed", err)
	}

	c.io.Println("✓ Registration successful!")
	c.printLoginResult(result)
	return nil
}

func (c *Cli) runLogin(ctx context.Context, creds Credentials) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, password, err := c.readCredentials(creds)
	if err != nil {
		return err
	}

	result, err := c.engine.Login(ctx, email, password)
	if err != nil {
		return describeAuthError("login failed", err)
	}

	c.io.Println("✓ Login successful!")
	c.printLoginResult(result)
	return nil
}

func (c *Cli) printLoginResult(result *clientsync.LoginResult) {
	c.io.Printf("User: %s\n", result.User.Email)
	if result.Sync != nil {
		c.io.Printf("Local walks uploaded: %d added, %d already on server\n",
			result.Sync.Added, result.Sync.Skipped)
	}
	c.io.Printf("Walks: %d\n", len(c.engine.Snapshot().Walks))
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.engine.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	c.io.Println("✓ Logged out. Local walks are kept on this device.")
	return nil
}

type statusView struct {
	LastSync time.Time
	Auth     string
	Email    string
	Walks    int
	Pending  int
	Online   bool
}

func (c *Cli) runStatus(ctx context.Context) error {
	st := c.engine.Snapshot()

	view := statusView{
		Auth:    st.Auth.String(),
		Walks:   len(st.Walks),
		Pending: st.Pending,
		Online:  st.Online,
	}
	if st.User != nil {
		view.Email = st.User.Email
	}

	lastSync, err := c.engine.LastSync(ctx)
	if err != nil {
		c.io.Printf("Warning: failed to read last sync time: %v\n", err)
	} else {
		view.LastSync = lastSync
	}

	if err := c.render(statusTemplate, view); err != nil {
		return err
	}

	switch {
	case st.Auth == clientsync.AuthRejected:
		c.io.Println()
		c.io.Println("⚠️  The server rejected the saved session. Run 'walklog login' again.")
	case !st.Auth.Authenticated():
		c.io.Println()
		c.io.Println("Working offline only. Run 'walklog login' to sync with the server.")
	case st.Pending > 0:
		c.io.Println()
		c.io.Printf("⚠️  %d change(s) waiting to be synchronized. Run 'walklog sync'.\n", st.Pending)
	}
	return nil
}

// describeAuthError переводит ошибку сервера в понятное сообщение
func describeAuthError(prefix string, err error) error {
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		return fmt.Errorf("%s: invalid email or password: %w", prefix, err)
	case errors.Is(err, api.ErrNetwork):
		return fmt.Errorf("%s: server is unreachable: %w", prefix, err)
	}
	return fmt.Errorf("%s: %w", prefix, err)
}
