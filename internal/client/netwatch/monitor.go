// Package netwatch следит за доступностью сервера и сообщает о переходах
// онлайн/офлайн движку синхронизации.
package netwatch

import (
	"context"
	"log/slog"
	"time"

	"github.com/iudanet/walklog/pkg/api"
)

// DefaultInterval период проверки по умолчанию
const DefaultInterval = 30 * time.Second

// Prober проверяет доступность сервера
type Prober interface {
	Health(ctx context.Context) (*api.HealthResponse, error)
}

// Target получает состояние доступности
type Target interface {
	SetOnline(ctx context.Context, online bool) error
}

// Monitor периодически опрашивает GET /health
type Monitor struct {
	prober   Prober
	target   Target
	logger   *slog.Logger
	interval time.Duration
	timeout  time.Duration
}

// NewMonitor создает монитор доступности
func NewMonitor(prober Prober, target Target, interval time.Duration, logger *slog.Logger) *Monitor {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Monitor{
		prober:   prober,
		target:   target,
		logger:   logger,
		interval: interval,
		timeout:  min(interval, 10*time.Second),
	}
}

// Probe выполняет одну проверку. Онлайн только при успешном ответе.
func (m *Monitor) Probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	resp, err := m.prober.Health(ctx)
	if err != nil {
		m.logger.DebugContext(ctx, "health probe failed", slog.Any("error", err))
		return false
	}

	m.logger.DebugContext(ctx, "health probe ok", slog.String("status", resp.Status))
	return true
}

// Check выполняет проверку и передает результат в Target
func (m *Monitor) Check(ctx context.Context) bool {
	online := m.Probe(ctx)
	if err := m.target.SetOnline(ctx, online); err != nil {
		m.logger.WarnContext(ctx, "failed to apply connectivity change",
			slog.Bool("online", online),
			slog.Any("error", err))
	}
	return online
}

// Run проверяет доступность сразу и затем каждые interval до отмены ctx
func (m *Monitor) Run(ctx context.Context) error {
	m.logger.InfoContext(ctx, "connectivity monitor started", slog.Duration("interval", m.interval))

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Check(ctx)

	for {
		select {
		case <-ctx.Done():
			m.logger.InfoContext(ctx, "connectivity monitor stopped")
			return nil
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}
