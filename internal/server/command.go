package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/iudanet/walklog/internal/server/config"
)

const defaultConfigPath = "walklog-server.yaml"

// RunFunc запускает сервер с итоговыми настройками
type RunFunc func(ctx context.Context, cfg config.Config, logger *slog.Logger, version string) error

type serverFlags struct {
	configPath  string
	addr        string
	databaseURL string
	logLevel    string
	logFormat   string
	corsOrigins string
}

// NewCommand создает корневую команду walklog-server.
// Настройки собираются в порядке: значения по умолчанию, YAML файл, окружение, флаги.
func NewCommand(logOut io.Writer, getenv func(string) string, run RunFunc, version string) *cobra.Command {
	var flags serverFlags

	cmd := &cobra.Command{
		Use:           "walklog-server",
		Short:         "Walk log REST API server",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags, getenv)
			if err != nil {
				return err
			}

			logger, err := NewLogger(logOut, cfg)
			if err != nil {
				return err
			}

			return run(cmd.Context(), cfg, logger, version)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&flags.configPath, "config", "c", defaultConfigPath, "path to YAML config file")
	fs.StringVar(&flags.addr, "addr", config.DefaultAddr, "listen address")
	fs.StringVar(&flags.databaseURL, "database-url", config.DefaultDatabaseURL,
		"postgres:// URL or path to SQLite database file")
	fs.StringVar(&flags.logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&flags.logFormat, "log-format", config.DefaultLogFormat, "log format: text or json")
	fs.StringVar(&flags.corsOrigins, "cors-origins", "*", "comma separated list of allowed CORS origins")

	return cmd
}

func loadConfig(cmd *cobra.Command, flags serverFlags, getenv func(string) string) (config.Config, error) {
	cfg := config.Default()
	fs := cmd.Flags()

	if err := config.LoadFile(&cfg, flags.configPath, fs.Changed("config")); err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg, getenv); err != nil {
		return cfg, err
	}

	if fs.Changed("addr") {
		cfg.Addr = flags.addr
	}
	if fs.Changed("database-url") {
		cfg.DatabaseURL = flags.databaseURL
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = flags.logFormat
	}
	if fs.Changed("cors-origins") {
		cfg.CORSOrigins = config.SplitList(flags.corsOrigins)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Execute запускает команду с аргументами процесса
func Execute(ctx context.Context, run RunFunc, version string) error {
	return NewCommand(os.Stdout, os.Getenv, run, version).ExecuteContext(ctx)
}
