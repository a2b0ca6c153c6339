package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/walklog/internal/client/config"
	"github.com/iudanet/walklog/internal/client/stats"
)

// DefaultConfigPath файл настроек, который читается, если --config не указан
const DefaultConfigPath = "walklog.yaml"

// Builder собирает Cli по настройкам. Возвращаемая функция освобождает ресурсы.
type Builder func(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Cli, func() error, error)

// App дерево команд cobra и собранный по флагам Cli
type App struct {
	build   Builder
	stderr  io.Writer
	root    *cobra.Command
	cli     *Cli
	cleanup func() error
	cfg     config.Config
	flags   globalFlags
}

type globalFlags struct {
	configPath          string
	serverURL           string
	dbPath              string
	logLevel            string
	timeout             time.Duration
	onlineCheckInterval time.Duration
}

// NewApp создает приложение командной строки
func NewApp(stderr io.Writer, build Builder, version string) *App {
	a := &App{
		build:  build,
		stderr: stderr,
		cfg:    config.Default(),
	}
	a.root = a.newRootCommand(version)
	return a
}

// Command корневая команда
func (a *App) Command() *cobra.Command {
	return a.root
}

// Execute разбирает аргументы и выполняет команду
func (a *App) Execute(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

// Close освобождает ресурсы, открытые при сборке Cli
func (a *App) Close() error {
	if a.cleanup == nil {
		return nil
	}
	cleanup := a.cleanup
	a.cleanup = nil
	return cleanup()
}

// Config настройки после применения файла и флагов
func (a *App) Config() config.Config {
	return a.cfg
}

func (a *App) newRootCommand(version string) *cobra.Command {
	defaults := config.Default()

	root := &cobra.Command{
		Use:   "walklog",
		Short: "Offline-first walking log",
		Long: `walklog records walks (date, distance, time) on this device and
synchronizes them with a walklog server when you are logged in and online.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", DefaultConfigPath, "path to YAML config file")
	pf.StringVar(&a.flags.serverURL, "server", defaults.ServerURL, "server URL")
	pf.StringVar(&a.flags.dbPath, "db", defaults.DBPath, "path to local database")
	pf.StringVar(&a.flags.logLevel, "log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	pf.DurationVar(&a.flags.timeout, "timeout", defaults.Timeout, "HTTP request timeout")
	pf.DurationVar(&a.flags.onlineCheckInterval, "online-check-interval", defaults.OnlineCheckInterval,
		"how often 'watch' checks server availability")

	root.AddCommand(
		a.registerCommand(),
		a.loginCommand(),
		a.logoutCommand(),
		a.statusCommand(),
		a.addCommand(),
		a.listCommand(),
		a.deleteCommand(),
		a.deleteAllCommand(),
		a.statsCommand(),
		a.leaderboardCommand(),
		a.averagesCommand(),
		a.goalCommand(),
		a.progressCommand(),
		a.importCommand(),
		a.exportCommand(),
		a.syncCommand(),
		a.watchCommand(),
	)
	return root
}

// setup применяет настройки (по умолчанию, файл, флаги) и собирает Cli
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	if !needsClient(cmd) {
		return nil
	}

	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	c, cleanup, err := a.build(cmd.Context(), cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize client: %w", err)
	}
	a.cli = c
	a.cleanup = cleanup

	return c.Start(cmd.Context())
}

func (a *App) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	flags := cmd.Flags()

	if err := config.LoadFile(&cfg, a.flags.configPath, flags.Changed("config")); err != nil {
		return cfg, err
	}

	if flags.Changed("server") {
		cfg.ServerURL = a.flags.serverURL
	}
	if flags.Changed("db") {
		cfg.DBPath = a.flags.dbPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flags.logLevel
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.flags.timeout
	}
	if flags.Changed("online-check-interval") {
		cfg.OnlineCheckInterval = a.flags.onlineCheckInterval
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (a *App) registerCommand() *cobra.Command {
	var creds Credentials
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and upload local walks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runRegister(cmd.Context(), creds)
		},
	}
	addCredentialFlags(cmd, &creds)
	return cmd
}

func (a *App) loginCommand() *cobra.Command {
	var creds Credentials
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and upload local walks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runLogin(cmd.Context(), creds)
		},
	}
	addCredentialFlags(cmd, &creds)
	return cmd
}

func addCredentialFlags(cmd *cobra.Command, creds *Credentials) {
	cmd.Flags().StringVar(&creds.Email, "email", "", "account email (prompted if empty)")
	cmd.Flags().StringVar(&creds.PasswordFile, "password-file", "",
		"file containing the password ("+PasswordEnv+" takes priority)")
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out, keeping local walks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runLogout(cmd.Context())
		},
	}
}

func (a *App) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session, connectivity and pending sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runStatus(cmd.Context())
		},
	}
}

func addWalkFlags(cmd *cobra.Command, in *WalkInput) {
	cmd.Flags().StringVar(&in.Date, "date", "", "walk date YYYY-MM-DD (default today)")
	cmd.Flags().Float64Var(&in.Distance, "distance", 0, "distance in miles")
	cmd.Flags().IntVar(&in.TimeElapsed, "time", 0, "time in minutes")
	_ = cmd.MarkFlagRequired("distance")
	_ = cmd.MarkFlagRequired("time")
}

func (a *App) addCommand() *cobra.Command {
	var in WalkInput
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Log a walk",
		Example: "  walklog add --distance 2.5 --time 40\n  walklog add --date 2024-01-05 --distance 3 --time 50",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runAdd(cmd.Context(), in)
		},
	}
	addWalkFlags(cmd, &in)
	return cmd
}

func (a *App) listCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List walks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runList(cmd.Context(), limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most N walks (0 for all)")
	return cmd
}

func (a *App) deleteCommand() *cobra.Command {
	var in WalkInput
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a walk matching date, distance and time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runDelete(cmd.Context(), in)
		},
	}
	addWalkFlags(cmd, &in)
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func (a *App) deleteAllCommand() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete-all",
		Short: "Delete all walks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runDeleteAll(cmd.Context(), yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func (a *App) statsCommand() *cobra.Command {
	var remote bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show totals, streaks and weekly comparison",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runStats(cmd.Context(), remote)
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "also show totals computed by the server")
	return cmd
}

func (a *App) leaderboardCommand() *cobra.Command {
	var by string
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show top 20 walks by distance or pace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			metric, err := stats.ParseMetric(by)
			if err != nil {
				return err
			}
			return a.cli.runLeaderboard(cmd.Context(), metric)
		},
	}
	cmd.Flags().StringVar(&by, "by", string(stats.MetricDistance), "ranking metric: distance or pace")
	return cmd
}

func (a *App) averagesCommand() *cobra.Command {
	var (
		by     string
		points int
	)
	cmd := &cobra.Command{
		Use:   "averages",
		Short: "Show 7, 14 and 30 day moving averages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			metric, err := stats.ParseMetric(by)
			if err != nil {
				return err
			}
			return a.cli.runAverages(cmd.Context(), metric, points)
		},
	}
	cmd.Flags().StringVar(&by, "metric", string(stats.MetricDistance), "metric: distance or pace")
	cmd.Flags().IntVarP(&points, "points", "n", 10, "show the last N points (0 for all)")
	return cmd
}

func (a *App) goalCommand() *cobra.Command {
	var year int
	goal := &cobra.Command{
		Use:   "goal",
		Short: "Manage yearly distance goals",
	}
	goal.PersistentFlags().IntVar(&year, "year", 0, "goal year (default current year)")

	goal.AddCommand(
		&cobra.Command{
			Use:   "set <distance>",
			Short: "Set the distance goal for a year",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.cli.runGoalSet(cmd.Context(), args[0], year)
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Show goals",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.cli.runGoalShow(cmd.Context(), year)
			},
		},
		&cobra.Command{
			Use:   "delete",
			Short: "Delete the goal for a year",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.cli.runGoalDelete(cmd.Context(), year)
			},
		},
	)
	return goal
}

func (a *App) progressCommand() *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Compare cumulative distance with the yearly goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runProgress(cmd.Context(), year)
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "year (default current year)")
	return cmd
}

func (a *App) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import walks from a CSV file (Date,Distance,TimeElapsed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runImport(cmd.Context(), args[0])
		},
	}
}

func (a *App) exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file.csv]",
		Short: "Export walks to a CSV file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			return a.cli.runExport(cmd.Context(), path)
		},
	}
}

func (a *App) syncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Replay queued changes and reload walks from the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runSync(cmd.Context())
		},
	}
}

func (a *App) watchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Monitor connectivity and sync queued changes on reconnect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runWatch(cmd.Context())
		},
	}
}

// needsClient сообщает, нужен ли команде собранный Cli.
// Служебным командам cobra (help, completion) база и сеть не нужны.
func needsClient(cmd *cobra.Command) bool {
	if cmd.RunE == nil {
		return false
	}
	for p := cmd; p != nil; p = p.Parent() {
		name := p.Name()
		if name == "help" || name == "completion" || strings.HasPrefix(name, "__") {
			return false
		}
	}
	return true
}
