// Package config настройки сервера: значения по умолчанию, YAML файл,
// переменные окружения и флаги командной строки (в порядке возрастания приоритета).
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iudanet/walklog/internal/crypto"
	"github.com/iudanet/walklog/internal/server/jwt"
)

const (
	DefaultAddr                 = ":3000"
	DefaultDatabaseURL          = "walklog.db"
	DefaultLogLevel             = "info"
	DefaultLogFormat            = "text"
	DefaultShutdownTimeout      = 10 * time.Second
	DefaultTokenCleanupInterval = time.Hour
	DefaultRateLimitWindow      = 15 * time.Minute
	DefaultRateLimitRequests    = 100
	DefaultAuthRateLimit        = 10
)

// Database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// RateLimit лимиты запросов с одного IP
type RateLimit struct {
	Window       time.Duration `yaml:"window"`
	Requests     int           `yaml:"requests"`      // все запросы к /api/
	AuthRequests int           `yaml:"auth_requests"` // регистрация и вход
}

// Config настройки сервера
type Config struct {
	Addr                 string        `yaml:"addr"`
	DatabaseURL          string        `yaml:"database_url"`
	JWTSecret            string        `yaml:"jwt_secret"`
	LogLevel             string        `yaml:"log_level"`
	LogFormat            string        `yaml:"log_format"`
	CORSOrigins          []string      `yaml:"cors_origins"`
	RateLimit            RateLimit     `yaml:"rate_limit"`
	JWTTTL               time.Duration `yaml:"jwt_ttl"`
	ShutdownTimeout      time.Duration `yaml:"shutdown_timeout"`
	TokenCleanupInterval time.Duration `yaml:"token_cleanup_interval"`
	BcryptCost           int           `yaml:"bcrypt_cost"`
}

// Default возвращает настройки по умолчанию
func Default() Config {
	return Config{
		Addr:        DefaultAddr,
		DatabaseURL: DefaultDatabaseURL,
		LogLevel:    DefaultLogLevel,
		LogFormat:   DefaultLogFormat,
		CORSOrigins: []string{"*"},
		RateLimit: RateLimit{
			Window:       DefaultRateLimitWindow,
			Requests:     DefaultRateLimitRequests,
			AuthRequests: DefaultAuthRateLimit,
		},
		JWTTTL:               jwt.DefaultTTL,
		ShutdownTimeout:      DefaultShutdownTimeout,
		TokenCleanupInterval: DefaultTokenCleanupInterval,
		BcryptCost:           crypto.DefaultCost,
	}
}

// LoadFile накладывает значения из YAML файла поверх cfg.
// Отсутствующий файл не ошибка, если required == false.
func LoadFile(cfg *Config, path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv накладывает переменные окружения поверх cfg.
// PORT и DATABASE_URL поддерживаются для совместимости с PaaS окружениями.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	if port := getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if addr := getenv("WALKLOG_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if dsn := getenv("DATABASE_URL"); dsn != "" {
		cfg.DatabaseURL = dsn
	}
	if secret := getenv("JWT_SECRET"); secret != "" {
		cfg.JWTSecret = secret
	}
	if level := getenv("WALKLOG_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if format := getenv("WALKLOG_LOG_FORMAT"); format != "" {
		cfg.LogFormat = format
	}
	if origins := getenv("WALKLOG_CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = SplitList(origins)
	}

	durations := []struct {
		dst *time.Duration
		key string
	}{
		{key: "WALKLOG_JWT_TTL", dst: &cfg.JWTTTL},
		{key: "WALKLOG_RATE_LIMIT_WINDOW", dst: &cfg.RateLimit.Window},
	}
	for _, d := range durations {
		if raw := getenv(d.key); raw != "" {
			v, err := time.ParseDuration(raw)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", d.key, err)
			}
			*d.dst = v
		}
	}

	ints := []struct {
		dst *int
		key string
	}{
		{key: "WALKLOG_BCRYPT_COST", dst: &cfg.BcryptCost},
		{key: "WALKLOG_RATE_LIMIT", dst: &cfg.RateLimit.Requests},
		{key: "WALKLOG_AUTH_RATE_LIMIT", dst: &cfg.RateLimit.AuthRequests},
	}
	for _, i := range ints {
		if raw := getenv(i.key); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", i.key, err)
			}
			*i.dst = v
		}
	}

	return nil
}

// Validate проверяет настройки
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("listen address is required")
	}
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return errors.New("database URL is required")
	}
	if c.JWTSecret == "" {
		return errors.New("jwt secret is required (set JWT_SECRET)")
	}
	if c.JWTTTL <= 0 {
		return errors.New("jwt ttl must be positive")
	}
	if c.BcryptCost < crypto.MinCost || c.BcryptCost > crypto.MaxCost {
		return fmt.Errorf("bcrypt cost must be between %d and %d", crypto.MinCost, crypto.MaxCost)
	}
	if c.RateLimit.Window <= 0 || c.RateLimit.Requests <= 0 || c.RateLimit.AuthRequests <= 0 {
		return errors.New("rate limit window and request counts must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}
	if c.TokenCleanupInterval <= 0 {
		return errors.New("token cleanup interval must be positive")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log format %q: must be text or json", c.LogFormat)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Driver выбирает хранилище по DatabaseURL: postgres:// и postgresql:// для PostgreSQL,
// все остальное считается путем к файлу SQLite
func (c Config) Driver() string {
	if strings.HasPrefix(c.DatabaseURL, "postgres://") || strings.HasPrefix(c.DatabaseURL, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

// ParseLevel разбирает уровень логирования
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// SplitList разбирает список через запятую, пустые элементы отбрасываются
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
