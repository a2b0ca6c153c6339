// Package config настройки клиента: значения по умолчанию, YAML файл и флаги командной строки.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultServerURL           = "http://localhost:3000"
	DefaultDBPath              = "walklog-client.db"
	DefaultTimeout             = 30 * time.Second
	DefaultOnlineCheckInterval = 30 * time.Second
	DefaultLogLevel            = "warn"
)

// Config настройки клиента
type Config struct {
	ServerURL           string        `yaml:"server"`
	DBPath              string        `yaml:"db"`
	LogLevel            string        `yaml:"log_level"`
	Timeout             time.Duration `yaml:"timeout"`
	OnlineCheckInterval time.Duration `yaml:"online_check_interval"`
}

// Default возвращает настройки по умолчанию
func Default() Config {
	return Config{
		ServerURL:           DefaultServerURL,
		DBPath:              DefaultDBPath,
		Timeout:             DefaultTimeout,
		OnlineCheckInterval: DefaultOnlineCheckInterval,
		LogLevel:            DefaultLogLevel,
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

// Validate проверяет настройки
func (c Config) Validate() error {
	if strings.TrimSpace(c.ServerURL) == "" {
		return errors.New("server URL is required")
	}
	if !strings.HasPrefix(c.ServerURL, "http://") && !strings.HasPrefix(c.ServerURL, "https://") {
		return fmt.Errorf("server URL must start with http:// or https://: %q", c.ServerURL)
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("database path is required")
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if c.OnlineCheckInterval <= 0 {
		return errors.New("online check interval must be positive")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel разбирает уровень логирования
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
