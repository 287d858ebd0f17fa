package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// Data sources selectable through DATA_SOURCE.
const (
	SourceFixture  = "fixture"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Afiliado"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Log struct {
		Level  string `envconfig:"LOG_LEVEL" default:"info"`
		Format string `envconfig:"LOG_FORMAT" default:"text"`
	}

	Source string `envconfig:"DATA_SOURCE" default:"fixture"`

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"afiliado"`
	}

	SQLite struct {
		Path string `envconfig:"SQLITE_PATH" default:"afiliado.db"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Theme struct {
		Path string `envconfig:"THEME_PATH" default:"afiliado-theme.yaml"`
	}

	Export struct {
		Dir string `envconfig:"EXPORT_DIR" default:"."`
	}

	Finance struct {
		Balance decimal.Decimal `envconfig:"FINANCE_BALANCE" default:"18540.75"`
	}

	TUI struct {
		LogFile string `envconfig:"TUI_LOG_FILE"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// SQLiteDSN enables foreign keys and a busy timeout on the sqlite file.
func (c *Config) SQLiteDSN() string {
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", c.SQLite.Path)
}

// Logger builds a logger writing to w from LOG_LEVEL and LOG_FORMAT.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(c.Log.Level)}

	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}

	return level
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	switch cfg.Source {
	case SourceFixture, SourcePostgres, SourceSQLite:
	default:
		return nil, fmt.Errorf("unknown DATA_SOURCE %q", cfg.Source)
	}

	return &cfg, nil
}
