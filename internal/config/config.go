package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string        `env:"PORT" envDefault:"8081"`
	MediaDir    string        `env:"MEDIA_DIR" envDefault:"./web/static"`
	TemplateDir string        `env:"TEMPLATE_DIR" envDefault:"./web/templates"`
	LogFile     string        `env:"LOG_FILE"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON     bool          `env:"LOG_JSON" envDefault:"false"`
	SearchDelay time.Duration `env:"SEARCH_DELAY" envDefault:"2s"`
	SessionTTL  time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	JobTTL      time.Duration `env:"JOB_TTL" envDefault:"10m"`
	RateLimit   int           `env:"RATE_LIMIT" envDefault:"60"`
	// FavoritesDSN selects the SQLite database behind favorites; the default is
	// a shared in-memory database.
	FavoritesDSN string `env:"FAVORITES_DSN"`
	// BackendURL is reserved for a real price backend. Nothing reads it yet.
	BackendURL string `env:"BACKEND_URL"`
}

// Load reads configuration from the environment, after applying an optional
// .env file in the working directory.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}
	if cfg.SearchDelay < 0 {
		return Config{}, fmt.Errorf("SEARCH_DELAY must not be negative, got %s", cfg.SearchDelay)
	}
	if cfg.RateLimit < 1 {
		return Config{}, fmt.Errorf("RATE_LIMIT must be positive, got %d", cfg.RateLimit)
	}
	return cfg, nil
}

func (c Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("port", c.Port),
		slog.String("media_dir", c.MediaDir),
		slog.String("template_dir", c.TemplateDir),
		slog.String("log_file", c.LogFile),
		slog.Duration("search_delay", c.SearchDelay),
		slog.Duration("session_ttl", c.SessionTTL),
		slog.Int("rate_limit", c.RateLimit),
		slog.Bool("backend_url_set", c.BackendURL != ""),
	)
}
