package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string   `mapstructure:"env"` // current application environment (local, dev, production etc)
	TelegramAPIToken string   `mapstructure:"-"`   // Telegram API token loaded from environment
	DB               DB       `mapstructure:"database"`
	Content          Content  `mapstructure:"content"`
	Quiz             Quiz     `mapstructure:"quiz"`
	Telegram         Telegram `mapstructure:"telegram"`
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Content points at the bundled study material.
type Content struct {
	Dir string `mapstructure:"dir"`
}

// Quiz configures active quiz sessions.
type Quiz struct {
	SessionTTL    time.Duration `mapstructure:"session_ttl"`    // idle time after which a session is evicted
	SweepSchedule string        `mapstructure:"sweep_schedule"` // cron spec of the idle session sweeper
}

type Telegram struct {
	PollTimeout int `mapstructure:"poll_timeout"` // long polling timeout in seconds
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// IsProduction reports whether the application runs in production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	return load("./config")
}

func load(configPath string) (*Config, error) {
	// Pick up a local .env file if there is one.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	v.SetDefault("env", "local")
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("content.dir", "assets/data")
	v.SetDefault("quiz.session_ttl", "30m")
	v.SetDefault("quiz.sweep_schedule", "*/10 * * * *")
	v.SetDefault("telegram.poll_timeout", 60)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.DB.URL = v.GetString("database_url")
	if cfg.DB.URL == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	return &cfg, nil
}
