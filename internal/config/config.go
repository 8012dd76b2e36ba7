package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingConnectionString = errors.New("missing store connection string")
	ErrUnknownDriver           = errors.New("unknown store driver")
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env       string    `mapstructure:"env"`
	Port      string    `mapstructure:"port"`
	Store     Store     `mapstructure:"store"`
	Database  Database  `mapstructure:"database"`
	Mongo     Mongo     `mapstructure:"mongo"`
	CORS      CORS      `mapstructure:"cors"`
	Log       Log       `mapstructure:"log"`
	RateLimit RateLimit `mapstructure:"rate_limit"`
}

type Store struct {
	Driver string `mapstructure:"driver"` // postgres or mongo
}

type Database struct {
	URL          string `mapstructure:"url"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	Migrate      bool   `mapstructure:"migrate"` // apply embedded migrations on start
}

type Mongo struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"` // empty disables the rotating file sink
}

type RateLimit struct {
	MaxRequests int           `mapstructure:"max_requests"` // 0 disables limiting
	Window      time.Duration `mapstructure:"window"`
}

// ConnectionString returns the connection string of the selected driver.
func (c *Config) ConnectionString() (string, error) {
	switch c.Store.Driver {
	case DriverPostgres:
		if c.Database.URL == "" {
			return "", ErrMissingConnectionString
		}
		return c.Database.URL, nil
	case DriverMongo:
		if c.Mongo.URI == "" {
			return "", ErrMissingConnectionString
		}
		return c.Mongo.URI, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDriver, c.Store.Driver)
	}
}

func (c *Config) IsLocal() bool {
	return c.Env == "local"
}

// Load reads .env, an optional config/config.yaml and the environment.
func Load() (*Config, error) {
	// A missing .env file is fine outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("port", "5000")
	v.SetDefault("store.driver", DriverPostgres)
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.migrate", true)
	v.SetDefault("mongo.database", "quizdb")
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("rate_limit.max_requests", 0)
	v.SetDefault("rate_limit.window", "1m")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("store.driver", "STORE_DRIVER")
	_ = v.BindEnv("database.url", "DATABASE_URL")
	_ = v.BindEnv("database.migrate", "DB_MIGRATE")
	_ = v.BindEnv("mongo.uri", "MONGO_URI")
	_ = v.BindEnv("mongo.database", "MONGO_DATABASE")
	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("log.file", "LOG_FILE")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	if _, err := cfg.ConnectionString(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
