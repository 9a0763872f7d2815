package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port            string        `mapstructure:"PORT" validate:"required,numeric"`
	BindAddress     string        `mapstructure:"BIND_ADDRESS"`
	Environment     string        `mapstructure:"ENVIRONMENT" validate:"oneof=development production test"`
	LogLevel        string        `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT" validate:"gt=0"`

	DBDriver       string `mapstructure:"DB_DRIVER" validate:"oneof=postgres sqlite"`
	DBHost         string `mapstructure:"DB_HOST" validate:"required_if=DBDriver postgres"`
	DBPort         string `mapstructure:"DB_PORT" validate:"required_if=DBDriver postgres"`
	DBUser         string `mapstructure:"DB_USER"`
	DBPassword     string `mapstructure:"DB_PASSWORD"`
	DBName         string `mapstructure:"DB_NAME" validate:"required_if=DBDriver postgres"`
	DBSSLMode      string `mapstructure:"DB_SSLMODE"`
	DBPath         string `mapstructure:"DB_PATH" validate:"required_if=DBDriver sqlite"`
	DBMaxOpenConns int    `mapstructure:"DB_MAX_OPEN_CONNS" validate:"gte=0"`
	DBMaxIdleConns int    `mapstructure:"DB_MAX_IDLE_CONNS" validate:"gte=0"`

	AutoMigrate    bool `mapstructure:"AUTO_MIGRATE"`
	SeedCategories bool `mapstructure:"SEED_CATEGORIES"`
}

var defaults = map[string]any{
	"PORT":              "8080",
	"BIND_ADDRESS":      "",
	"ENVIRONMENT":       "development",
	"LOG_LEVEL":         "info",
	"SHUTDOWN_TIMEOUT":  "10s",
	"DB_DRIVER":         "postgres",
	"DB_HOST":           "localhost",
	"DB_PORT":           "5432",
	"DB_USER":           "trivia",
	"DB_PASSWORD":       "trivia",
	"DB_NAME":           "trivia",
	"DB_SSLMODE":        "disable",
	"DB_PATH":           "trivia.db",
	"DB_MAX_OPEN_CONNS": 10,
	"DB_MAX_IDLE_CONNS": 5,
	"AUTO_MIGRATE":      true,
	"SEED_CATEGORIES":   true,
}

var validate = validator.New()

// Load reads configuration from the environment, after loading envFiles
// (default ".env") into it. Missing env files are ignored; variables
// already set in the environment win over the files.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Environment = strings.ToLower(cfg.Environment)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.BindAddress + ":" + c.Port
}
