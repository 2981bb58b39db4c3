// Package config loads postmarkctl settings from flags, the environment,
// an optional .env file and an optional config file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, so server_token
// is read from POSTMARK_SERVER_TOKEN.
const EnvPrefix = "POSTMARK"

const (
	defaultBaseURL   = "https://api.postmarkapp.com"
	defaultTimeout   = 30 * time.Second
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
	defaultEnvFile   = ".env"
)

var validate = validator.New()

// Config is the resolved postmarkctl configuration.
type Config struct {
	ServerToken string        `mapstructure:"server_token" validate:"required"`
	BaseURL     string        `mapstructure:"base_url" validate:"required,url"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"gt=0"`
	LogLevel    string        `mapstructure:"log_level" validate:"oneof=trace debug info warn error disabled"`
	LogFormat   string        `mapstructure:"log_format" validate:"oneof=json text"`
	// Concurrency bounds parallel deletes in bulk operations. Zero is unbounded.
	Concurrency int `mapstructure:"concurrency" validate:"gte=0"`
	// Rate caps bulk deletes per second. Zero is unlimited.
	Rate float64 `mapstructure:"rate" validate:"gte=0"`
}

// NewFlagSet returns the global flags. Parsing stops at the first
// positional argument so commands can parse their own flags.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetInterspersed(false)

	fs.String("config", "", "path to a config file (yaml, json or toml)")
	fs.String("env-file", defaultEnvFile, "dotenv file to load if present")
	fs.String("server-token", "", "Postmark server token")
	fs.String("base-url", defaultBaseURL, "Postmark API base URL")
	fs.Duration("timeout", defaultTimeout, "per-request timeout")
	fs.String("log-level", defaultLogLevel, "trace, debug, info, warn, error or disabled")
	fs.String("log-format", defaultLogFormat, "json or text")
	fs.Int("concurrency", 0, "maximum parallel requests for bulk deletes")
	fs.Float64("rate", 0, "maximum bulk deletes per second")
	return fs
}

// Load parses the global flags in args and resolves every setting.
// Flags take precedence over the environment, which takes precedence
// over the config file. The remaining positional arguments are returned.
func Load(fs *pflag.FlagSet, args []string) (*Config, []string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	envFile, _ := fs.GetString("env-file")
	if envFile != "" {
		// Variables already set in the environment win over the file.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{"server_token", "base_url", "timeout", "log_level", "log_format", "concurrency", "rate"} {
		if err := v.BindPFlag(key, fs.Lookup(strings.ReplaceAll(key, "_", "-"))); err != nil {
			return nil, nil, fmt.Errorf("bind flag %s: %w", key, err)
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	if err := validate.Struct(&cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, fs.Args(), nil
}

// NewLogger builds the command's logger. Text output is meant for a
// terminal; json is one event per line.
func NewLogger(cfg *Config, w io.Writer) zerolog.Logger {
	if cfg.LogFormat == "text" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(w).With().Timestamp().Logger().Level(level)
}
