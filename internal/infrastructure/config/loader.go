package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is prepended to every environment variable the loader reads
const EnvPrefix = "TK"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
	"../.env",
	"../../.env",
}

// LoadConfig loads configuration from file based on the environment.
// A missing config file is not an error; defaults and environment apply.
func LoadConfig() (*Config, error) {
	// .env is optional; variables already set in the environment win
	_ = loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		return nil
	}
	return errors.New("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 120)     // seconds, must cover the longest sleep
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.enabled", false)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 10)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("clock.maxSleepSeconds", 60)
	v.SetDefault("clock.historySize", 100)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// getEnvironment determines the environment to use based on TK_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps flat environment variables onto camelCase keys
// that AutomaticEnv cannot reach
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"TK_DB_HOST":      "database.host",
		"TK_DB_USERNAME":  "database.username",
		"TK_DB_PASSWORD":  "database.password",
		"TK_DB_NAME":      "database.database",
		"TK_DB_SSL_MODE":  "database.sslMode",
		"TK_SERVER_HOST":  "server.host",
		"TK_LOGGER_LEVEL": "logger.level",
		"TK_METRICS_PATH": "metrics.path",
	}
	for env, key := range stringOverrides {
		if val := os.Getenv(env); val != "" {
			v.Set(key, val)
		}
	}

	intOverrides := map[string]string{
		"TK_DB_PORT":                 "database.port",
		"TK_SERVER_PORT":             "server.port",
		"TK_CLOCK_MAX_SLEEP_SECONDS": "clock.maxSleepSeconds",
		"TK_CLOCK_HISTORY_SIZE":      "clock.historySize",
	}
	for env, key := range intOverrides {
		if val, ok := getEnvInt(env); ok {
			v.Set(key, val)
		}
	}

	boolOverrides := map[string]string{
		"TK_DB_ENABLED":      "database.enabled",
		"TK_METRICS_ENABLED": "metrics.enabled",
	}
	for env, key := range boolOverrides {
		if val, err := strconv.ParseBool(os.Getenv(env)); err == nil {
			v.Set(key, val)
		}
	}
}

// getEnvInt reads an integer environment variable, reporting whether it was set and valid
func getEnvInt(name string) (int, bool) {
	valStr := os.Getenv(name)
	if valStr == "" {
		return 0, false
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, false
	}
	return val, true
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = config.Server.ReadTimeout * time.Second
	config.Server.WriteTimeout = config.Server.WriteTimeout * time.Second
	config.Server.IdleTimeout = config.Server.IdleTimeout * time.Second
	config.Server.ReadHeaderTimeout = config.Server.ReadHeaderTimeout * time.Second
	config.Server.ShutdownTimeout = config.Server.ShutdownTimeout * time.Second

	config.Database.ConnMaxLifetime = config.Database.ConnMaxLifetime * time.Minute
	config.Database.ConnMaxIdleTime = config.Database.ConnMaxIdleTime * time.Minute
	config.Database.QueryTimeout = config.Database.QueryTimeout * time.Second
	config.Database.RetryDelay = config.Database.RetryDelay * time.Second
}

// Validate ensures required values are present and consistent
func (c *Config) Validate() error {
	var result *multierror.Error

	switch c.Environment {
	case Development, Production, Test:
	default:
		result = multierror.Append(result, fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			c.Environment, Development, Production, Test))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		result = multierror.Append(result, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}
	if c.Server.ShutdownTimeout <= 0 {
		result = multierror.Append(result, errors.New("server.shutdownTimeout must be positive"))
	}
	if c.Clock.MaxSleepSeconds < 0 {
		result = multierror.Append(result, fmt.Errorf("clock.maxSleepSeconds must be non-negative, got: %d", c.Clock.MaxSleepSeconds))
	}
	if c.Server.WriteTimeout > 0 && c.Clock.MaxSleepSeconds > 0 &&
		c.Server.WriteTimeout <= time.Duration(c.Clock.MaxSleepSeconds)*time.Second {
		result = multierror.Append(result, errors.New("server.writeTimeout must exceed clock.maxSleepSeconds"))
	}
	if c.Clock.HistorySize <= 0 {
		result = multierror.Append(result, fmt.Errorf("clock.historySize must be positive, got: %d", c.Clock.HistorySize))
	}
	if c.Logger.Level == "" {
		result = multierror.Append(result, errors.New("logger.level is required"))
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		result = multierror.Append(result, fmt.Errorf("metrics.path must start with '/', got: %q", c.Metrics.Path))
	}

	if c.Database.Enabled {
		if c.Database.Host == "" {
			result = multierror.Append(result, fmt.Errorf("database.host (or %s_DB_HOST environment variable) is required", EnvPrefix))
		}
		if c.Database.Username == "" {
			result = multierror.Append(result, fmt.Errorf("database.username (or %s_DB_USERNAME environment variable) is required", EnvPrefix))
		}
		if c.Database.Database == "" {
			result = multierror.Append(result, fmt.Errorf("database.database (or %s_DB_NAME environment variable) is required", EnvPrefix))
		}
	}

	return result.ErrorOrNil()
}
