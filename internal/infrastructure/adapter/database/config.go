package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Config represents database configuration
type Config struct {
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
	LogLevel        string
	RetryAttempts   int
	RetryDelay      time.Duration
}

var validSSLModes = map[string]bool{
	"disable":     true,
	"require":     true,
	"verify-ca":   true,
	"verify-full": true,
	"prefer":      true,
}

var validLogLevels = map[string]bool{
	"silent": true,
	"debug":  true,
	"info":   true,
	"warn":   true,
	"error":  true,
}

// Validate checks every field and reports all problems at once
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Host == "" {
		result = multierror.Append(result, errors.New("database host is required"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		result = multierror.Append(result, fmt.Errorf("invalid port number: %d", c.Port))
	}
	if c.Username == "" {
		result = multierror.Append(result, errors.New("database username is required"))
	}
	if c.Database == "" {
		result = multierror.Append(result, errors.New("database name is required"))
	}
	if !validSSLModes[c.SSLMode] {
		result = multierror.Append(result, fmt.Errorf("invalid SSL mode: %s", c.SSLMode))
	}
	if c.MaxOpenConns <= 0 {
		result = multierror.Append(result, fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns))
	}
	if c.MaxIdleConns < 0 {
		result = multierror.Append(result, fmt.Errorf("max idle connections must be non-negative, got: %d", c.MaxIdleConns))
	}
	if c.QueryTimeout <= 0 {
		result = multierror.Append(result, errors.New("query timeout must be positive"))
	}
	if c.RetryAttempts < 1 {
		result = multierror.Append(result, fmt.Errorf("retry attempts must be at least 1, got: %d", c.RetryAttempts))
	}
	if c.RetryDelay < 0 {
		result = multierror.Append(result, fmt.Errorf("retry delay must be non-negative, got: %s", c.RetryDelay))
	}
	if !validLogLevels[c.LogLevel] {
		result = multierror.Append(result, fmt.Errorf("invalid log level: %s", c.LogLevel))
	}

	return result.ErrorOrNil()
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}
