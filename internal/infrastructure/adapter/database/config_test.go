package database

import (
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Host:          "localhost",
		Port:          5432,
		Username:      "postgres",
		Password:      "postgres",
		Database:      "timekeeper",
		SSLMode:       "disable",
		MaxOpenConns:  10,
		MaxIdleConns:  5,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "warn",
		RetryAttempts: 3,
		RetryDelay:    time.Second,
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("Valid config", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("Reports every problem", func(t *testing.T) {
		cfg := validConfig()
		cfg.Host = ""
		cfg.Port = 70000
		cfg.SSLMode = "sometimes"
		cfg.RetryAttempts = 0

		err := cfg.Validate()
		require.Error(t, err)

		var merr *multierror.Error
		require.ErrorAs(t, err, &merr)
		assert.Len(t, merr.Errors, 4)
		assert.Contains(t, err.Error(), "database host is required")
		assert.Contains(t, err.Error(), "invalid port number: 70000")
		assert.Contains(t, err.Error(), "invalid SSL mode: sometimes")
		assert.Contains(t, err.Error(), "retry attempts must be at least 1")
	})
}

func TestConfig_DSN(t *testing.T) {
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=timekeeper sslmode=disable",
		validConfig().DSN(),
	)
}
