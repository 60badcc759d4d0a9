package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProdConfig() *Config {
	return &Config{
		Env:        "production",
		Port:       "8642",
		JWTSecret:  "secure-secret-at-least-32-chars-long",
		DBPassword: "secure-password",
		DBSSLMode:  "require",
		RedisURL:   "localhost:6379",
	}
}

func TestConfig_Validate_Production(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"valid production config", func(_ *Config) {}, false},
		{"prod alias accepted", func(c *Config) { c.Env = "prod" }, false},
		{"default JWT secret rejected", func(c *Config) { c.JWTSecret = "your-secret-key-change-in-production" }, true},
		{"short JWT secret rejected", func(c *Config) { c.JWTSecret = "short" }, true},
		{"default DB password rejected", func(c *Config) { c.DBPassword = "password" }, true},
		{"empty DB password rejected", func(c *Config) { c.DBPassword = "" }, true},
		{"SSL disable rejected", func(c *Config) { c.DBSSLMode = "disable" }, true},
		{"empty SSL mode rejected", func(c *Config) { c.DBSSLMode = "" }, true},
		{"verify-full accepted", func(c *Config) { c.DBSSLMode = "verify-full" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validProdConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Validate_Development(t *testing.T) {
	// Development tolerates weak secrets and disabled SSL, with warnings only.
	c := &Config{
		Env:       "development",
		Port:      "8642",
		JWTSecret: "dev-secret",
		DBSSLMode: "disable",
	}
	assert.NoError(t, c.Validate())
}

func TestConfig_Validate_RequiredFields(t *testing.T) {
	t.Run("missing port", func(t *testing.T) {
		c := validProdConfig()
		c.Port = ""
		assert.Error(t, c.Validate())
	})

	t.Run("missing JWT secret", func(t *testing.T) {
		c := validProdConfig()
		c.JWTSecret = ""
		assert.Error(t, c.Validate())
	})
}
