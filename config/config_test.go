package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("ENV", "test")
		t.Setenv("SECRETS_DIR", t.TempDir())
		for _, key := range []string{"SERVER_PORT", "SERVER_HOST", "DB_NAME", "DB_SSL_MODE",
			"ANALYZE_DELAY_MS", "BARCODE_DELAY_MS", "COMPOSE_DELAY_MS", "REDIS_DB"} {
			t.Setenv(key, "")
		}

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.ServerPort)
		assert.Equal(t, "0.0.0.0", cfg.ServerHost)
		assert.Equal(t, "safebite", cfg.DBName)
		assert.Equal(t, "disable", cfg.DBSSLMode)
		assert.Equal(t, 1500*time.Millisecond, cfg.AnalyzeDelay)
		assert.Equal(t, 2000*time.Millisecond, cfg.BarcodeDelay)
		assert.Equal(t, 1500*time.Millisecond, cfg.ComposeDelay)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("ENV", "test")
		t.Setenv("SECRETS_DIR", t.TempDir())
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("DB_NAME", "safebite_test")
		t.Setenv("ANALYZE_DELAY_MS", "0")
		t.Setenv("COMPOSE_DELAY_MS", "250")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.ServerPort)
		assert.Equal(t, "safebite_test", cfg.DBName)
		assert.Equal(t, time.Duration(0), cfg.AnalyzeDelay)
		assert.Equal(t, 250*time.Millisecond, cfg.ComposeDelay)
	})

	t.Run("unparseable delay falls back to the default", func(t *testing.T) {
		t.Setenv("ENV", "test")
		t.Setenv("SECRETS_DIR", t.TempDir())
		t.Setenv("ANALYZE_DELAY_MS", "not-a-number")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 1500*time.Millisecond, cfg.AnalyzeDelay)
	})

	t.Run("invalid REDIS_DB is an error", func(t *testing.T) {
		t.Setenv("ENV", "test")
		t.Setenv("SECRETS_DIR", t.TempDir())
		t.Setenv("REDIS_DB", "not-a-number")

		_, err := LoadConfig()

		assert.Error(t, err)
	})
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ServerPort: "8080",
			DBHost:     "localhost",
			DBPort:     "5432",
			DBUser:     "postgres",
			DBName:     "safebite",
			RedisHost:  "localhost",
			RedisPort:  "6379",
		}
	}

	t.Run("accepts a complete development config", func(t *testing.T) {
		t.Setenv("ENV", "development")

		assert.NoError(t, ValidateConfig(valid()))
	})

	t.Run("rejects a missing required field", func(t *testing.T) {
		cfg := valid()
		cfg.DBHost = ""

		err := ValidateConfig(cfg)

		var validationErr ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "DB_HOST", validationErr.Field)
	})

	t.Run("rejects a non-numeric port", func(t *testing.T) {
		cfg := valid()
		cfg.ServerPort = "eighty"

		assert.Error(t, ValidateConfig(cfg))
	})

	t.Run("production requires secrets", func(t *testing.T) {
		t.Setenv("CI", "")
		t.Setenv("ENV", "production")

		err := ValidateConfig(valid())
		var validationErr ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "JWT_SECRET", validationErr.Field)

		cfg := valid()
		cfg.JWTSecret = "secret"
		cfg.DBPassword = "password"
		assert.NoError(t, ValidateConfig(cfg))
	})

	t.Run("rejects negative delays", func(t *testing.T) {
		t.Setenv("ENV", "development")
		cfg := valid()
		cfg.AnalyzeDelay = -time.Second

		assert.Error(t, ValidateConfig(cfg))
	})
}

func TestGetEnvironment(t *testing.T) {
	t.Run("CI wins", func(t *testing.T) {
		t.Setenv("CI", "true")
		t.Setenv("ENV", "production")

		assert.Equal(t, CI, GetEnvironment())
	})

	t.Run("ENV switch", func(t *testing.T) {
		t.Setenv("CI", "")
		for env, want := range map[string]Environment{
			"production":  Production,
			"test":        Test,
			"development": Development,
			"":            Development,
			"staging":     Development,
		} {
			t.Setenv("ENV", env)
			assert.Equal(t, want, GetEnvironment(), env)
		}
	})
}
