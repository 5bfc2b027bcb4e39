package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Env.Env = "dev"
	cfg.HTTP.Port = 4000
	cfg.Postgres = &postgres.DBConn{}
	cfg.SecretKey.Private = "secret"
	cfg.Mail = &MailConfig{APIKey: "key", Domain: "mg.example.com", FromEmail: "eats@example.com"}
	applyDefaults(cfg)

	return cfg
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, Validate(validConfig()))
	})

	t.Run("unknown env mode", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env.Env = "staging"
		assert.Error(t, Validate(cfg))
	})

	t.Run("missing signing key", func(t *testing.T) {
		cfg := validConfig()
		cfg.SecretKey.Private = ""
		assert.Error(t, Validate(cfg))
	})

	t.Run("missing mail settings", func(t *testing.T) {
		cfg := validConfig()
		cfg.Mail = nil
		assert.Error(t, Validate(cfg))
	})

	t.Run("invalid from address", func(t *testing.T) {
		cfg := validConfig()
		cfg.Mail.FromEmail = "not-an-email"
		assert.Error(t, Validate(cfg))
	})

	t.Run("queued notifier needs a provider", func(t *testing.T) {
		cfg := validConfig()
		cfg.Notifier.Mode = "queued"
		assert.Error(t, Validate(cfg))

		cfg.PubSub = &PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost/push"}
		assert.NoError(t, Validate(cfg))
	})

	t.Run("rabbitmq provider needs broker settings", func(t *testing.T) {
		cfg := validConfig()
		cfg.PubSub = &PubSubConfig{Provider: "rabbitmq"}
		assert.Error(t, Validate(cfg))
	})
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultTokenTTL, cfg.SecretKey.TokenTTL)
	assert.Equal(t, "direct", cfg.Notifier.Mode)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
	assert.Equal(t, "postmaster@mg.example.com", cfg.Mail.Username)
	assert.Equal(t, defaultMailPort, cfg.Mail.Port)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"), []byte("EATS_DOTENV_PROBE=from-file\n"), 0o600))

	t.Run("loads the file for the env", func(t *testing.T) {
		t.Setenv("EATS_DOTENV_PROBE", "")
		require.NoError(t, os.Unsetenv("EATS_DOTENV_PROBE"))

		loadDotEnv("test", dir)
		assert.Equal(t, "from-file", os.Getenv("EATS_DOTENV_PROBE"))
	})

	t.Run("existing variables win", func(t *testing.T) {
		t.Setenv("EATS_DOTENV_PROBE", "from-env")

		loadDotEnv("test", dir)
		assert.Equal(t, "from-env", os.Getenv("EATS_DOTENV_PROBE"))
	})

	t.Run("production skips files", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.prod"), []byte("EATS_DOTENV_PROD=1\n"), 0o600))
		t.Setenv("EATS_DOTENV_PROD", "")
		require.NoError(t, os.Unsetenv("EATS_DOTENV_PROD"))

		loadDotEnv("prod", dir)
		assert.Empty(t, os.Getenv("EATS_DOTENV_PROD"))
	})
}
