package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"grainauth/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: grainauth-test
  log:
    level: debug
http:
  port: 9090
secretKey:
  access: yaml-secret
auth:
  accessTokenTTL: 30m
events:
  provider: kafka
  brokers: [localhost:9092]
`

func writeConfig(t *testing.T, body string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	t.Chdir(dir)
}

func TestNew_LoadsYAMLAndAppliesDefaults(t *testing.T) {
	writeConfig(t, testYAML)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "yaml-secret", cfg.SecretKey.Access)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "grainauth-test", cfg.Auth.Issuer)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Events.Brokers)
	assert.Equal(t, constants.DefaultUserCreatedTopic, cfg.Events.Topic)

	defaults, err := cfg.Tarif.Defaults()
	require.NoError(t, err)
	assert.Equal(t, "10.00", defaults.Price.String())
	assert.Equal(t, "USD", defaults.Currency)
	assert.Equal(t, "basic", defaults.Scope)
	assert.Equal(t, "monthly", defaults.Terms)
}

func TestNew_LegacyEnvOverrides(t *testing.T) {
	writeConfig(t, testYAML)
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_EXPIRES_IN", "90")
	t.Setenv("APP_NAME", "legacy-name")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.SecretKey.Access)
	assert.Equal(t, 90*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "legacy-name", cfg.Env.ServiceName)
}

func TestNew_InvalidJWTExpiry(t *testing.T) {
	writeConfig(t, testYAML)
	t.Setenv("JWT_EXPIRES_IN", "soon")

	_, err := New()
	assert.ErrorContains(t, err, "JWT_EXPIRES_IN")
}

func TestNew_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := New()
	assert.ErrorContains(t, err, "not found")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.SecretKey.Access = "secret"
		cfg.applyDefaults()

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing secret", mutate: func(c *Config) { c.SecretKey.Access = " " }, wantErr: "secretKey.access"},
		{name: "bad price", mutate: func(c *Config) { c.Tarif.DefaultPrice = "ten" }, wantErr: "tarif.defaultPrice"},
		{name: "negative price", mutate: func(c *Config) { c.Tarif.DefaultPrice = "-1.00" }, wantErr: "negative"},
		{name: "bad currency", mutate: func(c *Config) { c.Tarif.DefaultCurrency = "EURO" }, wantErr: "three-letter"},
		{name: "google without topic", mutate: func(c *Config) { c.Events.Provider = constants.EventProviderGoogle }, wantErr: "topicId"},
		{name: "kafka without brokers", mutate: func(c *Config) { c.Events.Provider = constants.EventProviderKafka }, wantErr: "brokers"},
		{name: "unknown provider", mutate: func(c *Config) { c.Events.Provider = "sqs" }, wantErr: "unknown"},
		{
			name:    "password bounds",
			mutate:  func(c *Config) { c.PasswordStrength.MinLength = 100 },
			wantErr: "minLength",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
