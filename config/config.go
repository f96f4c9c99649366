package config

import (
	"strings"
	"time"

	"grainauth/internal/domain/constants"
	"grainauth/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "100KB"
	defaultHTTPPort           = 8080
	defaultAccessTokenTTL     = 24 * time.Hour
	defaultBcryptCost         = 12
	defaultPasswordMinLength  = 8
	defaultPasswordMaxLength  = 72
	defaultPageSize           = 50
	defaultRedisKeyPrefix     = "grainauth:denylist:"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		DefaultPageSize    int      `json:"defaultPageSize" yaml:"defaultPageSize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Migration struct {
		AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
	} `json:"migration" yaml:"migration"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// Tarif overrides the values new tarifs take for omitted fields
	Tarif *TarifConfig `json:"tarif" yaml:"tarif"`

	// Redis backs the access token denylist; empty Addr disables revocation
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Events configures where domain events are published
	Events *EventsConfig `json:"events" yaml:"events"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	Issuer         string        `json:"issuer" yaml:"issuer"`
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
}

// PasswordStrengthConfig defines password length requirements
type PasswordStrengthConfig struct {
	MinLength int `json:"minLength" yaml:"minLength"`
	MaxLength int `json:"maxLength" yaml:"maxLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// TarifConfig mirrors entity.TarifDefaults in its config representation
type TarifConfig struct {
	DefaultPrice    string `json:"defaultPrice" yaml:"defaultPrice"`
	DefaultCurrency string `json:"defaultCurrency" yaml:"defaultCurrency"`
	DefaultScope    string `json:"defaultScope" yaml:"defaultScope"`
	DefaultTerms    string `json:"defaultTerms" yaml:"defaultTerms"`
}

// Defaults converts the section into entity.TarifDefaults.
func (c *TarifConfig) Defaults() (entity.TarifDefaults, error) {
	price, err := entity.ParseMoney(c.DefaultPrice)
	if err != nil {
		return entity.TarifDefaults{}, errors.Wrap(err, "tarif.defaultPrice")
	}

	return entity.TarifDefaults{
		Price:    price,
		Currency: strings.ToUpper(c.DefaultCurrency),
		Scope:    c.DefaultScope,
		Terms:    c.DefaultTerms,
	}, nil
}

// RedisConfig defines the Redis connection used for token revocation
type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// EventsConfig defines event publishing configuration
type EventsConfig struct {
	// Provider type: "noop", "local", "google" or "kafka"
	Provider string `json:"provider" yaml:"provider"`

	// Topic user-created events are sent to (kafka topic or local path segment)
	Topic string `json:"topic" yaml:"topic"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Kafka broker addresses (for kafka provider)
	Brokers []string `json:"brokers" yaml:"brokers"`
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		if replicas := buildReplicasFromEnv(); len(replicas) > 0 {
			cfg.Postgres.Replicas = replicas
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = defaultHTTPPort
	}
	if c.HTTP.DefaultPageSize <= 0 {
		c.HTTP.DefaultPageSize = defaultPageSize
	}
	if c.Env.ServiceName == "" {
		c.Env.ServiceName = "grainauth"
	}

	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Auth.AccessTokenTTL <= 0 {
		c.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = defaultBcryptCost
	}
	if c.Auth.Issuer == "" {
		c.Auth.Issuer = c.Env.ServiceName
	}

	if c.PasswordStrength == nil {
		c.PasswordStrength = &PasswordStrengthConfig{}
	}
	if c.PasswordStrength.MinLength <= 0 {
		c.PasswordStrength.MinLength = defaultPasswordMinLength
	}
	if c.PasswordStrength.MaxLength <= 0 {
		c.PasswordStrength.MaxLength = defaultPasswordMaxLength
	}

	defaults := entity.DefaultTarifDefaults()
	if c.Tarif == nil {
		c.Tarif = &TarifConfig{}
	}
	if c.Tarif.DefaultPrice == "" {
		c.Tarif.DefaultPrice = defaults.Price.String()
	}
	if c.Tarif.DefaultCurrency == "" {
		c.Tarif.DefaultCurrency = defaults.Currency
	}
	if c.Tarif.DefaultScope == "" {
		c.Tarif.DefaultScope = defaults.Scope
	}
	if c.Tarif.DefaultTerms == "" {
		c.Tarif.DefaultTerms = defaults.Terms
	}

	if c.Redis != nil && c.Redis.KeyPrefix == "" {
		c.Redis.KeyPrefix = defaultRedisKeyPrefix
	}

	if c.Events == nil {
		c.Events = &EventsConfig{}
	}
	if c.Events.Provider == "" {
		c.Events.Provider = constants.EventProviderNoop
	}
	if c.Events.Topic == "" {
		c.Events.Topic = constants.DefaultUserCreatedTopic
	}
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SecretKey.Access) == "" {
		return errors.New("secretKey.access (or JWT_SECRET) is required")
	}
	if c.PasswordStrength.MinLength > c.PasswordStrength.MaxLength {
		return errors.Errorf("passwordStrength.minLength %d exceeds maxLength %d",
			c.PasswordStrength.MinLength, c.PasswordStrength.MaxLength)
	}

	defaults, err := c.Tarif.Defaults()
	if err != nil {
		return err
	}
	if defaults.Price < 0 {
		return errors.New("tarif.defaultPrice must not be negative")
	}
	if len(defaults.Currency) != 3 {
		return errors.Errorf("tarif.defaultCurrency %q must be a three-letter code", defaults.Currency)
	}

	switch c.Events.Provider {
	case constants.EventProviderNoop, constants.EventProviderLocal:
	case constants.EventProviderGoogle:
		if c.Events.ProjectID == "" || c.Events.TopicID == "" {
			return errors.New("events.projectId and events.topicId are required for the google provider")
		}
	case constants.EventProviderKafka:
		if len(c.Events.Brokers) == 0 {
			return errors.New("events.brokers is required for the kafka provider")
		}
	default:
		return errors.Errorf("unknown events.provider %q", c.Events.Provider)
	}

	return nil
}
