package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "CPQ"

const (
	PersistenceMemory   = "memory"
	PersistenceDynamoDB = "dynamodb"
	PersistenceRedis    = "redis"
)

type Config struct {
	App         AppConfig
	Persistence PersistenceConfig
	DynamoDB    DynamoDBConfig
	Redis       RedisConfig
	QuoteAPI    QuoteAPIConfig
	Sessions    SessionsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Persistence.Backend {
	case PersistenceMemory, PersistenceDynamoDB, PersistenceRedis:
	default:
		return fmt.Errorf("unsupported persistence backend %q", c.Persistence.Backend)
	}
	if c.Sessions.IdleTTL <= 0 || c.Sessions.MaxLive <= 0 {
		return fmt.Errorf("session idle ttl and live cap must be positive, got %s and %d", c.Sessions.IdleTTL, c.Sessions.MaxLive)
	}
	if c.QuoteAPI.Timeout <= 0 {
		return fmt.Errorf("quote api timeout must be positive, got %s", c.QuoteAPI.Timeout)
	}
	return nil
}

type AppConfig struct {
	Env       string `envconfig:"CPQ_APP_ENV" default:"dev"`
	Port      string `envconfig:"CPQ_APP_PORT" default:"8080"`
	LogLevel  string `envconfig:"CPQ_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"CPQ_LOG_FORMAT" default:"json"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, "dev")
}

type PersistenceConfig struct {
	Backend string `envconfig:"CPQ_PERSISTENCE_BACKEND" default:"memory"`
}

// DynamoDBConfig keeps the AWS variable names so local DynamoDB setups work unchanged.
type DynamoDBConfig struct {
	Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	Endpoint        string `envconfig:"DYNAMODB_ENDPOINT"`
	Table           string `envconfig:"CPQ_STATE_TABLE" default:"quote_state"`
}

type RedisConfig struct {
	URL         string        `envconfig:"CPQ_REDIS_URL"`
	Address     string        `envconfig:"CPQ_REDIS_ADDR" default:"localhost:6379"`
	Password    string        `envconfig:"CPQ_REDIS_PASSWORD"`
	DB          int           `envconfig:"CPQ_REDIS_DB" default:"0"`
	TTL         time.Duration `envconfig:"CPQ_REDIS_TTL" default:"720h"`
	DialTimeout time.Duration `envconfig:"CPQ_REDIS_DIAL_TIMEOUT" default:"5s"`
}

type QuoteAPIConfig struct {
	BaseURL   string        `envconfig:"CPQ_QUOTE_API_BASE" default:"http://localhost:8000"`
	CSRFToken string        `envconfig:"CPQ_QUOTE_API_CSRF_TOKEN"`
	Timeout   time.Duration `envconfig:"CPQ_SUBMIT_TIMEOUT" default:"10s"`
	Mock      bool          `envconfig:"CPQ_QUOTE_API_MOCK" default:"false"`
}

// SessionsConfig bounds the in-memory session registry. Evicted sessions are
// restored from persistence when started again.
type SessionsConfig struct {
	IdleTTL time.Duration `envconfig:"CPQ_SESSION_IDLE_TTL" default:"30m"`
	MaxLive int           `envconfig:"CPQ_SESSION_MAX_LIVE" default:"10000"`
}
