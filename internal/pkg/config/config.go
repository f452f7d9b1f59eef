package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// devSessionSecret signs session tokens when no dedicated secret is set in a
// non-production environment. Production refuses to start without SESSION_SECRET.
const devSessionSecret = "frontridge-dev-session-secret"

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// Admin credential: the hash takes precedence when both are set.
	AdminPassword     string `env:"ADMIN_PASSWORD"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	SessionSecret   string        `env:"SESSION_SECRET"`
	SessionDuration time.Duration `env:"SESSION_DURATION, default=1h"`

	CacheBackend  string        `env:"CACHE_BACKEND,   default=memory"`
	WorksCacheTTL time.Duration `env:"WORKS_CACHE_TTL, default=5m"`

	Mongo MongoConfig
	Redis RedisConfig
	S3    S3Config
	SMTP  SMTPConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=frontridge"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type S3Config struct {
	Region        string `env:"S3_REGION, default=us-east-1"`
	Bucket        string `env:"S3_BUCKET"`
	AccessKey     string `env:"S3_ACCESS_KEY"`
	SecretKey     string `env:"S3_SECRET_KEY"`
	Endpoint      string `env:"S3_ENDPOINT"`
	PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`
	UsePathStyle  bool   `env:"S3_USE_PATH_STYLE, default=false"`
}

// Configured reports whether all three required storage credentials are set.
func (c S3Config) Configured() bool {
	return c.AccessKey != "" && c.SecretKey != "" && c.Bucket != ""
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"CONTACT_FROM"`
	To       string `env:"CONTACT_EMAIL"`
}

func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.From != "" && c.To != ""
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// Validate enforces the invariants the rest of the process relies on. It is
// called once at startup; the returned error is fatal.
func (c *Config) Validate() error {
	if c.AdminPassword == "" && c.AdminPasswordHash == "" {
		return errors.New("config: admin credential missing, set ADMIN_PASSWORD or ADMIN_PASSWORD_HASH")
	}

	if c.SessionSecret == "" {
		// The admin credential is never reused as signing material: a
		// leaked token must not help an offline attack on the password.
		if c.IsProduction() {
			return errors.New("config: SESSION_SECRET is required in production")
		}
		c.SessionSecret = devSessionSecret
	}

	if c.SessionDuration <= 0 {
		c.SessionDuration = time.Hour
	}

	if c.CacheBackend != "memory" && c.CacheBackend != "redis" {
		return fmt.Errorf("config: unknown CACHE_BACKEND %q, expected memory or redis", c.CacheBackend)
	}

	return nil
}
