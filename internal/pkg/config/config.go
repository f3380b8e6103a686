package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// DevJWTSecret is the fallback signing secret. It is only acceptable in development.
const DevJWTSecret = "dev-secret-change-me"

const (
	DriverFile  = "file"
	DriverMongo = "mongo"
	DriverRedis = "redis"
)

type Config struct {
	Port      string `env:"PORT,       default=3000"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	APIPrefix string `env:"API_PREFIX, default=/api"`

	Auth   AuthConfig
	Store  StoreConfig
	Upload UploadConfig
}

type AuthConfig struct {
	JWTSecret     string        `env:"JWT_SECRET,          default=dev-secret-change-me"`
	TokenTTL      time.Duration `env:"TOKEN_TTL,           default=1h"`
	SeedPasswords bool          `env:"AUTH_SEED_PASSWORDS, default=true"`
}

type StoreConfig struct {
	Driver string `env:"STORE_DRIVER, default=file"`
	Path   string `env:"STORE_PATH,   default=./db.json"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI        string `env:"MONGO_URI,        default=mongodb://localhost:27017"`
	Database   string `env:"MONGO_DB,         default=inventory"`
	Collection string `env:"MONGO_COLLECTION, default=documents"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
	Key      string `env:"REDIS_KEY,      default=inventory:document"`
}

type UploadConfig struct {
	Dir       string `env:"UPLOAD_DIR,        default=public/uploads"`
	URLPrefix string `env:"UPLOAD_URL_PREFIX, default=/uploads/"`
	MaxSize   string `env:"UPLOAD_MAX_SIZE,   default=10M"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	return LoadWithLookuper(envconfig.OsLookuper())
}

// LoadWithLookuper is Load with an explicit variable source, for tests.
func LoadWithLookuper(l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverFile, DriverMongo, DriverRedis:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	return nil
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// UsesDevSecret reports whether the fallback signing secret is in effect.
func (c *Config) UsesDevSecret() bool {
	return c.Auth.JWTSecret == DevJWTSecret
}
