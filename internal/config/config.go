package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Postgres     PostgresConfig
	Redis        RedisConfig
	Logger       LoggerConfig
	Auth         AuthConfig
	CORS         CORSConfig
	Notification NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	CacheTTLSec int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret             string
	AccessTokenTTLMinutes int
	BcryptCost            int
}

// CORSConfig controls cross-origin behavior for the browser frontend.
type CORSConfig struct {
	AllowOrigins string
	AllowHeaders string
}

// NotificationConfig holds stub notification endpoints.
type NotificationConfig struct {
	EmailFrom  string
	WebhookURL string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	maxConns := int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10))
	minConns := int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2))
	runMigrations := getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true)
	connMaxIdle := int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30))
	connMaxLife := int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300))

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "friendly-paws-backend"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       maxConns,
			MinConns:       minConns,
			RunMigrations:  runMigrations,
			ConnMaxIdleSec: connMaxIdle,
			ConnMaxLifeSec: connMaxLife,
		},
		Redis: RedisConfig{
			Addr:        getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password:    os.Getenv("REDIS_PASSWORD"),
			DB:          redisDB,
			CacheTTLSec: getEnvAsInt("REDIS_CACHE_TTL_SECONDS", 60),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             getEnv("AUTH_JWT_SECRET", "dev-secret"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 30),
			BcryptCost:            getEnvAsInt("AUTH_BCRYPT_COST", 12),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
			AllowHeaders: getEnv("CORS_ALLOW_HEADERS", "Origin, Content-Type, Accept, Authorization"),
		},
		Notification: NotificationConfig{
			EmailFrom:  getEnv("NOTIFY_EMAIL_FROM", "noreply@friendlypaws.example"),
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// CacheTTL returns the lifetime for cached lookups.
func (r RedisConfig) CacheTTL() time.Duration {
	if r.CacheTTLSec <= 0 {
		return time.Minute
	}
	return time.Duration(r.CacheTTLSec) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
