package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Server captures process-level configuration.
type Server struct {
	Addr        string
	Environment string
	DatabaseURL string
	LogLevel    string
	LogFormat   string

	Auth         AuthConfig
	Redis        RedisConfig
	Kafka        KafkaConfig
	Mail         MailConfig
	PendingCache time.Duration
}

// AuthConfig holds token verification settings.
type AuthConfig struct {
	SigningKey string
	Issuer     string
	AdminRole  string
}

// RedisConfig configures the optional pending-count cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures the optional moderation decision stream.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// MailConfig configures outgoing notifications.
type MailConfig struct {
	ResendAPIKey  string
	ResendBaseURL string
	From          string
	ReplyTo       string
}

// LoadDotEnv loads a .env file when present. Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	existing := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	signingKey := os.Getenv("AUTH_SIGNING_KEY")
	if signingKey == "" {
		// Development default; production deployments must override it.
		signingKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:        getString("LOCALDIR_ADDR", ":8080"),
		Environment: getString("ENVIRONMENT", "development"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    getString("LOG_LEVEL", "info"),
		LogFormat:   getString("LOG_FORMAT", "json"),
		Auth: AuthConfig{
			SigningKey: signingKey,
			Issuer:     getString("AUTH_ISSUER", "localdir"),
			AdminRole:  getString("ADMIN_ROLE", "admin"),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     getInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(os.Getenv("KAFKA_BROKERS")),
			Topic:   getString("KAFKA_MODERATION_TOPIC", "moderation.decisions"),
		},
		Mail: MailConfig{
			ResendAPIKey:  os.Getenv("RESEND_API_KEY"),
			ResendBaseURL: getString("RESEND_BASE_URL", "https://api.resend.com"),
			From:          getString("MAIL_FROM", "Guia Local <noreply@guialocal.com.br>"),
			ReplyTo:       os.Getenv("MAIL_REPLY_TO"),
		},
		PendingCache: getDuration("PENDING_CACHE_TTL", 30*time.Second),
	}
}

// IsProduction reports whether the process runs in production.
func (s Server) IsProduction() bool {
	return strings.EqualFold(s.Environment, "production")
}

func getString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
