package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	PublicBaseURL string
	LogLevel      string

	// Gemini concierge
	GeminiAPIKey  string
	GeminiModelID string

	// Bookings persistence (Supabase Postgres)
	DatabaseURL string

	// Redis (live session transcripts)
	RedisAddr     string
	RedisPassword string
	RedisTLS      bool

	// SendGrid (admin newsletters)
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	// Admin panel auth
	AdminJWTSecret string

	// Session timing knobs
	PollInterval   time.Duration
	JoinGrace      time.Duration
	HostJoinDelay  time.Duration
	AutoReplyDelay time.Duration

	CORSAllowedOrigins string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),

		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModelID: getEnv("GEMINI_MODEL_ID", "gemini-2.0-flash-exp"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		RedisAddr:     getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "daymaker2day"),

		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),

		PollInterval:   getEnvAsDuration("SESSION_POLL_INTERVAL", 30*time.Second),
		JoinGrace:      getEnvAsDuration("SESSION_JOIN_GRACE", 2*time.Minute),
		HostJoinDelay:  getEnvAsDuration("HOST_JOIN_DELAY", 1500*time.Millisecond),
		AutoReplyDelay: getEnvAsDuration("HOST_AUTO_REPLY_DELAY", 2*time.Second),

		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
