package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseFile string // Optional: path to SQLite database file (default: ./dashboard.db)

	AllowedEmailDomain string        // Optional: domain team emails must belong to (default: nextnukkad.in)
	OTPTTL             time.Duration // Optional: validity window for emailed codes (default: 10m)

	ResendAPIKey string // Required in prod: Resend API key for OTP email
	MailFrom     string // Optional: From address for OTP email

	IdentityURL        string        // Optional: external identity service base URL; empty selects the local backend
	IdentityServiceKey string        // Required with IdentityURL: service-role key for admin calls
	JWTSecret          string        // Required without IdentityURL: HMAC secret for local session tokens
	TokenTTL           time.Duration // Optional: local session token lifetime (default: 24h)
	UpstreamTimeout    time.Duration // Optional: timeout for identity and mail calls (default: 15s)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		DatabaseFile: getEnvOrDefault("DATABASE_FILE", "dashboard.db"),

		AllowedEmailDomain: getEnvOrDefault("ALLOWED_EMAIL_DOMAIN", "nextnukkad.in"),
		OTPTTL:             getEnvDurationOrDefault("OTP_TTL", 10*time.Minute),

		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		MailFrom:     getEnvOrDefault("MAIL_FROM", "Next Nukkad Team <team@nextnukkad.in>"),

		IdentityURL:        os.Getenv("IDENTITY_URL"),
		IdentityServiceKey: os.Getenv("IDENTITY_SERVICE_KEY"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		TokenTTL:           getEnvDurationOrDefault("TOKEN_TTL", 24*time.Hour),
		UpstreamTimeout:    getEnvDurationOrDefault("UPSTREAM_TIMEOUT", 15*time.Second),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are taken as minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
