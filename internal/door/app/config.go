package app

import (
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/vcdoor/internal/door/service"
	"github.com/aussiebroadwan/vcdoor/pkg/jwtx"
	"github.com/aussiebroadwan/vcdoor/pkg/mailx"
	"github.com/aussiebroadwan/vcdoor/pkg/vcshare"
)

type Config struct {
	Issuer         string        // Issuer claim for tokens (default: vcdoor)
	BootstrapToken string        // Optional: token required to perform bootstrap
	NumKeys        int           // Number of ephemeral signing keys (default: 3, min: 1, max: 10)
	TokenTTL       time.Duration // Access token lifetime (default: 30m)

	DatabaseFile string // Path to SQLite database file (default: ./door.db)
	PepperFile   string // Path to file containing pepper for password hashing (default: ./pepper)
	ShareLength  int    // Identifier and secret length in bytes (default: 50)
	SeedFile     string // Optional: YAML fixture applied to an empty database

	EmailValidation bool             // Require a mailed code before login (default: false)
	SMTP            mailx.SMTPConfig // Mail delivery; an empty host logs mail instead
	PendingUserTTL  time.Duration    // Age at which unvalidated accounts are removed (default: 72h)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:         getEnvOrDefault("DOOR_ISSUER", "vcdoor"),
		BootstrapToken: os.Getenv("BOOTSTRAP_TOKEN"),
		NumKeys:        getEnvIntOrDefault("DOOR_NUM_KEYS", 3),
		TokenTTL:       getEnvDurationOrDefault("DOOR_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),

		DatabaseFile: getEnvOrDefault("DOOR_DATABASE_FILE", "door.db"),
		PepperFile:   getEnvOrDefault("DOOR_PEPPER_FILE", "pepper"),
		ShareLength:  getEnvIntOrDefault("DOOR_SHARE_LENGTH", vcshare.DefaultLength),
		SeedFile:     os.Getenv("DOOR_SEED_FILE"),

		EmailValidation: getEnvBoolOrDefault("EMAIL_VALIDATION", false),
		SMTP: mailx.SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvIntOrDefault("SMTP_PORT", 465),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		},
		PendingUserTTL: getEnvDurationOrDefault("PENDING_USER_TTL", service.DefaultPendingUserTTL),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	// The share length fixes the layout of every stored share; a nonsense
	// value would make the database unreadable, so fall back instead.
	if cfg.ShareLength <= 0 {
		cfg.ShareLength = vcshare.DefaultLength
	}

	return cfg
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
