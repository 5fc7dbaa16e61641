package app

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Issuer         string `yaml:"issuer"`          // Issuer claim for session tokens
	BootstrapToken string `yaml:"bootstrap_token"` // Required to create the first admin; generated if unset

	DatabaseFile   string   `yaml:"database_file"`    // Path to SQLite database file (default: ./backoffice.db)
	SessionKeyFile string   `yaml:"session_key_file"` // Path to the Ed25519 signing key; generated on first run
	PepperFile     string   `yaml:"pepper_file"`      // Path to the password hashing pepper (default: ./pepper)
	AppBaseURL     string   `yaml:"app_base_url"`     // Public base URL used to build invitation links
	AllowedOrigins []string `yaml:"allowed_origins"`  // CORS origins for the SPA

	ResendAPIKey string `yaml:"resend_api_key"` // Optional: invitation emails are logged instead when unset
	ResendFrom   string `yaml:"resend_from"`    // Sender address for invitation emails

	SessionTTL           time.Duration `yaml:"session_ttl"`           // Session token lifetime (default: 12h)
	Env                  string        `yaml:"env"`                   // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        `yaml:"log_level"`             // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        `yaml:"log_format"`            // Log format (json, text) (default: json)
	Port                 int           `yaml:"port"`                  // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration `yaml:"shutdown_grace_period"` // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration `yaml:"housekeeping_interval"` // Housekeeping interval (default: 1h)
}

// LoadConfig builds the configuration from the environment, optionally
// overlaid on a YAML file named by BACKOFFICE_CONFIG_FILE. Environment
// variables win over file values.
func LoadConfig() (Config, error) {
	cfg := Config{
		Issuer:               "sweetfm-backoffice",
		DatabaseFile:         "backoffice.db",
		SessionKeyFile:       "session.key",
		PepperFile:           "pepper",
		AppBaseURL:           "http://localhost:5173",
		AllowedOrigins:       []string{"http://localhost:5173"},
		ResendFrom:           "Sweet FM <noreply@sweetfm.example>",
		SessionTTL:           12 * time.Hour,
		Env:                  "dev",
		LogLevel:             "info",
		LogFormat:            "json",
		Port:                 8080,
		ShutdownGracePeriod:  10 * time.Second,
		HousekeepingInterval: 1 * time.Hour,
	}

	if path := os.Getenv("BACKOFFICE_CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if cfg.BootstrapToken == "" {
		cfg.BootstrapToken = mustGenerateToken()
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Issuer, "BACKOFFICE_ISSUER")
	setString(&cfg.BootstrapToken, "BOOTSTRAP_TOKEN")
	setString(&cfg.DatabaseFile, "BACKOFFICE_DATABASE_FILE")
	setString(&cfg.SessionKeyFile, "BACKOFFICE_SESSION_KEY_FILE")
	setString(&cfg.PepperFile, "BACKOFFICE_PEPPER_FILE")
	setString(&cfg.AppBaseURL, "BACKOFFICE_APP_BASE_URL")
	setString(&cfg.ResendAPIKey, "RESEND_API_KEY")
	setString(&cfg.ResendFrom, "RESEND_FROM")
	setString(&cfg.Env, "ENV")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.LogFormat, "LOG_FORMAT")

	if v := os.Getenv("BACKOFFICE_ALLOWED_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		cfg.AllowedOrigins = origins
	}

	setInt(&cfg.Port, "PORT")
	setDuration(&cfg.SessionTTL, "BACKOFFICE_SESSION_TTL")
	setDuration(&cfg.ShutdownGracePeriod, "SHUTDOWN_GRACE_PERIOD")
	setDuration(&cfg.HousekeepingInterval, "HOUSEKEEPING_INTERVAL")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

// mustGenerateToken produces a random bootstrap token for deployments that
// did not configure one. The token is logged at startup so the operator can
// still perform the first-admin setup.
func mustGenerateToken() string {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("failed to generate bootstrap token: %v", err))
	}
	return hex.EncodeToString(buf)
}
