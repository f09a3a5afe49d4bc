package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port                 int           // HTTP server port (default: 8080)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	DatabaseDriver       string        // sqlite or postgres (default: sqlite)
	DatabaseURL          string        // SQLite file or PostgreSQL DSN (default: propcloud.db)
	SiteURL              string        // Base for links in emails (default: http://localhost:8080)
	WebRoot              string        // Optional: static site served behind the route guard
	AllowedOrigins       []string      // Optional: CORS origins
	AdminAuthMode        string        // session or token (default: session)
	AdminAPIKey          string        // Optional: static admin token for token mode
	SessionKeyFile       string        // Optional: Ed25519 PKCS8 PEM; empty means an ephemeral key
	SessionTTL           time.Duration // Session lifetime (default: 12h)
	PepperFile           string        // Path to the password pepper (default: ./pepper)
	MailDriver           string        // sendgrid or smtp (default: sendgrid)
	SendGridAPIKey       string        // Optional: empty disables email with the sendgrid driver
	SMTPHost             string        // Optional: empty disables email with the smtp driver
	SMTPPort             int           // (default: 587)
	SMTPUser             string
	SMTPPassword         string
	MailFromAddress      string        // (default: notifications@propcloud.io)
	MailFromName         string        // (default: PropCloud.io)
	MailOpsAddress       string        // Receives new signup notifications (default: contact@propcloud.io)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired token cleanup interval (default: 1h)
}

var defaults = map[string]any{
	"PORT":                  8080,
	"ENV":                   "dev",
	"LOG_LEVEL":             "info",
	"LOG_FORMAT":            "json",
	"DATABASE_DRIVER":       "sqlite",
	"DATABASE_URL":          "propcloud.db",
	"SITE_URL":              "http://localhost:8080",
	"WEB_ROOT":              "",
	"ALLOWED_ORIGINS":       "",
	"ADMIN_AUTH_MODE":       "session",
	"ADMIN_API_KEY":         "",
	"SESSION_KEY_FILE":      "",
	"SESSION_TTL":           12 * time.Hour,
	"PEPPER_FILE":           "pepper",
	"MAIL_DRIVER":           "sendgrid",
	"SENDGRID_API_KEY":      "",
	"SMTP_HOST":             "",
	"SMTP_PORT":             587,
	"SMTP_USER":             "",
	"SMTP_PASSWORD":         "",
	"MAIL_FROM_ADDRESS":     "notifications@propcloud.io",
	"MAIL_FROM_NAME":        "PropCloud.io",
	"MAIL_OPS_ADDRESS":      "contact@propcloud.io",
	"SHUTDOWN_GRACE_PERIOD": 10 * time.Second,
	"HOUSEKEEPING_INTERVAL": time.Hour,
}

// NewViper returns a viper instance reading environment variables over
// the defaults, plus cfgFile when it is not empty.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
	}
	return v, nil
}

// LoadConfig decodes v into a Config and validates it.
func LoadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:                 v.GetInt("PORT"),
		Env:                  v.GetString("ENV"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		LogFormat:            v.GetString("LOG_FORMAT"),
		DatabaseDriver:       strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseURL:          v.GetString("DATABASE_URL"),
		SiteURL:              strings.TrimSuffix(v.GetString("SITE_URL"), "/"),
		WebRoot:              v.GetString("WEB_ROOT"),
		AllowedOrigins:       splitList(v.GetString("ALLOWED_ORIGINS")),
		AdminAuthMode:        strings.ToLower(v.GetString("ADMIN_AUTH_MODE")),
		AdminAPIKey:          v.GetString("ADMIN_API_KEY"),
		SessionKeyFile:       v.GetString("SESSION_KEY_FILE"),
		SessionTTL:           v.GetDuration("SESSION_TTL"),
		PepperFile:           v.GetString("PEPPER_FILE"),
		MailDriver:           strings.ToLower(v.GetString("MAIL_DRIVER")),
		SendGridAPIKey:       v.GetString("SENDGRID_API_KEY"),
		SMTPHost:             v.GetString("SMTP_HOST"),
		SMTPPort:             v.GetInt("SMTP_PORT"),
		SMTPUser:             v.GetString("SMTP_USER"),
		SMTPPassword:         v.GetString("SMTP_PASSWORD"),
		MailFromAddress:      v.GetString("MAIL_FROM_ADDRESS"),
		MailFromName:         v.GetString("MAIL_FROM_NAME"),
		MailOpsAddress:       v.GetString("MAIL_OPS_ADDRESS"),
		ShutdownGracePeriod:  v.GetDuration("SHUTDOWN_GRACE_PERIOD"),
		HousekeepingInterval: v.GetDuration("HOUSEKEEPING_INTERVAL"),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.DatabaseDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	switch c.AdminAuthMode {
	case "session":
	case "token":
		if c.AdminAPIKey == "" {
			return errors.New("ADMIN_AUTH_MODE=token requires ADMIN_API_KEY")
		}
	default:
		return fmt.Errorf("unsupported ADMIN_AUTH_MODE %q", c.AdminAuthMode)
	}
	switch c.MailDriver {
	case "sendgrid", "smtp":
	default:
		return fmt.Errorf("unsupported MAIL_DRIVER %q", c.MailDriver)
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.HousekeepingInterval <= 0 {
		return errors.New("HOUSEKEEPING_INTERVAL must be positive")
	}
	return nil
}

// Secure reports whether the deployment is served over TLS.
func (c Config) Secure() bool {
	return strings.HasPrefix(c.SiteURL, "https://")
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
