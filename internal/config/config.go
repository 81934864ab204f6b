// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Host       string `json:"host"`
		Port       string `json:"port"`
		User       string `json:"user"`
		Password   string `json:"password"`
		Name       string `json:"name"`
		SSLMode    string `json:"sslmode"`
		SearchPath string `json:"schema"`
	} `json:"database"`
	JWT struct {
		Secret       string        `json:"secret"`
		ExpiryPeriod time.Duration `json:"expiry_period"`
	} `json:"jwt"`
	Server struct {
		Port         string        `json:"port"`
		ReadTimeout  time.Duration `json:"read_timeout"`
		WriteTimeout time.Duration `json:"write_timeout"`
		MetricsPort  string        `json:"metrics_port"`
	}
	Identity struct {
		Provider           string `json:"provider"`
		SupabaseURL        string `json:"supabase_url"`
		SupabaseServiceKey string `json:"-"`
	} `json:"identity"`
	Email struct {
		Provider string `json:"provider"`
	} `json:"email"`
	Sendgrid struct {
		APIKey string `json:"api_key"`
		From   string `json:"from"`
	} `json:"sendgrid"`
	SMTP struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"smtp"`
	Redis struct {
		URL                string `json:"url"`
		RateLimitPerMinute int    `json:"rate_limit_per_minute"`
	} `json:"redis"`
	Operator struct {
		Email        string `json:"email"`
		PasswordHash string `json:"-"`
	} `json:"operator"`
	SiteURL       string        `json:"site_url"`
	InvitationTTL time.Duration `json:"invitation_ttl"`
	CatalogTTL    time.Duration `json:"catalog_ttl"`
	LogLevel      string        `json:"log_level"`
}

// Load reads configuration from defaults, an optional config.yaml and the
// environment, in that order. A local .env file is loaded into the
// environment first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}

	// Database configuration
	cfg.Database.Host = v.GetString("DB_HOST")
	cfg.Database.Port = v.GetString("DB_PORT")
	cfg.Database.User = v.GetString("DB_USER")
	cfg.Database.Password = v.GetString("DB_PASSWORD")
	cfg.Database.Name = v.GetString("DB_NAME")
	cfg.Database.SSLMode = v.GetString("DB_SSLMODE")
	cfg.Database.SearchPath = v.GetString("DB_SCHEMA")

	// JWT configuration
	cfg.JWT.Secret = v.GetString("JWT_SECRET")
	cfg.JWT.ExpiryPeriod = v.GetDuration("JWT_EXPIRY")

	// Server configuration
	cfg.Server.Port = v.GetString("SERVER_PORT")
	cfg.Server.ReadTimeout = v.GetDuration("SERVER_READ_TIMEOUT")
	cfg.Server.WriteTimeout = v.GetDuration("SERVER_WRITE_TIMEOUT")
	cfg.Server.MetricsPort = v.GetString("METRICS_PORT")

	// Identity provider
	cfg.Identity.Provider = strings.ToLower(v.GetString("IDENTITY_PROVIDER"))
	cfg.Identity.SupabaseURL = strings.TrimRight(v.GetString("SUPABASE_URL"), "/")
	cfg.Identity.SupabaseServiceKey = v.GetString("SUPABASE_SERVICE_KEY")

	// Email configuration
	cfg.Email.Provider = strings.ToLower(v.GetString("EMAIL_PROVIDER"))
	cfg.Sendgrid.APIKey = v.GetString("SENDGRID_API_KEY")
	cfg.Sendgrid.From = v.GetString("SENDGRID_FROM")
	cfg.SMTP.Host = v.GetString("SMTP_HOST")
	cfg.SMTP.Port = v.GetInt("SMTP_PORT")
	cfg.SMTP.Username = v.GetString("SMTP_USERNAME")
	cfg.SMTP.Password = v.GetString("SMTP_PASSWORD")
	cfg.SMTP.From = v.GetString("SMTP_FROM")

	// Redis
	cfg.Redis.URL = v.GetString("REDIS_URL")
	cfg.Redis.RateLimitPerMinute = v.GetInt("RATE_LIMIT_PER_MINUTE")

	// Operator credential
	cfg.Operator.Email = v.GetString("OPERATOR_EMAIL")
	cfg.Operator.PasswordHash = v.GetString("OPERATOR_PASSWORD_HASH")

	cfg.SiteURL = strings.TrimRight(v.GetString("SITE_URL"), "/")
	cfg.InvitationTTL = v.GetDuration("INVITATION_TTL")
	cfg.CatalogTTL = v.GetDuration("CATALOG_TTL")
	cfg.LogLevel = strings.ToLower(v.GetString("LOG_LEVEL"))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "orgmembers")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_SCHEMA", "public")

	v.SetDefault("JWT_SECRET", "your-secret-key")
	v.SetDefault("JWT_EXPIRY", "24h")

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_READ_TIMEOUT", "15s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "15s")
	v.SetDefault("METRICS_PORT", "9090")

	v.SetDefault("IDENTITY_PROVIDER", "local")
	v.SetDefault("SUPABASE_URL", "")
	v.SetDefault("SUPABASE_SERVICE_KEY", "")

	v.SetDefault("EMAIL_PROVIDER", "log")
	v.SetDefault("SENDGRID_API_KEY", "")
	v.SetDefault("SENDGRID_FROM", "")
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_FROM", "")

	v.SetDefault("REDIS_URL", "")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 30)

	v.SetDefault("OPERATOR_EMAIL", "")
	v.SetDefault("OPERATOR_PASSWORD_HASH", "")

	v.SetDefault("SITE_URL", "http://localhost:3000")
	v.SetDefault("INVITATION_TTL", "168h")
	v.SetDefault("CATALOG_TTL", "5m")
	v.SetDefault("LOG_LEVEL", "info")
}

// Validate checks the combinations Load cannot default its way out of.
func (c *Config) Validate() error {
	switch c.Identity.Provider {
	case "local":
	case "supabase":
		if c.Identity.SupabaseURL == "" || c.Identity.SupabaseServiceKey == "" {
			return fmt.Errorf("supabase identity provider requires SUPABASE_URL and SUPABASE_SERVICE_KEY")
		}
	default:
		return fmt.Errorf("unknown identity provider %q", c.Identity.Provider)
	}

	switch c.Email.Provider {
	case "log":
	case "sendgrid":
		if c.Sendgrid.APIKey == "" {
			return fmt.Errorf("sendgrid email provider requires SENDGRID_API_KEY")
		}
	case "smtp":
		if c.SMTP.Host == "" {
			return fmt.Errorf("smtp email provider requires SMTP_HOST")
		}
	default:
		return fmt.Errorf("unknown email provider %q", c.Email.Provider)
	}

	if c.InvitationTTL <= 0 {
		return fmt.Errorf("invalid invitation ttl: %s", c.InvitationTTL)
	}

	return nil
}

// DSN returns the PostgreSQL connection string used by gorm and pgx.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s search_path=%s",
		c.Database.Host,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.Port,
		c.Database.SSLMode,
		c.Database.SearchPath,
	)
}

// MigrationURL returns the connection URL golang-migrate expects.
func (c *Config) MigrationURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
