package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the settings shared by the web server and the maintenance tools.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Media    MediaConfig
	Admin    AdminConfig
	RabbitMQ RabbitMQConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port        string
	CSRFEnabled bool
}

type DatabaseConfig struct {
	Driver   string // "sqlite" or "postgres"
	DSN      string
	LogLevel string // gorm logger level: silent, error, warn, info
}

type MediaConfig struct {
	Dir          string
	MaxUploadMB  int
	AllowedTypes []string
}

type AdminConfig struct {
	Username  string
	Password  string
	JWTSecret string
	TokenTTL  time.Duration
}

// RabbitMQConfig leaves URL empty to disable record events.
type RabbitMQConfig struct {
	URL   string
	Queue string
	Audit bool
}

type LogConfig struct {
	Level  string
	Format string // "text" or "json"
}

// NewViper returns a viper instance with every default set and environment
// variables bound. Callers may bind command-line flags on top of it.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8000")
	v.SetDefault("CSRF_ENABLED", true)
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_DSN", "db.sqlite3")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("MEDIA_DIR", "media")
	v.SetDefault("MAX_UPLOAD_MB", 5)
	v.SetDefault("UPLOAD_ALLOWED_TYPES", ".jpg,.jpeg,.png,.gif,.webp")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "admin")
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("ADMIN_TOKEN_TTL", "12h")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_QUEUE", "record_events")
	v.SetDefault("RABBITMQ_AUDIT", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.AutomaticEnv()
	return v
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromViper(NewViper())
}

// FromViper builds a Config from an already prepared viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        v.GetString("APP_PORT"),
			CSRFEnabled: v.GetBool("CSRF_ENABLED"),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(v.GetString("DB_DRIVER")),
			DSN:      v.GetString("DB_DSN"),
			LogLevel: strings.ToLower(v.GetString("DB_LOG_LEVEL")),
		},
		Media: MediaConfig{
			Dir:          v.GetString("MEDIA_DIR"),
			MaxUploadMB:  v.GetInt("MAX_UPLOAD_MB"),
			AllowedTypes: splitList(v.GetString("UPLOAD_ALLOWED_TYPES")),
		},
		Admin: AdminConfig{
			Username:  v.GetString("ADMIN_USERNAME"),
			Password:  v.GetString("ADMIN_PASSWORD"),
			JWTSecret: v.GetString("JWT_SECRET"),
			TokenTTL:  v.GetDuration("ADMIN_TOKEN_TTL"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:   v.GetString("RABBITMQ_URL"),
			Queue: v.GetString("RABBITMQ_QUEUE"),
			Audit: v.GetBool("RABBITMQ_AUDIT"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want sqlite or postgres)", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("DB_DSN must not be empty")
	}
	if c.Media.MaxUploadMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive, got %d", c.Media.MaxUploadMB)
	}
	if c.Admin.TokenTTL <= 0 {
		return fmt.Errorf("ADMIN_TOKEN_TTL must be a positive duration")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
