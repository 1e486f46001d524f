package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	JWT     JWTConfig
	Invoice InvoiceConfig
	Log     LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
	// ConnMaxLife bounds connection age so pooled connections rotate
	// through managed-postgres load balancers.
	ConnMaxLife time.Duration `mapstructure:"conn_max_life"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// InvoiceConfig holds invoice numbering settings.
type InvoiceConfig struct {
	NumberPrefix string `mapstructure:"number_prefix"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from environment variables with the GSTBILL_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GSTBILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "gstbill")
	v.SetDefault("db.password", "gstbill_secret")
	v.SetDefault("db.name", "gstbill_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)
	v.SetDefault("db.conn_max_life", "30m")

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "gstbill")

	// Invoice defaults
	v.SetDefault("invoice.number_prefix", "INV")

	// Log defaults
	v.SetDefault("log.level", "debug")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":           "GSTBILL_SERVER_PORT",
		"server.read_timeout":   "GSTBILL_SERVER_READ_TIMEOUT",
		"server.write_timeout":  "GSTBILL_SERVER_WRITE_TIMEOUT",
		"server.environment":    "GSTBILL_SERVER_ENVIRONMENT",
		"db.host":               "GSTBILL_DB_HOST",
		"db.port":               "GSTBILL_DB_PORT",
		"db.user":               "GSTBILL_DB_USER",
		"db.password":           "GSTBILL_DB_PASSWORD",
		"db.name":               "GSTBILL_DB_NAME",
		"db.sslmode":            "GSTBILL_DB_SSLMODE",
		"db.max_open":           "GSTBILL_DB_MAX_OPEN",
		"db.max_idle":           "GSTBILL_DB_MAX_IDLE",
		"db.conn_max_life":      "GSTBILL_DB_CONN_MAX_LIFE",
		"jwt.secret":            "GSTBILL_JWT_SECRET",
		"jwt.access_expiry":     "GSTBILL_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":    "GSTBILL_JWT_REFRESH_EXPIRY",
		"jwt.issuer":            "GSTBILL_JWT_ISSUER",
		"invoice.number_prefix": "GSTBILL_INVOICE_NUMBER_PREFIX",
		"log.level":             "GSTBILL_LOG_LEVEL",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if GSTBILL_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("GSTBILL_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),

		ConnMaxLife: v.GetDuration("db.conn_max_life"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.Invoice = InvoiceConfig{
		NumberPrefix: v.GetString("invoice.number_prefix"),
	}
	cfg.Log = LogConfig{
		Level: v.GetString("log.level"),
	}

	return cfg, nil
}
