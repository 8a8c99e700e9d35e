package config

import (
	"fmt"
	"net/url"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	GRPCPort int    `mapstructure:"grpc_port" validate:"gte=0,lt=65536"` // 0 disables the gRPC listener
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`

	ReadTimeoutSeconds  int `mapstructure:"read_timeout_seconds" validate:"gte=0"`
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" validate:"gte=0"`
	IdleTimeoutSeconds  int `mapstructure:"idle_timeout_seconds" validate:"gte=0"`
}

// DatabaseConfig contains all database-related configuration settings.
// Either URL or the discrete connection parameters must be supplied.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=postgres mysql sqlite"`
	URL    string `mapstructure:"url" validate:"required_without=Host"`

	Host     string `mapstructure:"host" validate:"required_without=URL"`
	Port     int    `mapstructure:"port" validate:"gte=0,lt=65536"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`

	MaxOpenConns           int  `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns           int  `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetimeMinutes int  `mapstructure:"conn_max_lifetime_minutes" validate:"gte=0"`
	AutoMigrate            bool `mapstructure:"auto_migrate"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	BcryptCost           int    `mapstructure:"bcrypt_cost" validate:"required,gte=4,lte=31"`

	// EnforceOwnership restricts mutations to the authenticated user's own
	// account and posts. Off by default: any valid token may mutate anything.
	EnforceOwnership bool `mapstructure:"enforce_ownership"`
}

// DSN returns the driver-specific connection string. URL wins when set.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}

	switch c.Driver {
	case "postgres":
		sslMode := c.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.User, c.Password),
			Host:     fmt.Sprintf("%s:%d", c.Host, c.portOr(5432)),
			Path:     "/" + c.Name,
			RawQuery: "sslmode=" + sslMode,
		}
		return u.String()
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=UTC&clientFoundRows=true",
			c.User, c.Password, c.Host, c.portOr(3306), c.Name)
	case "sqlite":
		// Host doubles as the database file path for sqlite.
		return fmt.Sprintf("file:%s?_foreign_keys=on", c.Host)
	default:
		return ""
	}
}

func (c DatabaseConfig) portOr(fallback int) int {
	if c.Port == 0 {
		return fallback
	}
	return c.Port
}
