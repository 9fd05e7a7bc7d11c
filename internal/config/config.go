package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	AuthModeJWT    = "jwt"
	AuthModeRemote = "remote"
	AuthModeDev    = "dev"
)

// devJWTSecret sólo se acepta fuera de production.
const devJWTSecret = "dev-secret-change-me"

type Config struct {
	Port   string `mapstructure:"PORT"`
	AppEnv string `mapstructure:"APP_ENV"`

	// DSN vacío => store en memoria.
	DBDSN          string `mapstructure:"DB_DSN"`
	DBMaxOpenConns int    `mapstructure:"DB_MAX_OPEN_CONNS"`

	JWTSecret string        `mapstructure:"JWT_SECRET"`
	JWTTTL    time.Duration `mapstructure:"JWT_TTL"`

	AuthMode         string `mapstructure:"AUTH_MODE"`
	AuthRemoteURL    string `mapstructure:"AUTH_REMOTE_URL"`
	AuthRemoteAPIKey string `mapstructure:"AUTH_REMOTE_API_KEY"`

	// Zona horaria que define "hoy" para el dashboard. Vacío = Local.
	Timezone string `mapstructure:"APP_TIMEZONE"`

	DashboardTakenMatching string `mapstructure:"DASHBOARD_TAKEN_MATCHING"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
}

var keys = []string{
	"PORT", "APP_ENV",
	"DB_DSN", "DB_MAX_OPEN_CONNS",
	"JWT_SECRET", "JWT_TTL",
	"AUTH_MODE", "AUTH_REMOTE_URL", "AUTH_REMOTE_API_KEY",
	"APP_TIMEZONE", "DASHBOARD_TAKEN_MATCHING",
	"LOG_LEVEL", "LOG_FORMAT",
}

// Load lee env y, si existe, el archivo .env del directorio actual.
func Load() (*Config, error) {
	return load(".env")
}

func load(envFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("AUTH_MODE", AuthModeJWT)
	v.SetDefault("DASHBOARD_TAKEN_MATCHING", "positional")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// .env es opcional
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.AuthMode = strings.ToLower(strings.TrimSpace(cfg.AuthMode))
	if cfg.JWTSecret == "" && !cfg.IsProduction() {
		cfg.JWTSecret = devJWTSecret
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// Location resuelve APP_TIMEZONE; vacío devuelve time.Local.
func (c *Config) Location() (*time.Location, error) {
	if strings.TrimSpace(c.Timezone) == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.AuthMode {
	case AuthModeJWT:
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required when AUTH_MODE is %q", AuthModeJWT)
		}
	case AuthModeRemote:
		if c.AuthRemoteURL == "" || c.AuthRemoteAPIKey == "" {
			return fmt.Errorf("AUTH_REMOTE_URL and AUTH_REMOTE_API_KEY are required when AUTH_MODE is %q", AuthModeRemote)
		}
	case AuthModeDev:
		if c.IsProduction() {
			return fmt.Errorf("AUTH_MODE %q is not allowed in production", AuthModeDev)
		}
	default:
		return fmt.Errorf("AUTH_MODE must be %q, %q or %q, got %q", AuthModeJWT, AuthModeRemote, AuthModeDev, c.AuthMode)
	}

	if c.IsProduction() && c.JWTSecret == devJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}
	if c.DBMaxOpenConns < 0 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be >= 0")
	}

	switch c.DashboardTakenMatching {
	case "tagged", "positional":
	default:
		return fmt.Errorf("DASHBOARD_TAKEN_MATCHING must be \"tagged\" or \"positional\", got %q", c.DashboardTakenMatching)
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("APP_TIMEZONE: %w", err)
	}
	return nil
}
