package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const envPrefix = "battery_alert"

// Config is the application configuration.
type Config struct {
	Port       string
	LogLevel   string
	DB         DBConfig
	Auth       AuthConfig
	Controller ControllerConfig
	Email      EmailConfig
	WS         WSConfig
}

type DBConfig struct {
	Path string
}

type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
	// OperatorSignup lets /auth/sign-up create operators. Off means every new account is a viewer.
	OperatorSignup bool
}

type ControllerConfig struct {
	Header uint16
}

type EmailConfig struct {
	Recipient string
}

type WSConfig struct {
	DefaultInterval time.Duration
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("db.path", "app.db")
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("auth.operator_signup", false)
	v.SetDefault("controller.header", 0xfeed)
	v.SetDefault("email.recipient", "a.b@c.com")
	v.SetDefault("ws.default_interval", time.Second)
}

// New returns a viper instance reading configs/config.yml and BATTERY_ALERT_* env vars.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("config")
	v.AddConfigPath("configs")
	v.AddConfigPath("/etc/battery-alert")
	return v
}

// Load reads the config file if present and decodes v into a Config.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper decodes already loaded settings.
func FromViper(v *viper.Viper) (Config, error) {
	header, err := cast.ToUint32E(v.Get("controller.header"))
	if err != nil {
		return Config{}, fmt.Errorf("controller.header: %w", err)
	}
	if header > 0xffff {
		return Config{}, fmt.Errorf("controller.header %#x does not fit in 16 bits", header)
	}
	cfg := Config{
		Port:     v.GetString("port"),
		LogLevel: v.GetString("log.level"),
		DB:       DBConfig{Path: v.GetString("db.path")},
		Auth: AuthConfig{
			SigningKey:     v.GetString("auth.signing_key"),
			TokenTTL:       v.GetDuration("auth.token_ttl"),
			OperatorSignup: v.GetBool("auth.operator_signup"),
		},
		Controller: ControllerConfig{Header: uint16(header)},
		Email:      EmailConfig{Recipient: strings.TrimSpace(v.GetString("email.recipient"))},
		WS:         WSConfig{DefaultInterval: v.GetDuration("ws.default_interval")},
	}
	if cfg.Email.Recipient == "" {
		return Config{}, errors.New("email.recipient must not be empty")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("auth.token_ttl must be positive, got %s", cfg.Auth.TokenTTL)
	}
	return cfg, nil
}
