package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type AppConfig struct {
	API     *APIConfig     `mapstructure:"api"`
	Gin     *GinConfig     `mapstructure:"gin"`
	Booking *BookingConfig `mapstructure:"booking"`
	Session *SessionConfig `mapstructure:"session"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

// BookingConfig points at the remote booking API that owns all real booking
// logic.
type BookingConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type SessionConfig struct {
	TTLMinutes int `mapstructure:"ttl_minutes"`
}

// Load reads the yaml config file and applies environment overrides
// (e.g. BOOKING_BASE_URL overrides booking.base_url).
func Load(configPath string) (*AppConfig, error) {
	viper.SetConfigFile(configPath)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("api.environment", "development")
	viper.SetDefault("api.port", "8080")
	viper.SetDefault("gin.mode", "debug")
	viper.SetDefault("booking.base_url", "http://localhost:8000")
	viper.SetDefault("booking.timeout_seconds", 15)
	viper.SetDefault("session.ttl_minutes", 30)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	return conf, nil
}
