package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ListenAddr string
	DBPath     string
	JWTSecret  string
	JWTTTL     time.Duration
	JWTIssuer  string
	LogLevel   string
	LogFormat  string
	LogFile    string
}

// Load reads configuration from an optional .env file with environment
// variable override.
func Load() (*Config, error) {
	return LoadWithPath(".env")
}

// LoadWithPath loads configuration from a specific env file. A missing file
// is not an error; environment variables still apply.
func LoadWithPath(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)
	v.SetConfigType("env")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		ListenAddr: v.GetString("LISTEN_ADDR"),
		DBPath:     v.GetString("DB_PATH"),
		JWTSecret:  v.GetString("JWT_SECRET"),
		JWTTTL:     v.GetDuration("JWT_TTL"),
		JWTIssuer:  v.GetString("JWT_ISSUER"),
		LogLevel:   v.GetString("LOG_LEVEL"),
		LogFormat:  v.GetString("LOG_FORMAT"),
		LogFile:    v.GetString("LOG_FILE"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("LISTEN_ADDR", ":8080")
	v.SetDefault("DB_PATH", "/data/solarscheduler.db")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", "168h")
	v.SetDefault("JWT_ISSUER", "solarscheduler")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOG_FILE", "")
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH is required")
	}
	return nil
}
