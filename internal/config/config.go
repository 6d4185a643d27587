package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// Values are read from app.env and can be overridden by environment variables.
type Config struct {
	Environment      string        `mapstructure:"ENVIRONMENT"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
	ServerAddress    string        `mapstructure:"SERVER_ADDRESS"`
	DBSource         string        `mapstructure:"DB_SOURCE"`
	NominatimBaseURL string        `mapstructure:"NOMINATIM_BASE_URL"`
	NominatimAgent   string        `mapstructure:"NOMINATIM_USER_AGENT"`
	NominatimReferer string        `mapstructure:"NOMINATIM_REFERER"`
	NominatimTimeout time.Duration `mapstructure:"NOMINATIM_TIMEOUT"`
}

// LoadConfig reads configuration from path/app.env, a local .env and the environment.
// A missing app.env is not an error; defaults and the environment still apply.
func LoadConfig(path string) (config Config, err error) {
	// Local overrides for development; absent in deployed environments.
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("DB_SOURCE", "")
	v.SetDefault("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org")
	v.SetDefault("NOMINATIM_USER_AGENT", "mapkit-api/1.0")
	v.SetDefault("NOMINATIM_REFERER", "")
	v.SetDefault("NOMINATIM_TIMEOUT", 10*time.Second)

	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	return config, nil
}
