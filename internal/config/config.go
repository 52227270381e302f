package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server     ServerConfig
	Weather    WeatherConfig
	CropTable  CropTableConfig
	Simulation SimulationConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// WeatherConfig contains credentials and options for the forecast supplier.
type WeatherConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// CropTableConfig points at the crop/stage reference resource. A missing file
// leaves the built-in dataset in effect.
type CropTableConfig struct {
	CSVPath string
}

// SimulationConfig holds soil-moisture simulation settings.
type SimulationConfig struct {
	TickSchedule string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes from the
		// environment directly.
		_ = godotenv.Load()
	}

	timeout, err := time.ParseDuration(getenvWithDefault("WEATHER_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Weather: WeatherConfig{
			APIKey:  os.Getenv("OPENWEATHER_API_KEY"),
			BaseURL: getenvWithDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org"),
			Timeout: timeout,
		},
		CropTable: CropTableConfig{
			CSVPath: getenvWithDefault("CROP_TABLE_CSV", "irrigation.csv"),
		},
		Simulation: SimulationConfig{
			TickSchedule: getenvWithDefault("MOISTURE_TICK_SCHEDULE", "@every 5s"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Weather.APIKey == "" {
		return errors.New("OPENWEATHER_API_KEY must be provided")
	}

	if c.Weather.BaseURL == "" {
		return errors.New("OPENWEATHER_BASE_URL must not be empty")
	}

	if c.Weather.Timeout <= 0 {
		return errors.New("WEATHER_TIMEOUT must be positive")
	}

	if c.Simulation.TickSchedule == "" {
		return errors.New("MOISTURE_TICK_SCHEDULE must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
