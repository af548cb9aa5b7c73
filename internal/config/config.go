package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName       string
	AppEnv        string
	AppPort       string
	AIBaseURL     string
	AIAPIKey      string
	AIModel       string
	AIMaxTokens   int
	AITemperature float64
	QueueSize     int
	QueueWorkers  int
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("PAPERSENSE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "PaperSense API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("ai.model", "gpt-4o-mini")
	v.SetDefault("ai.max_tokens", 4096)
	v.SetDefault("ai.temperature", 0.3)
	v.SetDefault("queue.size", 64)
	v.SetDefault("queue.workers", 4)

	cfg := Config{
		AppName:       v.GetString("app.name"),
		AppEnv:        v.GetString("app.env"),
		AppPort:       v.GetString("app.port"),
		AIBaseURL:     v.GetString("ai.base_url"),
		AIAPIKey:      v.GetString("ai.api_key"),
		AIModel:       v.GetString("ai.model"),
		AIMaxTokens:   v.GetInt("ai.max_tokens"),
		AITemperature: v.GetFloat64("ai.temperature"),
		QueueSize:     v.GetInt("queue.size"),
		QueueWorkers:  v.GetInt("queue.workers"),
	}

	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}

	if cfg.QueueWorkers <= 0 {
		cfg.QueueWorkers = 4
	}

	return cfg, nil
}
