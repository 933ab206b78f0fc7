package config

import (
	"os"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

type Config struct {
	HTTPPort       string
	LogLevel       string
	EndpointPrefix string
}

func NewConfigFromEnv() (Config, error) {
	return Config{
		HTTPPort:       getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		EndpointPrefix: getEnv("ENDPOINT_PREFIX", "/v1"),
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
