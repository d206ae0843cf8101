package config

import "os"

type Config struct {
	ListenAddr  string
	PostgresURI string
	DataFile    string
	FrontendURL string
}

func LoadConfig() *Config {
	return &Config{
		ListenAddr:  getEnv("LISTEN_ADDR", ":3000"),
		PostgresURI: getEnv("POSTGRES_URI", ""),
		DataFile:    getEnv("DATA_FILE", "postdeck-state.json"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
