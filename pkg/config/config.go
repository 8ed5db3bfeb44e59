package config

import "os"

type Config struct {
	Port        string
	Env         string
	PostgresUrl string
	JWTSecret   string
	MetricsPort string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		PostgresUrl: getEnv("POSTGRES_CONN_STR", "host=localhost port=5432 dbname=instaclone sslmode=disable"),
		JWTSecret:   getEnv("JWT_SECRET", "supersecretjwtkey"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
