package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser     string
	DBPassword string
	DBHost     string
	DBName     string

	LogFile        string
	AllowedOrigins []string
}

func LoadEnv() Env {
	// Missing .env is fine; deployments set the environment directly.
	_ = godotenv.Load()

	env := Env{
		AppAddr:    getenv("APP_ADDR", ":8080"),
		GinMode:    strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:     getenv("DB_USER", "root"),
		DBPassword: strings.TrimSpace(os.Getenv("DB_PASSWORD")),
		DBHost:     getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:     getenv("DB_NAME", "FleetNew"),
		LogFile:    strings.TrimSpace(os.Getenv("LOG_FILE")),
	}

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.AllowedOrigins = append(env.AllowedOrigins, o)
			}
		}
	} else {
		env.AllowedOrigins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}

	return env
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
