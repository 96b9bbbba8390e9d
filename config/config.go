package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type AppConfig struct {
	ServerPort    string
	DSN           string
	Logger        *zap.SugaredLogger
	TokenSecret   string
	TokenTTL      time.Duration
	AllowedOrigin string
}

var Config AppConfig

func init() {
	godotenv.Load()
	dsn := fmt.Sprintf("host=%v user=%v password=%v dbname=%v port=%v", os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"), os.Getenv("DB_PORT"))
	logger := zap.Must(zap.NewProduction()).Sugar()

	ttl := 24 * time.Hour
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			ttl = parsed
		}
	}

	Config = AppConfig{
		ServerPort:    os.Getenv("PORT"),
		DSN:           dsn,
		Logger:        logger,
		TokenSecret:   os.Getenv("TOKEN_SECRET"),
		TokenTTL:      ttl,
		AllowedOrigin: os.Getenv("ALLOWED_ORIGIN"),
	}
}
