package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"commune/internal/pkg"
)

type Config struct {
	Port     string
	MySQLDSN string

	TokenSecret   string
	SessionSecret string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers []string
	KafkaTopic   string

	SMTP *pkg.SMTPConfig

	AllowOrigins []string
}

// Load reads the environment (and a .env file when present). Secrets have
// no defaults: a missing one is a startup error, not a fallback.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getenv("PORT", "8080"),
		MySQLDSN:      os.Getenv("MYSQL_DSN"),
		TokenSecret:   os.Getenv("TOKEN_SECRET"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		KafkaTopic:    getenv("KAFKA_TOPIC", "membership-events"),
	}

	for _, key := range []string{"MYSQL_DSN", "TOKEN_SECRET", "SESSION_SECRET"} {
		if os.Getenv(key) == "" {
			return nil, fmt.Errorf("config: %s is not set", key)
		}
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config: REDIS_DB: %w", err)
		}
		cfg.RedisDB = db
	}

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.KafkaBrokers = splitCSV(v)
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.AllowOrigins = splitCSV(v)
	}

	if host := os.Getenv("SMTP_HOST"); host != "" {
		port := 587
		if v := os.Getenv("SMTP_PORT"); v != "" {
			p, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("config: SMTP_PORT: %w", err)
			}
			port = p
		}
		cfg.SMTP = &pkg.SMTPConfig{
			Host:     host,
			Port:     port,
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getenv("SMTP_FROM", os.Getenv("SMTP_USERNAME")),
		}
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
