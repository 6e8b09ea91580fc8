package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Postgres    PostgresConfig
	HTTP        HTTPConfig
	Media       MediaConfig
	StorageType string
	PageSize    int
	CacheTTL    time.Duration
}

type PostgresConfig struct {
	User     string
	Password string
	DB       string
	Host     string
	Port     int
	SSLMode  string
}

func (pc PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		pc.User,
		pc.Password,
		pc.Host,
		pc.Port,
		pc.DB,
		pc.SSLMode,
	)
}

type HTTPConfig struct {
	Port string
}

type MediaConfig struct {
	Root string
}

func LoadConfig() Config {
	storageType := mustGetEnv("STORAGE_TYPE")

	cfg := Config{
		StorageType: storageType,
		HTTP: HTTPConfig{
			Port: mustGetEnv("HTTP_PORT"),
		},
		Media: MediaConfig{
			Root: getEnvOr("MEDIA_ROOT", "media"),
		},
		PageSize: getIntOr("PAGE_SIZE", 10),
		CacheTTL: time.Duration(getIntOr("CACHE_TTL_SECONDS", 20)) * time.Second,
	}

	if storageType == "postgres" {
		cfg.Postgres = PostgresConfig{
			User:     mustGetEnv("POSTGRES_USER"),
			Password: mustGetEnv("POSTGRES_PASSWORD"),
			DB:       mustGetEnv("POSTGRES_DB"),
			Host:     mustGetEnv("POSTGRES_HOST"),
			Port:     mustGetInt("POSTGRES_PORT"),
			SSLMode:  mustGetEnv("POSTGRES_SSLMODE"),
		}
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic("missing required env var: " + key)
	}
	return val
}

func mustGetInt(key string) int {
	val := mustGetEnv(key)
	i, err := strconv.Atoi(val)
	if err != nil {
		panic("invalid int for env var " + key + ": " + val)
	}
	return i
}

func getEnvOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getIntOr(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		panic("invalid int for env var " + key + ": " + val)
	}
	return i
}
