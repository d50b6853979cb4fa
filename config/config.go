package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnv sync.Once

// Config reads a key from the environment, loading .env on first use.
func Config(key string) string {
	loadEnv.Do(func() {
		godotenv.Load(".env")
	})
	return os.Getenv(key)
}

func ConfigBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(Config(key))
	if err != nil {
		return fallback
	}
	return v
}

func ConfigInt(key string, fallback int) int {
	v, err := strconv.Atoi(Config(key))
	if err != nil {
		return fallback
	}
	return v
}
