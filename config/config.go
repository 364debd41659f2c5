package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Env            string
	Port           string
	TokenSecret    string
	TokenExpiryMin int
	TwoFAExpiryMin int
	DBURL          string
	RedisAddr      string
	RedisPassword  string
}

// Load reads configuration from the environment. TOKEN_SECRET is the only
// hard requirement; leaving DB_URL or REDIS_ADDR empty keeps the matching
// stores in memory.
func Load() *Config {
	return &Config{
		Env:            getEnv("ENV", "development"),
		Port:           getEnv("PORT", "3000"),
		TokenSecret:    mustGetEnv("TOKEN_SECRET"),
		TokenExpiryMin: getEnvAsInt("TOKEN_EXPIRY", 10),
		TwoFAExpiryMin: getEnvAsInt("TWO_FA_EXPIRY", 10),
		DBURL:          getEnv("DB_URL", ""),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
