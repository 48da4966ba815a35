package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	APIBaseURL     string
	RequestTimeout time.Duration
	UploadTimeout  time.Duration
	StorageBackend string
	DataDir        string
	RedisURL       string
	RedisAddr      string
	RedisPassword  string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:3001/api"),
		RequestTimeout: getEnvDuration("API_REQUEST_TIMEOUT", 10*time.Second),
		UploadTimeout:  getEnvDuration("API_UPLOAD_TIMEOUT", 30*time.Second),
		StorageBackend: getEnv("STORAGE_BACKEND", "file"),
		DataDir:        getEnv("DATA_DIR", defaultDataDir()),
		RedisURL:       getEnv("REDIS_URL", ""),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".restaurant-client"
	}
	return home + "/.restaurant-client"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid duration for %s: %q, using default", key, value)
		return defaultValue
	}
	return d
}
