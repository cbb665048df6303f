package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type SMTP struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

type Config struct {
	ServerPort     int
	MongoURL       string
	DBName         string
	AllowedOrigins []string
	SMTP           SMTP
	MaxBodySize    int64
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseMaxBodySize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 50 * 1024 * 1024
	}
	return size
}

// parseOrigins splits the comma-separated allow-list, dropping empties.
func parseOrigins(value string) []string {
	var origins []string
	for _, origin := range strings.Split(value, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func LoadSMTP() SMTP {
	return SMTP{
		Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		Port:     getEnv("SMTP_PORT", "587"),
		User:     getEnv("SMTP_USER", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", ""),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:     getEnvAsInt("SERVER_PORT", 3009),
		MongoURL:       getEnv("MONGODB_URL", ""),
		DBName:         getEnv("DB_NAME", "RealtyShopee"),
		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
		SMTP:           LoadSMTP(),
		MaxBodySize:    parseMaxBodySize(getEnv("MAX_BODY_SIZE", "52428800")),
	}
}
