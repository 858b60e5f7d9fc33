package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI string
	DBName   string
	Port     string
	Env      string
}

// Load reads .env if present and fills AppEnv from the environment. None of
// these values affect request handling; they are bootstrap inputs only.
func Load() {
	if err := godotenv.Load(); err != nil {
		Logger().Debugln(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI: getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		DBName:   getEnvOrDefault("DB_NAME", "remainder-service"),
		Port:     getEnvOrDefault("PORT", "5000"),
		Env:      getEnvOrDefault("APP_ENV", "development"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
