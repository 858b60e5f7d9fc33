package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")

	Load()

	assert.Equal(t, "mongodb://localhost:27017", AppEnv.MongoURI)
	assert.Equal(t, "remainder-service", AppEnv.DBName)
	assert.Equal(t, "5000", AppEnv.Port)
	assert.Equal(t, "development", AppEnv.Env)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("DB_NAME", "remainders-prod")
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "production")

	Load()

	assert.Equal(t, "mongodb://db:27017", AppEnv.MongoURI)
	assert.Equal(t, "remainders-prod", AppEnv.DBName)
	assert.Equal(t, "8080", AppEnv.Port)
	assert.Equal(t, "production", AppEnv.Env)
}

func TestGetEnvOrDefaultTrimsWhitespace(t *testing.T) {
	t.Setenv("SOME_KEY", "   ")
	assert.Equal(t, "fallback", getEnvOrDefault("SOME_KEY", "fallback"))
}

func TestLoggerIsSingleton(t *testing.T) {
	assert.Same(t, Logger(), Logger())
}
