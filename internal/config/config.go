// internal/config/config.go
//
// Environment-driven configuration.
// Every setting has a development default; .env is loaded by main before Load.

package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Words   WordsConfig
	Token   TokenConfig
	Logging LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port         string
	Host         string
	Env          string // "development" or "production"
	ClientOrigin string // single origin allowed by CORS
}

// WordsConfig selects the word list and dictionary sources
type WordsConfig struct {
	StartFile      string // empty = embedded start.txt
	DictionaryFile string // empty = embedded dictionary.txt
	Backend        string // "memory" or "sqlite"
	DatabasePath   string // SQLite file used when Backend == "sqlite"
	DailySalt      string
}

// TokenConfig holds round token signing settings
type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "console"
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "5175"),
			Host:         getEnv("HOST", ""),
			Env:          getEnv("ENV", "development"),
			ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		},
		Words: WordsConfig{
			StartFile:      getEnv("WORDS_START_FILE", ""),
			DictionaryFile: getEnv("WORDS_DICTIONARY_FILE", ""),
			Backend:        getEnv("DICTIONARY_BACKEND", "memory"),
			DatabasePath:   getEnv("DICTIONARY_DB", "./data/dictionary.db"),
			DailySalt:      getEnv("DAILY_SALT", "local_dev_salt"),
		},
		Token: TokenConfig{
			Secret: getEnv("ROUND_TOKEN_SECRET", "dev_secret_change_me"),
			TTL:    time.Duration(getEnvInt("ROUND_TOKEN_HOURS", 24)) * time.Hour,
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Addr returns the listen address in host:port format
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// getEnv returns the value of key or def if unset/empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns key parsed as an int, or def when unset or malformed.
func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
