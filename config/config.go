package config

import (
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL string        `envconfig:"DATABASE_URL" required:"true"`
	Port        string        `envconfig:"PORT"         default:":8080"`
	LogLevel    string        `envconfig:"LOG_LEVEL"    default:"info"`
	JWTSecret   string        `envconfig:"JWT_SECRET"   default:"default_secret_change_me"`
	TokenTTL    time.Duration `envconfig:"TOKEN_TTL"    default:"1h"`
}

var (
	config Config
	once   sync.Once
)

// LoadConfig reads .env (if present) and the process environment exactly
// once; later calls return the same Config.
func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		if err := envconfig.Process("", &config); err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}

		logger.Infof("Configuration loaded: Port=%s, LogLevel=%s, TokenTTL=%s", config.Port, config.LogLevel, config.TokenTTL)
		if config.JWTSecret == "default_secret_change_me" {
			logger.Warn("JWT_SECRET is not set, using the insecure default")
		}
	})
	return &config
}
