package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	AppName    = "feedstream"
	AppVersion = "1.0.0"
)

type Config struct {
	Addr            string
	DBDriver        string
	DBPath          string
	DBDSN           string
	DataDir         string
	LogLevel        string
	LogFormat       string
	NodeID          int64
	ShutdownTimeout time.Duration
}

// Load reads the configuration from the environment. Values from a .env
// file in the working directory are used for variables that are not set.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	dataDir := getEnv("FEED_DATA_DIR", "./data")
	path := getEnv("FEED_DB_PATH", filepath.Join(dataDir, "feed.db"))

	nodeID, err := strconv.ParseInt(getEnv("FEED_NODE_ID", "1"), 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse FEED_NODE_ID: %w", err)
	}
	shutdownTimeout, err := time.ParseDuration(getEnv("FEED_SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FEED_SHUTDOWN_TIMEOUT: %w", err)
	}

	cfg := Config{
		Addr:            getEnv("FEED_ADDR", ":8080"),
		DBDriver:        getEnv("FEED_DB_DRIVER", "sqlite"),
		DBPath:          filepath.Clean(path),
		DBDSN:           os.Getenv("FEED_DB_DSN"),
		DataDir:         filepath.Clean(dataDir),
		LogLevel:        getEnv("FEED_LOG_LEVEL", "info"),
		LogFormat:       getEnv("FEED_LOG_FORMAT", "text"),
		NodeID:          nodeID,
		ShutdownTimeout: shutdownTimeout,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.DBDriver {
	case "sqlite":
	case "postgres":
		if c.DBDSN == "" {
			return fmt.Errorf("FEED_DB_DSN is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported FEED_DB_DRIVER %q", c.DBDriver)
	}
	if c.NodeID < 0 || c.NodeID > 1023 {
		return fmt.Errorf("FEED_NODE_ID must be within 0-1023, got %d", c.NodeID)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("unsupported FEED_LOG_FORMAT %q", c.LogFormat)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("FEED_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// DataSource returns the driver-specific connection argument for db.Open.
func (c Config) DataSource() string {
	if c.DBDriver == "postgres" {
		return c.DBDSN
	}
	return c.DBPath
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
