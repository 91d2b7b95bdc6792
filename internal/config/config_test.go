package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"feedstream/backend/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, key := range []string{
		"FEED_ADDR", "FEED_DB_DRIVER", "FEED_DB_PATH", "FEED_DB_DSN", "FEED_DATA_DIR",
		"FEED_LOG_LEVEL", "FEED_LOG_FORMAT", "FEED_NODE_ID", "FEED_SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "sqlite", cfg.DBDriver)
	require.Equal(t, filepath.Join("data", "feed.db"), cfg.DBPath)
	require.Equal(t, cfg.DBPath, cfg.DataSource())
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, int64(1), cfg.NodeID)
	require.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("FEED_ADDR", ":9090")
	t.Setenv("FEED_DB_DRIVER", "postgres")
	t.Setenv("FEED_DB_DSN", "postgres://feed@localhost/feed?sslmode=disable")
	t.Setenv("FEED_LOG_FORMAT", "json")
	t.Setenv("FEED_NODE_ID", "12")
	t.Setenv("FEED_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Addr)
	require.Equal(t, "postgres://feed@localhost/feed?sslmode=disable", cfg.DataSource())
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, int64(12), cfg.NodeID)
	require.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("FEED_ADDR=:7070\nFEED_LOG_LEVEL=debug\n"), 0o600))
	// godotenv does not override variables that already exist, even empty ones.
	require.NoError(t, os.Unsetenv("FEED_ADDR"))
	require.NoError(t, os.Unsetenv("FEED_LOG_LEVEL"))

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.Addr)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"bad node id":       {"FEED_NODE_ID", "abc"},
		"node out of range": {"FEED_NODE_ID", "4096"},
		"bad timeout":       {"FEED_SHUTDOWN_TIMEOUT", "soon"},
		"bad driver":        {"FEED_DB_DRIVER", "oracle"},
		"postgres no dsn":   {"FEED_DB_DRIVER", "postgres"},
		"bad log format":    {"FEED_LOG_FORMAT", "xml"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])

			_, err := config.Load()
			require.Error(t, err)
		})
	}
}
