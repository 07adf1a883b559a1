package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	require.Equal(t, "8050", cfg.Server.Port)
	require.Equal(t, "development", cfg.Server.Mode)
	require.Equal(t, filepath.Join("data", "rh_construtora_dataset.csv"), cfg.Dataset.Path)
	require.Equal(t, "csv", cfg.Dataset.Format)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadConfigFromFile(t *testing.T) {
	content := `server:
  port: "9000"
  mode: production
dataset:
  path: /srv/data/employees.xlsx
  format: xlsx
logging:
  level: debug
  format: json
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, "9000", cfg.Server.Port)
	require.Equal(t, "production", cfg.Server.Mode)
	require.Equal(t, "/srv/data/employees.xlsx", cfg.Dataset.Path)
	require.Equal(t, "xlsx", cfg.Dataset.Format)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	content := `server:
  port: "9000"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("DATASET_FORMAT", "xlsx")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, "7000", cfg.Server.Port)
	require.Equal(t, "xlsx", cfg.Dataset.Format)
}

func TestLoadConfigRejectsUnknownFormat(t *testing.T) {
	t.Setenv("DATASET_FORMAT", "parquet")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported dataset format")
}

func TestGetEnv(t *testing.T) {
	t.Setenv("HR_DASHBOARD_TEST_KEY", "set")
	require.Equal(t, "set", GetEnv("HR_DASHBOARD_TEST_KEY", "fallback"))
	require.Equal(t, "fallback", GetEnv("HR_DASHBOARD_TEST_MISSING", "fallback"))
}
