package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, ":8080", cfg.EndpointAddr)
	require.Equal(t, int64(1), cfg.SnowflakeNode)
	require.NotEmpty(t, cfg.DatabaseDSN)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"server", "-a", ":9090", "-d", "postgres://x/y", "-n", "7"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	require.Equal(t, ":9090", cfg.EndpointAddr)
	require.Equal(t, "postgres://x/y", cfg.DatabaseDSN)
	require.Equal(t, int64(7), cfg.SnowflakeNode)
}

func TestParseJson(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")
	data := `{"endpoint_addr": ":7070", "snowflake_node": 3}`
	require.NoError(t, os.WriteFile(file, []byte(data), 0o600))

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"server", "-c", file}

	cfg := &Config{}
	cfg.LoadDefaults()
	dsn := cfg.DatabaseDSN
	parseJson(cfg)

	require.Equal(t, ":7070", cfg.EndpointAddr)
	require.Equal(t, int64(3), cfg.SnowflakeNode)
	require.Equal(t, dsn, cfg.DatabaseDSN)
}
