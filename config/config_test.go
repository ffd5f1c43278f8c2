package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both sources must satisfy the Config contract the server wiring selects
// between.
var (
	_ Config = (*File)(nil)
	_ Config = (*Rigel)(nil)
)

type appConfig struct {
	ServerPort int    `json:"server_port"`
	RedisAddr  string `json:"redis_addr"`
}

func TestFileLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_port": 8080, "redis_addr": "localhost:6379"}`), 0o644))

	var cfg appConfig
	require.NoError(t, Load(&File{ConfigFilePath: path}, &cfg))
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestFileCheck(t *testing.T) {
	assert.Error(t, (&File{}).Check(), "empty path")
	assert.Error(t, (&File{ConfigFilePath: "/no/such/file.json"}).Check())
	assert.Error(t, (&File{ConfigFilePath: t.TempDir()}).Check(), "directories are not config files")
}

func TestFileLoadRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_port": `), 0o644))

	var cfg appConfig
	assert.Error(t, Load(&File{ConfigFilePath: path}, &cfg))
}

func TestRigelCheck(t *testing.T) {
	assert.Error(t, (&Rigel{}).Check(), "client required")
}
