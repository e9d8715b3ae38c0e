// internal/config/load_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	raw := `
thing:
  name: boiler-room
  url: tcp://10.0.0.5:502
  slave_id: 17
  timeout_ms: 500
poll:
  interval_ms: 250
data:
  - name: temperature
    address: 100
    width: 16
  - name: running
    address: 3
    width: 1
`
	path := filepath.Join(t.TempDir(), "thing.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "boiler-room", cfg.Thing.Name)
	assert.Equal(t, "tcp://10.0.0.5:502", cfg.Thing.URL)
	assert.Equal(t, 17, cfg.Thing.SlaveID)
	assert.Equal(t, 500, cfg.Thing.TimeoutMs)
	assert.Equal(t, 250, cfg.Poll.IntervalMs)
	require.Len(t, cfg.Data, 2)
	assert.Equal(t, DataConfig{Name: "temperature", Address: 100, Width: 16}, cfg.Data[0])
	assert.Equal(t, DataConfig{Name: "running", Address: 3, Width: 1}, cfg.Data[1])
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thing.yaml")
	require.NoError(t, os.WriteFile(path, []byte("thing: [not a map"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
