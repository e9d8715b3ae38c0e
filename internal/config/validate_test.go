// internal/config/validate_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helper to build a valid config quickly
func valid() *Config {
	return &Config{
		Thing: ThingConfig{
			Name:      "boiler-room",
			URL:       "tcp://10.0.0.5:502",
			SlaveID:   17,
			TimeoutMs: 1000,
		},
		Poll: PollConfig{IntervalMs: 1000},
		Data: []DataConfig{
			{Name: "temperature", Address: 100, Width: 16},
			{Name: "alarms", Address: 0, Width: 8},
		},
	}
}

// ---- tests ----

func TestValidate_OK(t *testing.T) {
	require.NoError(t, Validate(valid()))
}

func TestValidate_SerialURL(t *testing.T) {
	cfg := valid()
	cfg.Thing.URL = "serial:///dev/ttyUSB0;baud=115200"
	require.NoError(t, Validate(cfg))
}

func TestValidate_Rejects(t *testing.T) {
	testcases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty name", func(c *Config) { c.Thing.Name = "" }},
		{"non-ascii name", func(c *Config) { c.Thing.Name = "caldeira-\xc3\xa9" }},
		{"bad scheme", func(c *Config) { c.Thing.URL = "udp://10.0.0.5:502" }},
		{"prefix without separator", func(c *Config) { c.Thing.URL = "tcp10.0.0.5:502" }},
		{"slave id zero", func(c *Config) { c.Thing.SlaveID = 0 }},
		{"slave id too large", func(c *Config) { c.Thing.SlaveID = 248 }},
		{"negative timeout", func(c *Config) { c.Thing.TimeoutMs = -1 }},
		{"negative interval", func(c *Config) { c.Poll.IntervalMs = -1 }},
		{"no data items", func(c *Config) { c.Data = nil }},
		{"unnamed item", func(c *Config) { c.Data[0].Name = "" }},
		{"duplicate item", func(c *Config) { c.Data[1].Name = c.Data[0].Name }},
		{"bad width", func(c *Config) { c.Data[0].Width = 24 }},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}

func TestNormalize_Defaults(t *testing.T) {
	cfg := valid()
	cfg.Thing.TimeoutMs = 0
	cfg.Poll.IntervalMs = 0
	cfg.Thing.Name = "a-device-name-longer-than-sixteen"

	require.NoError(t, Validate(cfg))
	Normalize(cfg)

	assert.Equal(t, 1000, cfg.Thing.TimeoutMs)
	assert.Equal(t, 1000, cfg.Poll.IntervalMs)
	assert.Equal(t, "a-device-name-lo", cfg.Thing.Name)
	assert.Len(t, cfg.Thing.Name, 16)
}
