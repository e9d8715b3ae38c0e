// internal/config/config.go
package config

type Config struct {
	Thing ThingConfig  `yaml:"thing"`
	Poll  PollConfig   `yaml:"poll"`
	Data  []DataConfig `yaml:"data"`
}

// ---- THING ----

type ThingConfig struct {
	Name      string `yaml:"name"`
	URL       string `yaml:"url"` // tcp://host:port or serial://device[;options]
	SlaveID   int    `yaml:"slave_id"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- DATA ITEMS ----

type DataConfig struct {
	Name    string `yaml:"name"`
	Address uint16 `yaml:"address"`
	Width   int    `yaml:"width"` // one of 1, 8, 16, 32, 64
}
