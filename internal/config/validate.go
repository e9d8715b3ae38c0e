// internal/config/validate.go
package config

import (
	"errors"
	"fmt"

	"github.com/kbcvcbk/knot-virtualthing/internal/modbus"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	t := cfg.Thing

	if t.Name == "" {
		return errors.New("thing: name required")
	}

	// name sanity (ASCII only)
	for i := 0; i < len(t.Name); i++ {
		if t.Name[i] > 0x7F {
			return errors.New("thing: name must contain ASCII characters only")
		}
	}

	if _, err := modbus.DriverForURL(t.URL); err != nil {
		return fmt.Errorf("thing: %w", err)
	}

	if t.SlaveID < 1 || t.SlaveID > 247 {
		return fmt.Errorf("thing: slave_id %d out of range 1..247", t.SlaveID)
	}

	if t.TimeoutMs < 0 {
		return fmt.Errorf("thing: timeout_ms %d must not be negative", t.TimeoutMs)
	}

	if cfg.Poll.IntervalMs < 0 {
		return fmt.Errorf("poll: interval_ms %d must not be negative", cfg.Poll.IntervalMs)
	}

	if len(cfg.Data) == 0 {
		return errors.New("data: at least one item required")
	}

	seen := make(map[string]struct{}, len(cfg.Data))
	for _, d := range cfg.Data {
		if d.Name == "" {
			return errors.New("data: item name required")
		}
		if _, dup := seen[d.Name]; dup {
			return fmt.Errorf("data: duplicate item name %q", d.Name)
		}
		seen[d.Name] = struct{}{}

		if !modbus.Width(d.Width).Valid() {
			return fmt.Errorf("data %q: width %d not one of 1, 8, 16, 32, 64", d.Name, d.Width)
		}
	}

	return nil
}
