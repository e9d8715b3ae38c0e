// internal/config/normalize.go
package config

const (
	maxNameLen        = 16
	defaultTimeoutMs  = 1000
	defaultIntervalMs = 1000
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	// Normalize thing name:
	// - ASCII already validated
	// - Truncate to max 16 characters
	if len(cfg.Thing.Name) > maxNameLen {
		cfg.Thing.Name = cfg.Thing.Name[:maxNameLen]
	}

	if cfg.Thing.TimeoutMs == 0 {
		cfg.Thing.TimeoutMs = defaultTimeoutMs
	}

	if cfg.Poll.IntervalMs == 0 {
		cfg.Poll.IntervalMs = defaultIntervalMs
	}
}
