// internal/poller/poller.go
package poller

import (
	"errors"
	"fmt"
	"time"

	"github.com/kbcvcbk/knot-virtualthing/internal/modbus"
)

// Source abstracts the register reads the poller needs. Implemented by
// *modbus.Conn.
type Source interface {
	Read(addr uint16, width modbus.Width) (modbus.Value, error)
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	Thing    string
	Interval time.Duration
	Items    []Item
}

// Poller is a dumb, clock-driven reader.
type Poller struct {
	cfg    Config
	source Source
}

// New creates a poller with immutable config.
func New(cfg Config, source Source) (*Poller, error) {
	if cfg.Thing == "" {
		return nil, errors.New("poller: thing name required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if len(cfg.Items) == 0 {
		return nil, errors.New("poller: at least one item required")
	}
	if source == nil {
		return nil, errors.New("poller: source required")
	}
	return &Poller{cfg: cfg, source: source}, nil
}

// PollOnce performs exactly one poll cycle.
// All-or-nothing: any failure aborts the cycle.
func (p *Poller) PollOnce() PollResult {
	res := PollResult{
		Thing: p.cfg.Thing,
		At:    time.Now(),
	}

	var readings []Reading

	for _, it := range p.cfg.Items {
		v, err := p.source.Read(it.Address, it.Width)
		if err != nil {
			res.Err = fmt.Errorf("read %s: %w", it.Name, err)
			return res
		}
		readings = append(readings, Reading{Item: it, Value: v})
	}

	// Commit only if all reads succeeded
	res.Readings = readings
	return res
}
