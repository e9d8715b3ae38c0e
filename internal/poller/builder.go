// internal/poller/builder.go
package poller

import (
	"time"

	cfg "github.com/kbcvcbk/knot-virtualthing/internal/config"
	"github.com/kbcvcbk/knot-virtualthing/internal/modbus"
)

// Build constructs a Poller over an established connection. The connection
// manager owns transport lifecycle; the poller only reads through it.
func Build(c *cfg.Config, source Source) (*Poller, error) {
	items := make([]Item, 0, len(c.Data))
	for _, d := range c.Data {
		items = append(items, Item{
			Name:    d.Name,
			Address: d.Address,
			Width:   modbus.Width(d.Width),
		})
	}

	return New(
		Config{
			Thing:    c.Thing.Name,
			Interval: time.Duration(c.Poll.IntervalMs) * time.Millisecond,
			Items:    items,
		},
		source,
	)
}
