// internal/poller/types.go
package poller

import (
	"time"

	"github.com/kbcvcbk/knot-virtualthing/internal/modbus"
)

// Item is one polled register: a name, an address and a value width.
type Item struct {
	Name    string
	Address uint16
	Width   modbus.Width
}

// Reading is the result of one item read.
type Reading struct {
	Item  Item
	Value modbus.Value
}

// PollResult is a snapshot produced by one poll cycle.
type PollResult struct {
	Thing string
	At    time.Time

	Readings []Reading
	Err      error // non-nil means the poll cycle failed
}
