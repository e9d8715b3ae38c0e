// internal/modbus/errors.go
package modbus

import (
	"errors"

	"github.com/goburrow/modbus"
)

var (
	ErrInvalidURL   = errors.New("modbus: unsupported connection url")
	ErrInvalidSlave = errors.New("modbus: slave id out of range")
	ErrInvalidWidth = errors.New("modbus: unknown value width")
	ErrNotConnected = errors.New("modbus: not connected")
	ErrStopped      = errors.New("modbus: connection stopped")

	errShortPayload = errors.New("modbus: short response payload")
)

// isAlive reports whether an error from a probe round-trip still proves a
// working transport. A protocol exception means the slave answered.
func isAlive(err error) bool {
	if err == nil {
		return true
	}
	var me *modbus.ModbusError
	return errors.As(err, &me)
}
