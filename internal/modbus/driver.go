// internal/modbus/driver.go
package modbus

import (
	"encoding/binary"
	"log"
	"time"

	"github.com/goburrow/modbus"
)

// Params carries everything a Driver needs to build a transport handle.
type Params struct {
	URL     string
	SlaveID int
	Timeout time.Duration // per protocol round-trip
	Logger  *log.Logger   // optional frame trace, handed to the transport
}

// Driver is one transport variant (TCP or RTU), selected once per connection
// and stored immutably. Create builds the transport handle and binds the
// slave id; it never touches the network or device.
type Driver interface {
	Create(p Params) (Handle, error)
}

// Handle is a live transport instance, exclusively owned by one Conn.
// The read primitives block for one protocol round-trip each.
type Handle interface {
	Connect() error
	Close() error

	// Ping performs a minimal round-trip to prove the transport alive.
	// A protocol exception from the slave counts as alive.
	Ping() error

	ReadBool(addr uint16) (bool, error)
	ReadBits(addr uint16) ([8]bool, error) // eight coils, index 0..7
	ReadU16(addr uint16) (uint16, error)
	ReadU32(addr uint16) (uint32, error)
	ReadU64(addr uint16) (uint64, error)
}

func validSlave(id int) bool {
	return id >= 1 && id <= 247
}

// ---- read primitives shared by both transports ----

// reads implements the width-specific primitives on top of a goburrow
// client. Register payloads arrive big-endian; multi-register values use
// big-endian word order.
type reads struct {
	client modbus.Client
}

func (r reads) Ping() error {
	_, err := r.client.ReadCoils(0, 1)
	if isAlive(err) {
		return nil
	}
	return err
}

func (r reads) ReadBool(addr uint16) (bool, error) {
	res, err := r.client.ReadCoils(addr, 1)
	if err != nil {
		return false, err
	}
	if len(res) < 1 {
		return false, errShortPayload
	}
	return res[0]&0x01 != 0, nil
}

func (r reads) ReadBits(addr uint16) ([8]bool, error) {
	var out [8]bool
	res, err := r.client.ReadCoils(addr, 8)
	if err != nil {
		return out, err
	}
	if len(res) < 1 {
		return out, errShortPayload
	}
	for i := range out {
		out[i] = res[0]&(1<<uint(i)) != 0
	}
	return out, nil
}

func (r reads) ReadU16(addr uint16) (uint16, error) {
	res, err := r.client.ReadHoldingRegisters(addr, 1)
	if err != nil {
		return 0, err
	}
	if len(res) < 2 {
		return 0, errShortPayload
	}
	return binary.BigEndian.Uint16(res), nil
}

func (r reads) ReadU32(addr uint16) (uint32, error) {
	res, err := r.client.ReadHoldingRegisters(addr, 2)
	if err != nil {
		return 0, err
	}
	if len(res) < 4 {
		return 0, errShortPayload
	}
	return binary.BigEndian.Uint32(res), nil
}

func (r reads) ReadU64(addr uint16) (uint64, error) {
	res, err := r.client.ReadHoldingRegisters(addr, 4)
	if err != nil {
		return 0, err
	}
	if len(res) < 8 {
		return 0, errShortPayload
	}
	return binary.BigEndian.Uint64(res), nil
}
