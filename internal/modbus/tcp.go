// internal/modbus/tcp.go
package modbus

import (
	"fmt"
	"strings"

	"github.com/goburrow/modbus"
)

type tcpDriver struct{}

func (tcpDriver) Create(p Params) (Handle, error) {
	if !validSlave(p.SlaveID) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSlave, p.SlaveID)
	}

	h := modbus.NewTCPClientHandler(strings.TrimPrefix(p.URL, tcpPrefix))
	h.Timeout = p.Timeout
	h.SlaveId = byte(p.SlaveID)
	if p.Logger != nil {
		h.Logger = p.Logger
	}

	return &tcpHandle{handler: h, reads: reads{client: modbus.NewClient(h)}}, nil
}

type tcpHandle struct {
	handler *modbus.TCPClientHandler
	reads
}

func (h *tcpHandle) Connect() error { return h.handler.Connect() }
func (h *tcpHandle) Close() error   { return h.handler.Close() }
