// internal/modbus/rtu.go
package modbus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goburrow/modbus"
	"github.com/goburrow/serial"
)

type rtuDriver struct{}

func (rtuDriver) Create(p Params) (Handle, error) {
	if !validSlave(p.SlaveID) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSlave, p.SlaveID)
	}

	sc, err := parseSerialURL(p.URL)
	if err != nil {
		return nil, err
	}

	h := modbus.NewRTUClientHandler(sc.Address)
	h.BaudRate = sc.BaudRate
	h.DataBits = sc.DataBits
	h.Parity = sc.Parity
	h.StopBits = sc.StopBits
	h.Timeout = p.Timeout
	h.SlaveId = byte(p.SlaveID)
	if p.Logger != nil {
		h.Logger = p.Logger
	}

	return &rtuHandle{handler: h, reads: reads{client: modbus.NewClient(h)}}, nil
}

type rtuHandle struct {
	handler *modbus.RTUClientHandler
	reads
}

func (h *rtuHandle) Connect() error { return h.handler.Connect() }
func (h *rtuHandle) Close() error   { return h.handler.Close() }

// parseSerialURL splits "serial://<device>[;opt=val...]" into a serial port
// configuration. Line defaults are the Modbus RTU defaults: 19200 8E1.
func parseSerialURL(url string) (serial.Config, error) {
	cfg := serial.Config{
		BaudRate: 19200,
		DataBits: 8,
		Parity:   "E",
		StopBits: 1,
	}

	parts := strings.Split(strings.TrimPrefix(url, rtuPrefix), ";")
	cfg.Address = parts[0]
	if cfg.Address == "" {
		return cfg, fmt.Errorf("%w: missing device path", ErrInvalidURL)
	}

	for _, opt := range parts[1:] {
		if opt == "" {
			continue
		}
		key, val, ok := strings.Cut(opt, "=")
		if !ok {
			return cfg, fmt.Errorf("%w: malformed option %q", ErrInvalidURL, opt)
		}

		switch key {
		case "baud":
			n, err := strconv.Atoi(val)
			if err != nil || n <= 0 {
				return cfg, fmt.Errorf("%w: bad baud rate %q", ErrInvalidURL, val)
			}
			cfg.BaudRate = n
		case "databits":
			n, err := strconv.Atoi(val)
			if err != nil || (n != 7 && n != 8) {
				return cfg, fmt.Errorf("%w: bad databits %q", ErrInvalidURL, val)
			}
			cfg.DataBits = n
		case "stopbits":
			n, err := strconv.Atoi(val)
			if err != nil || (n != 1 && n != 2) {
				return cfg, fmt.Errorf("%w: bad stopbits %q", ErrInvalidURL, val)
			}
			cfg.StopBits = n
		case "parity":
			if val != "N" && val != "E" && val != "O" {
				return cfg, fmt.Errorf("%w: bad parity %q", ErrInvalidURL, val)
			}
			cfg.Parity = val
		default:
			return cfg, fmt.Errorf("%w: unknown option %q", ErrInvalidURL, key)
		}
	}

	return cfg, nil
}
