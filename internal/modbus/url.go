// internal/modbus/url.go
package modbus

import (
	"fmt"
	"strings"
)

const (
	tcpPrefix = "tcp://"
	rtuPrefix = "serial://"
)

// DriverForURL classifies a connection URL by its literal scheme prefix:
// "tcp://" selects the TCP driver, "serial://" the RTU driver. Anything else
// fails with ErrInvalidURL. Pure string inspection: no network or device
// access happens here.
func DriverForURL(url string) (Driver, error) {
	switch {
	case strings.HasPrefix(url, tcpPrefix):
		return tcpDriver{}, nil
	case strings.HasPrefix(url, rtuPrefix):
		return rtuDriver{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, url)
	}
}
