// internal/modbus/url_test.go
package modbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverForURL(t *testing.T) {
	testcases := []struct {
		url  string
		want any // nil means ErrInvalidURL
	}{
		{"tcp://10.0.0.5:502", tcpDriver{}},
		{"tcp://localhost:1502", tcpDriver{}},
		{"serial:///dev/ttyUSB0", rtuDriver{}},
		{"serial:///dev/ttyS1;baud=115200", rtuDriver{}},

		// prefixes must match exactly, including the "://"
		{"tcp", nil},
		{"tcp:/10.0.0.5:502", nil},
		{"tcp:10.0.0.5:502", nil},
		{"serial", nil},
		{"serial:/dev/ttyUSB0", nil},

		// schemes are case-sensitive literals
		{"TCP://10.0.0.5:502", nil},
		{"Serial:///dev/ttyUSB0", nil},

		{"udp://10.0.0.5:502", nil},
		{"", nil},
	}

	for _, tc := range testcases {
		d, err := DriverForURL(tc.url)
		if tc.want == nil {
			require.ErrorIs(t, err, ErrInvalidURL, "url %q", tc.url)
			continue
		}
		require.NoError(t, err, "url %q", tc.url)
		assert.IsType(t, tc.want, d, "url %q", tc.url)
	}
}
