// internal/modbus/value.go
package modbus

import (
	"fmt"
	"strconv"
)

// Width selects the value representation of a register read. The numeric
// values are wire-stable: they appear in settings files.
type Width int

const (
	Bool Width = 1
	Byte Width = 8 // packed from eight coils
	U16  Width = 16
	U32  Width = 32
	U64  Width = 64
)

func (w Width) Valid() bool {
	switch w {
	case Bool, Byte, U16, U32, U64:
		return true
	}
	return false
}

func (w Width) String() string {
	switch w {
	case Bool:
		return "bool"
	case Byte:
		return "byte"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	}
	return fmt.Sprintf("width(%d)", int(w))
}

// Value is a tagged union over the five representations a read can produce.
// Width tags which field holds the result.
type Value struct {
	Width Width

	Bool bool
	Byte uint8
	U16  uint16
	U32  uint32
	U64  uint64
}

func (v Value) String() string {
	switch v.Width {
	case Bool:
		return strconv.FormatBool(v.Bool)
	case Byte:
		return fmt.Sprintf("0x%02x", v.Byte)
	case U16:
		return strconv.FormatUint(uint64(v.U16), 10)
	case U32:
		return strconv.FormatUint(uint64(v.U32), 10)
	case U64:
		return strconv.FormatUint(v.U64, 10)
	}
	return "invalid"
}
