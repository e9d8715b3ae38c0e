// internal/modbus/reader.go
package modbus

import "fmt"

// readValue dispatches one register read to the width-specific transport
// primitive and packs the raw result into a tagged Value.
func readValue(h Handle, addr uint16, width Width) (Value, error) {
	v := Value{Width: width}

	switch width {
	case Bool:
		b, err := h.ReadBool(addr)
		if err != nil {
			return Value{}, err
		}
		v.Bool = b

	case Byte:
		// Composite: the transport returns eight independent coil
		// readings, folded here into one byte.
		bits, err := h.ReadBits(addr)
		if err != nil {
			return Value{}, err
		}
		v.Byte = packByte(bits)

	case U16:
		u, err := h.ReadU16(addr)
		if err != nil {
			return Value{}, err
		}
		v.U16 = u

	case U32:
		u, err := h.ReadU32(addr)
		if err != nil {
			return Value{}, err
		}
		v.U32 = u

	case U64:
		u, err := h.ReadU64(addr)
		if err != nil {
			return Value{}, err
		}
		v.U64 = u

	default:
		return Value{}, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}

	return v, nil
}

// packByte folds eight coil readings into one byte, coil i -> bit i.
func packByte(bits [8]bool) uint8 {
	var out uint8
	for i, b := range bits {
		if b {
			out |= 1 << uint(i)
		}
	}
	return out
}
