// Package buf contains overflow-safe size arithmetic and endian-parametrized
// integer helpers shared by the allocator and the binary codec.
package buf

import "encoding/binary"

// Uint reads an unsigned integer of width bytes (1, 2, 4 or 8) from b in the
// given byte order. Returns 0 when b is too short or width is unsupported.
func Uint(b []byte, width int, order binary.ByteOrder) uint64 {
	if len(b) < width {
		return 0
	}
	switch width {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(order.Uint16(b))
	case 4:
		return uint64(order.Uint32(b))
	case 8:
		return order.Uint64(b)
	}
	return 0
}

// Int reads a signed integer of width bytes, sign-extended to int64.
func Int(b []byte, width int, order binary.ByteOrder) int64 {
	u := Uint(b, width, order)
	switch width {
	case 1:
		return int64(int8(u))
	case 2:
		return int64(int16(u))
	case 4:
		return int64(int32(u))
	}
	return int64(u)
}

// PutUint writes the low width bytes of v into b in the given byte order.
// Returns false when b is too short or width is unsupported.
func PutUint(b []byte, width int, order binary.ByteOrder, v uint64) bool {
	if len(b) < width {
		return false
	}
	switch width {
	case 1:
		b[0] = byte(v)
	case 2:
		order.PutUint16(b, uint16(v))
	case 4:
		order.PutUint32(b, uint32(v))
	case 8:
		order.PutUint64(b, v)
	default:
		return false
	}
	return true
}
