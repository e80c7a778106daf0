package common

import (
	"encoding/binary"
	"math"
	"reflect"
)

// IsWireKind reports whether k is a primitive kind the wire format carries
// directly: bool, integers up to 16 bits, float32.
func IsWireKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int8, reflect.Int16,
		reflect.Uint8, reflect.Uint16,
		reflect.Float32:
		return true
	default:
		return false
	}
}

// WireSize returns the encoded byte width for wire primitive kinds, -1 for
// anything else.
func WireSize(k reflect.Kind) int {
	switch k {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Float32:
		return 4
	default:
		return -1
	}
}

// AppendFixed appends v's little-endian wire encoding to dst. v's kind must
// satisfy IsWireKind.
func AppendFixed(dst []byte, v reflect.Value) []byte {
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return append(dst, 1)
		}
		return append(dst, 0)
	case reflect.Int8:
		return append(dst, byte(v.Int()))
	case reflect.Uint8:
		return append(dst, byte(v.Uint()))
	case reflect.Int16:
		return binary.LittleEndian.AppendUint16(dst, uint16(v.Int()))
	case reflect.Uint16:
		return binary.LittleEndian.AppendUint16(dst, uint16(v.Uint()))
	case reflect.Float32:
		return binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(v.Float())))
	default:
		panic("not a wire kind")
	}
}

// SetFixed decodes a wire primitive from b into dst. b must hold exactly
// WireSize(k) bytes.
func SetFixed(dst reflect.Value, b []byte, k reflect.Kind) {
	switch k {
	case reflect.Bool:
		dst.SetBool(b[0] != 0)
	case reflect.Int8:
		dst.SetInt(int64(int8(b[0])))
	case reflect.Uint8:
		dst.SetUint(uint64(b[0]))
	case reflect.Int16:
		dst.SetInt(int64(int16(binary.LittleEndian.Uint16(b))))
	case reflect.Uint16:
		dst.SetUint(uint64(binary.LittleEndian.Uint16(b)))
	case reflect.Float32:
		dst.SetFloat(float64(math.Float32frombits(binary.LittleEndian.Uint32(b))))
	default:
		panic("not a wire kind")
	}
}
