package codec

import (
	"github.com/sousouindustries/amqptype/errs"
	"github.com/sousouindustries/amqptype/internal/endian"
)

// EncodeInteger encodes value as a big-endian integer.
//
// width is the full-form encoding width in octets (1, 2, 4, or 8). If zero
// is true and value == 0, the empty payload is returned (the uint0/ulong0/
// list0 zero-length forms). Otherwise, if small is true and value fits in
// a single octet (signed: -128 <= v < 128, unsigned: 0 <= v < 256), a
// single-octet payload is returned regardless of width; callers use this
// to detect the smallint/smalluint family at the constructor layer by
// comparing len(payload) to width.
func EncodeInteger(signed bool, width int, small bool, zero bool, value int64) []byte {
	if zero && value == 0 {
		return []byte{}
	}

	if small && fitsSmall(signed, value) {
		width = 1
	}

	buf := make([]byte, width)
	u := uint64(value)
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte(u)
		u >>= 8
	}

	return buf
}

func fitsSmall(signed bool, value int64) bool {
	if signed {
		return value >= -128 && value < 128
	}

	return value >= 0 && value < 256
}

// DecodeInteger decodes a big-endian integer payload of 0, 1, 2, 4, or 8
// octets. An empty payload decodes to 0 (the zero-length forms). signed
// controls sign-extension for 1/2/4-octet payloads.
func DecodeInteger(signed bool, data []byte) (int64, error) {
	switch len(data) {
	case 0:
		return 0, nil
	case 1, 2, 4, 8:
		// fall through
	default:
		return 0, errs.NewDecodeError("invalid integer payload length %d", len(data))
	}

	var u uint64
	for _, b := range data {
		u = (u << 8) | uint64(b)
	}

	if !signed || len(data) == 8 {
		return int64(u), nil
	}

	// Sign-extend payloads narrower than 64 bits.
	bits := uint(len(data)) * 8
	shift := 64 - bits
	return int64(u<<shift) >> shift, nil
}

// DecodeUnsigned decodes a big-endian unsigned integer payload, returning
// it as a uint64. It shares DecodeInteger's width handling but skips sign
// extension, since ubyte/ushort/uint/ulong never sign-extend.
func DecodeUnsigned(data []byte) (uint64, error) {
	v, err := DecodeInteger(false, data)
	return uint64(v), err
}

// Wire is exposed for callers that need the codec's big-endian engine
// directly (e.g. the constructor package, which writes length/count
// indicators outside of a named primitive type).
func Wire() endian.Engine {
	return endian.Wire()
}
