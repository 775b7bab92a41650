package codec

import (
	"math"

	"github.com/sousouindustries/amqptype/errs"
)

// EncodeFloat encodes value as an IEEE-754 binary32 big-endian payload.
func EncodeFloat(value float32) []byte {
	buf := make([]byte, 4)
	Wire().PutUint32(buf, math.Float32bits(value))

	return buf
}

// DecodeFloat decodes a binary32 payload.
func DecodeFloat(data []byte) (float32, error) {
	if len(data) != 4 {
		return 0, errs.NewDecodeError("invalid float payload length %d", len(data))
	}

	return math.Float32frombits(Wire().Uint32(data)), nil
}

// EncodeDouble encodes value as an IEEE-754 binary64 big-endian payload.
func EncodeDouble(value float64) []byte {
	buf := make([]byte, 8)
	Wire().PutUint64(buf, math.Float64bits(value))

	return buf
}

// DecodeDouble decodes a binary64 payload.
func DecodeDouble(data []byte) (float64, error) {
	if len(data) != 8 {
		return 0, errs.NewDecodeError("invalid double payload length %d", len(data))
	}

	return math.Float64frombits(Wire().Uint64(data)), nil
}
