package codec

import "github.com/sousouindustries/amqptype/errs"

// EncodeBoolean encodes value as the single-octet boolean(0x56) payload:
// 0x00 for false, 0x01 for true.
func EncodeBoolean(value bool) []byte {
	if value {
		return []byte{0x01}
	}

	return []byte{0x00}
}

// DecodeBoolean decodes a boolean(0x56) payload. Per OASIS AMQP 1.0 §3,
// any non-zero octet is true.
func DecodeBoolean(data []byte) (bool, error) {
	if len(data) != 1 {
		return false, errs.NewDecodeError("invalid boolean payload length %d", len(data))
	}

	return data[0] != 0x00, nil
}

// EncodeNull returns the zero-length null payload.
func EncodeNull() []byte {
	return []byte{}
}

// DecodeNull validates that data is empty, returning a decode error
// otherwise.
func DecodeNull(data []byte) error {
	if len(data) != 0 {
		return errs.NewDecodeError("null payload must be empty, got %d octets", len(data))
	}

	return nil
}
