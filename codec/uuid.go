package codec

import (
	"github.com/google/uuid"

	"github.com/sousouindustries/amqptype/errs"
)

// EncodeUUID encodes value as its 16 raw octets.
func EncodeUUID(value uuid.UUID) []byte {
	b := make([]byte, 16)
	copy(b, value[:])

	return b
}

// DecodeUUID decodes a 16-octet uuid(0x98) payload.
func DecodeUUID(data []byte) (uuid.UUID, error) {
	if len(data) != 16 {
		return uuid.Nil, errs.NewDecodeError("invalid uuid payload length %d", len(data))
	}

	var u uuid.UUID
	copy(u[:], data)

	return u, nil
}
