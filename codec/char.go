package codec

import "github.com/sousouindustries/amqptype/errs"

// EncodeChar encodes value, a single Unicode code point, as its 4-octet
// UTF-32BE representation. Per spec §1, this is pass-through: the code
// point is written as a raw big-endian uint32, with no validation beyond
// fitting in 32 bits (which a Go rune always does).
func EncodeChar(value rune) []byte {
	buf := make([]byte, 4)
	Wire().PutUint32(buf, uint32(value))

	return buf
}

// DecodeChar decodes a 4-octet UTF-32BE char(0x73) payload back to a rune.
func DecodeChar(data []byte) (rune, error) {
	if len(data) != 4 {
		return 0, errs.NewDecodeError("invalid char payload length %d", len(data))
	}

	return rune(Wire().Uint32(data)), nil
}
