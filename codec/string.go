package codec

import (
	"unicode/utf8"

	"github.com/sousouindustries/amqptype/errs"
)

// EncodeString encodes value as UTF-8, the wire form of str8/str32.
func EncodeString(value string) []byte {
	return []byte(value)
}

// DecodeString decodes a str8/str32 payload as UTF-8.
func DecodeString(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errs.NewDecodeError("string payload is not valid UTF-8")
	}

	return string(data), nil
}

// EncodeSymbol encodes value as ASCII, the wire form of sym8/sym32.
func EncodeSymbol(value string) ([]byte, error) {
	for i := 0; i < len(value); i++ {
		if value[i] > 0x7F {
			return nil, errs.NewDecodeError("symbol %q contains a non-ASCII octet at index %d", value, i)
		}
	}

	return []byte(value), nil
}

// DecodeSymbol decodes a sym8/sym32 payload as ASCII.
func DecodeSymbol(data []byte) (string, error) {
	for i, b := range data {
		if b > 0x7F {
			return "", errs.NewDecodeError("symbol payload contains a non-ASCII octet at index %d", i)
		}
	}

	return string(data), nil
}
