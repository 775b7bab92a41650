// Package constructor implements the constructor framing rules of spec
// §4.2: the optional descriptor prefix (0x00 + descriptor value) and the
// primitive format-code octet that precedes every encoded AMQP value,
// plus the length field that follows it for variable-width payloads.
package constructor

import (
	"github.com/sousouindustries/amqptype/codec"
	"github.com/sousouindustries/amqptype/errs"
	"github.com/sousouindustries/amqptype/format"
	"github.com/sousouindustries/amqptype/schema"
)

// Constructor is the decoded prefix of an encoded value.
type Constructor struct {
	Descriptor    *schema.Descriptor
	HasDescriptor bool
	FormatCode    format.Code
	// Width is the number of octets the constructor itself occupies.
	Width int
}

// Parse reads a constructor starting at data[0]: an optional descriptor
// (0x00 followed by a sym8/sym32/smallulong/ulong value), then the
// primitive format-code octet. The number of octets consumed is reported
// in the returned Constructor's Width.
func Parse(data []byte) (Constructor, error) {
	if len(data) == 0 {
		return Constructor{}, errs.ErrEndOfStream
	}

	pos := 0
	var desc *schema.Descriptor
	hasDesc := false

	if format.Code(data[0]) == format.Described {
		pos++
		d, n, err := parseDescriptorValue(data[pos:])
		if err != nil {
			return Constructor{}, err
		}
		desc = d
		hasDesc = true
		pos += n
	}

	if pos >= len(data) {
		return Constructor{}, errs.ErrEndOfStream
	}
	code := format.Code(data[pos])
	pos++

	return Constructor{Descriptor: desc, HasDescriptor: hasDesc, FormatCode: code, Width: pos}, nil
}

// parseDescriptorValue parses the descriptor value following the 0x00
// prefix octet. Only sym8, sym32, smallulong, and ulong are valid
// descriptor format codes (spec §4.2); any other code is a validation
// error.
func parseDescriptorValue(data []byte) (*schema.Descriptor, int, error) {
	if len(data) == 0 {
		return nil, 0, errs.ErrEndOfStream
	}

	code := format.Code(data[0])
	switch code {
	case format.Sym8:
		if len(data) < 2 {
			return nil, 0, errs.ErrEndOfStream
		}
		n := int(data[1])
		if len(data) < 2+n {
			return nil, 0, errs.ErrEndOfStream
		}
		sym, err := codec.DecodeSymbol(data[2 : 2+n])
		if err != nil {
			return nil, 0, err
		}
		return &schema.Descriptor{Symbolic: sym, HasSymbolic: true}, 2 + n, nil

	case format.Sym32:
		if len(data) < 5 {
			return nil, 0, errs.ErrEndOfStream
		}
		n := int(codec.Wire().Uint32(data[1:5]))
		if len(data) < 5+n {
			return nil, 0, errs.ErrEndOfStream
		}
		sym, err := codec.DecodeSymbol(data[5 : 5+n])
		if err != nil {
			return nil, 0, err
		}
		return &schema.Descriptor{Symbolic: sym, HasSymbolic: true}, 5 + n, nil

	case format.SmallULong:
		if len(data) < 2 {
			return nil, 0, errs.ErrEndOfStream
		}
		v, err := codec.DecodeUnsigned(data[1:2])
		if err != nil {
			return nil, 0, err
		}
		return &schema.Descriptor{Numeric: v, HasNumeric: true}, 2, nil

	case format.ULong:
		if len(data) < 9 {
			return nil, 0, errs.ErrEndOfStream
		}
		v, err := codec.DecodeUnsigned(data[1:9])
		if err != nil {
			return nil, 0, err
		}
		return &schema.Descriptor{Numeric: v, HasNumeric: true}, 9, nil

	default:
		return nil, 0, errs.NewValidationError(errs.KindInvalid, "descriptor", "format code 0x%02X cannot introduce a descriptor", byte(code))
	}
}

// EncodeDescriptor emits the 0x00-prefixed descriptor framing for d, or
// nil if d is nil. Symbolic descriptors are preferred when both forms are
// present, matching the registry's symbolic-first lookup order.
func EncodeDescriptor(d *schema.Descriptor) ([]byte, error) {
	if d == nil {
		return nil, nil
	}

	buf := []byte{byte(format.Described)}

	if d.HasSymbolic {
		payload, err := codec.EncodeSymbol(d.Symbolic)
		if err != nil {
			return nil, err
		}
		code := SymFamily.Choose(len(payload), 0)
		buf = append(buf, byte(code))
		buf = append(buf, EncodeLengthField(code, len(payload))...)
		buf = append(buf, payload...)
		return buf, nil
	}

	if d.HasNumeric {
		code := format.ULong
		if d.Numeric < 256 {
			code = format.SmallULong
		}
		buf = append(buf, byte(code))
		buf = append(buf, codec.EncodeInteger(false, 8, true, false, int64(d.Numeric))...)
		return buf, nil
	}

	return nil, errs.NewDecodeError("descriptor has neither a symbolic nor a numeric form")
}

// EncodeLengthField emits the length-field octets that follow a
// variable-1/4 format code, per its category's indicator width.
func EncodeLengthField(code format.Code, length int) []byte {
	switch code.Category() {
	case format.CategoryVariable1:
		return []byte{byte(length)}
	case format.CategoryVariable4:
		buf := make([]byte, 4)
		codec.Wire().PutUint32(buf, uint32(length))
		return buf
	default:
		return nil
	}
}

// EncodeVariable emits the full constructor and payload for a
// variable-width value (string, symbol, or binary): descriptor, chosen
// format code, length field, payload.
func EncodeVariable(desc *schema.Descriptor, family Family, payload []byte) ([]byte, error) {
	descBytes, err := EncodeDescriptor(desc)
	if err != nil {
		return nil, err
	}

	code := family.Choose(len(payload), 0)
	buf := make([]byte, 0, len(descBytes)+1+4+len(payload))
	buf = append(buf, descBytes...)
	buf = append(buf, byte(code))
	buf = append(buf, EncodeLengthField(code, len(payload))...)
	buf = append(buf, payload...)

	return buf, nil
}
