// Package decoder implements the two decode strategies of spec §4.5: a
// raw decoder that turns a stream.Node tree into primitive-typed
// value.Value instances with no schema knowledge, and a schema decoder
// (schema.go) that additionally consults a registry to produce typed
// Composite and Restricted values.
package decoder

import (
	"github.com/sousouindustries/amqptype/codec"
	"github.com/sousouindustries/amqptype/errs"
	"github.com/sousouindustries/amqptype/format"
	"github.com/sousouindustries/amqptype/schema"
	"github.com/sousouindustries/amqptype/stream"
	"github.com/sousouindustries/amqptype/value"
)

// DecodeRaw converts node into a value.Value of the variant matching its
// format code: null/list/map/array fall into their dedicated variants;
// every other code becomes a Scalar carrying its primitive type name.
func DecodeRaw(node *stream.Node, data []byte) (value.Value, error) {
	code := node.FormatCode()

	switch code {
	case format.Null:
		return attachDescriptor(value.NewNull(), node), nil

	case format.List0:
		return attachDescriptor(value.NewList(), node), nil

	case format.List8, format.List32:
		return decodeRawList(node, data)

	case format.Map8, format.Map32:
		return decodeRawMap(node, data)

	case format.Array8, format.Array32:
		return decodeRawArray(node, data)
	}

	scalar, err := decodeRawScalar(code, node.Payload(data))
	if err != nil {
		return nil, err
	}

	return attachDescriptor(scalar, node), nil
}

func decodeRawScalar(code format.Code, payload []byte) (value.Value, error) {
	name, known := format.TypeName(code)
	if !known {
		return nil, errs.NewDecodeErrorCode(uint8(code), "unknown format code")
	}

	switch code {
	case format.True:
		return value.NewScalar(name, true), nil
	case format.False:
		return value.NewScalar(name, false), nil
	case format.Boolean:
		v, err := codec.DecodeBoolean(payload)
		if err != nil {
			return nil, err
		}
		return value.NewScalar(name, v), nil

	case format.UByte, format.SmallUInt, format.UShort, format.UInt, format.UInt0:
		v, err := codec.DecodeUnsigned(payload)
		if err != nil {
			return nil, err
		}
		return value.NewScalar(name, v), nil

	case format.SmallULong, format.ULong, format.ULong0:
		v, err := codec.DecodeUnsigned(payload)
		if err != nil {
			return nil, err
		}
		return value.NewScalar(name, v), nil

	case format.Byte, format.SmallInt, format.Short, format.Int:
		v, err := codec.DecodeInteger(true, payload)
		if err != nil {
			return nil, err
		}
		return value.NewScalar(name, v), nil

	case format.SmallLong, format.Long:
		v, err := codec.DecodeInteger(true, payload)
		if err != nil {
			return nil, err
		}
		return value.NewScalar(name, v), nil

	case format.Float:
		v, err := codec.DecodeFloat(payload)
		if err != nil {
			return nil, err
		}
		return value.NewScalar(name, v), nil

	case format.Double:
		v, err := codec.DecodeDouble(payload)
		if err != nil {
			return nil, err
		}
		return value.NewScalar(name, v), nil

	case format.Char:
		v, err := codec.DecodeChar(payload)
		if err != nil {
			return nil, err
		}
		return value.NewScalar(name, v), nil

	case format.Timestamp:
		v, err := codec.DecodeTimestamp(payload)
		if err != nil {
			return nil, err
		}
		return value.NewScalar(name, v), nil

	case format.UUID:
		v, err := codec.DecodeUUID(payload)
		if err != nil {
			return nil, err
		}
		return value.NewScalar(name, v), nil

	case format.VBin8, format.VBin32:
		return value.NewScalar(name, codec.DecodeBinary(payload)), nil

	case format.Str8, format.Str32:
		v, err := codec.DecodeString(payload)
		if err != nil {
			return nil, err
		}
		return value.NewScalar(name, v), nil

	case format.Sym8, format.Sym32:
		v, err := codec.DecodeSymbol(payload)
		if err != nil {
			return nil, err
		}
		return value.NewScalar(name, v), nil

	case format.Decimal32, format.Decimal64, format.Decimal128:
		// Decimal arithmetic is out of scope (spec §9); the raw payload
		// is preserved verbatim so a caller can still inspect it.
		raw := make([]byte, len(payload))
		copy(raw, payload)
		return value.NewScalar(name, raw), nil
	}

	return nil, &errs.DecoderMissingError{Code: uint8(code)}
}

func decodeRawList(node *stream.Node, data []byte) (value.Value, error) {
	list := value.NewList()
	for _, child := range node.Children {
		member, err := DecodeRaw(child, data)
		if err != nil {
			return nil, err
		}
		list.Append(member)
	}
	return attachDescriptor(list, node), nil
}

func decodeRawMap(node *stream.Node, data []byte) (value.Value, error) {
	m := value.NewMap()
	if len(node.Children)%2 != 0 {
		return nil, errs.NewDecodeError("map node carries an odd number of elements")
	}
	for i := 0; i < len(node.Children); i += 2 {
		key, err := DecodeRaw(node.Children[i], data)
		if err != nil {
			return nil, err
		}
		val, err := DecodeRaw(node.Children[i+1], data)
		if err != nil {
			return nil, err
		}
		m.Put(key, val)
	}
	return attachDescriptor(m, node), nil
}

func decodeRawArray(node *stream.Node, data []byte) (value.Value, error) {
	memberSource := "null"
	if node.MemberConstructor != nil {
		if name, ok := format.TypeName(node.MemberConstructor.FormatCode); ok {
			memberSource = name
		}
	}

	arr := value.NewArray(memberSource)
	if node.MemberConstructor != nil {
		arr.SetMemberFormatCode(node.MemberConstructor.FormatCode)
	}

	for _, child := range node.Children {
		member, err := decodeArrayMember(child, node.MemberConstructor.FormatCode, data)
		if err != nil {
			return nil, err
		}
		if err := arr.Append(member); err != nil {
			return nil, err
		}
	}

	return attachDescriptor(arr, node), nil
}

// decodeArrayMember decodes one array member body, reusing the array's
// shared member format code (array members carry no constructor of their
// own).
func decodeArrayMember(child *stream.Node, code format.Code, data []byte) (value.Value, error) {
	switch code {
	case format.List8, format.List32, format.List0:
		return decodeRawList(child, data)
	case format.Map8, format.Map32:
		return decodeRawMap(child, data)
	case format.Array8, format.Array32:
		return decodeRawArray(child, data)
	default:
		return decodeRawScalar(code, child.Payload(data))
	}
}

func attachDescriptor(v value.Value, node *stream.Node) value.Value {
	if setter, ok := v.(interface{ SetDescriptor(*schema.Descriptor) }); ok {
		setter.SetDescriptor(node.Descriptor())
	}
	return v
}
