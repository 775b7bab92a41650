package encoder

import (
	"time"

	"github.com/google/uuid"

	"github.com/sousouindustries/amqptype/codec"
	"github.com/sousouindustries/amqptype/constructor"
	"github.com/sousouindustries/amqptype/errs"
	"github.com/sousouindustries/amqptype/format"
	"github.com/sousouindustries/amqptype/value"
)

// scalarPayload resolves s to the format code and payload bytes it
// should be encoded with, applying the small-form and zero-length-form
// preferences of spec §8 test 4 for integer types.
func scalarPayload(s *value.Scalar) (format.Code, []byte, error) {
	switch s.Source() {
	case "null":
		return format.Null, nil, nil

	case "boolean":
		v, _ := s.Payload().(bool)
		if v {
			return format.True, nil, nil
		}
		return format.False, nil, nil

	case "ubyte":
		v := s.Payload().(uint64)
		return format.UByte, codec.EncodeInteger(false, 1, false, false, int64(v)), nil

	case "byte":
		v := s.Payload().(int64)
		return format.Byte, codec.EncodeInteger(true, 1, false, false, v), nil

	case "ushort":
		v := s.Payload().(uint64)
		return format.UShort, codec.EncodeInteger(false, 2, false, false, int64(v)), nil

	case "short":
		v := s.Payload().(int64)
		return format.Short, codec.EncodeInteger(true, 2, false, false, v), nil

	case "uint":
		v := s.Payload().(uint64)
		if v == 0 {
			return format.UInt0, nil, nil
		}
		if v < 256 {
			return format.SmallUInt, codec.EncodeInteger(false, 1, false, false, int64(v)), nil
		}
		return format.UInt, codec.EncodeInteger(false, 4, false, false, int64(v)), nil

	case "int":
		v := s.Payload().(int64)
		if v >= -128 && v < 128 {
			return format.SmallInt, codec.EncodeInteger(true, 1, false, false, v), nil
		}
		return format.Int, codec.EncodeInteger(true, 4, false, false, v), nil

	case "ulong":
		v := s.Payload().(uint64)
		if v == 0 {
			return format.ULong0, nil, nil
		}
		if v < 256 {
			return format.SmallULong, codec.EncodeInteger(false, 1, false, false, int64(v)), nil
		}
		return format.ULong, codec.EncodeInteger(false, 8, false, false, int64(v)), nil

	case "long":
		v := s.Payload().(int64)
		if v >= -128 && v < 128 {
			return format.SmallLong, codec.EncodeInteger(true, 1, false, false, v), nil
		}
		return format.Long, codec.EncodeInteger(true, 8, false, false, v), nil

	case "float":
		v := s.Payload().(float32)
		return format.Float, codec.EncodeFloat(v), nil

	case "double":
		v := s.Payload().(float64)
		return format.Double, codec.EncodeDouble(v), nil

	case "char":
		v := s.Payload().(rune)
		return format.Char, codec.EncodeChar(v), nil

	case "timestamp":
		v := s.Payload().(time.Time)
		return format.Timestamp, codec.EncodeTimestamp(v), nil

	case "uuid":
		v := s.Payload().(uuid.UUID)
		return format.UUID, codec.EncodeUUID(v), nil

	case "binary":
		v := s.Payload().([]byte)
		payload := codec.EncodeBinary(v)
		return constructor.BinFamily.Choose(len(payload), 0), payload, nil

	case "string":
		v := s.Payload().(string)
		payload := codec.EncodeString(v)
		return constructor.StrFamily.Choose(len(payload), 0), payload, nil

	case "symbol":
		v := s.Payload().(string)
		payload, err := codec.EncodeSymbol(v)
		if err != nil {
			return 0, nil, err
		}
		return constructor.SymFamily.Choose(len(payload), 0), payload, nil

	case "decimal32":
		_, err := codec.EncodeDecimal32(nil)
		return 0, nil, err
	case "decimal64":
		_, err := codec.EncodeDecimal64(nil)
		return 0, nil, err
	case "decimal128":
		_, err := codec.EncodeDecimal128(nil)
		return 0, nil, err
	}

	return 0, nil, &errs.EncoderMissingError{TypeName: s.Source()}
}

// integerSources are the scalar source names whose wire payload differs
// by width (unlike string/symbol/binary, whose bytes are identical
// regardless of the short/long format code chosen for them).
var integerSources = map[string]bool{
	"ubyte": true, "byte": true,
	"ushort": true, "short": true,
	"uint": true, "int": true,
	"ulong": true, "long": true,
}

// reencodeScalarAs re-encodes s's payload to match code, the format code
// shared by every member of an Array. Only integer sources need this: a
// member whose natural encoding chose a small or zero-length form must be
// widened to match the array's shared constructor.
func reencodeScalarAs(s *value.Scalar, code format.Code) ([]byte, error) {
	natCode, payload, err := scalarPayload(s)
	if err != nil {
		return nil, err
	}
	if natCode == code || !integerSources[s.Source()] {
		return payload, nil
	}

	width := code.Category().IndicatorWidth()
	v, err := codec.DecodeInteger(isSignedCode(code), payload)
	if err != nil {
		return nil, err
	}
	return codec.EncodeInteger(isSignedCode(code), width, false, false, v), nil
}

func isSignedCode(code format.Code) bool {
	switch code {
	case format.Byte, format.SmallInt, format.Short, format.Int, format.SmallLong, format.Long:
		return true
	default:
		return false
	}
}
