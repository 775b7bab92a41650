package factory

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/sousouindustries/amqptype/errs"
	"github.com/sousouindustries/amqptype/value"
)

// coerceScalar implements the primitive coercion table of spec §4.8: it
// accepts a range of Go-native inputs for a declared primitive source name
// and returns the canonical Scalar the encoder expects. Range checking for
// integer widths is left to the encoder, matching the source coercion
// table's own division of labour.
func coerceScalar(source string, input any) (*value.Scalar, error) {
	switch source {
	case "boolean":
		return coerceBool(input)

	case "ubyte", "ushort", "uint", "ulong":
		v, err := coerceUnsigned(input)
		if err != nil {
			return nil, err
		}
		return value.NewScalar(source, v), nil

	case "byte", "short", "int", "long":
		v, err := coerceSigned(input)
		if err != nil {
			return nil, err
		}
		return value.NewScalar(source, v), nil

	case "float":
		v, err := coerceFloat(input)
		if err != nil {
			return nil, err
		}
		return value.NewScalar("float", float32(v)), nil

	case "double":
		v, err := coerceFloat(input)
		if err != nil {
			return nil, err
		}
		return value.NewScalar("double", v), nil

	case "timestamp":
		t, err := coerceTimestamp(input)
		if err != nil {
			return nil, err
		}
		return value.NewScalar("timestamp", t), nil

	case "uuid":
		u, err := coerceUUID(input)
		if err != nil {
			return nil, err
		}
		return value.NewScalar("uuid", u), nil

	case "binary":
		b, err := coerceBytes(input)
		if err != nil {
			return nil, err
		}
		return value.NewScalar("binary", b), nil

	case "string":
		s, ok := input.(string)
		if !ok {
			return nil, errs.NewTypeError("string scalar requires a Go string, got %T", input)
		}
		return value.NewScalar("string", s), nil

	case "symbol":
		s, ok := input.(string)
		if !ok {
			return nil, errs.NewTypeError("symbol scalar requires a Go string, got %T", input)
		}
		return value.NewScalar("symbol", s), nil

	case "char":
		r, err := coerceChar(input)
		if err != nil {
			return nil, err
		}
		return value.NewScalar("char", r), nil
	}

	return nil, &errs.EncoderMissingError{TypeName: source}
}

func coerceBool(input any) (*value.Scalar, error) {
	switch v := input.(type) {
	case bool:
		return value.NewScalar("boolean", v), nil
	case string:
		switch v {
		case "true":
			return value.NewScalar("boolean", true), nil
		case "false":
			return value.NewScalar("boolean", false), nil
		}
	}
	return nil, errs.NewTypeError("boolean scalar requires a bool or \"true\"/\"false\", got %T", input)
}

func coerceUnsigned(input any) (uint64, error) {
	switch v := input.(type) {
	case uint64:
		return v, nil
	case uint32:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint8:
		return uint64(v), nil
	case int:
		if v < 0 {
			return 0, errs.NewTypeError("unsigned scalar cannot accept negative value %d", v)
		}
		return uint64(v), nil
	case int64:
		if v < 0 {
			return 0, errs.NewTypeError("unsigned scalar cannot accept negative value %d", v)
		}
		return uint64(v), nil
	case string:
		u, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, errs.NewTypeError("cannot coerce %q to an unsigned integer", v)
		}
		return u, nil
	}
	return 0, errs.NewTypeError("unsigned scalar requires an int-castable value, got %T", input)
}

func coerceSigned(input any) (int64, error) {
	switch v := input.(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int:
		return int64(v), nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, errs.NewTypeError("cannot coerce %q to a signed integer", v)
		}
		return n, nil
	}
	return 0, errs.NewTypeError("signed scalar requires an int-castable value, got %T", input)
}

func coerceFloat(input any) (float64, error) {
	switch v := input.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}
	return 0, errs.NewTypeError("real scalar requires a number, got %T", input)
}

// coerceTimestamp accepts an existing time.Time or an integer count of
// milliseconds since the POSIX epoch (spec §4.8 "converted to
// ms-since-epoch, or integer").
func coerceTimestamp(input any) (time.Time, error) {
	switch v := input.(type) {
	case time.Time:
		return v, nil
	case int64:
		return time.UnixMilli(v).UTC(), nil
	case int:
		return time.UnixMilli(int64(v)).UTC(), nil
	}
	return time.Time{}, errs.NewTypeError("timestamp scalar requires a time.Time or millisecond integer, got %T", input)
}

// coerceUUID accepts an existing uuid.UUID, a 16-byte blob, or a 32-hex
// (or dashed) string form (spec §4.8).
func coerceUUID(input any) (uuid.UUID, error) {
	switch v := input.(type) {
	case uuid.UUID:
		return v, nil
	case []byte:
		if len(v) != 16 {
			return uuid.Nil, errs.NewTypeError("uuid scalar requires a 16-byte blob, got %d bytes", len(v))
		}
		var u uuid.UUID
		copy(u[:], v)
		return u, nil
	case string:
		u, err := uuid.Parse(v)
		if err != nil {
			return uuid.Nil, errs.NewTypeError("cannot coerce %q to a uuid: %v", v, err)
		}
		return u, nil
	}
	return uuid.Nil, errs.NewTypeError("uuid scalar requires a uuid.UUID, []byte, or hex string, got %T", input)
}

func coerceBytes(input any) ([]byte, error) {
	switch v := input.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	}
	return nil, errs.NewTypeError("binary scalar requires a []byte or string, got %T", input)
}

// coerceChar accepts a rune directly or the first rune of a single-rune
// string (spec §4.8 "text (UTF-32BE, 4 octets)").
func coerceChar(input any) (rune, error) {
	switch v := input.(type) {
	case rune:
		return v, nil
	case string:
		runes := []rune(v)
		if len(runes) != 1 {
			return 0, errs.NewTypeError("char scalar requires exactly one rune, got %d in %q", len(runes), v)
		}
		return runes[0], nil
	}
	return 0, errs.NewTypeError("char scalar requires a rune or single-rune string, got %T", input)
}
