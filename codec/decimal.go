package codec

import "github.com/sousouindustries/amqptype/errs"

// EncodeDecimal32, EncodeDecimal64, and EncodeDecimal128 are not
// implemented; spec §1 reserves the decimal format codes but does not
// require decimal32/64/128 arithmetic. Each reports EncoderMissingError,
// the same error the coercion table reports for an unsupported type name.

// errDecimalUnsupported is returned by every decimal encode function in
// this package.
var errDecimalUnsupported = &errs.EncoderMissingError{TypeName: "decimal"}

// EncodeDecimal32 always fails: decimal32 arithmetic is out of scope.
func EncodeDecimal32(value []byte) ([]byte, error) {
	return nil, errDecimalUnsupported
}

// EncodeDecimal64 always fails: decimal64 arithmetic is out of scope.
func EncodeDecimal64(value []byte) ([]byte, error) {
	return nil, errDecimalUnsupported
}

// EncodeDecimal128 always fails: decimal128 arithmetic is out of scope.
func EncodeDecimal128(value []byte) ([]byte, error) {
	return nil, errDecimalUnsupported
}
