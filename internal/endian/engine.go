// Package endian provides the byte-order engine used by the codec package.
//
// AMQP 1.0 does not negotiate endianness: every multi-octet field on the
// wire is big-endian (OASIS AMQP 1.0 §1.6). This package exists anyway,
// rather than calling encoding/binary.BigEndian directly everywhere, so the
// byte codecs can depend on a single narrow interface instead of the full
// encoding/binary surface, and so tests can swap in a fake engine.
package endian

import "encoding/binary"

// Engine combines ByteOrder and AppendByteOrder from encoding/binary into a
// single interface. binary.BigEndian satisfies it without adaptation.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// wire is the engine used for all AMQP-encoded integers, floats, and
// timestamps. It is never swapped at runtime; the codec has no concept of
// a configurable wire endianness.
var wire Engine = binary.BigEndian

// Wire returns the byte-order engine for the AMQP wire format.
func Wire() Engine {
	return wire
}
