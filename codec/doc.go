// Package codec implements the stateless byte-level encoders and decoders
// for every AMQP 1.0 primitive type: null, booleans, signed/unsigned
// integers (including their zero-length and single-octet small-form
// variants), IEEE-754 binary32/binary64 floats, UUIDs, opaque binary,
// UTF-8 strings, ASCII symbols, UTF-32BE chars, and millisecond
// timestamps.
//
// Every function in this package operates on an already-isolated payload
// slice (the constructor and length/count framing is handled by the
// constructor and stream packages); codec functions never themselves read
// a length prefix. All multi-octet fields are big-endian (OASIS AMQP 1.0
// §1.6); the codec never negotiates endianness.
package codec
