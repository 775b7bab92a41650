// Package encoder serialises a value.Value tree to its AMQP wire bytes
// (spec §4.4). It dispatches on the concrete value type via a type
// switch rather than a visitor's double dispatch (spec §9 "Visitor vs
// tagged variant"): no value.Value implementation calls back into this
// package.
package encoder

import (
	"github.com/sousouindustries/amqptype/codec"
	"github.com/sousouindustries/amqptype/constructor"
	"github.com/sousouindustries/amqptype/errs"
	"github.com/sousouindustries/amqptype/format"
	"github.com/sousouindustries/amqptype/internal/pool"
	"github.com/sousouindustries/amqptype/schema"
	"github.com/sousouindustries/amqptype/value"
)

// Encode serialises v to its AMQP wire representation.
func Encode(v value.Value) ([]byte, error) {
	buf := pool.Get()
	defer pool.Put(buf)

	if err := encodeInto(buf, v); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

func encodeInto(buf *pool.ByteBuffer, v value.Value) error {
	switch t := v.(type) {
	case *value.Null:
		return encodeNull(buf, t)
	case *value.Scalar:
		return encodeScalar(buf, t)
	case *value.List:
		return encodeList(buf, t)
	case *value.Map:
		return encodeMap(buf, t)
	case *value.Array:
		return encodeArray(buf, t)
	case *value.Composite:
		return encodeComposite(buf, t)
	case *value.Restricted:
		return encodeRestricted(buf, t)
	default:
		return errs.NewTypeError("unsupported value type %T", v)
	}
}

func encodeNull(buf *pool.ByteBuffer, n *value.Null) error {
	if n.InArray() {
		return nil
	}

	descBytes, err := constructor.EncodeDescriptor(n.Descriptor())
	if err != nil {
		return err
	}
	buf.MustWrite(descBytes)
	buf.MustWrite([]byte{byte(format.Null)})
	return nil
}

func encodeScalar(buf *pool.ByteBuffer, s *value.Scalar) error {
	code, payload, err := scalarPayload(s)
	if err != nil {
		return err
	}

	if s.InArray() {
		if code.Category().IsVariable() {
			buf.MustWrite(constructor.EncodeLengthField(code, len(payload)))
		}
		buf.MustWrite(payload)
		return nil
	}

	descBytes, err := constructor.EncodeDescriptor(s.Descriptor())
	if err != nil {
		return err
	}
	buf.MustWrite(descBytes)
	buf.MustWrite([]byte{byte(code)})
	if code.Category().IsVariable() {
		buf.MustWrite(constructor.EncodeLengthField(code, len(payload)))
	}
	buf.MustWrite(payload)
	return nil
}

// emitCollection writes the descriptor, format code, and — unless the
// chosen code is the family's zero-length variant — the size and count
// indicators, followed by the already-encoded member body.
func emitCollection(buf *pool.ByteBuffer, desc *schema.Descriptor, family constructor.Family, body []byte, count int) error {
	code := family.Choose(len(body), count)

	descBytes, err := constructor.EncodeDescriptor(desc)
	if err != nil {
		return err
	}
	buf.MustWrite(descBytes)
	buf.MustWrite([]byte{byte(code)})

	if family.HasZero && code == family.Zero {
		return nil
	}

	iw := code.Category().IndicatorWidth()
	size := iw + len(body)
	buf.MustWrite(encodeIndicator(size, iw))
	buf.MustWrite(encodeIndicator(count, iw))
	buf.MustWrite(body)
	return nil
}

func encodeIndicator(v, width int) []byte {
	if width == 1 {
		return []byte{byte(v)}
	}
	b := make([]byte, 4)
	codec.Wire().PutUint32(b, uint32(v))
	return b
}
