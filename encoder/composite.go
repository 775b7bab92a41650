package encoder

import (
	"github.com/sousouindustries/amqptype/constructor"
	"github.com/sousouindustries/amqptype/errs"
	"github.com/sousouindustries/amqptype/internal/pool"
	"github.com/sousouindustries/amqptype/value"
)

// encodeComposite emits c as a list, eliding trailing Null fields after
// the last non-Null field (spec §4.4 "Composites" — lossless, since the
// schema decoder re-expands absent tail fields to Null). The Meta's
// descriptor is always attached, even for an all-absent composite.
func encodeComposite(buf *pool.ByteBuffer, c *value.Composite) error {
	fields := c.Fields()

	lastNonNull := -1
	for i, f := range fields {
		if _, isNull := f.(*value.Null); !isNull {
			lastNonNull = i
		}
	}
	kept := fields[:lastNonNull+1]

	body := pool.Get()
	defer pool.Put(body)
	for _, f := range kept {
		if err := encodeInto(body, f); err != nil {
			return err
		}
	}

	return emitCollection(buf, c.Descriptor(), constructor.ListFamily, body.Bytes(), len(kept))
}

// encodeRestricted emits r exactly as its underlying scalar, attaching
// r's own descriptor (spec §4.4 "Restricted").
func encodeRestricted(buf *pool.ByteBuffer, r *value.Restricted) error {
	s, ok := r.Inner().(*value.Scalar)
	if !ok {
		return errs.NewTypeError("restricted encoder only supports a scalar inner value, got %T", r.Inner())
	}

	code, payload, err := scalarPayload(s)
	if err != nil {
		return err
	}

	if r.InArray() {
		if code.Category().IsVariable() {
			buf.MustWrite(constructor.EncodeLengthField(code, len(payload)))
		}
		buf.MustWrite(payload)
		return nil
	}

	descBytes, err := constructor.EncodeDescriptor(r.Descriptor())
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
