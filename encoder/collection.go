package encoder

import (
	"github.com/sousouindustries/amqptype/constructor"
	"github.com/sousouindustries/amqptype/errs"
	"github.com/sousouindustries/amqptype/format"
	"github.com/sousouindustries/amqptype/internal/pool"
	"github.com/sousouindustries/amqptype/value"
)

func encodeList(buf *pool.ByteBuffer, l *value.List) error {
	body := pool.Get()
	defer pool.Put(body)

	for _, m := range l.Members() {
		if err := encodeInto(body, m); err != nil {
			return err
		}
	}

	return emitCollection(buf, l.Descriptor(), constructor.ListFamily, body.Bytes(), len(l.Members()))
}

func encodeMap(buf *pool.ByteBuffer, m *value.Map) error {
	body := pool.Get()
	defer pool.Put(body)

	for _, e := range m.Entries() {
		if err := encodeInto(body, e); err != nil {
			return err
		}
	}

	return emitCollection(buf, m.Descriptor(), constructor.MapFamily, body.Bytes(), len(m.Entries()))
}

// encodeArray implements spec §4.4's array policy: monomorphic members,
// sharing one constructor derived from the caller-supplied
// MemberFormatCode when set, else inferred from the member with the
// largest encoded payload (ties broken by first occurrence). An empty
// array is emitted as the single octet 0x40 (spec §9 "Empty-array
// encoding as null" — kept lossy).
//
// Array members are expected to be Scalar values; this is the only shape
// exercised by any testable property in spec §8, so composite/list/map
// array members are rejected with a type error rather than silently
// mis-encoded.
func encodeArray(buf *pool.ByteBuffer, a *value.Array) error {
	members := a.Members()

	if len(members) == 0 {
		descBytes, err := constructor.EncodeDescriptor(a.Descriptor())
		if err != nil {
			return err
		}
		buf.MustWrite(descBytes)
		buf.MustWrite([]byte{byte(format.Null)})
		return nil
	}

	type encodedMember struct {
		code    format.Code
		payload []byte
	}

	encoded := make([]encodedMember, len(members))
	for i, m := range members {
		s, ok := m.(*value.Scalar)
		if !ok {
			return errs.NewTypeError("array encoder only supports scalar members, got %T", m)
		}
		code, payload, err := scalarPayload(s)
		if err != nil {
			return err
		}
		encoded[i] = encodedMember{code, payload}
	}

	code := a.MemberFormatCode
	if !a.HasMemberFormatCode() {
		code = encoded[0].code
		largest := len(encoded[0].payload)
		for _, e := range encoded[1:] {
			if len(e.payload) > largest {
				code = e.code
				largest = len(e.payload)
			}
		}
	}

	cat := code.Category()
	body := make([]byte, 0, 64)
	for _, m := range members {
		payload, err := reencodeScalarAs(m.(*value.Scalar), code)
		if err != nil {
			return err
		}
		if cat.IsVariable() {
			body = append(body, constructor.EncodeLengthField(code, len(payload))...)
		}
		body = append(body, payload...)
	}

	memberDesc := members[0].Descriptor()
	memberCtorBytes, err := constructor.EncodeDescriptor(memberDesc)
	if err != nil {
		return err
	}
	memberCtorBytes = append(memberCtorBytes, byte(code))

	totalAfterCount := len(memberCtorBytes) + len(body)
	arrCode := constructor.ArrayFamily.Choose(totalAfterCount, len(members))
	iw := arrCode.Category().IndicatorWidth()
	size := iw + totalAfterCount

	descBytes, err := constructor.EncodeDescriptor(a.Descriptor())
	if err != nil {
		return err
	}
	buf.MustWrite(descBytes)
	buf.MustWrite([]byte{byte(arrCode)})
	buf.MustWrite(encodeIndicator(size, iw))
	buf.MustWrite(encodeIndicator(len(members), iw))
	buf.MustWrite(memberCtorBytes)
	buf.MustWrite(body)

	return nil
}
