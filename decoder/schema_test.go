package decoder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sousouindustries/amqptype/decoder"
	"github.com/sousouindustries/amqptype/encoder"
	"github.com/sousouindustries/amqptype/factory"
	"github.com/sousouindustries/amqptype/format"
	"github.com/sousouindustries/amqptype/registry"
	"github.com/sousouindustries/amqptype/schema"
	"github.com/sousouindustries/amqptype/stream"
	"github.com/sousouindustries/amqptype/value"
)

func registerPrimitive(t *testing.T, reg *registry.Registry, name string, code format.Code) *schema.Meta {
	m := schema.Create(name, schema.ClassPrimitive, name)
	m.Encodings = []schema.Encoding{{Name: name, Code: code}}
	require.NoError(t, reg.Register(m))
	return m
}

func TestDecodeSchema_CompositeRoundTrip(t *testing.T) {
	reg := registry.New()
	registerPrimitive(t, reg, "ubyte", format.UByte)

	meta := schema.Create("one-test-list", schema.ClassComposite, "list")
	meta.Descriptor = &schema.Descriptor{Symbolic: "one.test:list", HasSymbolic: true}
	meta.Fields = []schema.Field{{Name: "fixed", TypeName: "ubyte", Mandatory: true}}
	require.NoError(t, reg.Register(meta))

	f := factory.New(reg)
	composite, err := f.BuildComposite(meta, map[string]any{"fixed": uint64(1)})
	require.NoError(t, err)

	encoded, err := encoder.Encode(composite)
	require.NoError(t, err)

	node, err := stream.ParseBuffer(encoded)
	require.NoError(t, err)

	decoded, err := decoder.DecodeSchema(node, encoded, reg)
	require.NoError(t, err)

	c, ok := decoded.(*value.Composite)
	require.True(t, ok)
	require.Same(t, meta, c.Meta())

	got, ok := c.Field("fixed")
	require.True(t, ok)
	s, ok := got.(*value.Scalar)
	require.True(t, ok)
	require.Equal(t, uint64(1), s.Payload())
}

func TestDecodeSchema_TrailingNullReexpanded(t *testing.T) {
	reg := registry.New()
	registerPrimitive(t, reg, "ubyte", format.UByte)
	registerPrimitive(t, reg, "string", format.Str8)

	meta := schema.Create("one-test-list", schema.ClassComposite, "list")
	meta.Descriptor = &schema.Descriptor{Symbolic: "one.test:list", HasSymbolic: true}
	meta.Fields = []schema.Field{
		{Name: "fixed", TypeName: "ubyte", Mandatory: true},
		{Name: "optional", TypeName: "string"},
	}
	require.NoError(t, reg.Register(meta))

	composite := value.NewComposite(meta, []value.Value{
		value.NewScalar("ubyte", uint64(1)),
		value.NewNull(),
	})

	encoded, err := encoder.Encode(composite)
	require.NoError(t, err)

	node, err := stream.ParseBuffer(encoded)
	require.NoError(t, err)

	decoded, err := decoder.DecodeSchema(node, encoded, reg)
	require.NoError(t, err)

	c := decoded.(*value.Composite)
	require.Len(t, c.Fields(), 2)
	_, ok := c.Fields()[1].(*value.Null)
	require.True(t, ok)
}

func TestDecodeSchema_UnknownDescriptor(t *testing.T) {
	reg := registry.New()

	meta := schema.Create("unregistered", schema.ClassComposite, "list")
	meta.Descriptor = &schema.Descriptor{Symbolic: "x:unregistered", HasSymbolic: true}

	composite := value.NewComposite(meta, nil)
	encoded, err := encoder.Encode(composite)
	require.NoError(t, err)

	node, err := stream.ParseBuffer(encoded)
	require.NoError(t, err)

	_, err = decoder.DecodeSchema(node, encoded, reg)
	require.Error(t, err)
}
