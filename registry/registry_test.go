package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sousouindustries/amqptype/format"
	"github.com/sousouindustries/amqptype/schema"
)

func TestRegistry_RegisterAndLookupByTypeName(t *testing.T) {
	r := New()
	meta := schema.Create("delivery-annotations", schema.ClassRestricted, "map")
	require.NoError(t, r.Register(meta))

	got, ok := r.ByTypeName("delivery-annotations")
	require.True(t, ok)
	require.Same(t, meta, got)

	_, ok = r.ByTypeName("no-such-type")
	require.False(t, ok)
}

func TestRegistry_RegisterAndLookupByFormatCode(t *testing.T) {
	r := New()
	meta := schema.Create("ubyte", schema.ClassPrimitive, "ubyte")
	meta.Encodings = []schema.Encoding{{Name: "ubyte", Code: format.UByte, Width: 1}}
	require.NoError(t, r.Register(meta))

	got, ok := r.ByFormatCode(format.UByte)
	require.True(t, ok)
	require.Same(t, meta, got)
}

func TestRegistry_RegisterAndLookupByDescriptor(t *testing.T) {
	r := New()
	meta := schema.Create("my-composite", schema.ClassComposite, "list")
	meta.Descriptor = &schema.Descriptor{
		Symbolic: "my:composite", HasSymbolic: true,
		Numeric: schema.PackNumeric(0x0001, 0x0002), HasNumeric: true,
	}
	require.NoError(t, r.Register(meta))

	bySym, ok := r.ByDescriptor(&schema.Descriptor{Symbolic: "my:composite", HasSymbolic: true})
	require.True(t, ok)
	require.Same(t, meta, bySym)

	byNum, ok := r.ByDescriptor(&schema.Descriptor{Numeric: schema.PackNumeric(0x0001, 0x0002), HasNumeric: true})
	require.True(t, ok)
	require.Same(t, meta, byNum)

	_, ok = r.ByDescriptor(nil)
	require.False(t, ok)
}

func TestRegistry_ReregisterSameTypeName_NotACollision(t *testing.T) {
	r := New()
	first := schema.Create("ubyte", schema.ClassPrimitive, "ubyte")
	require.NoError(t, r.Register(first))

	second := schema.Create("ubyte", schema.ClassPrimitive, "ubyte")
	require.NoError(t, r.Register(second))

	got, ok := r.ByTypeName("ubyte")
	require.True(t, ok)
	require.Same(t, second, got)
}

func TestRegistry_RegisterNilMeta(t *testing.T) {
	r := New()
	require.Error(t, r.Register(nil))
}

func TestRegistry_RegisterEmptyTypeName(t *testing.T) {
	r := New()
	require.Error(t, r.Register(&schema.Meta{}))
}

func TestDefault_ReturnsSameInstance(t *testing.T) {
	require.Same(t, Default(), Default())
}
