package factory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sousouindustries/amqptype/errs"
	"github.com/sousouindustries/amqptype/registry"
	"github.com/sousouindustries/amqptype/schema"
	"github.com/sousouindustries/amqptype/value"
)

func mustRegisterPrimitive(t *testing.T, reg *registry.Registry, name string) *schema.Meta {
	m := schema.Create(name, schema.ClassPrimitive, name)
	require.NoError(t, reg.Register(m))
	return m
}

func TestFactory_Create_ScalarCoercion(t *testing.T) {
	reg := registry.New()
	mustRegisterPrimitive(t, reg, "ubyte")

	f := New(reg)
	v, err := f.Create("ubyte", uint64(7))
	require.NoError(t, err)
	s, ok := v.(*value.Scalar)
	require.True(t, ok)
	require.Equal(t, uint64(7), s.Payload())
}

func TestFactory_BuildComposite_EndToEnd(t *testing.T) {
	reg := registry.New()
	mustRegisterPrimitive(t, reg, "ubyte")

	composite := schema.Create("one-test-list", schema.ClassComposite, "list")
	composite.Descriptor = &schema.Descriptor{Symbolic: "one.test:list", HasSymbolic: true}
	composite.Fields = []schema.Field{
		{Name: "fixed", TypeName: "ubyte", Mandatory: true},
	}
	require.NoError(t, reg.Register(composite))

	f := New(reg)
	c, err := f.BuildComposite(composite, map[string]any{"fixed": uint64(1)})
	require.NoError(t, err)

	got, ok := c.Field("fixed")
	require.True(t, ok)
	s, ok := got.(*value.Scalar)
	require.True(t, ok)
	require.Equal(t, uint64(1), s.Payload())
}

func TestFactory_RequiredFieldMissing(t *testing.T) {
	reg := registry.New()
	mustRegisterPrimitive(t, reg, "ubyte")

	composite := schema.Create("fixture", schema.ClassComposite, "list")
	composite.Fields = []schema.Field{
		{Name: "fixed-mandatory", TypeName: "ubyte", Mandatory: true},
	}
	require.NoError(t, reg.Register(composite))

	f := New(reg)
	_, err := f.BuildComposite(composite, map[string]any{})

	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, errs.KindRequired, verr.Kind)
}

func TestFactory_MultipleField_MixedTypes_Polymorphic(t *testing.T) {
	reg := registry.New()
	mustRegisterPrimitive(t, reg, "ubyte")

	composite := schema.Create("fixture", schema.ClassComposite, "list")
	composite.Fields = []schema.Field{
		{Name: "items", TypeName: "ubyte", Multiple: true},
	}
	require.NoError(t, reg.Register(composite))

	f := New(reg)
	_, err := f.BuildComposite(composite, map[string]any{
		"items": []any{uint64(1), "foo"},
	})

	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, errs.KindPolymorphic, verr.Kind)
}

func TestFactory_PolymorphicField_NotSatisfied(t *testing.T) {
	reg := registry.New()
	mustRegisterPrimitive(t, reg, "uint")

	restricted := schema.Create("R", schema.ClassRestricted, "uint")
	restricted.Provides = []string{"provider1"}
	require.NoError(t, reg.Register(restricted))

	composite := schema.Create("fixture", schema.ClassComposite, "list")
	composite.Fields = []schema.Field{
		{Name: "star", TypeName: "*", Requires: []string{"provider1"}},
	}
	require.NoError(t, reg.Register(composite))

	f := New(reg)
	_, err := f.BuildComposite(composite, map[string]any{
		"star": Typed{TypeName: "uint", Value: uint64(1)},
	})

	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, errs.KindNotSatisfied, verr.Kind)
}

func TestFactory_PolymorphicField_Satisfied(t *testing.T) {
	reg := registry.New()
	mustRegisterPrimitive(t, reg, "uint")

	restricted := schema.Create("R", schema.ClassRestricted, "uint")
	restricted.Provides = []string{"provider1"}
	require.NoError(t, reg.Register(restricted))

	composite := schema.Create("fixture", schema.ClassComposite, "list")
	composite.Fields = []schema.Field{
		{Name: "star", TypeName: "*", Requires: []string{"provider1"}},
	}
	require.NoError(t, reg.Register(composite))

	f := New(reg)
	c, err := f.BuildComposite(composite, map[string]any{
		"star": Typed{TypeName: "R", Value: uint64(9)},
	})
	require.NoError(t, err)

	got, ok := c.Field("star")
	require.True(t, ok)
	r, ok := got.(*value.Restricted)
	require.True(t, ok)
	require.Same(t, restricted, r.Meta())
}

func TestFactory_RestrictedChoice_Invalid(t *testing.T) {
	reg := registry.New()
	mustRegisterPrimitive(t, reg, "ubyte")

	restricted := schema.Create("role", schema.ClassRestricted, "ubyte")
	restricted.SetChoices([]schema.Choice{
		{Name: "sender", Raw: uint64(0)},
		{Name: "receiver", Raw: uint64(1)},
	})
	require.NoError(t, reg.Register(restricted))

	f := New(reg)
	_, err := f.Create("role", "observer")

	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, errs.KindInvalid, verr.Kind)
}

func TestFactory_RestrictedChoice_Valid(t *testing.T) {
	reg := registry.New()
	mustRegisterPrimitive(t, reg, "ubyte")

	restricted := schema.Create("role", schema.ClassRestricted, "ubyte")
	restricted.SetChoices([]schema.Choice{
		{Name: "sender", Raw: uint64(0)},
		{Name: "receiver", Raw: uint64(1)},
	})
	require.NoError(t, reg.Register(restricted))

	f := New(reg)
	v, err := f.Create("role", "receiver")
	require.NoError(t, err)

	r, ok := v.(*value.Restricted)
	require.True(t, ok)
	s, ok := r.Inner().(*value.Scalar)
	require.True(t, ok)
	require.Equal(t, uint64(1), s.Payload())
}

func TestFactory_BuildComposite_ExtraFieldRemaining(t *testing.T) {
	reg := registry.New()
	mustRegisterPrimitive(t, reg, "ubyte")

	composite := schema.Create("fixture", schema.ClassComposite, "list")
	composite.Fields = []schema.Field{
		{Name: "fixed", TypeName: "ubyte"},
	}
	require.NoError(t, reg.Register(composite))

	f := New(reg)
	_, err := f.BuildComposite(composite, map[string]any{
		"fixed":   uint64(1),
		"extra":   uint64(2),
		"another": uint64(3),
	})
	require.True(t, errors.Is(err, errs.ErrFieldsRemaining))
}

func TestFactory_WithCoercer_OverridesBuiltinTable(t *testing.T) {
	reg := registry.New()
	mustRegisterPrimitive(t, reg, "decimal32")

	f := New(reg, WithCoercer("decimal32", func(input any) (*value.Scalar, error) {
		return value.NewScalar("decimal32", input), nil
	}))

	v, err := f.Create("decimal32", uint32(12345))
	require.NoError(t, err)
	s, ok := v.(*value.Scalar)
	require.True(t, ok)
	require.Equal(t, uint32(12345), s.Payload())
}

func TestCreateDescriptor(t *testing.T) {
	symbolic := schema.Create("with-symbolic", schema.ClassComposite, "list")
	symbolic.Descriptor = &schema.Descriptor{Symbolic: "x:y", HasSymbolic: true}
	d, ok := CreateDescriptor(symbolic)
	require.True(t, ok)
	require.Equal(t, "symbol", d.Source())
	require.Equal(t, "x:y", d.Payload())

	numericOnly := schema.Create("with-numeric", schema.ClassComposite, "list")
	numericOnly.Descriptor = &schema.Descriptor{Numeric: 42, HasNumeric: true}
	d, ok = CreateDescriptor(numericOnly)
	require.True(t, ok)
	require.Equal(t, "ulong", d.Source())
	require.Equal(t, uint64(42), d.Payload())

	none := schema.Create("bare", schema.ClassComposite, "list")
	_, ok = CreateDescriptor(none)
	require.False(t, ok)
}
