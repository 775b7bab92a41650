// Package factory builds value.Value instances from raw Go-native input
// by consulting a registry.Registry's schema.Meta records (spec §4.6
// "Meta / Field construction and validation"). It is the bridge between
// the value-agnostic schema package and the value package's tagged
// variants, kept as its own package so neither schema nor value needs to
// import the other.
package factory

import (
	"github.com/sousouindustries/amqptype/errs"
	"github.com/sousouindustries/amqptype/internal/options"
	"github.com/sousouindustries/amqptype/registry"
	"github.com/sousouindustries/amqptype/schema"
	"github.com/sousouindustries/amqptype/value"
)

// Typed represents the "(type-name, value)" pair the source accepts at a
// polymorphic "*" field when the caller has not already built a
// value.Value (spec §4.6 step 2).
type Typed struct {
	TypeName string
	Value    any
}

// Factory builds value.Value instances against a fixed Registry.
type Factory struct {
	reg      *registry.Registry
	coercers map[string]func(any) (*value.Scalar, error)
}

// New creates a Factory consulting reg for type lookups, applying any
// Option (e.g. WithCoercer) in order.
func New(reg *registry.Registry, opts ...Option) *Factory {
	f := &Factory{reg: reg}
	// Option.apply never fails (every Option here is built via
	// options.NoError), so the error return of Apply cannot fire.
	_ = options.Apply(f, opts...)
	return f
}

// Create resolves typeName in the registry and builds a value from input
// (spec §4.6 "Meta.create(input)").
func (f *Factory) Create(typeName string, input any) (value.Value, error) {
	meta, ok := f.reg.ByTypeName(typeName)
	if !ok {
		return nil, errs.NewTypeError("no registered type named %q", typeName)
	}
	return f.CreateFromMeta(meta, input)
}

// CreateFromMeta builds a value from input using an already-resolved Meta,
// branching on its type class.
func (f *Factory) CreateFromMeta(meta *schema.Meta, input any) (value.Value, error) {
	switch meta.TypeClass {
	case schema.ClassPrimitive:
		return f.createPrimitive(meta, input)
	case schema.ClassRestricted:
		return f.createRestricted(meta, input)
	case schema.ClassComposite:
		return f.BuildComposite(meta, input)
	default:
		return nil, errs.NewTypeError("type %q has an unknown type class", meta.TypeName)
	}
}

// createPrimitive coerces input per the primitive coercion table (spec
// §4.8), or — when meta.Source names a collection subcategory — builds
// the matching container directly from an already-built member slice.
// Building heterogeneous list/map/array primitives from raw Go-native
// members is not exercised by any spec §8 property; only the pre-built
// shape is supported here, matching the scope limitation already applied
// to the encoder's array support.
func (f *Factory) createPrimitive(meta *schema.Meta, input any) (value.Value, error) {
	switch meta.Source {
	case "list":
		members, ok := input.([]value.Value)
		if !ok {
			return nil, errs.NewTypeError("primitive list requires []value.Value members, got %T", input)
		}
		l := value.NewList()
		for _, m := range members {
			l.Append(m)
		}
		return l, nil

	case "map":
		entries, ok := input.([]value.Value)
		if !ok {
			return nil, errs.NewTypeError("primitive map requires alternating []value.Value entries, got %T", input)
		}
		m := value.NewMap()
		for i := 0; i+1 < len(entries); i += 2 {
			m.Put(entries[i], entries[i+1])
		}
		return m, nil

	case "array":
		members, ok := input.([]value.Value)
		if !ok {
			return nil, errs.NewTypeError("primitive array requires []value.Value members, got %T", input)
		}
		if len(members) == 0 {
			return nil, errs.NewTypeError("primitive array requires a declared member source; build an empty value.Array directly instead")
		}
		arr := value.NewArray(members[0].Source())
		for _, m := range members {
			if err := arr.Append(m); err != nil {
				return nil, err
			}
		}
		return arr, nil

	default:
		if fn, ok := f.coercers[meta.Source]; ok {
			return fn(input)
		}
		return coerceScalar(meta.Source, input)
	}
}

// createRestricted implements spec §4.6's restricted branch: convert a
// choice name to its raw value if meta declares choices, delegate to the
// source type's Meta to build the inner scalar, then wrap.
func (f *Factory) createRestricted(meta *schema.Meta, input any) (value.Value, error) {
	raw, err := f.convertChoice(meta, input)
	if err != nil {
		return nil, err
	}

	source, ok := f.reg.ByTypeName(meta.Source)
	if !ok {
		return nil, errs.NewTypeError("restricted type %q names unregistered source type %q", meta.TypeName, meta.Source)
	}

	inner, err := f.CreateFromMeta(source, raw)
	if err != nil {
		return nil, err
	}

	return value.NewRestricted(meta, inner), nil
}

// convertChoice resolves input against meta's enumerated choices (spec
// §4.6 "if choices is non-empty and input is not already a raw choice
// value, look up the name"). A value already present among the raw
// choice values passes through unchanged.
func (f *Factory) convertChoice(meta *schema.Meta, input any) (any, error) {
	if len(meta.Choices) == 0 {
		return input, nil
	}

	for _, c := range meta.Choices {
		if c.Raw == input {
			return input, nil
		}
	}

	name, ok := input.(string)
	if !ok {
		return nil, errs.NewValidationError(errs.KindInvalid, meta.TypeName, "value %v is neither a declared choice name nor a raw choice value", input)
	}

	raw, ok := meta.Choice(name)
	if !ok {
		return nil, errs.NewValidationError(errs.KindInvalid, meta.TypeName, "%q is not a declared choice", name)
	}
	return raw, nil
}

// CreateDescriptor builds the Scalar representing meta's own descriptor
// (spec §4.6 "Meta.create_descriptor()"): the symbolic form as a symbol
// when present, else the numeric form as a ulong. Returns false if meta
// carries no descriptor.
func CreateDescriptor(meta *schema.Meta) (*value.Scalar, bool) {
	if meta.Descriptor == nil {
		return nil, false
	}
	if meta.Descriptor.HasSymbolic {
		return value.NewScalar("symbol", meta.Descriptor.Symbolic), true
	}
	if meta.Descriptor.HasNumeric {
		return value.NewScalar("ulong", meta.Descriptor.Numeric), true
	}
	return nil, false
}
