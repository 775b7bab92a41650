// Package schema declares the metadata records produced by loading an AMQP
// type-system XML document: Meta describes one named type (primitive,
// composite, or restricted), and Field describes one slot of a composite.
//
// This package is deliberately value-agnostic: it knows nothing about the
// value package's tagged variants. The factory package bridges the two,
// consulting a Meta to build a concrete value.Value. Keeping Meta free of
// that dependency is what lets value.Composite hold a *schema.Meta
// reference without an import cycle.
package schema

import "github.com/sousouindustries/amqptype/format"

// Class identifies which of the three AMQP type-system kinds a Meta
// describes.
type Class uint8

const (
	// ClassPrimitive is a built-in AMQP type (e.g. ubyte, string).
	ClassPrimitive Class = iota
	// ClassComposite is a named, list-shaped type with declared fields.
	ClassComposite
	// ClassRestricted is a named scalar type layered over a primitive or
	// another restricted type, optionally with enumerated choices.
	ClassRestricted
)

func (c Class) String() string {
	switch c {
	case ClassPrimitive:
		return "primitive"
	case ClassComposite:
		return "composite"
	case ClassRestricted:
		return "restricted"
	default:
		return "unknown"
	}
}

// Descriptor tags a composite or restricted type. A type may carry a
// symbolic name, a packed numeric id, both, or neither.
type Descriptor struct {
	Symbolic    string
	Numeric     uint64
	HasSymbolic bool
	HasNumeric  bool
}

// Equal reports whether d and other identify the same descriptor. Two nil
// descriptors are equal; a nil and a non-nil descriptor are not.
func (d *Descriptor) Equal(other *Descriptor) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.HasSymbolic == other.HasSymbolic && d.Symbolic == other.Symbolic &&
		d.HasNumeric == other.HasNumeric && d.Numeric == other.Numeric
}

// PackNumeric combines an XML descriptor's "domain:id" hex halves into the
// single 64-bit numeric form used on the wire and in the registry's numeric
// index.
func PackNumeric(domain, id uint32) uint64 {
	return (uint64(domain) << 32) | uint64(id)
}

// Encoding is one (category, format-code, width) entry of a primitive
// Meta's wire representation.
type Encoding struct {
	Name     string
	Category format.Category
	Code     format.Code
	Width    int
}

// Choice is one named value of a restricted type's enumeration, in
// declaration order.
type Choice struct {
	Name string
	Raw  any
}

// Field describes one declared slot of a composite type.
type Field struct {
	Name     string
	TypeName string // a registered type name, or "*" for polymorphic
	Requires []string
	Mandatory bool
	Multiple  bool

	// RawDefault is the XML "default" attribute, recorded verbatim.
	//
	// original_source/amqp/typesystem/field.py parses this attribute but
	// never applies it to an absent optional field — Field.clean resolves
	// a missing optional value to Null regardless of RawDefault. That
	// incompleteness is carried forward deliberately (see DESIGN.md); this
	// field exists so a caller can inspect the declared default without
	// this package silently fabricating different behaviour.
	RawDefault    string
	HasRawDefault bool
}

// IsPolymorphic reports whether f accepts any type satisfying Requires,
// rather than a single declared type.
func (f Field) IsPolymorphic() bool {
	return f.TypeName == "*"
}

// Meta describes one named AMQP type as loaded from a schema document.
type Meta struct {
	TypeName string
	TypeClass Class

	// Source is the subcategory name for primitives ("list", "map",
	// "array", or the type's own name), the underlying type name for
	// restricted types, or "list" for composites.
	Source string

	Provides   []string
	Descriptor *Descriptor

	Fields    []Field
	Choices   []Choice
	Encodings []Encoding

	choiceByName map[string]any
	nameByChoice map[any]string
}

// Create builds a Meta. Choices, once set on the returned Meta via
// SetChoices, populate both the forward (name -> raw) and reverse
// (raw -> name) lookup indices used by Choice and ChoiceName.
func Create(typeName string, class Class, source string) *Meta {
	return &Meta{
		TypeName:  typeName,
		TypeClass: class,
		Source:    source,
	}
}

// SetChoices installs m's enumerated choices and builds both lookup
// directions. Called once by the schema loader after parsing every
// <choice> child of a <type> definition.
func (m *Meta) SetChoices(choices []Choice) {
	m.Choices = choices
	m.choiceByName = make(map[string]any, len(choices))
	m.nameByChoice = make(map[any]string, len(choices))
	for _, c := range choices {
		m.choiceByName[c.Name] = c.Raw
		m.nameByChoice[c.Raw] = c.Name
	}
}

// Choice resolves a choice name to its raw primitive value.
func (m *Meta) Choice(name string) (any, bool) {
	raw, ok := m.choiceByName[name]
	return raw, ok
}

// ChoiceName resolves a raw primitive value back to its choice name.
//
// The original implementation only converts name -> raw on construction;
// the reverse direction was an open question (spec §9 "Choice
// bi-directionality") resolved here in favour of implementing it, since
// Meta already holds choices as an ordered set and the reverse index costs
// one extra map with no architectural risk.
func (m *Meta) ChoiceName(raw any) (string, bool) {
	name, ok := m.nameByChoice[raw]
	return name, ok
}

// Provider reports whether m declares archetype name among its Provides.
func (m *Meta) Provider(name string) bool {
	for _, p := range m.Provides {
		if p == name {
			return true
		}
	}
	return false
}

// Satisfies reports whether any entry of m.Provides appears in requires.
// Used to validate a value offered to a polymorphic "*" field.
func (m *Meta) Satisfies(requires []string) bool {
	for _, r := range requires {
		if m.Provider(r) {
			return true
		}
	}
	return false
}

// DTOName returns m's data-transfer-object field/record name: TypeName
// with '-' and '.' replaced by '_'.
//
// Ported from original_source/amqp/typesystem/meta.py's
// dto_class = namedtuple(name.replace('-', '_').replace('.', '_'), ...).
func (m *Meta) DTOName() string {
	out := make([]byte, len(m.TypeName))
	for i := 0; i < len(m.TypeName); i++ {
		switch m.TypeName[i] {
		case '-', '.':
			out[i] = '_'
		default:
			out[i] = m.TypeName[i]
		}
	}
	return string(out)
}
