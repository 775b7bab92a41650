// Package value implements the tagged-variant value tree that sits between
// the wire format and the schema engine: Null, Scalar, List, Map, Array,
// Composite, and Restricted.
//
// Re-architecture note (mirrors the constructor/encoder split the teacher
// uses rather than a visitor): the encoder type-switches over these
// concrete types instead of each type accepting an encoder/decoder
// visitor. No Value implementation ever calls back into encoder or
// decoder code.
package value

import "github.com/sousouindustries/amqptype/schema"

// Value is the common interface every tagged variant implements.
type Value interface {
	// Source names the value's primitive/list/map/array/composite/
	// restricted kind (e.g. "ubyte", "list", "array").
	Source() string
	// Descriptor returns the value's descriptor, or nil if undescribed.
	Descriptor() *schema.Descriptor
	// InArray reports whether this value is a member of an Array, in
	// which case the encoder omits its own constructor.
	InArray() bool
	// IsEmpty reports whether the value is empty: true for a scalar Null,
	// and for collections iff their member count is zero. A Composite is
	// never reported empty regardless of field contents.
	IsEmpty() bool
}

// arrayMember is satisfied by every concrete type in this package via the
// embedded base; it lets Array.Append mark a member in-array without
// widening the public Value interface.
type arrayMember interface {
	Value
	setInArray(bool)
}

// base holds the state every concrete value carries: an optional
// descriptor and the in-array flag.
type base struct {
	descriptor *schema.Descriptor
	inArray    bool
}

func (b *base) Descriptor() *schema.Descriptor { return b.descriptor }
func (b *base) InArray() bool                  { return b.inArray }
func (b *base) setInArray(v bool)              { b.inArray = v }

// SetDescriptor attaches d to the value. Used by NewComposite and
// NewRestricted to apply their Meta's descriptor, and by the decoders.
func (b *base) SetDescriptor(d *schema.Descriptor) { b.descriptor = d }
