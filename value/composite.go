package value

import "github.com/sousouindustries/amqptype/schema"

// Composite is a named, list-shaped value: exactly one slot per
// schema-declared field, in declaration order. Absent optional fields
// hold a Null (invariant (ii), spec §3.2).
//
// Re-architecture note (spec §9 "Polymorphic * fields"): Composite holds
// its Meta directly rather than a bare type name, so a "*" field's
// Provides/Requires check never needs a registry round-trip.
type Composite struct {
	base
	meta   *schema.Meta
	fields []Value
}

var _ Value = (*Composite)(nil)

// NewComposite creates a Composite for meta with fields already resolved
// in declaration order (one entry per meta.Fields). The factory package
// is the only expected caller; fields is taken as given, not re-validated
// here.
func NewComposite(meta *schema.Meta, fields []Value) *Composite {
	c := &Composite{meta: meta, fields: fields}
	c.SetDescriptor(meta.Descriptor)
	return c
}

func (c *Composite) Source() string { return "list" }

// Meta returns the schema record this composite was built from.
func (c *Composite) Meta() *schema.Meta { return c.meta }

// Fields returns the field values in declaration order. The returned
// slice must not be mutated by the caller.
func (c *Composite) Fields() []Value { return c.fields }

// Field looks up a field value by its declared name.
func (c *Composite) Field(name string) (Value, bool) {
	for i, f := range c.meta.Fields {
		if f.Name == name {
			return c.fields[i], true
		}
	}
	return nil, false
}

// IsEmpty is always false for a Composite (invariant (iv), spec §3.2):
// even a composite whose every field is absent is a distinct value from
// AMQP null.
func (c *Composite) IsEmpty() bool { return false }
