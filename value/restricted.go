package value

import "github.com/sousouindustries/amqptype/schema"

// Restricted is a named scalar layered over a primitive or another
// restricted type, optionally constrained to an enumerated set of
// choices. Its descriptor is always that of its Meta (invariant (iii),
// spec §3.2).
type Restricted struct {
	base
	meta  *schema.Meta
	inner Value
}

var _ Value = (*Restricted)(nil)

// NewRestricted creates a Restricted for meta wrapping the already-built
// inner scalar value.
func NewRestricted(meta *schema.Meta, inner Value) *Restricted {
	r := &Restricted{meta: meta, inner: inner}
	r.SetDescriptor(meta.Descriptor)
	return r
}

func (r *Restricted) Source() string { return r.meta.TypeName }

// Meta returns the schema record this value was built from.
func (r *Restricted) Meta() *schema.Meta { return r.meta }

// Inner returns the wrapped scalar value.
func (r *Restricted) Inner() Value { return r.inner }

func (r *Restricted) IsEmpty() bool { return r.inner.IsEmpty() }
