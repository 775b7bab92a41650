package registry

import (
	"github.com/sousouindustries/amqptype/format"
	"github.com/sousouindustries/amqptype/internal/options"
	"github.com/sousouindustries/amqptype/schema"
)

// Option configures a Registry at construction, following the same
// generic functional-option shape the teacher's blob encoders use for
// their own construction-time configuration.
type Option = options.Option[*Registry]

// WithCapacity pre-sizes every index map to n entries, avoiding rehashing
// when the caller already knows roughly how many types a schema document
// will register.
func WithCapacity(n int) Option {
	return options.NoError(func(r *Registry) {
		r.byTypeName = make(map[uint64]*schema.Meta, n)
		r.byCode = make(map[format.Code]*schema.Meta, n)
		r.bySymbolic = make(map[uint64]*schema.Meta, n)
		r.byNumeric = make(map[uint64]*schema.Meta, n)
	})
}
