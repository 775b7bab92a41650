package factory

import (
	"github.com/sousouindustries/amqptype/internal/options"
	"github.com/sousouindustries/amqptype/value"
)

// Option configures a Factory at construction.
type Option = options.Option[*Factory]

// WithCoercer installs a coercion function for a primitive source name,
// taking priority over the built-in table (spec §4.8 "Coercion table").
// Use this to support a primitive the built-in table does not cover
// (e.g. the decimal family, out of scope per the Non-goals) without
// forking coerceScalar.
func WithCoercer(source string, fn func(any) (*value.Scalar, error)) Option {
	return options.NoError(func(f *Factory) {
		if f.coercers == nil {
			f.coercers = make(map[string]func(any) (*value.Scalar, error))
		}
		f.coercers[source] = fn
	})
}
