package dto

import (
	"github.com/sousouindustries/amqptype/factory"
	"github.com/sousouindustries/amqptype/value"
)

// Builder is syntactic sugar for constructing a Composite by name,
// deferring the registry lookup and field validation to a Factory.
// Ported from original_source/amqp/dto.py's DataTransferObject: params
// may nest further Builders, which are resolved depth-first before the
// outer type is built (spec §5.4).
type Builder struct {
	typeName string
	params   map[string]any
}

// New creates a Builder for typeName with the given field parameters. A
// parameter value that is itself a *Builder is resolved recursively by
// Build.
func New(typeName string, params map[string]any) *Builder {
	return &Builder{typeName: typeName, params: params}
}

// Factory returns a partially-applied Builder constructor bound to
// typeName, mirroring DataTransferObject.factory's functools.partial.
func Factory(typeName string) func(params map[string]any) *Builder {
	return func(params map[string]any) *Builder {
		return New(typeName, params)
	}
}

// Build resolves b against f: every nested *Builder parameter is built
// first, then the flattened parameter map is handed to
// f.Create(b.typeName, ...).
func (b *Builder) Build(f *factory.Factory) (value.Value, error) {
	resolved := make(map[string]any, len(b.params))
	for key, p := range b.params {
		if nested, ok := p.(*Builder); ok {
			v, err := nested.Build(f)
			if err != nil {
				return nil, err
			}
			resolved[key] = v
			continue
		}
		resolved[key] = p
	}
	return f.Create(b.typeName, resolved)
}
