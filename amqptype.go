// Package amqptype implements the AMQP 1.0 type-system binary codec: the
// wire encoding described by the OASIS AMQP 1.0 specification's §1.6 and
// §3, independent of any transport, session, or messaging layer built on
// top of it.
//
// # Core features
//
//   - A tagged-variant value tree (Null, Scalar, List, Map, Array,
//     Composite, Restricted) that mirrors the wire type system exactly
//   - A schema-agnostic codec (Encode / ParseBuffer / DecodeRaw) that
//     round-trips any well-formed buffer without a registered schema
//   - A schema-aware codec (DecodeSchema, factory.Factory) that expands
//     composite and restricted types into named, validated values once a
//     type-system XML document has been loaded
//   - DTO projection (dto.AsDTO) for consuming decoded values as plain
//     Go data, and dto.Builder for constructing composites by name
//
// # Basic usage
//
//	reg, err := amqptype.LoadSchemaXML(amqpXML)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	f := amqptype.CreateFactory(reg)
//	open, err := f.Create("open", map[string]any{
//	    "container-id":   "peer-1",
//	    "max-frame-size": uint64(4096),
//	})
//
//	encoded, err := amqptype.Encode(open)
//
//	node, err := amqptype.ParseBuffer(encoded)
//	decoded, err := amqptype.DecodeSchema(node, encoded, reg)
//
// # Package structure
//
// This package provides convenient top-level wrappers around the
// registry, schema, factory, encoder, decoder, and stream packages. For
// advanced usage — custom registries, direct schema.Meta construction,
// or schema-agnostic decoding — use those packages directly.
package amqptype

import (
	"github.com/sousouindustries/amqptype/decoder"
	"github.com/sousouindustries/amqptype/encoder"
	"github.com/sousouindustries/amqptype/factory"
	"github.com/sousouindustries/amqptype/registry"
	"github.com/sousouindustries/amqptype/schema"
	"github.com/sousouindustries/amqptype/stream"
	"github.com/sousouindustries/amqptype/value"
)

// LoadSchemaXML parses an AMQP type-system XML document (spec §6
// "Schema XML") and registers every declared type into a fresh Registry.
//
// Example:
//
//	reg, err := amqptype.LoadSchemaXML(document)
func LoadSchemaXML(document string) (*registry.Registry, error) {
	metas, err := schema.LoadXML(document)
	if err != nil {
		return nil, err
	}

	reg := registry.New()
	for _, m := range metas {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// RegisterSchemaXML parses document and registers every declared type
// into the given, already-constructed Registry. Use this to layer
// several XML documents (e.g. the core transport types plus an
// extension section) into one Registry.
func RegisterSchemaXML(reg *registry.Registry, document string) error {
	metas, err := schema.LoadXML(document)
	if err != nil {
		return err
	}
	for _, m := range metas {
		if err := reg.Register(m); err != nil {
			return err
		}
	}
	return nil
}

// CreateFactory returns a Factory bound to reg, the entry point for
// building named values (spec §4.6 "Meta / Field construction and
// validation").
func CreateFactory(reg *registry.Registry) *factory.Factory {
	return factory.New(reg)
}

// Encode serialises v to its AMQP wire bytes (spec §4 "Encoding").
func Encode(v value.Value) ([]byte, error) {
	return encoder.Encode(v)
}

// ParseBuffer walks data and builds the schema-agnostic Node tree for
// the single value it encodes (spec §4.2 "Stream parsing").
func ParseBuffer(data []byte) (*stream.Node, error) {
	return stream.ParseBuffer(data)
}

// DecodeRaw decodes node against data without consulting any registry,
// producing the schema-agnostic Null/Scalar/List/Map/Array shape of the wire value (spec §4.3 "Schema-agnostic decode").
func DecodeRaw(node *stream.Node, data []byte) (value.Value, error) {
	return decoder.DecodeRaw(node, data)
}

// DecodeSchema decodes node against data, consulting reg to expand
// composite and restricted types into named, validated values (spec
// §4.5 "Schema decoder").
func DecodeSchema(node *stream.Node, data []byte, reg *registry.Registry) (value.Value, error) {
	return decoder.DecodeSchema(node, data, reg)
}
