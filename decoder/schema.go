package decoder

import (
	"github.com/sousouindustries/amqptype/errs"
	"github.com/sousouindustries/amqptype/factory"
	"github.com/sousouindustries/amqptype/registry"
	"github.com/sousouindustries/amqptype/schema"
	"github.com/sousouindustries/amqptype/stream"
	"github.com/sousouindustries/amqptype/value"
)

// DecodeSchema walks node the same way DecodeRaw does, but for each node
// consults reg using descriptor-first lookup (spec §4.5 "Schema
// decoder"): numeric descriptor first, then symbolic, then format code.
// The resolved Meta expands a composite's child list into named fields
// (via factory.BuildComposite) and wraps a restricted type's underlying
// scalar. An unregistered descriptor or format code fails with a decode
// error naming the unresolved identifier.
func DecodeSchema(node *stream.Node, data []byte, reg *registry.Registry) (value.Value, error) {
	meta, ok := resolveMeta(node, reg)
	if !ok {
		return nil, unresolvedDecodeError(node)
	}

	switch meta.TypeClass {
	case schema.ClassComposite:
		return decodeSchemaComposite(node, data, meta, reg)
	case schema.ClassRestricted:
		return decodeSchemaRestricted(node, data, meta)
	default:
		// A registered primitive carries no construction beyond the raw
		// decode; DecodeRaw already produces the matching Scalar/List/
		// Map/Array variant.
		return DecodeRaw(node, data)
	}
}

// resolveMeta implements spec §4.5's descriptor-first lookup order:
// numeric descriptor, then symbolic descriptor, then format code.
func resolveMeta(node *stream.Node, reg *registry.Registry) (*schema.Meta, bool) {
	if desc := node.Descriptor(); desc != nil {
		if desc.HasNumeric {
			if m, ok := reg.ByDescriptor(&schema.Descriptor{Numeric: desc.Numeric, HasNumeric: true}); ok {
				return m, true
			}
		}
		if desc.HasSymbolic {
			if m, ok := reg.ByDescriptor(&schema.Descriptor{Symbolic: desc.Symbolic, HasSymbolic: true}); ok {
				return m, true
			}
		}
	}
	return reg.ByFormatCode(node.FormatCode())
}

func unresolvedDecodeError(node *stream.Node) error {
	if desc := node.Descriptor(); desc != nil {
		if desc.HasSymbolic {
			return errs.NewDecodeError("no registered type for descriptor %q", desc.Symbolic)
		}
		if desc.HasNumeric {
			return errs.NewDecodeError("no registered type for descriptor 0x%016X", desc.Numeric)
		}
	}
	return errs.NewDecodeErrorCode(uint8(node.FormatCode()), "no registered type for format code")
}

func decodeSchemaComposite(node *stream.Node, data []byte, meta *schema.Meta, reg *registry.Registry) (value.Value, error) {
	fields := make([]value.Value, len(node.Children))
	for i, child := range node.Children {
		v, err := DecodeSchema(child, data, reg)
		if err != nil {
			return nil, err
		}
		fields[i] = v
	}

	return factory.New(reg).BuildComposite(meta, fields)
}

// decodeSchemaRestricted decodes node's wire bytes as meta's underlying
// primitive (a restricted type contributes a descriptor but no encoding
// of its own, spec §4.4 "Restricted") and wraps the result.
func decodeSchemaRestricted(node *stream.Node, data []byte, meta *schema.Meta) (value.Value, error) {
	inner, err := DecodeRaw(node, data)
	if err != nil {
		return nil, err
	}
	if n, ok := inner.(interface{ SetDescriptor(*schema.Descriptor) }); ok {
		n.SetDescriptor(nil)
	}

	return value.NewRestricted(meta, inner), nil
}
