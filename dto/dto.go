// Package dto projects a built value.Value tree into plain Go data —
// maps, slices, and primitives — suitable for JSON encoding or other
// consumption that should not carry the type-system's own shapes.
//
// Ported from original_source/amqp/dto.py and basetypes.py's as_dto
// methods (spec §4.7 "DTO projection").
package dto

import (
	"strings"

	"github.com/sousouindustries/amqptype/value"
)

// Absent is the projection of an AMQP null: a distinct sentinel rather
// than a bare nil, so a caller can tell "field present but empty" apart
// from "Go zero value".
var Absent = struct{ absent bool }{true}

// Record is a Composite's projection: one entry per declared field,
// keyed by its sanitised name.
type Record map[string]any

// Entry is one key/value pair of a Map's projection, preserving wire
// order (a Go map would not).
type Entry struct {
	Key   any
	Value any
}

// sanitizeName replaces '-' and '.' with '_', matching
// schema.Meta.DTOName's field-name sanitisation (spec §4.7 "sanitised
// field names").
func sanitizeName(name string) string {
	if !strings.ContainsAny(name, "-.") {
		return name
	}
	r := strings.NewReplacer("-", "_", ".", "_")
	return r.Replace(name)
}

// AsDTO projects v into plain Go data. The mapping mirrors
// basetypes.py's as_dto family exactly:
//
//   - Null              -> Absent
//   - Scalar            -> its payload
//   - List              -> []any of each member's projection
//   - Array             -> []any of each member's projection
//   - Map               -> []Entry, one per key/value pair, in order
//   - Composite         -> a Record keyed by sanitised field name
//   - Restricted        -> the wrapped value's own projection
func AsDTO(v value.Value) any {
	switch t := v.(type) {
	case nil:
		return Absent
	case *value.Null:
		return Absent
	case *value.Scalar:
		return t.Payload()
	case *value.List:
		return projectSequence(t.Members())
	case *value.Array:
		return projectSequence(t.Members())
	case *value.Map:
		return projectMap(t.Entries())
	case *value.Composite:
		return projectComposite(t)
	case *value.Restricted:
		return AsDTO(t.Inner())
	default:
		return Absent
	}
}

func projectSequence(members []value.Value) []any {
	out := make([]any, len(members))
	for i, m := range members {
		out[i] = AsDTO(m)
	}
	return out
}

func projectMap(entries []value.Value) []Entry {
	out := make([]Entry, 0, len(entries)/2)
	for i := 0; i+1 < len(entries); i += 2 {
		out = append(out, Entry{Key: AsDTO(entries[i]), Value: AsDTO(entries[i+1])})
	}
	return out
}

func projectComposite(c *value.Composite) Record {
	meta := c.Meta()
	fields := c.Fields()
	rec := make(Record, len(meta.Fields))
	for i, f := range meta.Fields {
		if i >= len(fields) {
			break
		}
		rec[sanitizeName(f.Name)] = AsDTO(fields[i])
	}
	return rec
}
