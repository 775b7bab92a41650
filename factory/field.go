package factory

import (
	"fmt"
	"reflect"

	"github.com/sousouindustries/amqptype/errs"
	"github.com/sousouindustries/amqptype/schema"
	"github.com/sousouindustries/amqptype/value"
)

// hasMeta is satisfied by value.Composite and value.Restricted, the only
// two value types a "*" field may reference (spec §9 "Polymorphic *
// fields" — the variant itself carries its Meta).
type hasMeta interface {
	Meta() *schema.Meta
}

// BuildComposite implements spec §4.6's Composite.frommeta: fields is
// either an ordered []value.Value (the decode shape) or a
// map[string]any (the construction shape). Each schema field is resolved
// in declaration order and passed through cleanField; extra keys left
// over in a mapping input are a type error.
func (f *Factory) BuildComposite(meta *schema.Meta, fields any) (*value.Composite, error) {
	switch in := fields.(type) {
	case []value.Value:
		if len(in) > len(meta.Fields) {
			return nil, fmt.Errorf("%w: %w", errs.NewTypeError("%d extra value(s)", len(in)-len(meta.Fields)), errs.ErrFieldsRemaining)
		}
		built := make([]value.Value, len(meta.Fields))
		for i, fld := range meta.Fields {
			var raw any
			if i < len(in) {
				raw = in[i]
			}
			v, err := f.cleanField(fld, raw)
			if err != nil {
				return nil, err
			}
			built[i] = v
		}
		return value.NewComposite(meta, built), nil

	case map[string]any:
		remaining := make(map[string]any, len(in))
		for k, v := range in {
			remaining[k] = v
		}

		built := make([]value.Value, len(meta.Fields))
		for i, fld := range meta.Fields {
			raw, ok := remaining[fld.Name]
			if ok {
				delete(remaining, fld.Name)
			}
			v, err := f.cleanField(fld, raw)
			if err != nil {
				return nil, err
			}
			built[i] = v
		}

		if len(remaining) > 0 {
			return nil, fmt.Errorf("%w: %w", errs.NewTypeError("%v", keysOf(remaining)), errs.ErrFieldsRemaining)
		}

		return value.NewComposite(meta, built), nil

	default:
		return nil, errs.NewTypeError("composite fields must be an ordered []value.Value or a map[string]any, got %T", fields)
	}
}

func keysOf(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// cleanField implements spec §4.6's Field.clean algorithm.
func (f *Factory) cleanField(field schema.Field, input any) (value.Value, error) {
	// Step 1: absent or null input.
	if isAbsent(input) {
		if field.Mandatory {
			return nil, errs.NewValidationError(errs.KindRequired, field.Name, "mandatory field is absent")
		}
		return value.NewNull(), nil
	}

	// Step 2: polymorphic "*" field.
	if field.IsPolymorphic() {
		return f.cleanPolymorphic(field, input)
	}

	// Step 3: resolve the declared type.
	meta, ok := f.reg.ByTypeName(field.TypeName)
	if !ok {
		return nil, errs.NewTypeError("field %q names unregistered type %q", field.Name, field.TypeName)
	}

	// Step 4: multiple, non-polymorphic field.
	if field.Multiple {
		return f.cleanMultiple(meta, field.Name, field.Requires, input)
	}

	// Step 5: already-built value passes through; otherwise create it.
	if v, ok := input.(value.Value); ok {
		return v, nil
	}
	return f.CreateFromMeta(meta, input)
}

func isAbsent(input any) bool {
	if input == nil {
		return true
	}
	_, isNull := input.(*value.Null)
	return isNull
}

func (f *Factory) cleanPolymorphic(field schema.Field, input any) (value.Value, error) {
	var built value.Value

	switch v := input.(type) {
	case value.Value:
		built = v

	case Typed:
		meta, ok := f.reg.ByTypeName(v.TypeName)
		if !ok {
			return nil, errs.NewTypeError("polymorphic field %q names unregistered type %q", field.Name, v.TypeName)
		}
		if field.Multiple {
			arr, err := f.cleanMultiple(meta, field.Name, field.Requires, v.Value)
			if err != nil {
				return nil, err
			}
			built = arr
		} else {
			b, err := f.CreateFromMeta(meta, v.Value)
			if err != nil {
				return nil, err
			}
			built = b
		}

	default:
		return nil, errs.NewTypeError("polymorphic field %q requires an already-built value or a Typed(type-name, value) pair, got %T", field.Name, input)
	}

	if err := f.checkProvides(built, field.Requires); err != nil {
		return nil, err
	}
	return built, nil
}

// checkProvides asserts built satisfies one of requires (spec §4.6
// "assert the produced value's provides intersects this field's
// requires"). An empty Array has no member to inspect and is accepted
// unconditionally, matching the source's clean_provider short-circuit.
func (f *Factory) checkProvides(built value.Value, requires []string) error {
	if a, ok := built.(*value.Array); ok {
		if a.IsEmpty() {
			return nil
		}
		return f.checkProvides(a.Members()[0], requires)
	}

	m, ok := built.(hasMeta)
	if !ok || !m.Meta().Satisfies(requires) {
		return errs.NewValidationError(errs.KindNotSatisfied, "*", "value does not satisfy any of the required archetypes %v", requires)
	}
	return nil
}

// cleanMultiple implements spec §4.6 step 4 and the source's
// clean_multiple: input must be a sequence whose members share one native
// type (else KindPolymorphic), wrapped as a monomorphic Array of meta's
// type.
func (f *Factory) cleanMultiple(meta *schema.Meta, fieldName string, requires []string, input any) (value.Value, error) {
	members, ok := input.([]any)
	if !ok {
		return nil, errs.NewTypeError("field %q with multiple=true requires a []any sequence, got %T", fieldName, input)
	}

	if !homogeneous(members) {
		return nil, errs.NewValidationError(errs.KindPolymorphic, fieldName, "multiple-valued field members must share one native type")
	}

	arr := value.NewArray(meta.TypeName)
	for _, raw := range members {
		built, err := f.CreateFromMeta(meta, raw)
		if err != nil {
			return nil, err
		}
		if err := arr.Append(built); err != nil {
			return nil, err
		}
	}

	return arr, nil
}

// homogeneous reports whether every member of members shares one native
// Go type — or, for already-built values, one Source() — matching the
// source's `len(set(map(type, members))) > 1` check.
func homogeneous(members []any) bool {
	if len(members) < 2 {
		return true
	}

	first := members[0]
	var firstSource string
	if v, ok := first.(value.Value); ok {
		firstSource = v.Source()
	}

	for _, m := range members[1:] {
		if v, ok := m.(value.Value); ok {
			if firstSource == "" || v.Source() != firstSource {
				return false
			}
			continue
		}
		if firstSource != "" {
			return false
		}
		if reflect.TypeOf(m) != reflect.TypeOf(first) {
			return false
		}
	}

	return true
}
