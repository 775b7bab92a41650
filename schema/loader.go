package schema

import (
	"encoding/xml"
	"regexp"
	"strconv"
	"strings"

	"github.com/sousouindustries/amqptype/errs"
	"github.com/sousouindustries/amqptype/format"
)

// xmlElement is the generic node shape encoding/xml decodes an arbitrary
// document into: enough structure to walk <type>/<definition> children
// without a fixed schema, mirroring xml.etree.ElementTree's element model
// used by original_source/amqp/typesystem/loader.py.
type xmlElement struct {
	XMLName  xml.Name
	Attrs    []xml.Attr   `xml:",any,attr"`
	Children []xmlElement `xml:",any"`
}

func (e *xmlElement) attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

var namespaceDecl = regexp.MustCompile(` xmlns="[^"]+"`)

// stripNamespace removes the root element's default xmlns declaration
// before parsing, matching original_source/amqp/typesystem/utils.py's
// strip_namespace (a single regex substitution, not a full namespace-aware
// parse).
func stripNamespace(document string) string {
	return namespaceDecl.ReplaceAllString(document, "")
}

// LoadXML parses an AMQP type-system XML document (spec §6 "Schema XML")
// and returns the Meta records declared by its <type> elements. <section>
// wrapper elements and <definition> constant elements are walked but
// produce no Meta (definitions carry no type information this codec's
// scope needs).
func LoadXML(document string) ([]*Meta, error) {
	stripped := stripNamespace(document)

	var root xmlElement
	if err := xml.Unmarshal([]byte(stripped), &root); err != nil {
		return nil, errs.NewSchemaSyntaxError("malformed XML: %v", err)
	}

	var metas []*Meta
	var walk func(e *xmlElement) error
	walk = func(e *xmlElement) error {
		switch e.XMLName.Local {
		case "type":
			m, err := metaFromElement(e)
			if err != nil {
				return err
			}
			metas = append(metas, m)
			return nil
		case "definition":
			return nil
		default:
			for i := range e.Children {
				if err := walk(&e.Children[i]); err != nil {
					return err
				}
			}
			return nil
		}
	}

	if err := walk(&root); err != nil {
		return nil, err
	}
	return metas, nil
}

func splitCommaSeparated(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// metaFromElement implements spec §6's <type> ingestion rules (ported from
// Meta.fromelement): primitives declare only <encoding> children,
// composites declare <field> and <descriptor>, restricted types declare
// <choice> and <descriptor>. Any other child tag is a schema syntax error.
func metaFromElement(e *xmlElement) (*Meta, error) {
	typeName, _ := e.attr("name")
	className, _ := e.attr("class")
	source, _ := e.attr("source")

	class, err := parseClass(className)
	if err != nil {
		return nil, err
	}
	if class == ClassPrimitive && source == "" {
		source = typeName
	}

	m := Create(typeName, class, source)
	if provides, ok := e.attr("provides"); ok {
		m.Provides = splitCommaSeparated(provides)
	}

	var choices []Choice
	for i := range e.Children {
		child := &e.Children[i]
		switch child.XMLName.Local {
		case "encoding":
			if class != ClassPrimitive {
				return nil, errs.NewSchemaSyntaxError("<encoding> only valid on a primitive type, got class %q", className)
			}
			enc, err := encodingFromElement(child)
			if err != nil {
				return nil, err
			}
			m.Encodings = append(m.Encodings, enc)

		case "descriptor":
			if class != ClassComposite && class != ClassRestricted {
				return nil, errs.NewSchemaSyntaxError("<descriptor> only valid on a composite or restricted type, got class %q", className)
			}
			d, err := descriptorFromElement(child)
			if err != nil {
				return nil, err
			}
			m.Descriptor = d

		case "field":
			if class != ClassComposite {
				return nil, errs.NewSchemaSyntaxError("<field> only valid on a composite type, got class %q", className)
			}
			f, err := fieldFromElement(child)
			if err != nil {
				return nil, err
			}
			m.Fields = append(m.Fields, f)

		case "choice":
			if class != ClassRestricted {
				return nil, errs.NewSchemaSyntaxError("<choice> only valid on a restricted type, got class %q", className)
			}
			c, err := choiceFromElement(child, source)
			if err != nil {
				return nil, err
			}
			choices = append(choices, c)

		default:
			return nil, errs.NewSchemaSyntaxError("unknown child element <%s> in <type name=%q>", child.XMLName.Local, typeName)
		}
	}

	if len(choices) > 0 {
		m.SetChoices(choices)
	}

	return m, nil
}

func parseClass(name string) (Class, error) {
	switch name {
	case "primitive":
		return ClassPrimitive, nil
	case "composite":
		return ClassComposite, nil
	case "restricted":
		return ClassRestricted, nil
	default:
		return 0, errs.NewSchemaSyntaxError("unknown type class %q", name)
	}
}

func encodingFromElement(e *xmlElement) (Encoding, error) {
	name, _ := e.attr("name")
	category, _ := e.attr("category")
	codeAttr, _ := e.attr("code")
	widthAttr, _ := e.attr("width")

	codeAttr = strings.TrimPrefix(codeAttr, "0x")
	code, err := strconv.ParseUint(codeAttr, 16, 8)
	if err != nil {
		return Encoding{}, errs.NewSchemaSyntaxError("invalid <encoding code=%q>: %v", codeAttr, err)
	}

	width, err := strconv.Atoi(widthAttr)
	if err != nil {
		width = 0
	}

	fc := format.Code(code)
	return Encoding{
		Name:     name,
		Category: fc.Category(),
		Code:     fc,
		Width:    width,
	}, nil
}

// descriptorFromElement ports Meta.descriptor_from_element: a "code"
// attribute of the form "domain:id" (hex halves) packs to the 64-bit
// numeric form; "name" is the symbolic form.
func descriptorFromElement(e *xmlElement) (*Descriptor, error) {
	d := &Descriptor{}

	if sym, ok := e.attr("name"); ok && sym != "" {
		d.Symbolic = sym
		d.HasSymbolic = true
	}

	if codeAttr, ok := e.attr("code"); ok && codeAttr != "" {
		parts := strings.SplitN(codeAttr, ":", 2)
		if len(parts) != 2 {
			return nil, errs.NewSchemaSyntaxError("<descriptor code=%q> must be \"domain:id\"", codeAttr)
		}
		domain, err := strconv.ParseUint(parts[0], 16, 32)
		if err != nil {
			return nil, errs.NewSchemaSyntaxError("invalid descriptor domain %q: %v", parts[0], err)
		}
		id, err := strconv.ParseUint(parts[1], 16, 32)
		if err != nil {
			return nil, errs.NewSchemaSyntaxError("invalid descriptor id %q: %v", parts[1], err)
		}
		d.Numeric = PackNumeric(uint32(domain), uint32(id))
		d.HasNumeric = true
	}

	if !d.HasSymbolic && !d.HasNumeric {
		return nil, errs.NewSchemaSyntaxError("<descriptor> requires a name or code attribute")
	}
	return d, nil
}

func fieldFromElement(e *xmlElement) (Field, error) {
	name, _ := e.attr("name")
	typeName, _ := e.attr("type")
	requires, _ := e.attr("requires")
	mandatory, _ := e.attr("mandatory")
	multiple, _ := e.attr("multiple")

	f := Field{
		Name:      name,
		TypeName:  typeName,
		Requires:  splitCommaSeparated(requires),
		Mandatory: mandatory == "true",
		Multiple:  multiple == "true",
	}

	if def, ok := e.attr("default"); ok {
		f.RawDefault = def
		f.HasRawDefault = true
	}

	return f, nil
}

func choiceFromElement(e *xmlElement, source string) (Choice, error) {
	name, _ := e.attr("name")
	rawAttr, _ := e.attr("value")

	raw, err := parseChoiceRaw(source, rawAttr)
	if err != nil {
		return Choice{}, err
	}

	return Choice{Name: name, Raw: raw}, nil
}

// parseChoiceRaw coerces a <choice value="..."> XML attribute to the Go
// representation that factory.coerceScalar would also produce for the
// restricted type's source primitive, so a decoded scalar payload compares
// equal to a registered choice's Raw value.
func parseChoiceRaw(source, raw string) (any, error) {
	switch source {
	case "ubyte", "ushort", "uint", "ulong":
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, errs.NewSchemaSyntaxError("invalid choice value %q for source %q: %v", raw, source, err)
		}
		return v, nil
	case "byte", "short", "int", "long":
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errs.NewSchemaSyntaxError("invalid choice value %q for source %q: %v", raw, source, err)
		}
		return v, nil
	case "boolean":
		return raw == "true", nil
	default:
		return raw, nil
	}
}
