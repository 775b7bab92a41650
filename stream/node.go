// Package stream implements the one-pass, schema-agnostic parser that
// walks an encoded AMQP byte buffer and builds a Node tree describing its
// structure: positions, widths, and children. No registry or type
// metadata is consulted here (spec §4.3) — that happens one layer up, in
// the raw and schema decoders.
package stream

import (
	"github.com/sousouindustries/amqptype/constructor"
	"github.com/sousouindustries/amqptype/format"
	"github.com/sousouindustries/amqptype/schema"
)

// Node describes one encoded value: its constructor, the absolute span
// of its raw payload bytes (for scalars and variable-width values), and,
// for compound and array values, its member count and child Nodes.
type Node struct {
	// Start is the absolute offset of this value's constructor,
	// including any descriptor prefix.
	Start int
	// End is the absolute offset one past this value's last payload or
	// member byte.
	End int

	Constructor constructor.Constructor

	// PayloadStart and PayloadEnd bound the raw payload bytes for
	// fixed-width and variable-width values. Both are zero for compound
	// and array values, whose content lives in Children instead.
	PayloadStart int
	PayloadEnd   int

	// MemberCount is the declared element count for list, map, and array
	// values (for maps, this counts individual key and value elements,
	// not pairs).
	MemberCount int
	Children    []*Node

	// MemberConstructor is the shared constructor array values attach to
	// every child, parsed once and not repeated per member.
	MemberConstructor *constructor.Constructor
}

// FormatCode returns the primitive format code this node's constructor
// carries.
func (n *Node) FormatCode() format.Code {
	return n.Constructor.FormatCode
}

// Descriptor returns this node's descriptor, or nil if undescribed.
func (n *Node) Descriptor() *schema.Descriptor {
	return n.Constructor.Descriptor
}

// Payload slices data to this node's raw payload bytes. Only meaningful
// for fixed-width and variable-width nodes.
func (n *Node) Payload(data []byte) []byte {
	return data[n.PayloadStart:n.PayloadEnd]
}
