package stream

import (
	"github.com/sousouindustries/amqptype/codec"
	"github.com/sousouindustries/amqptype/constructor"
	"github.com/sousouindustries/amqptype/errs"
	"github.com/sousouindustries/amqptype/format"
)

// ParseBuffer walks data and builds the Node tree for the single value it
// encodes. An empty buffer fails with errs.ErrEndOfStream; an
// unrecognised descriptor format code fails with a validation error
// (spec §8, test 8).
func ParseBuffer(data []byte) (*Node, error) {
	node, _, err := parseNode(data, 0)
	return node, err
}

func parseNode(data []byte, offset int) (*Node, int, error) {
	if offset >= len(data) {
		return nil, offset, errs.ErrEndOfStream
	}

	c, err := constructor.Parse(data[offset:])
	if err != nil {
		return nil, offset, err
	}

	pos := offset + c.Width
	node := &Node{Start: offset, Constructor: c}

	end, err := fillBody(data, pos, c.FormatCode, node)
	if err != nil {
		return nil, offset, err
	}
	node.End = end

	return node, end, nil
}

// fillBody parses the payload or members of a value whose format code is
// already known, filling in node's body fields. code may come from a
// constructor just read off the stream, or be inherited from an array's
// shared member constructor, in which case no constructor octet is
// present at pos.
func fillBody(data []byte, pos int, code format.Code, node *Node) (int, error) {
	cat := code.Category()

	switch {
	case cat.IsFixedWidth():
		width := cat.IndicatorWidth()
		if pos+width > len(data) {
			return 0, errs.ErrEndOfStream
		}
		node.PayloadStart = pos
		node.PayloadEnd = pos + width
		return pos + width, nil

	case cat.IsVariable():
		iw := cat.IndicatorWidth()
		if pos+iw > len(data) {
			return 0, errs.ErrEndOfStream
		}
		length := readIndicator(data[pos : pos+iw])
		pos += iw
		if pos+length > len(data) {
			return 0, errs.ErrEndOfStream
		}
		node.PayloadStart = pos
		node.PayloadEnd = pos + length
		return pos + length, nil

	case cat.IsCompound():
		return fillCompound(data, pos, node)

	case cat.IsArray():
		return fillArray(data, pos, node)

	default:
		return 0, errs.NewDecodeErrorCode(uint8(code), "format code does not fall into any known category")
	}
}

// fillCompound parses a list or map body: a size indicator, a count
// indicator, then exactly count child values, each with its own
// constructor. The byte span consumed by the children must exactly match
// size (spec §4.3's "exactly match the advertised size").
func fillCompound(data []byte, pos int, node *Node) (int, error) {
	iw := node.FormatCode().Category().IndicatorWidth()

	if pos+iw > len(data) {
		return 0, errs.ErrEndOfStream
	}
	size := readIndicator(data[pos : pos+iw])
	pos += iw
	sizeFieldEnd := pos

	if pos+iw > len(data) {
		return 0, errs.ErrEndOfStream
	}
	count := readIndicator(data[pos : pos+iw])
	pos += iw

	end := sizeFieldEnd + size
	if end > len(data) || end < pos {
		return 0, errs.ErrSizeMismatch
	}

	node.MemberCount = count
	children := make([]*Node, 0, count)
	for i := 0; i < count; i++ {
		child, newPos, err := parseNode(data, pos)
		if err != nil {
			return 0, err
		}
		children = append(children, child)
		pos = newPos
	}
	if pos != end {
		return 0, errs.ErrSizeMismatch
	}

	node.Children = children
	return end, nil
}

// fillArray parses an array body: a size indicator, a count indicator,
// one shared member constructor, then exactly count member bodies, each
// reusing that constructor's format code without repeating it.
func fillArray(data []byte, pos int, node *Node) (int, error) {
	iw := node.FormatCode().Category().IndicatorWidth()

	if pos+iw > len(data) {
		return 0, errs.ErrEndOfStream
	}
	size := readIndicator(data[pos : pos+iw])
	pos += iw
	sizeFieldEnd := pos

	if pos+iw > len(data) {
		return 0, errs.ErrEndOfStream
	}
	count := readIndicator(data[pos : pos+iw])
	pos += iw

	end := sizeFieldEnd + size
	if end > len(data) || end < pos {
		return 0, errs.ErrSizeMismatch
	}

	memberCtor, err := constructor.Parse(data[pos:])
	if err != nil {
		return 0, err
	}
	pos += memberCtor.Width
	node.MemberConstructor = &memberCtor
	node.MemberCount = count

	children := make([]*Node, 0, count)
	for i := 0; i < count; i++ {
		child := &Node{Start: pos, Constructor: memberCtor}
		newPos, err := fillBody(data, pos, memberCtor.FormatCode, child)
		if err != nil {
			return 0, err
		}
		child.End = newPos
		children = append(children, child)
		pos = newPos
	}
	if pos != end {
		return 0, errs.ErrSizeMismatch
	}

	node.Children = children
	return end, nil
}

func readIndicator(b []byte) int {
	if len(b) == 1 {
		return int(b[0])
	}
	return int(codec.Wire().Uint32(b))
}
