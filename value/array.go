package value

import (
	"fmt"

	"github.com/sousouindustries/amqptype/errs"
	"github.com/sousouindustries/amqptype/format"
)

// Array is a monomorphic AMQP array: every member shares one source type
// and descriptor.
//
// Re-architecture note (spec §9 "Array member-type inference"): the
// caller may set MemberFormatCode up front via SetMemberFormatCode; the
// encoder only falls back to inferring a constructor from the largest
// encoded member when it was left unset.
type Array struct {
	base
	memberSource        string
	MemberFormatCode    format.Code
	hasMemberFormatCode bool
	members             []Value
}

var _ Value = (*Array)(nil)

// NewArray creates an empty Array whose members must all report
// memberSource from Value.Source.
func NewArray(memberSource string) *Array {
	return &Array{memberSource: memberSource}
}

func (a *Array) Source() string { return "array" }

// MemberSource returns the source name every member must share.
func (a *Array) MemberSource() string { return a.memberSource }

// SetMemberFormatCode records the format code the encoder should use for
// every member's shared constructor, bypassing the largest-member
// inference fallback.
func (a *Array) SetMemberFormatCode(code format.Code) {
	a.MemberFormatCode = code
	a.hasMemberFormatCode = true
}

// HasMemberFormatCode reports whether SetMemberFormatCode was called.
func (a *Array) HasMemberFormatCode() bool { return a.hasMemberFormatCode }

// Append adds v as the next member, marking it in-array. It fails with a
// type error if v's source or descriptor does not match the array's
// existing members (invariant (i), spec §3.2).
func (a *Array) Append(v Value) error {
	if v.Source() != a.memberSource {
		return fmt.Errorf("%w: %w", errs.NewTypeError("member source %q does not match declared member source %q", v.Source(), a.memberSource), errs.ErrNotMonomorphic)
	}
	if len(a.members) > 0 {
		first := a.members[0]
		if !first.Descriptor().Equal(v.Descriptor()) {
			return fmt.Errorf("%w: %w", errs.NewTypeError("member descriptor does not match existing member descriptor"), errs.ErrNotMonomorphic)
		}
	}

	if am, ok := v.(arrayMember); ok {
		am.setInArray(true)
	}
	a.members = append(a.members, v)

	return nil
}

// Members returns a's members in order. The returned slice must not be
// mutated by the caller.
func (a *Array) Members() []Value { return a.members }

func (a *Array) IsEmpty() bool { return len(a.members) == 0 }
