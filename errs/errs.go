// Package errs declares the error taxonomy used across the codec:
// malformed wire data, missing encoders/decoders, schema syntax problems,
// field validation failures, and array/composite type errors.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers should use errors.Is against these, not string
// matching, since DecodeError and ValidationError wrap additional context.
var (
	// ErrEndOfStream is returned when parse-buffer is invoked on an empty
	// buffer, or a constructor is expected but no bytes remain.
	ErrEndOfStream = errors.New("amqptype: end of AMQP-encoded datastream")

	// ErrSizeMismatch is returned when a collection's advertised size does
	// not match the byte span consumed by its members.
	ErrSizeMismatch = errors.New("amqptype: advertised size does not match member span")

	// ErrNotMonomorphic is returned when appending a value of a differing
	// source type or descriptor to an Array.
	ErrNotMonomorphic = errors.New("amqptype: array instances must be monomorphic collections")

	// ErrFieldsRemaining is returned by factory.Factory.BuildComposite
	// when its input has values or keys left over after populating every
	// declared field.
	ErrFieldsRemaining = errors.New("amqptype: fields remaining after composite population")

	// ErrHashCollision is returned when two distinct type names, or two
	// distinct symbolic descriptors, hash to the same registry key.
	ErrHashCollision = errors.New("amqptype: hash collision between distinct registry keys")
)

// DecodeError represents malformed wire data: an unknown format code, a
// truncated payload, or a registry lookup miss during schema decoding.
type DecodeError struct {
	Code    uint8 // offending format code, valid only when HasCode is true
	HasCode bool
	Msg     string
}

func (e *DecodeError) Error() string {
	if e.HasCode {
		return fmt.Sprintf("amqptype: decode error: %s (format code 0x%02X)", e.Msg, e.Code)
	}

	return "amqptype: decode error: " + e.Msg
}

// NewDecodeError builds a DecodeError with no associated format code.
func NewDecodeError(msg string, args ...any) *DecodeError {
	return &DecodeError{Msg: fmt.Sprintf(msg, args...)}
}

// NewDecodeErrorCode builds a DecodeError carrying the offending format code.
func NewDecodeErrorCode(code uint8, msg string, args ...any) *DecodeError {
	return &DecodeError{Code: code, HasCode: true, Msg: fmt.Sprintf(msg, args...)}
}

// DecoderMissingError is a sub-kind of DecodeError raised when no decoder
// exists for a format code.
type DecoderMissingError struct {
	Code uint8
}

func (e *DecoderMissingError) Error() string {
	return fmt.Sprintf("amqptype: no decoder for format code 0x%02X", e.Code)
}

// EncoderMissingError is raised when no encoder exists for a named
// primitive type, or a type name is not recognised by the coercion table.
type EncoderMissingError struct {
	TypeName string
}

func (e *EncoderMissingError) Error() string {
	return fmt.Sprintf("amqptype: no encoder for type %q", e.TypeName)
}

// SchemaSyntaxError represents malformed schema XML: invalid attributes
// or an unrecognised child tag.
type SchemaSyntaxError struct {
	Msg string
}

func (e *SchemaSyntaxError) Error() string {
	return "amqptype: schema syntax error: " + e.Msg
}

// NewSchemaSyntaxError builds a SchemaSyntaxError.
func NewSchemaSyntaxError(msg string, args ...any) *SchemaSyntaxError {
	return &SchemaSyntaxError{Msg: fmt.Sprintf(msg, args...)}
}

// ValidationKind enumerates the ValidationError subkinds from spec §7.
type ValidationKind string

const (
	// KindRequired is raised when a mandatory composite field is absent.
	KindRequired ValidationKind = "required"
	// KindPolymorphic is raised when a "multiple" field's members do not
	// share one native type.
	KindPolymorphic ValidationKind = "polymorphic"
	// KindNotSatisfied is raised when a polymorphic value's Provides set
	// does not intersect a "*" field's Requires set.
	KindNotSatisfied ValidationKind = "not_satisfied"
	// KindInvalid is raised when a choice name is not declared on a
	// restricted type.
	KindInvalid ValidationKind = "invalid"
)

// ValidationError represents a schema validation failure, tagged with one
// of the subkinds declared above.
type ValidationError struct {
	Kind    ValidationKind
	Subject string // field name or type name, for diagnostics
	Detail  string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("amqptype: validation error (%s): %s", e.Kind, e.Subject)
	}

	return fmt.Sprintf("amqptype: validation error (%s): %s: %s", e.Kind, e.Subject, e.Detail)
}

// NewValidationError builds a ValidationError of the given kind.
func NewValidationError(kind ValidationKind, subject, detail string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Subject: subject, Detail: fmt.Sprintf(detail, args...)}
}

// TypeError represents attempting to append a non-matching element to a
// monomorphic array, or extra composite fields remaining after population.
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string {
	return "amqptype: type error: " + e.Msg
}

// NewTypeError builds a TypeError.
func NewTypeError(msg string, args ...any) *TypeError {
	return &TypeError{Msg: fmt.Sprintf(msg, args...)}
}
