package value

// Scalar wraps a single primitive value: a decoded Go-native payload
// (int64, uint64, bool, float32, float64, string, []byte, rune,
// time.Time, or uuid.UUID) tagged with the primitive's type name.
type Scalar struct {
	base
	source  string
	payload any
}

var _ Value = (*Scalar)(nil)

// NewScalar creates a Scalar of the given primitive source name (e.g.
// "ubyte", "string") carrying payload.
func NewScalar(source string, payload any) *Scalar {
	return &Scalar{source: source, payload: payload}
}

func (s *Scalar) Source() string { return s.source }

// Payload returns the decoded Go-native value.
func (s *Scalar) Payload() any { return s.payload }

// IsEmpty is always false: an actual AMQP null is represented by Null, not
// by a Scalar wrapping a zero value.
func (s *Scalar) IsEmpty() bool { return false }
