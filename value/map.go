package value

// Map is an ordered AMQP map: alternating key, value entries.
type Map struct {
	base
	entries []Value
}

var _ Value = (*Map)(nil)

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{}
}

func (m *Map) Source() string { return "map" }

// Put appends a key/value pair.
func (m *Map) Put(key, val Value) {
	m.entries = append(m.entries, key, val)
}

// Entries returns the alternating key, value sequence in insertion order.
// The returned slice must not be mutated by the caller.
func (m *Map) Entries() []Value { return m.entries }

func (m *Map) IsEmpty() bool { return len(m.entries) == 0 }
