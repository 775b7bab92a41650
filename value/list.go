package value

// List is an ordered, heterogeneous AMQP list.
type List struct {
	base
	members []Value
}

var _ Value = (*List)(nil)

// NewList creates an empty List.
func NewList() *List {
	return &List{}
}

func (l *List) Source() string { return "list" }

// Append adds v as the next member.
func (l *List) Append(v Value) {
	l.members = append(l.members, v)
}

// Members returns l's members in order. The returned slice must not be
// mutated by the caller.
func (l *List) Members() []Value { return l.members }

func (l *List) IsEmpty() bool { return len(l.members) == 0 }
