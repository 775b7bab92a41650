package value

// Null is the AMQP null value. It is always empty; a descriptor may be
// attached with SetDescriptor.
type Null struct {
	base
}

var _ Value = (*Null)(nil)

// NewNull creates an undescribed Null value.
func NewNull() *Null {
	return &Null{}
}

func (n *Null) Source() string { return "null" }
func (n *Null) IsEmpty() bool  { return true }
