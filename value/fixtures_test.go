package value

import "github.com/sousouindustries/amqptype/schema"

var (
	descriptorFixture1 = schema.Descriptor{Symbolic: "one.test:a", HasSymbolic: true}
	descriptorFixture2 = schema.Descriptor{Symbolic: "one.test:b", HasSymbolic: true}
)
