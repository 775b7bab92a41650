package amqptype

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sousouindustries/amqptype/dto"
	"github.com/sousouindustries/amqptype/value"
)

const sampleSchema = `<?xml version="1.0"?>
<amqp xmlns="http://www.amqp.org/schema/amqp.xsd">
  <section name="transport">
    <type name="string" class="primitive">
      <encoding name="str8-utf8" category="variable" code="0xA1" width="1"/>
    </type>
    <type name="uint" class="primitive">
      <encoding name="uint" category="fixed" code="0x70" width="4"/>
    </type>
    <type name="open" class="composite" source="list">
      <descriptor name="amqp:open:list" code="0:10"/>
      <field name="container-id" type="string" mandatory="true"/>
      <field name="max-frame-size" type="uint"/>
    </type>
  </section>
</amqp>`

func TestLoadSchemaXML_CreateFactory_EndToEnd(t *testing.T) {
	reg, err := LoadSchemaXML(sampleSchema)
	require.NoError(t, err)

	f := CreateFactory(reg)
	open, err := f.Create("open", map[string]any{
		"container-id":   "peer-1",
		"max-frame-size": uint64(4096),
	})
	require.NoError(t, err)

	encoded, err := Encode(open)
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	node, err := ParseBuffer(encoded)
	require.NoError(t, err)

	decoded, err := DecodeSchema(node, encoded, reg)
	require.NoError(t, err)

	c, ok := decoded.(*value.Composite)
	require.True(t, ok)

	v, ok := c.Field("container-id")
	require.True(t, ok)
	require.Equal(t, "peer-1", v.(*value.Scalar).Payload())

	projected := dto.AsDTO(decoded)
	rec, ok := projected.(dto.Record)
	require.True(t, ok)
	require.Equal(t, "peer-1", rec["container_id"])
}

func TestDecodeRaw_SchemaAgnostic(t *testing.T) {
	scalar := value.NewScalar("uint", uint64(7))

	encoded, err := Encode(scalar)
	require.NoError(t, err)

	node, err := ParseBuffer(encoded)
	require.NoError(t, err)

	decoded, err := DecodeRaw(node, encoded)
	require.NoError(t, err)

	s, ok := decoded.(*value.Scalar)
	require.True(t, ok)
	require.Equal(t, uint64(7), s.Payload())
}

func TestRegisterSchemaXML_LayersIntoExistingRegistry(t *testing.T) {
	reg, err := LoadSchemaXML(`<amqp><type name="string" class="primitive"><encoding name="str8-utf8" category="variable" code="0xA1" width="1"/></type></amqp>`)
	require.NoError(t, err)

	err = RegisterSchemaXML(reg, `<amqp><type name="uint" class="primitive"><encoding name="uint" category="fixed" code="0x70" width="4"/></type></amqp>`)
	require.NoError(t, err)

	f := CreateFactory(reg)
	_, err = f.Create("uint", uint64(1))
	require.NoError(t, err)
	_, err = f.Create("string", "hello")
	require.NoError(t, err)
}
