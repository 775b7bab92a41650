package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sousouindustries/amqptype/format"
)

const sampleDocument = `<?xml version="1.0"?>
<amqp xmlns="http://www.amqp.org/schema/amqp.xsd">
  <section name="transport">
    <type name="ubyte" class="primitive">
      <encoding name="ubyte" category="fixed" code="0x50" width="1"/>
    </type>
    <type name="open" class="composite" source="list" provides="frame">
      <descriptor name="amqp:open:list" code="0:10"/>
      <field name="container-id" type="string" mandatory="true"/>
      <field name="max-frame-size" type="uint"/>
    </type>
    <type name="role" class="restricted" source="boolean">
      <descriptor name="amqp:role" code="0:0"/>
      <choice name="sender" value="false"/>
      <choice name="receiver" value="true"/>
    </type>
    <definition name="MAJOR" value="1"/>
  </section>
</amqp>`

func TestLoadXML(t *testing.T) {
	metas, err := LoadXML(sampleDocument)
	require.NoError(t, err)
	require.Len(t, metas, 3)

	byName := make(map[string]*Meta, len(metas))
	for _, m := range metas {
		byName[m.TypeName] = m
	}

	ubyte := byName["ubyte"]
	require.NotNil(t, ubyte)
	require.Equal(t, ClassPrimitive, ubyte.TypeClass)
	require.Len(t, ubyte.Encodings, 1)
	require.Equal(t, format.Code(0x50), ubyte.Encodings[0].Code)
	require.Equal(t, 1, ubyte.Encodings[0].Width)

	open := byName["open"]
	require.NotNil(t, open)
	require.Equal(t, ClassComposite, open.TypeClass)
	require.Equal(t, []string{"frame"}, open.Provides)
	require.NotNil(t, open.Descriptor)
	require.True(t, open.Descriptor.HasSymbolic)
	require.Equal(t, "amqp:open:list", open.Descriptor.Symbolic)
	require.True(t, open.Descriptor.HasNumeric)
	require.Equal(t, PackNumeric(0, 0x10), open.Descriptor.Numeric)
	require.Len(t, open.Fields, 2)
	require.Equal(t, "container-id", open.Fields[0].Name)
	require.True(t, open.Fields[0].Mandatory)
	require.False(t, open.Fields[1].Mandatory)

	role := byName["role"]
	require.NotNil(t, role)
	require.Equal(t, ClassRestricted, role.TypeClass)
	require.Len(t, role.Choices, 2)
	raw, ok := role.Choice("receiver")
	require.True(t, ok)
	require.Equal(t, true, raw)
	name, ok := role.ChoiceName(false)
	require.True(t, ok)
	require.Equal(t, "sender", name)
}

func TestLoadXML_UnknownChildTag(t *testing.T) {
	doc := `<amqp><type name="bad" class="primitive"><bogus/></type></amqp>`
	_, err := LoadXML(doc)
	require.Error(t, err)
}

func TestLoadXML_UnknownClass(t *testing.T) {
	doc := `<amqp><type name="bad" class="weird"></type></amqp>`
	_, err := LoadXML(doc)
	require.Error(t, err)
}
