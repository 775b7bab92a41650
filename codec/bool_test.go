package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeBoolean(t *testing.T) {
	require.Equal(t, []byte{0x01}, EncodeBoolean(true))
	require.Equal(t, []byte{0x00}, EncodeBoolean(false))

	got, err := DecodeBoolean([]byte{0x01})
	require.NoError(t, err)
	require.True(t, got)

	got, err = DecodeBoolean([]byte{0x00})
	require.NoError(t, err)
	require.False(t, got)

	got, err = DecodeBoolean([]byte{0x2A})
	require.NoError(t, err)
	require.True(t, got, "any non-zero octet decodes true")
}

func TestDecodeBoolean_InvalidLength(t *testing.T) {
	_, err := DecodeBoolean([]byte{})
	require.Error(t, err)

	_, err = DecodeBoolean([]byte{0x01, 0x00})
	require.Error(t, err)
}

func TestEncodeDecodeNull(t *testing.T) {
	require.Equal(t, []byte{}, EncodeNull())
	require.NoError(t, DecodeNull([]byte{}))
	require.Error(t, DecodeNull([]byte{0x00}))
}
