package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeFloat(t *testing.T) {
	encoded := EncodeFloat(1.0)
	require.Equal(t, []byte{0x3F, 0x80, 0x00, 0x00}, encoded)

	decoded, err := DecodeFloat(encoded)
	require.NoError(t, err)
	require.Equal(t, float32(1.0), decoded)
}

func TestDecodeFloat_InvalidLength(t *testing.T) {
	_, err := DecodeFloat([]byte{0x00, 0x00, 0x00})
	require.Error(t, err)
}

func TestEncodeDecodeDouble(t *testing.T) {
	encoded := EncodeDouble(1.0)
	require.Equal(t, []byte{0x3F, 0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, encoded)

	decoded, err := DecodeDouble(encoded)
	require.NoError(t, err)
	require.Equal(t, 1.0, decoded)
}

func TestDecodeDouble_InvalidLength(t *testing.T) {
	_, err := DecodeDouble([]byte{0x00, 0x00, 0x00, 0x00})
	require.Error(t, err)
}

func TestEncodeDecodeFloat_NegativeAndZero(t *testing.T) {
	for _, v := range []float32{0, -0.0, -1.5, 3.14159} {
		encoded := EncodeFloat(v)
		decoded, err := DecodeFloat(encoded)
		require.NoError(t, err)
		require.Equal(t, v, decoded)
	}
}
