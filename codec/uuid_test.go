package codec

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeUUID(t *testing.T) {
	id := uuid.New()

	encoded := EncodeUUID(id)
	require.Len(t, encoded, 16)

	decoded, err := DecodeUUID(encoded)
	require.NoError(t, err)
	require.Equal(t, id, decoded)
}

func TestDecodeUUID_InvalidLength(t *testing.T) {
	_, err := DecodeUUID([]byte{0x01, 0x02, 0x03})
	require.Error(t, err)
}
