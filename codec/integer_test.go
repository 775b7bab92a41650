package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeInteger_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		signed bool
		width  int
		small  bool
		zero   bool
		value  int64
		want   []byte
	}{
		{"ubyte(1)", false, 1, false, false, 1, []byte{0x01}},
		{"ushort(256)", false, 2, false, false, 256, []byte{0x01, 0x00}},
		{"uint(16777216)", false, 4, false, false, 16777216, []byte{0x01, 0x00, 0x00, 0x00}},
		{"ulong(72057594037927936)", false, 8, false, false, 72057594037927936, []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{"byte(-1)", true, 1, false, false, -1, []byte{0xFF}},
		{"short(-256)", true, 2, false, false, -256, []byte{0xFF, 0x00}},
		{"int(-16777216)", true, 4, false, false, -16777216, []byte{0xFF, 0x00, 0x00, 0x00}},
		{"long(-72057594037927936)", true, 8, false, false, -72057594037927936, []byte{0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{"uint0 zero", false, 4, true, true, 0, []byte{}},
		{"ulong0 zero", false, 8, true, true, 0, []byte{}},
		{"smallint -128", true, 4, true, true, -128, []byte{0x80}},
		{"smallint 127", true, 4, true, true, 127, []byte{0x7F}},
		{"smalluint 255", false, 4, true, true, 255, []byte{0xFF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeInteger(tt.signed, tt.width, tt.small, tt.zero, tt.value)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeInteger_SmallFormNotUsedOutsideRange(t *testing.T) {
	got := EncodeInteger(true, 4, true, true, 200)
	require.Len(t, got, 4, "200 does not fit in a signed small form")

	got = EncodeInteger(false, 4, true, true, 300)
	require.Len(t, got, 4, "300 does not fit in an unsigned small form")
}

func TestDecodeInteger_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		signed bool
		data   []byte
		want   int64
	}{
		{"empty is zero", false, []byte{}, 0},
		{"single octet unsigned", false, []byte{0xFF}, 255},
		{"single octet signed negative", true, []byte{0xFF}, -1},
		{"two octet unsigned", false, []byte{0x01, 0x00}, 256},
		{"two octet signed negative", true, []byte{0xFF, 0x00}, -256},
		{"four octet", false, []byte{0x01, 0x00, 0x00, 0x00}, 16777216},
		{"eight octet", false, []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, 72057594037927936},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeInteger(tt.signed, tt.data)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeInteger_InvalidLength(t *testing.T) {
	_, err := DecodeInteger(false, []byte{0x01, 0x02, 0x03})
	require.Error(t, err)
}

func TestEncodeDecodeInteger_Symmetry(t *testing.T) {
	values := []int64{0, 1, -1, 127, -128, 255, -256, 1 << 20, -(1 << 20)}
	for _, v := range values {
		encoded := EncodeInteger(true, 8, false, false, v)
		decoded, err := DecodeInteger(true, encoded)
		require.NoError(t, err)
		require.Equal(t, v, decoded)
	}
}
