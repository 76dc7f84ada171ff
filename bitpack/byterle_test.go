package bitpack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackUnpackBoolsRoundTrip(t *testing.T) {
	bools := []bool{true, false, true, true, false, false, true, false, true}

	packed := PackBools(bools)
	got, err := UnpackBools(packed, len(bools))
	require.NoError(t, err)
	require.Equal(t, bools, got)
}

func TestByteRleRoundTrip(t *testing.T) {
	data := []byte{1, 1, 1, 1, 1, 2, 3, 4, 5, 5, 5, 5, 5, 5}

	encoded := ByteRleEncode(data)

	got, err := ByteRleDecode(encoded, len(data))
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestByteRleRoundTrip_AllLiteral(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7}

	encoded := ByteRleEncode(data)

	got, err := ByteRleDecode(encoded, len(data))
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestPresentBitmap_SpecS2(t *testing.T) {
	// spec S2: present bitmap for [Some, None, Some] packs to 0b00000101.
	present := []bool{true, false, true}

	packed := PackBools(present)
	require.Equal(t, []byte{0b00000101}, packed)

	encoded := EncodePresentBitmap(present)

	decoded, err := DecodePresentBitmap(encoded, len(present))
	require.NoError(t, err)
	require.Equal(t, present, decoded)
}

func TestPopcount(t *testing.T) {
	require.Equal(t, 2, Popcount([]bool{true, false, true, false}))
}

func TestPresentBitmap_AllOnes(t *testing.T) {
	present := make([]bool, 100)
	for i := range present {
		present[i] = true
	}

	encoded := EncodePresentBitmap(present)
	decoded, err := DecodePresentBitmap(encoded, len(present))
	require.NoError(t, err)
	require.Equal(t, present, decoded)
}
