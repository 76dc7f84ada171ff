package bitpack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackUnpackU32LERoundTrip(t *testing.T) {
	values := []uint32{0, 1, 0xDEADBEEF, 1<<32 - 1}

	data := PackU32LE(values)
	require.Len(t, data, len(values)*4)

	got, err := UnpackU32LE(data)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestPackU32LE_SpecS1(t *testing.T) {
	// spec S1: ids [1,2,3] LE-packed.
	data := PackU32LE([]uint32{1, 2, 3})
	require.Equal(t, []byte{
		0x01, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00,
		0x03, 0x00, 0x00, 0x00,
	}, data)
}

func TestPackUnpackU64LERoundTrip(t *testing.T) {
	values := []uint64{0, 1, 1 << 62}

	data := PackU64LE(values)
	got, err := UnpackU64LE(data)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestUnpackU32LE_InvalidMultiple(t *testing.T) {
	_, err := UnpackU32LE([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestPackUnpackU32BERoundTrip(t *testing.T) {
	values := []uint32{0, 1, 0xDEADBEEF}

	data := PackU32BE(values)
	got, err := UnpackU32BE(data)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestPackUnpackF32LERoundTrip(t *testing.T) {
	values := []float32{0, 1.5, -3.25, 3.14159}

	data := PackF32LE(values)
	got, err := UnpackF32LE(data)
	require.NoError(t, err)
	require.Equal(t, values, got)
}
