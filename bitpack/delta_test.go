package bitpack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDelta32RoundTrip(t *testing.T) {
	values := []int32{5, 3, 3, 10, -100, -100, 0}

	words := DeltaEncode32(values)
	require.Equal(t, values, DeltaDecode32(words))
}

func TestDeltaU32RoundTrip(t *testing.T) {
	values := []uint32{5, 3, 3, 10, 9, 9, 0}

	words := DeltaEncodeU32(values)
	require.Equal(t, values, DeltaDecodeU32(words))
}

func TestDeltaU32_SpecS4(t *testing.T) {
	// spec S4: [0, 2, 2, 2, 2] interpreted as zigzag-delta words decodes to [0,1,2,3,4].
	words := []uint32{0, 2, 2, 2, 2}

	require.Equal(t, []uint32{0, 1, 2, 3, 4}, DeltaDecodeU32(words))
}

func TestDelta64RoundTrip(t *testing.T) {
	values := []int64{1 << 40, 1 << 40, -(1 << 40), 0}

	words := DeltaEncode64(values)
	require.Equal(t, values, DeltaDecode64(words))
}

func TestDeltaU64RoundTrip(t *testing.T) {
	values := []uint64{100, 200, 200, 50, 1 << 50}

	words := DeltaEncodeU64(values)
	require.Equal(t, values, DeltaDecodeU64(words))
}

func TestDeltaEmpty(t *testing.T) {
	require.Empty(t, DeltaEncode32(nil))
	require.Empty(t, DeltaDecode32(nil))
}
