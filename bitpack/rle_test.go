package bitpack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRle32RoundTrip(t *testing.T) {
	values := []uint32{10, 10, 10, 20, 20, 30}

	runLengths, runValues, meta := RleEncode32(values)
	require.Equal(t, []uint32{3, 2, 1}, runLengths)
	require.Equal(t, []uint32{10, 20, 30}, runValues)
	require.Equal(t, RleMeta{Runs: 3, NumValues: 6}, meta)

	got, err := RleDecode32(runLengths, runValues, meta)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestRle32_SpecS3(t *testing.T) {
	meta := RleMeta{Runs: 3, NumValues: 6}
	runLengths := []uint32{3, 2, 1}
	runValues := []uint32{10, 20, 30}

	got, err := RleDecode32(runLengths, runValues, meta)
	require.NoError(t, err)
	require.Equal(t, []uint32{10, 10, 10, 20, 20, 30}, got)
}

func TestRle32_RunsOfLengthOneNotCollapsed(t *testing.T) {
	values := []uint32{1, 2, 3, 4}

	runLengths, runValues, meta := RleEncode32(values)
	require.Len(t, runLengths, 4)
	require.Equal(t, values, runValues)
	require.Equal(t, 4, meta.Runs)
}

func TestRle64RoundTrip(t *testing.T) {
	values := []uint64{1 << 40, 1 << 40, 7, 7, 7}

	runLengths, runValues, meta := RleEncode64(values)

	got, err := RleDecode64(runLengths, runValues, meta)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestAverageRunLength32(t *testing.T) {
	require.InDelta(t, 2.0, AverageRunLength32([]uint32{1, 1, 2, 2}), 0.0001)
	require.InDelta(t, 500.0, AverageRunLength32(repeatU32(500, 7)), 0.0001)
}

func repeatU32(n int, v uint32) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = v
	}

	return out
}
