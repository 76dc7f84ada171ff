package autoencoder

import (
	"testing"

	"github.com/maplibre-tiles/mlt-go/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectU32_SortedPrefersDelta(t *testing.T) {
	values := make([]uint32, 2000)
	for i := range values {
		values[i] = uint32(i * 3)
	}

	s, err := NewSelector()
	require.NoError(t, err)

	res, err := s.SelectU32(format.TagLengthGeometries, values)
	require.NoError(t, err)
	assert.Contains(t, []format.LogicalCodec{format.LogicalDelta, format.LogicalDeltaRle}, res.Logical)
	assert.Equal(t, res.Meta.NumValues, len(values))
}

// TestSelectU32_StrictlyIncreasingPicksDeltaFastPFOR pins the exact
// codec pair a strictly increasing u32 sequence of 1000 values must
// select: Delta+FastPFOR is the smallest payload of every candidate
// the cross product produces, since there are no repeats for Rle to
// exploit and FastPFOR bit-packs the small, uniform post-delta deltas
// tighter than VarInt's per-value byte framing.
func TestSelectU32_StrictlyIncreasingPicksDeltaFastPFOR(t *testing.T) {
	values := make([]uint32, 1000)
	for i := range values {
		values[i] = uint32(i + 1)
	}

	s, err := NewSelector()
	require.NoError(t, err)

	res, err := s.SelectU32(format.TagLengthGeometries, values)
	require.NoError(t, err)
	assert.Equal(t, format.LogicalDelta, res.Logical)
	assert.Equal(t, format.PhysicalFastPFOR, res.Physical)
}

func TestSelectU32_RepeatedRunsPreferRle(t *testing.T) {
	values := make([]uint32, 2000)
	for i := range values {
		values[i] = uint32(i / 50)
	}

	s, err := NewSelector()
	require.NoError(t, err)

	res, err := s.SelectU32(format.TagLengthGeometries, values)
	require.NoError(t, err)
	assert.Equal(t, format.LogicalRle, res.Logical)
}

func TestSelectU32_ForcedCodecsBypassPruning(t *testing.T) {
	values := []uint32{5, 1, 9, 2, 7}

	s, err := NewSelector(WithForcedCodecs(format.LogicalNone))
	require.NoError(t, err)

	res, err := s.SelectU32(format.TagLengthGeometries, values)
	require.NoError(t, err)
	assert.Equal(t, format.LogicalNone, res.Logical)
}

func TestSelectU32_EmptyFallsBackToPlainVarInt(t *testing.T) {
	s, err := NewSelector()
	require.NoError(t, err)

	res, err := s.SelectU32(format.TagLengthGeometries, nil)
	require.NoError(t, err)
	assert.Equal(t, format.LogicalNone, res.Logical)
	assert.Equal(t, format.PhysicalVarInt, res.Physical)
}

func TestSelectU64_SortedPrefersDelta(t *testing.T) {
	values := make([]uint64, 2000)
	for i := range values {
		values[i] = uint64(i * 7)
	}

	s, err := NewSelector()
	require.NoError(t, err)

	res, err := s.SelectU64(format.TagLengthGeometries, values)
	require.NoError(t, err)
	assert.Contains(t, []format.LogicalCodec{format.LogicalDelta, format.LogicalDeltaRle}, res.Logical)
	assert.NotEqual(t, format.PhysicalFastPFOR, res.Physical)
}

func TestHyperLogLogEstimatesDistinctCount(t *testing.T) {
	sketch := newHyperLogLog(10)

	for i := 0; i < 5000; i++ {
		sketch.addUint32(uint32(i))
	}

	est := sketch.estimate()
	assert.InEpsilon(t, 5000, est, 0.1)
}
