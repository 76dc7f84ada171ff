package analyzer

import (
	"testing"

	"github.com/maplibre-tiles/mlt-go/format"
	"github.com/maplibre-tiles/mlt-go/geometry"
	"github.com/maplibre-tiles/mlt-go/layer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeTileCountsLayersAndGeometryTypes(t *testing.T) {
	l01 := &layer.Layer01{
		Name:   "water",
		Extent: 4096,
		Geometry: &geometry.Decoded{
			VectorTypes: []format.GeometryType{
				format.GeometryPolygon,
				format.GeometryPolygon,
				format.GeometryPoint,
			},
			// Two single-ring triangles, each a valid closed shape
			// inside the 4096 extent, plus one out-of-bounds point.
			PartOffsets: []uint32{0, 1, 2},
			RingOffsets: []uint32{0, 3, 6},
			Vertices: []int32{
				0, 0, 10, 0, 0, 10,
				0, 0, 10, 0, 0, 10,
				5000, 5000,
			},
		},
	}

	tile := &layer.Tile{Layers: []layer.Layer{l01, &layer.Unknown{Tag: 0x7f, Value: []byte{1, 2, 3}}}}

	stats, err := AnalyzeTile(tile)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.UnknownLayers)
	if assert.Len(t, stats.Layers, 1) {
		ls := stats.Layers[0]
		assert.Equal(t, "water", ls.Name)
		assert.Equal(t, 3, ls.FeatureCount)
		assert.Equal(t, 2, ls.GeometryHistogram[format.GeometryPolygon])
		assert.Equal(t, 1, ls.GeometryHistogram[format.GeometryPoint])
		assert.False(t, ls.HasID)
		assert.Equal(t, []int{2}, ls.OutOfBoundsFeatures)
	}
}

func TestCompareBaselinesReportsEveryAlgorithm(t *testing.T) {
	raw := make([]byte, 1024)
	for i := range raw {
		raw[i] = byte(i % 7)
	}

	stats, err := CompareBaselines(raw)
	assert.NoError(t, err)
	assert.Len(t, stats, 3)

	for _, s := range stats {
		assert.EqualValues(t, len(raw), s.OriginalSize)
		assert.Greater(t, s.CompressedSize, int64(0))
	}
}
