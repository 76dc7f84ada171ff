package geometry_test

import (
	"testing"

	"github.com/maplibre-tiles/mlt-go/geometry"
	"github.com/stretchr/testify/require"
)

func TestVertices_ComponentwiseDelta_RoundTrip(t *testing.T) {
	words, err := geometry.EncodeVertices([]int32{0, 0, 2, 4, 2, 4})
	require.NoError(t, err)

	got, err := geometry.DecodeVertices(words)
	require.NoError(t, err)
	require.Equal(t, []int32{0, 0, 2, 4, 2, 4}, got)
}

func TestVertexAt_DirectIndex(t *testing.T) {
	vertices := []int32{0, 0, 1, 1, 2, 2}

	c, err := geometry.VertexAt(vertices, nil, 1)
	require.NoError(t, err)
	require.Equal(t, geometry.Coordinate{X: 1, Y: 1}, c)
}

func TestVertexAt_DictionaryIndirection(t *testing.T) {
	vertices := []int32{10, 10, 20, 20, 30, 30}
	offsets := []uint32{2, 0, 1}

	c0, err := geometry.VertexAt(vertices, offsets, 0)
	require.NoError(t, err)
	require.Equal(t, geometry.Coordinate{X: 30, Y: 30}, c0)

	c1, err := geometry.VertexAt(vertices, offsets, 1)
	require.NoError(t, err)
	require.Equal(t, geometry.Coordinate{X: 10, Y: 10}, c1)
}

func TestVertexAt_OutOfBounds(t *testing.T) {
	_, err := geometry.VertexAt([]int32{0, 0}, nil, 5)
	require.Error(t, err)
}
