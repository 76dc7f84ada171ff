package geometry

import (
	"github.com/maplibre-tiles/mlt-go/bitpack"
	"github.com/maplibre-tiles/mlt-go/errs"
)

// EncodeVertices applies componentwise-delta-zigzag (spec.md §4.6) to an
// interleaved [x0, y0, x1, y1, ...] vertex buffer, the Data(Vertex)
// stream's logical transform.
func EncodeVertices(vertices []int32) ([]uint32, error) {
	return bitpack.ComponentwiseDeltaEncode32(vertices)
}

// DecodeVertices reverses EncodeVertices.
func DecodeVertices(words []uint32) ([]int32, error) {
	return bitpack.ComponentwiseDeltaDecode32(words)
}

// VertexAt looks up the i-th logical vertex, indirecting through
// vertexOffsets when the geometry uses a shared vertex dictionary
// (non-empty vertexOffsets), or indexing vertices directly otherwise.
func VertexAt(vertices []int32, vertexOffsets []uint32, i int) (Coordinate, error) {
	idx := i
	if len(vertexOffsets) > 0 {
		if i < 0 || i >= len(vertexOffsets) {
			return Coordinate{}, errs.ErrGeometryOffsetOOB
		}

		idx = int(vertexOffsets[i])
	}

	pos := idx * 2
	if pos < 0 || pos+1 >= len(vertices) {
		return Coordinate{}, errs.ErrGeometryVertexOOB
	}

	return Coordinate{X: vertices[pos], Y: vertices[pos+1]}, nil
}
