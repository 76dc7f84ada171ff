// Package geometry reconstructs a layer's geometry column from its
// vector_types stream plus the offset/vertex item streams (spec.md
// §4.6): length-to-offset reconstruction, vertex dictionary lookups, and
// a read-only GeoJSON-style projection helper used by self-consistency
// checks and the analyzer.
package geometry

import "github.com/maplibre-tiles/mlt-go/format"

// Coordinate is one (x, y) tile-space vertex.
type Coordinate struct {
	X, Y int32
}

// Decoded is the fully reconstructed geometry column (spec.md §3
// DecodedGeometry): one type tag per feature plus the four optional
// prefix-sum offset arrays and the flat interleaved vertex buffer.
type Decoded struct {
	VectorTypes []format.GeometryType

	// GeometryOffsets, PartOffsets, RingOffsets, VertexOffsets are
	// monotonically non-decreasing prefix sums with a leading 0
	// (length = count+1) when present; nil when the layer never
	// needed that level.
	GeometryOffsets []uint32
	PartOffsets     []uint32
	RingOffsets     []uint32
	VertexOffsets   []uint32

	// Vertices is the interleaved [x0, y0, x1, y1, ...] buffer.
	Vertices []int32
}

// FeatureCount reports the number of features this geometry column describes.
func (d *Decoded) FeatureCount() int {
	return len(d.VectorTypes)
}
