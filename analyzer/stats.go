// Package analyzer computes read-only statistics over a decoded tile:
// per-layer feature/column/geometry-type breakdowns and, via
// CompareBaselines, how the tile's on-wire size compares against a
// handful of general-purpose compressors applied to the same bytes
// (spec.md §4.9). Nothing here participates in encode or decode; it
// exists purely to answer "how is this tile shaped" and "how well did
// the columnar codecs do."
package analyzer

import (
	"github.com/maplibre-tiles/mlt-go/format"
	"github.com/maplibre-tiles/mlt-go/geometry"
	"github.com/maplibre-tiles/mlt-go/layer"
)

// LayerStats summarizes one layer's shape.
type LayerStats struct {
	Name              string
	FeatureCount      int
	ColumnCount       int
	HasID             bool
	PropertyCount     int
	GeometryHistogram map[format.GeometryType]int
	// OutOfBoundsFeatures holds the indices geometry.IndexFeatureBounds
	// reports for features whose bounds fall outside [0, Extent] on
	// either axis (spec.md §4.6's GeometryOutOfBounds check).
	OutOfBoundsFeatures []int
}

// TileStats summarizes a parsed tile: one entry per Layer01, plus a
// count of opaque Unknown layers carried through unexamined.
type TileStats struct {
	Layers        []LayerStats
	UnknownLayers int
}

// AnalyzeTile walks t's layers and reports their shape. Unknown layers
// contribute only to UnknownLayers, since their schema is opaque by
// definition.
func AnalyzeTile(t *layer.Tile) (TileStats, error) {
	var stats TileStats

	for _, l := range t.Layers {
		l01, ok := l.(*layer.Layer01)
		if !ok {
			stats.UnknownLayers++

			continue
		}

		ls, err := analyzeLayer01(l01)
		if err != nil {
			return TileStats{}, err
		}

		stats.Layers = append(stats.Layers, ls)
	}

	return stats, nil
}

func analyzeLayer01(l *layer.Layer01) (LayerStats, error) {
	s := LayerStats{
		Name:          l.Name,
		FeatureCount:  l.FeatureCount(),
		HasID:         l.ID != nil,
		PropertyCount: len(l.Properties),
	}

	s.ColumnCount = len(l.Properties) + 1 // geometry
	if l.ID != nil {
		s.ColumnCount++
	}

	if l.Geometry != nil {
		s.GeometryHistogram = make(map[format.GeometryType]int)
		for _, gt := range l.Geometry.VectorTypes {
			s.GeometryHistogram[gt]++
		}

		_, outOfBounds, err := geometry.IndexFeatureBounds(l.Geometry, l.Extent)
		if err != nil {
			return LayerStats{}, err
		}

		s.OutOfBoundsFeatures = outOfBounds
	}

	return s, nil
}
