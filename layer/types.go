// Package layer assembles column bodies into a full Layer01 and a Layer01
// into a Tile, dispatching on the column-type tag byte the way spec.md
// §4.7 describes, and wrapping any non-0x01 layer tag as an opaque
// Unknown layer so round-tripping is preserved without semantic decode
// (spec.md §4.7, §9 "unknown layer forward-compatibility").
package layer

import (
	"github.com/maplibre-tiles/mlt-go/column"
	"github.com/maplibre-tiles/mlt-go/format"
	"github.com/maplibre-tiles/mlt-go/geometry"
)

// Tag01 is the only fully defined layer schema (spec.md §2).
const Tag01 = byte(0x01)

// Tile is an ordered sequence of layers; its identity is the
// concatenation of their encodings (spec.md §3).
type Tile struct {
	Layers []Layer
}

// Layer is the tagged union of a parsed Layer01 or an opaque Unknown
// layer. Exactly one of the two interface implementations is ever held.
type Layer interface {
	layerTag() byte
}

// Unknown preserves a non-0x01 layer's raw payload verbatim.
type Unknown struct {
	Tag   byte
	Value []byte
}

func (u *Unknown) layerTag() byte { return u.Tag }

// IDColumn holds the decoded form of a layer's single optional id
// column (spec.md §3, §4.4).
type IDColumn struct {
	ColumnType format.ColumnType
	Values     []*uint64
}

// Property is one decoded property column. Exactly one of Scalar,
// Strings, or Struct is populated, selected by ColumnType.
type Property struct {
	Name       string
	ColumnType format.ColumnType
	Scalar     *column.Scalar
	Strings    []*string
	Struct     *column.Struct
}

// Layer01 is the fully defined layer schema (spec.md §3).
type Layer01 struct {
	Name       string
	Extent     uint32
	ID         *IDColumn
	Geometry   *geometry.Decoded
	Properties []Property
}

func (l *Layer01) layerTag() byte { return Tag01 }

// FeatureCount reports the number of features the layer's geometry
// column describes; every id and property column must match it.
func (l *Layer01) FeatureCount() int {
	if l.Geometry == nil {
		return 0
	}

	return l.Geometry.FeatureCount()
}
