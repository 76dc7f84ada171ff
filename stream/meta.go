// Package stream implements the universal stream unit shared by every
// column: header encode/decode and the logical-transform-over-physical-
// codec composition (spec §4.3). Stream is typed per caller request as
// u32 or u64; width matching is strict everywhere except DeltaRle,
// whose logical width is determined by the request.
package stream

import "github.com/maplibre-tiles/mlt-go/format"

// Meta describes one stream's framing: its role/sub-tag, its logical and
// physical codec, and the counters needed to decode its payload. MetaA
// and MetaB carry the RLE/Morton pair (runs+num_rle_values, or a Morton
// shift) when Logical requires it; present/boolean streams never
// populate them because the decoder synthesizes the pair instead.
type Meta struct {
	Tag         format.PhysicalStreamTag
	Logical     format.LogicalCodec
	Physical    format.PhysicalCodec
	NumValues   int
	ByteLength  int
	MetaA       uint64
	MetaB       uint64
}

// HasRleMeta reports whether this stream's logical codec writes the
// (a,b) meta pair on the wire. Boolean/present streams elide it even
// when their tag happens to look like an RLE-eligible role, because byte
// -RLE framing is self-describing.
func (m Meta) HasRleMeta() bool {
	if m.Tag.IsPresentRole() {
		return false
	}

	switch m.Logical {
	case format.LogicalRle, format.LogicalDeltaRle, format.LogicalMorton:
		return true
	default:
		return false
	}
}
