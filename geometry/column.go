package geometry

import (
	"github.com/maplibre-tiles/mlt-go/errs"
	"github.com/maplibre-tiles/mlt-go/format"
	"github.com/maplibre-tiles/mlt-go/stream"
)

// typeTag is the meta stream's tag: the vector_types sequence is always
// the first stream in a geometry column's body, distinguished by
// position rather than by a dedicated sub-tag.
var typeTag = format.TagDataPlain

// Decode reads a geometry column's body (spec.md §4.6): a varuint
// stream_count prefix, one meta stream of per-feature type tags, then
// stream_count-1 item streams dispatched by their physical_type tag. The
// meta stream's own header carries the feature count, so Decode needs no
// externally supplied value — it is the one column a layer can decode
// without already knowing how many features it holds.
func Decode(r *stream.Reader) (*Decoded, error) {
	streamCount, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}

	meta, payload, err := r.Next()
	if err != nil {
		return nil, err
	}

	typeWords, err := stream.DecodeU32(meta, payload)
	if err != nil {
		return nil, err
	}

	vectorTypes := make([]format.GeometryType, len(typeWords))

	for i, w := range typeWords {
		if w > uint32(format.GeometryMultiPolygon) {
			return nil, errs.NewInvalidEnum("geometry-type", uint8(w))
		}

		vectorTypes[i] = format.GeometryType(w)
	}

	d := &Decoded{VectorTypes: vectorTypes}

	var rootLengths, partLengths, ringLengths []uint32

	haveRootLengths, havePartLengths, haveRingLengths := false, false, false

	itemStreams := int(streamCount) - 1

	for i := 0; i < itemStreams; i++ {
		tag, err := r.PeekTag()
		if err != nil {
			return nil, err
		}

		switch tag.Role() {
		case format.RoleLength:
			m, p, err := r.Next()
			if err != nil {
				return nil, err
			}

			lengths, err := stream.DecodeU32(m, p)
			if err != nil {
				return nil, err
			}

			switch tag.LengthKind() {
			case format.LengthGeometries:
				rootLengths, haveRootLengths = lengths, true
			case format.LengthParts:
				partLengths, havePartLengths = lengths, true
			case format.LengthRings:
				ringLengths, haveRingLengths = lengths, true
			case format.LengthTriangles:
				return nil, errs.NewNotImplemented("pre-tessellated polygon index buffer (triangles)")
			default:
				return nil, errs.NewInvalidEnum("length-kind", uint8(tag.LengthKind()))
			}
		case format.RoleOffset:
			m, p, err := r.Next()
			if err != nil {
				return nil, err
			}

			switch tag.OffsetKind() {
			case format.OffsetVertex:
				offs, err := stream.DecodeU32(m, p)
				if err != nil {
					return nil, err
				}

				d.VertexOffsets = offs
			case format.OffsetIndex:
				return nil, errs.NewNotImplemented("index buffer without part offsets")
			default:
				return nil, errs.NewInvalidEnum("offset-kind", uint8(tag.OffsetKind()))
			}
		case format.RoleData:
			m, p, err := r.Next()
			if err != nil {
				return nil, err
			}

			values, err := stream.DecodeI32(m, p)
			if err != nil {
				return nil, err
			}

			d.Vertices = values
		default:
			return nil, errs.NewInvalidEnum("stream-role", uint8(tag.Role()))
		}
	}

	hasPolygon := false

	for _, gt := range vectorTypes {
		if IsPolygonFamily(gt) {
			hasPolygon = true

			break
		}
	}

	var geometryParent []uint32

	if haveRootLengths {
		offsets, err := ReconstructRootOffsets(vectorTypes, AboveThreshold(format.GeometryPolygon), rootLengths)
		if err != nil {
			return nil, err
		}

		d.GeometryOffsets = offsets
		geometryParent = offsets
	} else {
		geometryParent = identityOffsets(len(vectorTypes))
	}

	var partParent []uint32

	if havePartLengths {
		needsLength := IsLineFamily
		if hasPolygon {
			needsLength = IsPolygonFamily
		}

		offsets, err := ReconstructLevelOffsets(vectorTypes, geometryParent, needsLength, partLengths)
		if err != nil {
			return nil, err
		}

		d.PartOffsets = offsets
		partParent = offsets
	} else {
		partParent = geometryParent
	}

	if haveRingLengths {
		offsets, err := ReconstructLevelOffsets(vectorTypes, partParent, IsNotPointFamily, ringLengths)
		if err != nil {
			return nil, err
		}

		d.RingOffsets = offsets
	}

	return d, nil
}

// Encode writes d's body through w, reconstructing only the length
// streams a decoder would have actually consumed (spec.md §4.6: lengths
// are omitted wherever the corresponding span is implicit).
func Encode(w *stream.Writer, d *Decoded) error {
	typeWords := make([]uint32, len(d.VectorTypes))
	for i, gt := range d.VectorTypes {
		typeWords[i] = uint32(gt)
	}

	typeMeta, typePayload, err := stream.EncodeU32(typeTag, format.LogicalRle, format.PhysicalVarInt, typeWords)
	if err != nil {
		return err
	}

	hasPolygon := false

	for _, gt := range d.VectorTypes {
		if IsPolygonFamily(gt) {
			hasPolygon = true

			break
		}
	}

	streamCount := 1

	var rootLengths, partLengths, ringLengths []uint32

	geometryParent := d.GeometryOffsets
	if geometryParent == nil {
		geometryParent = identityOffsets(len(d.VectorTypes))
	} else {
		rootLengths = DeriveRootLengths(d.VectorTypes, AboveThreshold(format.GeometryPolygon), d.GeometryOffsets)
		streamCount++
	}

	partParent := d.PartOffsets
	if partParent == nil {
		partParent = geometryParent
	} else {
		needsLength := IsLineFamily
		if hasPolygon {
			needsLength = IsPolygonFamily
		}

		partLengths = DeriveLevelLengths(d.VectorTypes, geometryParent, d.PartOffsets, needsLength)
		streamCount++
	}

	if d.RingOffsets != nil {
		ringLengths = DeriveLevelLengths(d.VectorTypes, partParent, d.RingOffsets, IsNotPointFamily)
		streamCount++
	}

	if d.VertexOffsets != nil {
		streamCount++
	}

	if d.Vertices != nil {
		streamCount++
	}

	w.WriteUvarint(uint64(streamCount))
	w.WriteStream(typeMeta, typePayload)

	if rootLengths != nil {
		m, p, err := stream.EncodeU32(format.TagLengthGeometries, format.LogicalNone, format.PhysicalVarInt, rootLengths)
		if err != nil {
			return err
		}

		w.WriteStream(m, p)
	}

	if partLengths != nil {
		m, p, err := stream.EncodeU32(format.TagLengthParts, format.LogicalNone, format.PhysicalVarInt, partLengths)
		if err != nil {
			return err
		}

		w.WriteStream(m, p)
	}

	if ringLengths != nil {
		m, p, err := stream.EncodeU32(format.TagLengthRings, format.LogicalNone, format.PhysicalVarInt, ringLengths)
		if err != nil {
			return err
		}

		w.WriteStream(m, p)
	}

	if d.VertexOffsets != nil {
		m, p, err := stream.EncodeU32(format.TagOffsetVertex, format.LogicalNone, format.PhysicalVarInt, d.VertexOffsets)
		if err != nil {
			return err
		}

		w.WriteStream(m, p)
	}

	if d.Vertices != nil {
		m, p, err := stream.EncodeI32(format.TagDataVertex, format.LogicalComponentwiseDelta, format.PhysicalVarInt, d.Vertices)
		if err != nil {
			return err
		}

		w.WriteStream(m, p)
	}

	return nil
}

func identityOffsets(n int) []uint32 {
	offsets := make([]uint32, n+1)
	for i := range offsets {
		offsets[i] = uint32(i)
	}

	return offsets
}

