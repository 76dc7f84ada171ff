package column

import (
	"github.com/maplibre-tiles/mlt-go/bitpack"
	"github.com/maplibre-tiles/mlt-go/errs"
	"github.com/maplibre-tiles/mlt-go/format"
	"github.com/maplibre-tiles/mlt-go/stream"
)

// idTag is the single Data-role stream an id column ever carries.
var idTag = format.TagDataPlain

// DecodeID reads one of the four id configurations (spec.md §4.4) from
// r, returning featureCount pointers, nil at positions the present
// bitmap marked absent (the non-optional configs carry no present
// bitmap, so every position is non-nil).
func DecodeID(r *stream.Reader, colType format.ColumnType, featureCount int) ([]*uint64, error) {
	var present []bool

	if colType.IsOptional() {
		meta, payload, err := r.Next()
		if err != nil {
			return nil, err
		}

		if meta.Tag.Role() != format.RolePresent {
			return nil, errs.NewInvalidEnum("stream-role", uint8(meta.Tag.Role()))
		}

		present, err = bitpack.DecodePresentBitmap(payload, featureCount)
		if err != nil {
			return nil, err
		}
	}

	meta, payload, err := r.Next()
	if err != nil {
		return nil, err
	}

	numPresent := featureCount
	if present != nil {
		numPresent = bitpack.Popcount(present)
	}

	if meta.NumValues != numPresent {
		return nil, errs.NewInvalidStreamData(numPresent, meta.NumValues)
	}

	var raw []uint64

	switch colType {
	case format.ColumnID, format.ColumnOptID:
		values, decErr := stream.DecodeU32(meta, payload)
		if decErr != nil {
			return nil, decErr
		}

		raw = make([]uint64, len(values))
		for i, v := range values {
			raw[i] = uint64(v)
		}
	case format.ColumnLongID, format.ColumnOptLongID:
		raw, err = stream.DecodeU64(meta, payload)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errs.NewInvalidEnum("column-type", uint8(colType))
	}

	out := make([]*uint64, featureCount)
	rawIdx := 0

	for i := 0; i < featureCount; i++ {
		if present != nil && !present[i] {
			continue
		}

		v := raw[rawIdx]
		out[i] = &v
		rawIdx++
	}

	return out, nil
}

// EncodeID serializes values (length featureCount) into colType's wire
// shape, writing through w. Non-optional configs error if any entry is
// nil; the optional configs build a present bitmap from the non-nil
// positions.
func EncodeID(w *stream.Writer, values []*uint64, colType format.ColumnType) error {
	var present []bool

	if colType.IsOptional() {
		present = make([]bool, len(values))
		for i, v := range values {
			present[i] = v != nil
		}

		packed := bitpack.EncodePresentBitmap(present)
		w.WriteStream(stream.Meta{
			Tag:        format.TagPresent,
			Logical:    format.LogicalNone,
			Physical:   format.PhysicalNone,
			NumValues:  len(values),
			ByteLength: len(packed),
		}, packed)
	}

	raw := make([]uint64, 0, len(values))

	for _, v := range values {
		if v == nil {
			if present == nil {
				return errs.ErrIDValueRequired
			}

			continue
		}

		raw = append(raw, *v)
	}

	switch colType {
	case format.ColumnID, format.ColumnOptID:
		raw32 := make([]uint32, len(raw))
		for i, v := range raw {
			if v > uint64(^uint32(0)) {
				return errs.ErrIntegerOverflow
			}

			raw32[i] = uint32(v)
		}

		meta, payload, err := stream.EncodeU32(idTag, format.LogicalNone, format.PhysicalNone, raw32)
		if err != nil {
			return err
		}

		w.WriteStream(meta, payload)
	case format.ColumnLongID, format.ColumnOptLongID:
		meta, payload, err := stream.EncodeU64(idTag, format.LogicalDelta, format.PhysicalVarInt, raw)
		if err != nil {
			return err
		}

		w.WriteStream(meta, payload)
	default:
		return errs.NewInvalidEnum("column-type", uint8(colType))
	}

	return nil
}
