package layer

import (
	"github.com/maplibre-tiles/mlt-go/bitpack"
	"github.com/maplibre-tiles/mlt-go/column"
	"github.com/maplibre-tiles/mlt-go/errs"
	"github.com/maplibre-tiles/mlt-go/format"
	"github.com/maplibre-tiles/mlt-go/geometry"
	"github.com/maplibre-tiles/mlt-go/stream"
)

// ParseLayer01 parses data as exactly one Layer01 body (spec.md §4.7),
// raising ErrTrailingLayerData if any bytes remain after the last
// declared column. Use this for a standalone layer buffer; tile-level
// parsing uses parseLayer01Body directly since Layer01 is self-describing
// and needs no length prefix to know where it ends.
func ParseLayer01(data []byte) (*Layer01, error) {
	l, n, err := parseLayer01Body(data)
	if err != nil {
		return nil, err
	}

	if n != len(data) {
		return nil, errs.ErrTrailingLayerData
	}

	return l, nil
}

func parseLayer01Body(data []byte) (*Layer01, int, error) {
	offset := 0

	name, n, err := readString(data, offset)
	if err != nil {
		return nil, 0, err
	}

	offset += n

	extent, n, err := bitpack.ConsumeUvarint(data, offset)
	if err != nil {
		return nil, 0, err
	}

	offset += n

	colCount, n, err := bitpack.ConsumeUvarint(data, offset)
	if err != nil {
		return nil, 0, err
	}

	offset += n

	metas := make([]columnMeta, colCount)

	for i := range metas {
		m, n, err := parseColumnMeta(data, offset)
		if err != nil {
			return nil, 0, err
		}

		metas[i] = m
		offset += n
	}

	l := &Layer01{Name: name, Extent: uint32(extent)}

	haveGeometry := false
	haveID := false
	featureCount := 0

	r := stream.NewReader(data[offset:])

	for _, m := range metas {
		switch m.colType {
		case format.ColumnGeometry:
			if haveGeometry {
				return nil, 0, errs.ErrMultipleGeometryColumns
			}

			haveGeometry = true

			// Geometry must be declared (and therefore laid out) first
			// so its feature count is known before any id/property
			// column's present bitmap can be sized; EncodeLayer01
			// enforces this same ordering on write.
			g, err := geometry.Decode(r)
			if err != nil {
				return nil, 0, err
			}

			l.Geometry = g
			featureCount = g.FeatureCount()
		case format.ColumnID, format.ColumnOptID, format.ColumnLongID, format.ColumnOptLongID:
			if haveID {
				return nil, 0, errs.ErrMultipleIdColumns
			}

			haveID = true

			values, err := column.DecodeID(r, m.colType, featureCount)
			if err != nil {
				return nil, 0, err
			}

			l.ID = &IDColumn{ColumnType: m.colType, Values: values}
		default:
			p, err := decodeProperty(r, m, featureCount)
			if err != nil {
				return nil, 0, err
			}

			l.Properties = append(l.Properties, p)
		}
	}

	if !haveGeometry {
		return nil, 0, errs.ErrMissingGeometry
	}

	offset += r.Offset()

	return l, offset, nil
}

// EncodeLayer01 serializes l's body, always laying columns out as
// [Geometry, ID?, Properties...] regardless of l.Properties' order, so
// decode can learn feature count from the first column it reads.
func EncodeLayer01(l *Layer01) ([]byte, error) {
	if l.Geometry == nil {
		return nil, errs.ErrMissingGeometry
	}

	metas := make([]columnMeta, 0, 2+len(l.Properties))
	metas = append(metas, columnMeta{colType: format.ColumnGeometry})

	if l.ID != nil {
		metas = append(metas, columnMeta{colType: l.ID.ColumnType, name: "id"})
	}

	for _, p := range l.Properties {
		metas = append(metas, columnMeta{colType: p.ColumnType, name: p.Name, childNames: p.childNames()})
	}

	buf := make([]byte, 0, 64)
	buf = appendString(buf, l.Name)
	buf = bitpack.AppendUvarint(buf, uint64(l.Extent))
	buf = bitpack.AppendUvarint(buf, uint64(len(metas)))

	for _, m := range metas {
		buf = appendColumnMeta(buf, m)
	}

	w := stream.NewWriter()
	defer w.Release()

	if err := geometry.Encode(w, l.Geometry); err != nil {
		return nil, err
	}

	if l.ID != nil {
		if err := column.EncodeID(w, l.ID.Values, l.ID.ColumnType); err != nil {
			return nil, err
		}
	}

	for _, p := range l.Properties {
		if err := encodeProperty(w, p); err != nil {
			return nil, err
		}
	}

	buf = append(buf, w.Bytes()...)

	return buf, nil
}

