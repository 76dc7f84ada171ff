package layer

import (
	"github.com/maplibre-tiles/mlt-go/bitpack"
	"github.com/maplibre-tiles/mlt-go/errs"
	"github.com/maplibre-tiles/mlt-go/format"
)

// columnMeta is one column metadata record (spec.md §4.7): a ColumnType
// tag byte, a name for every non-geometry column, and — for Struct
// columns only — the sibling field names sharing one dictionary.
type columnMeta struct {
	colType    format.ColumnType
	name       string
	childNames []string
}

func parseColumnMeta(data []byte, offset int) (columnMeta, int, error) {
	start := offset

	if offset >= len(data) {
		return columnMeta{}, 0, errs.NewBufferUnderflow(1, len(data)-offset)
	}

	colType := format.ColumnType(data[offset])
	offset++

	if colType > format.ColumnStruct {
		return columnMeta{}, 0, errs.NewInvalidEnum("column-type", uint8(colType))
	}

	m := columnMeta{colType: colType}

	if colType != format.ColumnGeometry {
		name, n, err := readString(data, offset)
		if err != nil {
			return columnMeta{}, 0, err
		}

		m.name = name
		offset += n
	}

	if colType == format.ColumnStruct {
		count, n, err := bitpack.ConsumeUvarint(data, offset)
		if err != nil {
			return columnMeta{}, 0, err
		}

		offset += n

		m.childNames = make([]string, count)

		for i := range m.childNames {
			child, cn, err := readString(data, offset)
			if err != nil {
				return columnMeta{}, 0, err
			}

			m.childNames[i] = child
			offset += cn
		}
	}

	return m, offset - start, nil
}

func appendColumnMeta(buf []byte, m columnMeta) []byte {
	buf = append(buf, byte(m.colType))

	if m.colType != format.ColumnGeometry {
		buf = appendString(buf, m.name)
	}

	if m.colType == format.ColumnStruct {
		buf = bitpack.AppendUvarint(buf, uint64(len(m.childNames)))
		for _, c := range m.childNames {
			buf = appendString(buf, c)
		}
	}

	return buf
}
