package layer

import (
	"github.com/maplibre-tiles/mlt-go/column"
	"github.com/maplibre-tiles/mlt-go/errs"
	"github.com/maplibre-tiles/mlt-go/format"
	"github.com/maplibre-tiles/mlt-go/stream"
)

func decodeProperty(r *stream.Reader, m columnMeta, featureCount int) (Property, error) {
	p := Property{Name: m.name, ColumnType: m.colType}

	switch m.colType {
	case format.ColumnBool, format.ColumnOptBool,
		format.ColumnI8, format.ColumnOptI8, format.ColumnU8, format.ColumnOptU8,
		format.ColumnI32, format.ColumnOptI32, format.ColumnU32, format.ColumnOptU32,
		format.ColumnI64, format.ColumnOptI64, format.ColumnU64, format.ColumnOptU64,
		format.ColumnF32, format.ColumnOptF32, format.ColumnF64, format.ColumnOptF64:
		scalar, err := column.DecodeScalar(r, m.colType, featureCount)
		if err != nil {
			return Property{}, err
		}

		p.Scalar = scalar
	case format.ColumnStr, format.ColumnOptStr:
		values, err := column.DecodeString(r, m.colType, featureCount)
		if err != nil {
			return Property{}, err
		}

		p.Strings = values
	case format.ColumnStruct:
		s, err := column.DecodeStruct(r, m.childNames, featureCount)
		if err != nil {
			return Property{}, err
		}

		p.Struct = s
	default:
		return Property{}, errs.NewInvalidEnum("column-type", uint8(m.colType))
	}

	return p, nil
}

func encodeProperty(w *stream.Writer, p Property) error {
	switch p.ColumnType {
	case format.ColumnStruct:
		return column.EncodeStruct(w, p.Struct)
	case format.ColumnStr, format.ColumnOptStr:
		// String mode selection isn't part of the numeric auto-encoder
		// (spec §4.8 scopes Sample/Profile/Prune/Compete to integer
		// streams); Dictionary is the mode that wins for the
		// low-cardinality string columns vector tiles mostly carry
		// (road classes, place kinds), so it's the fixed default here.
		return column.EncodeString(w, p.Strings, p.ColumnType, format.DictSingle)
	default:
		return column.EncodeScalar(w, p.Scalar, p.ColumnType)
	}
}

// childNames reports the struct field names a property's columnMeta
// should carry, empty for every non-Struct column.
func (p Property) childNames() []string {
	if p.Struct == nil {
		return nil
	}

	return p.Struct.ChildNames
}
