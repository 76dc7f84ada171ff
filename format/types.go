// Package format defines the on-wire enumerations shared by every mlt-go
// package: column types, logical/physical stream codecs, and the
// sub-tags that distinguish stream roles (present/data/offset/length).
package format

// ColumnType is the tag byte identifying a Layer01 column's role and
// physical scalar type.
type ColumnType uint8

const (
	ColumnID        ColumnType = 0
	ColumnOptID     ColumnType = 1
	ColumnLongID    ColumnType = 2
	ColumnOptLongID ColumnType = 3
	ColumnGeometry  ColumnType = 4
	ColumnBool      ColumnType = 5
	ColumnOptBool   ColumnType = 6
	ColumnI8        ColumnType = 7
	ColumnOptI8     ColumnType = 8
	ColumnU8        ColumnType = 9
	ColumnOptU8     ColumnType = 10
	ColumnI32       ColumnType = 11
	ColumnOptI32    ColumnType = 12
	ColumnU32       ColumnType = 13
	ColumnOptU32    ColumnType = 14
	ColumnI64       ColumnType = 15
	ColumnOptI64    ColumnType = 16
	ColumnU64       ColumnType = 17
	ColumnOptU64    ColumnType = 18
	ColumnF32       ColumnType = 19
	ColumnOptF32    ColumnType = 20
	ColumnF64       ColumnType = 21
	ColumnOptF64    ColumnType = 22
	ColumnStr       ColumnType = 23
	ColumnOptStr    ColumnType = 24
	ColumnStruct    ColumnType = 25
)

func (c ColumnType) String() string {
	switch c {
	case ColumnID:
		return "Id"
	case ColumnOptID:
		return "OptId"
	case ColumnLongID:
		return "LongId"
	case ColumnOptLongID:
		return "OptLongId"
	case ColumnGeometry:
		return "Geometry"
	case ColumnBool:
		return "Bool"
	case ColumnOptBool:
		return "OptBool"
	case ColumnI8:
		return "I8"
	case ColumnOptI8:
		return "OptI8"
	case ColumnU8:
		return "U8"
	case ColumnOptU8:
		return "OptU8"
	case ColumnI32:
		return "I32"
	case ColumnOptI32:
		return "OptI32"
	case ColumnU32:
		return "U32"
	case ColumnOptU32:
		return "OptU32"
	case ColumnI64:
		return "I64"
	case ColumnOptI64:
		return "OptI64"
	case ColumnU64:
		return "U64"
	case ColumnOptU64:
		return "OptU64"
	case ColumnF32:
		return "F32"
	case ColumnOptF32:
		return "OptF32"
	case ColumnF64:
		return "F64"
	case ColumnOptF64:
		return "OptF64"
	case ColumnStr:
		return "Str"
	case ColumnOptStr:
		return "OptStr"
	case ColumnStruct:
		return "Struct"
	default:
		return "Unknown"
	}
}

// IsOptional reports whether the column carries a present bitmap.
func (c ColumnType) IsOptional() bool {
	switch c {
	case ColumnOptID, ColumnOptLongID, ColumnOptBool, ColumnOptI8, ColumnOptU8,
		ColumnOptI32, ColumnOptU32, ColumnOptI64, ColumnOptU64, ColumnOptF32,
		ColumnOptF64, ColumnOptStr:
		return true
	default:
		return false
	}
}

// GeometryType is the per-feature geometry tag, ordinal 0..=5.
type GeometryType uint8

const (
	GeometryPoint GeometryType = iota
	GeometryLineString
	GeometryPolygon
	GeometryMultiPoint
	GeometryMultiLineString
	GeometryMultiPolygon
)

func (g GeometryType) String() string {
	switch g {
	case GeometryPoint:
		return "Point"
	case GeometryLineString:
		return "LineString"
	case GeometryPolygon:
		return "Polygon"
	case GeometryMultiPoint:
		return "MultiPoint"
	case GeometryMultiLineString:
		return "MultiLineString"
	case GeometryMultiPolygon:
		return "MultiPolygon"
	default:
		return "Unknown"
	}
}

// IsMulti reports whether the geometry type is the "Multi*" variant of its family.
func (g GeometryType) IsMulti() bool {
	return g == GeometryMultiPoint || g == GeometryMultiLineString || g == GeometryMultiPolygon
}

// LogicalCodec is the reversible transform applied after physical integer recovery.
type LogicalCodec uint8

const (
	LogicalNone LogicalCodec = iota
	LogicalDelta
	LogicalComponentwiseDelta
	LogicalRle
	LogicalDeltaRle // DeltaRle is stored as Rle on the wire with a delta applied before RLE-encoding.
	LogicalMorton
	LogicalPseudoDecimal
)

func (l LogicalCodec) String() string {
	switch l {
	case LogicalNone:
		return "None"
	case LogicalDelta:
		return "Delta"
	case LogicalComponentwiseDelta:
		return "ComponentwiseDelta"
	case LogicalRle:
		return "Rle"
	case LogicalDeltaRle:
		return "DeltaRle"
	case LogicalMorton:
		return "Morton"
	case LogicalPseudoDecimal:
		return "PseudoDecimal"
	default:
		return "Unknown"
	}
}

// WireValue returns the 3-bit on-wire discriminant. DeltaRle is not a
// distinct wire value: it is Rle (wire) with an extra "delta applied"
// flag bit that the stream package sets in the codec byte's flags field.
func (l LogicalCodec) WireValue() uint8 {
	if l == LogicalDeltaRle {
		return uint8(LogicalRle)
	}

	return uint8(l)
}

// PhysicalCodec is the integer decoder applied to raw stream bytes.
type PhysicalCodec uint8

const (
	PhysicalNone PhysicalCodec = iota
	PhysicalVarInt
	PhysicalFastPFOR
	PhysicalAlp // reserved, always rejected
)

func (p PhysicalCodec) String() string {
	switch p {
	case PhysicalNone:
		return "None"
	case PhysicalVarInt:
		return "VarInt"
	case PhysicalFastPFOR:
		return "FastPFOR"
	case PhysicalAlp:
		return "Alp"
	default:
		return "Unknown"
	}
}

// StreamRole is the physical_type tag naming the role a stream plays within a column.
type StreamRole uint8

const (
	RolePresent StreamRole = iota
	RoleData
	RoleOffset
	RoleLength
)

func (r StreamRole) String() string {
	switch r {
	case RolePresent:
		return "Present"
	case RoleData:
		return "Data"
	case RoleOffset:
		return "Offset"
	case RoleLength:
		return "Length"
	default:
		return "Unknown"
	}
}

// DictKind sub-tags a Data-role stream.
type DictKind uint8

const (
	DictNone   DictKind = iota // plain scalar/property data
	DictSingle                 // single shared dictionary blob (string dictionary)
	DictShared                 // struct shared dictionary
	DictVertex                 // vertex dictionary (geometry)
	DictFsst                   // FSST-compressed dictionary blob
)

// OffsetKind sub-tags an Offset-role stream.
type OffsetKind uint8

const (
	OffsetString OffsetKind = iota
	OffsetVertex
	OffsetIndex
)

// LengthKind sub-tags a Length-role stream.
type LengthKind uint8

const (
	LengthVarBinary LengthKind = iota // plain string lengths
	LengthDictionary
	LengthSymbol // FSST symbol table lengths
	LengthGeometries
	LengthParts
	LengthRings
	LengthTriangles
)

// CompressionType selects a general-purpose comparison codec used by the
// analyzer to report how MLT's stream codecs stack up against an
// off-the-shelf compressor. It has no bearing on the wire format: an MLT
// stream's size reduction comes entirely from its logical/physical codec
// pair, never from a secondary compression pass.
type CompressionType uint8

const (
	CompressionNone CompressionType = iota
	CompressionZstd
	CompressionS2
	CompressionLZ4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
