package format

// PhysicalStreamTag is the wire byte naming a stream's role and
// sub-kind in one value: the high 2 bits select the StreamRole, the low
// 6 bits select the role-specific sub-tag (DictKind for Data, OffsetKind
// for Offset, LengthKind for Length; Present streams never carry a
// sub-tag so it is always 0).
type PhysicalStreamTag uint8

const roleShift = 6

// NewStreamTag packs a role and sub-tag into a single wire byte.
func NewStreamTag(role StreamRole, sub uint8) PhysicalStreamTag {
	return PhysicalStreamTag(uint8(role)<<roleShift | (sub & 0x3F))
}

// Role extracts the StreamRole from the tag byte.
func (t PhysicalStreamTag) Role() StreamRole {
	return StreamRole(t >> roleShift)
}

// Sub extracts the role-specific sub-tag from the tag byte.
func (t PhysicalStreamTag) Sub() uint8 {
	return uint8(t) & 0x3F
}

// DictKind interprets Sub() as a DictKind; only meaningful when Role() == RoleData.
func (t PhysicalStreamTag) DictKind() DictKind {
	return DictKind(t.Sub())
}

// OffsetKind interprets Sub() as an OffsetKind; only meaningful when Role() == RoleOffset.
func (t PhysicalStreamTag) OffsetKind() OffsetKind {
	return OffsetKind(t.Sub())
}

// LengthKind interprets Sub() as a LengthKind; only meaningful when Role() == RoleLength.
func (t PhysicalStreamTag) LengthKind() LengthKind {
	return LengthKind(t.Sub())
}

// Well-known tags used throughout the column/geometry/strings packages.
var (
	TagPresent = NewStreamTag(RolePresent, 0)

	TagDataPlain  = NewStreamTag(RoleData, uint8(DictNone))
	TagDataSingle = NewStreamTag(RoleData, uint8(DictSingle))
	TagDataShared = NewStreamTag(RoleData, uint8(DictShared))
	TagDataVertex = NewStreamTag(RoleData, uint8(DictVertex))
	TagDataFsst   = NewStreamTag(RoleData, uint8(DictFsst))

	TagOffsetString = NewStreamTag(RoleOffset, uint8(OffsetString))
	TagOffsetVertex = NewStreamTag(RoleOffset, uint8(OffsetVertex))
	TagOffsetIndex  = NewStreamTag(RoleOffset, uint8(OffsetIndex))

	TagLengthVarBinary  = NewStreamTag(RoleLength, uint8(LengthVarBinary))
	TagLengthDictionary = NewStreamTag(RoleLength, uint8(LengthDictionary))
	TagLengthSymbol     = NewStreamTag(RoleLength, uint8(LengthSymbol))
	TagLengthGeometries = NewStreamTag(RoleLength, uint8(LengthGeometries))
	TagLengthParts      = NewStreamTag(RoleLength, uint8(LengthParts))
	TagLengthRings      = NewStreamTag(RoleLength, uint8(LengthRings))
	TagLengthTriangles  = NewStreamTag(RoleLength, uint8(LengthTriangles))
)

// IsPresentRole reports whether the tag marks a present/boolean bitmap
// stream, which elides the RLE meta varuints on the wire.
func (t PhysicalStreamTag) IsPresentRole() bool {
	return t.Role() == RolePresent
}
