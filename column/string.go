package column

import (
	"github.com/maplibre-tiles/mlt-go/bitpack"
	"github.com/maplibre-tiles/mlt-go/errs"
	"github.com/maplibre-tiles/mlt-go/format"
	mltstrings "github.com/maplibre-tiles/mlt-go/strings"
	"github.com/maplibre-tiles/mlt-go/stream"
)

// DecodeString reads one of the three single-column string modes (spec.md
// §4.5: plain, dictionary, FSST), discriminated by peeking the tag of
// the stream following the optional present bitmap.
func DecodeString(r *stream.Reader, colType format.ColumnType, featureCount int) ([]*string, error) {
	present, err := readOptionalPresent(r, colType, featureCount)
	if err != nil {
		return nil, err
	}

	numPresent := featureCount
	if present != nil {
		numPresent = bitpack.Popcount(present)
	}

	tag, err := r.PeekTag()
	if err != nil {
		return nil, err
	}

	switch {
	case tag.Role() == format.RoleLength && tag.LengthKind() == format.LengthVarBinary:
		return decodePlainString(r, present, numPresent, featureCount)
	case tag.Role() == format.RoleLength && tag.LengthKind() == format.LengthSymbol:
		return decodeFsstString(r, present, numPresent, featureCount)
	case tag.Role() == format.RoleLength && tag.LengthKind() == format.LengthDictionary:
		return decodeDictionaryString(r, present, numPresent, featureCount)
	default:
		return nil, errs.NewInvalidEnum("string-mode-tag", uint8(tag))
	}
}

func decodePlainString(r *stream.Reader, present []bool, numPresent, featureCount int) ([]*string, error) {
	lengths, err := readLengthStream(r)
	if err != nil {
		return nil, err
	}

	_, data, err := r.Next()
	if err != nil {
		return nil, err
	}

	return mltstrings.DecodePlain(present, lengths, data, featureCount)
}

func decodeDictionaryString(r *stream.Reader, present []bool, numPresent, featureCount int) ([]*string, error) {
	lengths, dictData, err := readDictionaryBody(r)
	if err != nil {
		return nil, err
	}

	offsets, err := readOffsetStream(r, numPresent)
	if err != nil {
		return nil, err
	}

	return mltstrings.DecodeDictionary(present, lengths, dictData, offsets, featureCount)
}

func decodeFsstString(r *stream.Reader, present []bool, numPresent, featureCount int) ([]*string, error) {
	symLengths, err := readLengthStream(r)
	if err != nil {
		return nil, err
	}

	_, symTable, err := r.Next()
	if err != nil {
		return nil, err
	}

	dictLengths, dictData, err := readDictionaryBody(r)
	if err != nil {
		return nil, err
	}

	offsets, err := readOffsetStream(r, numPresent)
	if err != nil {
		return nil, err
	}

	return mltstrings.DecodeFsst(present, symLengths, symTable, dictLengths, dictData, offsets, featureCount)
}

// EncodeString serializes values into colType's wire shape. mode selects
// which of the three string encodings to use; the layer encoder always
// passes format.DictSingle (Dictionary mode).
func EncodeString(w *stream.Writer, values []*string, colType format.ColumnType, mode format.DictKind) error {
	present := make([]bool, len(values))
	for i, v := range values {
		present[i] = v != nil
	}

	if colType.IsOptional() {
		writePresentBitmap(w, present)
	}

	switch mode {
	case format.DictNone:
		_, lengths, data := mltstrings.EncodePlain(values)
		writeLengthStream(w, format.TagLengthVarBinary, lengths)
		w.WriteStream(stream.Meta{
			Tag: format.TagDataPlain, Logical: format.LogicalNone, Physical: format.PhysicalNone,
			NumValues: len(data), ByteLength: len(data),
		}, data)
	case format.DictSingle:
		_, lengths, dictData, offsets, err := mltstrings.EncodeDictionary(values)
		if err != nil {
			return err
		}

		writeDictionaryBody(w, lengths, dictData)
		writeOffsetStream(w, offsets)
	case format.DictFsst:
		_, _, _, offsets, err := mltstrings.EncodeDictionary(values)
		if err != nil {
			return err
		}

		dict := distinctValues(values)
		symLengths, symTable, dictLengths, compressed := mltstrings.EncodeFsstDictionary(dict)

		writeLengthStream(w, format.TagLengthSymbol, symLengths)
		w.WriteStream(stream.Meta{
			Tag: format.TagDataFsst, Logical: format.LogicalNone, Physical: format.PhysicalNone,
			NumValues: len(symTable), ByteLength: len(symTable),
		}, symTable)
		writeLengthStream(w, format.TagLengthDictionary, dictLengths)
		w.WriteStream(stream.Meta{
			Tag: format.TagDataSingle, Logical: format.LogicalNone, Physical: format.PhysicalNone,
			NumValues: len(compressed), ByteLength: len(compressed),
		}, compressed)
		writeOffsetStream(w, offsets)
	default:
		return errs.NewInvalidEnum("string-mode", uint8(mode))
	}

	return nil
}

// distinctValues mirrors the interning EncodeDictionary performs,
// producing the same dictionary entries in assignment order so the FSST
// symbol table is built over the same strings the dictionary stream holds.
func distinctValues(values []*string) []string {
	interner := mltstrings.NewInterner()

	for _, v := range values {
		if v == nil {
			continue
		}

		_, _ = interner.Intern(*v)
	}

	return interner.Values()
}

func readLengthStream(r *stream.Reader) ([]uint32, error) {
	meta, payload, err := r.Next()
	if err != nil {
		return nil, err
	}

	if meta.Tag.Role() != format.RoleLength {
		return nil, errs.NewInvalidEnum("stream-role", uint8(meta.Tag.Role()))
	}

	return stream.DecodeU32(meta, payload)
}

func readOffsetStream(r *stream.Reader, expected int) ([]uint32, error) {
	meta, payload, err := r.Next()
	if err != nil {
		return nil, err
	}

	if meta.Tag.Role() != format.RoleOffset {
		return nil, errs.NewInvalidEnum("stream-role", uint8(meta.Tag.Role()))
	}

	if meta.NumValues != expected {
		return nil, errs.NewInvalidStreamData(expected, meta.NumValues)
	}

	return stream.DecodeU32(meta, payload)
}

func readDictionaryBody(r *stream.Reader) (lengths []uint32, data []byte, err error) {
	lengths, err = readLengthStream(r)
	if err != nil {
		return nil, nil, err
	}

	_, data, err = r.Next()
	if err != nil {
		return nil, nil, err
	}

	return lengths, data, nil
}

func writeDictionaryBody(w *stream.Writer, lengths []uint32, dictData []byte) {
	writeLengthStream(w, format.TagLengthDictionary, lengths)
	w.WriteStream(stream.Meta{
		Tag: format.TagDataSingle, Logical: format.LogicalNone, Physical: format.PhysicalNone,
		NumValues: len(dictData), ByteLength: len(dictData),
	}, dictData)
}

func writeLengthStream(w *stream.Writer, tag format.PhysicalStreamTag, lengths []uint32) {
	meta, payload, err := stream.EncodeU32(tag, format.LogicalNone, format.PhysicalVarInt, lengths)
	if err != nil {
		// lengths encoding with LogicalNone/PhysicalVarInt over a u32
		// slice cannot fail; this mirrors the teacher's pattern of
		// asserting away impossible errors at call sites that control
		// both operands.
		panic(err)
	}

	w.WriteStream(meta, payload)
}

func writeOffsetStream(w *stream.Writer, offsets []uint32) {
	meta, payload, err := stream.EncodeU32(format.TagOffsetString, format.LogicalNone, format.PhysicalVarInt, offsets)
	if err != nil {
		panic(err)
	}

	w.WriteStream(meta, payload)
}
