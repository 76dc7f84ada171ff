package stream

import (
	"github.com/maplibre-tiles/mlt-go/bitpack"
	"github.com/maplibre-tiles/mlt-go/errs"
	"github.com/maplibre-tiles/mlt-go/fastpfor"
	"github.com/maplibre-tiles/mlt-go/format"
)

// EncodeU32 encodes values with the given logical/physical codec pair,
// returning the populated header meta (NumValues/ByteLength/MetaA/MetaB
// filled in; Tag must already be set by the caller) and the payload
// bytes.
func EncodeU32(tag format.PhysicalStreamTag, logical format.LogicalCodec, physical format.PhysicalCodec, values []uint32) (Meta, []byte, error) {
	words, metaA, metaB, err := logicalEncodeU32(logical, values)
	if err != nil {
		return Meta{}, nil, err
	}

	payload, err := physicalEncode32(physical, words)
	if err != nil {
		return Meta{}, nil, err
	}

	meta := Meta{
		Tag:        tag,
		Logical:    logical,
		Physical:   physical,
		NumValues:  len(values),
		ByteLength: len(payload),
		MetaA:      metaA,
		MetaB:      metaB,
	}

	return meta, payload, nil
}

// DecodeU32 reverses EncodeU32.
func DecodeU32(meta Meta, payload []byte) ([]uint32, error) {
	words, err := physicalDecode32(meta.Physical, payload, logicalWordCount32(meta))
	if err != nil {
		return nil, err
	}

	return logicalDecodeU32(meta, words)
}

// EncodeI32 is the signed counterpart of EncodeU32, used for vertex and
// signed property columns. None/Rle reinterpret the int32 bit pattern
// directly; Delta/ComponentwiseDelta apply zigzag.
func EncodeI32(tag format.PhysicalStreamTag, logical format.LogicalCodec, physical format.PhysicalCodec, values []int32) (Meta, []byte, error) {
	words, metaA, metaB, err := logicalEncodeI32(logical, values)
	if err != nil {
		return Meta{}, nil, err
	}

	payload, err := physicalEncode32(physical, words)
	if err != nil {
		return Meta{}, nil, err
	}

	meta := Meta{
		Tag:        tag,
		Logical:    logical,
		Physical:   physical,
		NumValues:  len(values),
		ByteLength: len(payload),
		MetaA:      metaA,
		MetaB:      metaB,
	}

	return meta, payload, nil
}

// DecodeI32 reverses EncodeI32.
func DecodeI32(meta Meta, payload []byte) ([]int32, error) {
	words, err := physicalDecode32(meta.Physical, payload, logicalWordCount32(meta))
	if err != nil {
		return nil, err
	}

	return logicalDecodeI32(meta, words)
}

// logicalWordCount32 returns how many physical words must be recovered
// before the logical transform runs: for Rle/DeltaRle this is twice
// MetaA (the run count: run lengths then run values), not NumValues.
func logicalWordCount32(meta Meta) int {
	switch meta.Logical {
	case format.LogicalRle, format.LogicalDeltaRle:
		return 2 * int(meta.MetaA)
	default:
		return meta.NumValues
	}
}

func physicalEncode32(physical format.PhysicalCodec, words []uint32) ([]byte, error) {
	switch physical {
	case format.PhysicalNone:
		return bitpack.PackU32LE(words), nil
	case format.PhysicalVarInt:
		return bitpack.EncodeUvarints32(words), nil
	case format.PhysicalFastPFOR:
		return fastpfor.Encode(words), nil
	case format.PhysicalAlp:
		return nil, errs.NewUnsupportedPhysicalCodec("Alp")
	default:
		return nil, errs.NewUnsupportedPhysicalCodec(physical.String())
	}
}

func physicalDecode32(physical format.PhysicalCodec, data []byte, numValues int) ([]uint32, error) {
	switch physical {
	case format.PhysicalNone:
		return bitpack.UnpackU32LE(data)
	case format.PhysicalVarInt:
		return bitpack.DecodeUvarints32(data, numValues)
	case format.PhysicalFastPFOR:
		return fastpfor.Decode(data, numValues)
	case format.PhysicalAlp:
		return nil, errs.NewUnsupportedPhysicalCodec("Alp")
	default:
		return nil, errs.NewUnsupportedPhysicalCodec(physical.String())
	}
}

func logicalEncodeU32(logical format.LogicalCodec, values []uint32) (words []uint32, metaA, metaB uint64, err error) {
	switch logical {
	case format.LogicalNone:
		return values, 0, 0, nil
	case format.LogicalDelta:
		return bitpack.DeltaEncodeU32(values), 0, 0, nil
	case format.LogicalRle:
		runLengths, runValues, meta := bitpack.RleEncode32(values)

		return append(runLengths, runValues...), uint64(meta.Runs), uint64(meta.NumValues), nil
	case format.LogicalDeltaRle:
		deltaWords := bitpack.DeltaEncodeU32(values)
		runLengths, runValues, meta := bitpack.RleEncode32(deltaWords)

		return append(runLengths, runValues...), uint64(meta.Runs), uint64(meta.NumValues), nil
	case format.LogicalComponentwiseDelta:
		return nil, 0, 0, errs.NewUnsupportedLogicalCodec(logical.String(), "u32 (use i32 vertex pairs)")
	case format.LogicalMorton:
		return nil, 0, 0, errs.NewNotImplemented("Morton encode")
	case format.LogicalPseudoDecimal:
		return nil, 0, 0, errs.NewUnsupportedLogicalCodec(logical.String(), "u32")
	default:
		return nil, 0, 0, errs.NewInvalidEnum("logical-codec", uint8(logical))
	}
}

func logicalDecodeU32(meta Meta, words []uint32) ([]uint32, error) {
	switch meta.Logical {
	case format.LogicalNone:
		return words, nil
	case format.LogicalDelta:
		return bitpack.DeltaDecodeU32(words), nil
	case format.LogicalRle:
		return rleExpand32(words, meta)
	case format.LogicalDeltaRle:
		deltaWords, err := rleExpand32(words, meta)
		if err != nil {
			return nil, err
		}

		return bitpack.DeltaDecodeU32(deltaWords), nil
	case format.LogicalMorton:
		return mortonDecodeU32(words, meta)
	case format.LogicalComponentwiseDelta:
		return nil, errs.NewUnsupportedLogicalCodec(meta.Logical.String(), "u32 (use i32 vertex pairs)")
	case format.LogicalPseudoDecimal:
		return nil, errs.NewUnsupportedLogicalCodec(meta.Logical.String(), "u32")
	default:
		return nil, errs.NewInvalidEnum("logical-codec", uint8(meta.Logical))
	}
}

func rleExpand32(words []uint32, meta Meta) ([]uint32, error) {
	runs := int(meta.MetaA)
	if len(words) != 2*runs {
		return nil, errs.NewInvalidStreamData(2*runs, len(words))
	}

	runLengths := words[:runs]
	runValues := words[runs:]

	return bitpack.RleDecode32(runLengths, runValues, bitpack.RleMeta{Runs: runs, NumValues: int(meta.MetaB)})
}

func logicalEncodeI32(logical format.LogicalCodec, values []int32) (words []uint32, metaA, metaB uint64, err error) {
	switch logical {
	case format.LogicalNone:
		return bitcastI32ToU32(values), 0, 0, nil
	case format.LogicalDelta:
		return bitpack.DeltaEncode32(values), 0, 0, nil
	case format.LogicalComponentwiseDelta:
		words, err := bitpack.ComponentwiseDeltaEncode32(values)

		return words, 0, 0, err
	case format.LogicalRle:
		raw := bitcastI32ToU32(values)
		runLengths, runValues, meta := bitpack.RleEncode32(raw)

		return append(runLengths, runValues...), uint64(meta.Runs), uint64(meta.NumValues), nil
	case format.LogicalDeltaRle:
		deltaWords := bitpack.DeltaEncode32(values)
		runLengths, runValues, meta := bitpack.RleEncode32(deltaWords)

		return append(runLengths, runValues...), uint64(meta.Runs), uint64(meta.NumValues), nil
	case format.LogicalMorton:
		return nil, 0, 0, errs.NewNotImplemented("Morton encode")
	case format.LogicalPseudoDecimal:
		return nil, 0, 0, errs.NewUnsupportedLogicalCodec(logical.String(), "i32")
	default:
		return nil, 0, 0, errs.NewInvalidEnum("logical-codec", uint8(logical))
	}
}

func logicalDecodeI32(meta Meta, words []uint32) ([]int32, error) {
	switch meta.Logical {
	case format.LogicalNone:
		return bitcastU32ToI32(words), nil
	case format.LogicalDelta:
		return bitpack.DeltaDecode32(words), nil
	case format.LogicalComponentwiseDelta:
		return bitpack.ComponentwiseDeltaDecode32(words)
	case format.LogicalRle:
		raw, err := rleExpand32(words, meta)
		if err != nil {
			return nil, err
		}

		return bitcastU32ToI32(raw), nil
	case format.LogicalDeltaRle:
		deltaWords, err := rleExpand32(words, meta)
		if err != nil {
			return nil, err
		}

		return bitpack.DeltaDecode32(deltaWords), nil
	case format.LogicalMorton:
		u32s, err := mortonDecodeU32(words, meta)
		if err != nil {
			return nil, err
		}

		return bitcastU32ToI32(u32s), nil
	case format.LogicalPseudoDecimal:
		return nil, errs.NewUnsupportedLogicalCodec(meta.Logical.String(), "i32")
	default:
		return nil, errs.NewInvalidEnum("logical-codec", uint8(meta.Logical))
	}
}

func bitcastI32ToU32(values []int32) []uint32 {
	out := make([]uint32, len(values))
	for i, v := range values {
		out[i] = uint32(v)
	}

	return out
}

func bitcastU32ToI32(values []uint32) []int32 {
	out := make([]int32, len(values))
	for i, v := range values {
		out[i] = int32(v)
	}

	return out
}

// mortonDecodeU32 is a decode-only logical stage (spec §4.8: Morton is
// "reserved in this core for decode only"); the meta pair carries the
// coordinate shift in MetaA.
func mortonDecodeU32(words []uint32, meta Meta) ([]uint32, error) {
	shift := uint(meta.MetaA)

	out := make([]uint32, 0, len(words)*2)
	for _, code := range words {
		x, y, err := mortonDecodeXY(uint64(code), shift)
		if err != nil {
			return nil, err
		}

		out = append(out, x, y)
	}

	return out, nil
}

func mortonDecodeXY(code uint64, shift uint) (x, y uint32, err error) {
	if shift > 32 {
		return 0, 0, errs.ErrShiftTooLarge
	}

	xu := deinterleaveBits(code)
	yu := deinterleaveBits(code >> 1)

	if xu < uint64(shift) || yu < uint64(shift) {
		return 0, 0, errs.ErrSubtractOverflow
	}

	return uint32(xu - uint64(shift)), uint32(yu - uint64(shift)), nil
}

// deinterleaveBits extracts every other bit starting at bit 0 of code
// (the classic Morton "compact bits" operation for 32-bit coordinates).
func deinterleaveBits(code uint64) uint64 {
	x := code & 0x5555555555555555
	x = (x | (x >> 1)) & 0x3333333333333333
	x = (x | (x >> 2)) & 0x0f0f0f0f0f0f0f0f
	x = (x | (x >> 4)) & 0x00ff00ff00ff00ff
	x = (x | (x >> 8)) & 0x0000ffff0000ffff
	x = (x | (x >> 16)) & 0x00000000ffffffff

	return x
}
