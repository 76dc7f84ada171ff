package stream

import (
	"github.com/maplibre-tiles/mlt-go/bitpack"
	"github.com/maplibre-tiles/mlt-go/errs"
	"github.com/maplibre-tiles/mlt-go/format"
)

// EncodeU64 is the u64 counterpart of EncodeU32. FastPFOR is never a
// valid physical choice here (spec §4.2: "restricted to 32-bit streams").
func EncodeU64(tag format.PhysicalStreamTag, logical format.LogicalCodec, physical format.PhysicalCodec, values []uint64) (Meta, []byte, error) {
	words, metaA, metaB, err := logicalEncodeU64(logical, values)
	if err != nil {
		return Meta{}, nil, err
	}

	payload, err := physicalEncode64(physical, words)
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

// DecodeU64 reverses EncodeU64.
func DecodeU64(meta Meta, payload []byte) ([]uint64, error) {
	words, err := physicalDecode64(meta.Physical, payload, logicalWordCount64(meta))
	if err != nil {
		return nil, err
	}

	return logicalDecodeU64(meta, words)
}

// EncodeI64 is the signed counterpart of EncodeU64.
func EncodeI64(tag format.PhysicalStreamTag, logical format.LogicalCodec, physical format.PhysicalCodec, values []int64) (Meta, []byte, error) {
	words, metaA, metaB, err := logicalEncodeI64(logical, values)
	if err != nil {
		return Meta{}, nil, err
	}

	payload, err := physicalEncode64(physical, words)
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

// DecodeI64 reverses EncodeI64.
func DecodeI64(meta Meta, payload []byte) ([]int64, error) {
	words, err := physicalDecode64(meta.Physical, payload, logicalWordCount64(meta))
	if err != nil {
		return nil, err
	}

	return logicalDecodeI64(meta, words)
}

func logicalWordCount64(meta Meta) int {
	switch meta.Logical {
	case format.LogicalRle, format.LogicalDeltaRle:
		return 2 * int(meta.MetaA)
	default:
		return meta.NumValues
	}
}

func physicalEncode64(physical format.PhysicalCodec, words []uint64) ([]byte, error) {
	switch physical {
	case format.PhysicalNone:
		return bitpack.PackU64LE(words), nil
	case format.PhysicalVarInt:
		return bitpack.EncodeUvarints(words), nil
	case format.PhysicalFastPFOR:
		return nil, errs.NewUnsupportedPhysicalCodec("FastPFOR for u64")
	case format.PhysicalAlp:
		return nil, errs.NewUnsupportedPhysicalCodec("Alp")
	default:
		return nil, errs.NewUnsupportedPhysicalCodec(physical.String())
	}
}

func physicalDecode64(physical format.PhysicalCodec, data []byte, numValues int) ([]uint64, error) {
	switch physical {
	case format.PhysicalNone:
		return bitpack.UnpackU64LE(data)
	case format.PhysicalVarInt:
		return bitpack.DecodeUvarints(data, numValues)
	case format.PhysicalFastPFOR:
		return nil, errs.NewUnsupportedPhysicalCodec("FastPFOR for u64")
	case format.PhysicalAlp:
		return nil, errs.NewUnsupportedPhysicalCodec("Alp")
	default:
		return nil, errs.NewUnsupportedPhysicalCodec(physical.String())
	}
}

func logicalEncodeU64(logical format.LogicalCodec, values []uint64) (words []uint64, metaA, metaB uint64, err error) {
	switch logical {
	case format.LogicalNone:
		return values, 0, 0, nil
	case format.LogicalDelta:
		return bitpack.DeltaEncodeU64(values), 0, 0, nil
	case format.LogicalRle:
		runLengths, runValues, meta := bitpack.RleEncode64(values)

		return append(runLengths, runValues...), uint64(meta.Runs), uint64(meta.NumValues), nil
	case format.LogicalDeltaRle:
		deltaWords := bitpack.DeltaEncodeU64(values)
		runLengths, runValues, meta := bitpack.RleEncode64(deltaWords)

		return append(runLengths, runValues...), uint64(meta.Runs), uint64(meta.NumValues), nil
	case format.LogicalComponentwiseDelta:
		return nil, 0, 0, errs.NewUnsupportedLogicalCodec(logical.String(), "u64")
	case format.LogicalMorton:
		return nil, 0, 0, errs.NewUnsupportedLogicalCodec(logical.String(), "u64")
	case format.LogicalPseudoDecimal:
		return nil, 0, 0, errs.NewUnsupportedLogicalCodec(logical.String(), "u64")
	default:
		return nil, 0, 0, errs.NewInvalidEnum("logical-codec", uint8(logical))
	}
}

func logicalDecodeU64(meta Meta, words []uint64) ([]uint64, error) {
	switch meta.Logical {
	case format.LogicalNone:
		return words, nil
	case format.LogicalDelta:
		return bitpack.DeltaDecodeU64(words), nil
	case format.LogicalRle:
		return rleExpand64(words, meta)
	case format.LogicalDeltaRle:
		deltaWords, err := rleExpand64(words, meta)
		if err != nil {
			return nil, err
		}

		return bitpack.DeltaDecodeU64(deltaWords), nil
	default:
		return nil, errs.NewUnsupportedLogicalCodec(meta.Logical.String(), "u64")
	}
}

func rleExpand64(words []uint64, meta Meta) ([]uint64, error) {
	runs := int(meta.MetaA)
	if len(words) != 2*runs {
		return nil, errs.NewInvalidStreamData(2*runs, len(words))
	}

	runLengths := words[:runs]
	runValues := words[runs:]

	return bitpack.RleDecode64(runLengths, runValues, bitpack.RleMeta{Runs: runs, NumValues: int(meta.MetaB)})
}

func logicalEncodeI64(logical format.LogicalCodec, values []int64) (words []uint64, metaA, metaB uint64, err error) {
	switch logical {
	case format.LogicalNone:
		return bitcastI64ToU64(values), 0, 0, nil
	case format.LogicalDelta:
		return bitpack.DeltaEncode64(values), 0, 0, nil
	case format.LogicalRle:
		raw := bitcastI64ToU64(values)
		runLengths, runValues, meta := bitpack.RleEncode64(raw)

		return append(runLengths, runValues...), uint64(meta.Runs), uint64(meta.NumValues), nil
	case format.LogicalDeltaRle:
		deltaWords := bitpack.DeltaEncode64(values)
		runLengths, runValues, meta := bitpack.RleEncode64(deltaWords)

		return append(runLengths, runValues...), uint64(meta.Runs), uint64(meta.NumValues), nil
	default:
		return nil, 0, 0, errs.NewUnsupportedLogicalCodec(logical.String(), "i64")
	}
}

func logicalDecodeI64(meta Meta, words []uint64) ([]int64, error) {
	switch meta.Logical {
	case format.LogicalNone:
		return bitcastU64ToI64(words), nil
	case format.LogicalDelta:
		return bitpack.DeltaDecode64(words), nil
	case format.LogicalRle:
		raw, err := rleExpand64(words, meta)
		if err != nil {
			return nil, err
		}

		return bitcastU64ToI64(raw), nil
	case format.LogicalDeltaRle:
		deltaWords, err := rleExpand64(words, meta)
		if err != nil {
			return nil, err
		}

		return bitpack.DeltaDecode64(deltaWords), nil
	default:
		return nil, errs.NewUnsupportedLogicalCodec(meta.Logical.String(), "i64")
	}
}

func bitcastI64ToU64(values []int64) []uint64 {
	out := make([]uint64, len(values))
	for i, v := range values {
		out[i] = uint64(v)
	}

	return out
}

func bitcastU64ToI64(values []uint64) []int64 {
	out := make([]int64, len(values))
	for i, v := range values {
		out[i] = int64(v)
	}

	return out
}
