package stream

import (
	"github.com/maplibre-tiles/mlt-go/bitpack"
	"github.com/maplibre-tiles/mlt-go/errs"
	"github.com/maplibre-tiles/mlt-go/format"
)

// EncodeHeader serializes meta's header fields (not the payload bytes).
func EncodeHeader(meta Meta) []byte {
	out := make([]byte, 0, 16)
	out = append(out, byte(meta.Tag))
	out = append(out, packCodecByte(meta.Logical, meta.Physical))
	out = bitpack.AppendUvarint(out, uint64(meta.NumValues))
	out = bitpack.AppendUvarint(out, uint64(meta.ByteLength))

	if meta.HasRleMeta() {
		out = bitpack.AppendUvarint(out, meta.MetaA)
		out = bitpack.AppendUvarint(out, meta.MetaB)
	}

	return out
}

// DecodeHeader parses a stream header starting at data[0], returning the
// populated Meta (payload bytes not yet consumed) and the number of
// header bytes read.
func DecodeHeader(data []byte) (Meta, int, error) {
	if len(data) < 2 {
		return Meta{}, 0, errs.NewBufferUnderflow(2, len(data))
	}

	tag := format.PhysicalStreamTag(data[0])

	logical, physical, err := unpackCodecByte(data[1])
	if err != nil {
		return Meta{}, 0, err
	}

	offset := 2

	numValues, n, err := bitpack.ConsumeUvarint(data, offset)
	if err != nil {
		return Meta{}, 0, err
	}

	offset += n

	byteLength, n, err := bitpack.ConsumeUvarint(data, offset)
	if err != nil {
		return Meta{}, 0, err
	}

	offset += n

	meta := Meta{
		Tag:        tag,
		Logical:    logical,
		Physical:   physical,
		NumValues:  int(numValues),
		ByteLength: int(byteLength),
	}

	if meta.HasRleMeta() {
		a, n, err := bitpack.ConsumeUvarint(data, offset)
		if err != nil {
			return Meta{}, 0, err
		}

		offset += n

		b, n, err := bitpack.ConsumeUvarint(data, offset)
		if err != nil {
			return Meta{}, 0, err
		}

		offset += n

		meta.MetaA = a
		meta.MetaB = b
	}

	return meta, offset, nil
}

// deltaAppliedFlag lives in the low bit of the otherwise-reserved middle
// 3-bit field. It is the only way to tell DeltaRle apart from Rle on the
// wire, since DeltaRle shares Rle's 3-bit discriminant (format.LogicalCodec.WireValue).
const deltaAppliedFlag = 0x1

// packCodecByte bit-packs (logical:3 | flags:3 | physical:2) into one
// byte, MSB-first. flags' low bit is deltaAppliedFlag; the remaining two
// bits are reserved for a future secondary logical stage.
func packCodecByte(logical format.LogicalCodec, physical format.PhysicalCodec) byte {
	var flags byte
	if logical == format.LogicalDeltaRle {
		flags |= deltaAppliedFlag
	}

	return byte(logical.WireValue()&0x7)<<5 | (flags&0x7)<<2 | byte(physical&0x3)
}

func unpackCodecByte(b byte) (format.LogicalCodec, format.PhysicalCodec, error) {
	logicalBits := (b >> 5) & 0x7
	flags := (b >> 2) & 0x7
	physicalBits := b & 0x3

	logical, err := logicalFromWire(logicalBits, flags&deltaAppliedFlag != 0)
	if err != nil {
		return 0, 0, err
	}

	physical := format.PhysicalCodec(physicalBits)
	if physical > format.PhysicalAlp {
		return 0, 0, errs.NewInvalidEnum("physical-codec", physicalBits)
	}

	return logical, physical, nil
}

func logicalFromWire(v byte, deltaApplied bool) (format.LogicalCodec, error) {
	switch format.LogicalCodec(v) {
	case format.LogicalRle:
		if deltaApplied {
			return format.LogicalDeltaRle, nil
		}

		return format.LogicalRle, nil
	case format.LogicalNone, format.LogicalDelta, format.LogicalComponentwiseDelta,
		format.LogicalMorton, format.LogicalPseudoDecimal:
		return format.LogicalCodec(v), nil
	default:
		return 0, errs.NewInvalidEnum("logical-codec", v)
	}
}
