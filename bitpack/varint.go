// Package bitpack implements the lowest-level reversible byte transforms
// shared by every stream codec: varint (LEB128), zigzag, delta,
// componentwise delta, integer RLE, byte-RLE, little-endian packing, and
// FSST byte expansion. Every function here is a pure transform over
// in-memory slices; none of them know about stream headers or column
// roles.
package bitpack

import (
	"encoding/binary"

	"github.com/maplibre-tiles/mlt-go/errs"
	"github.com/maplibre-tiles/mlt-go/internal/pool"
)

// AppendUvarint appends the LEB128 encoding of v to buf.
func AppendUvarint(buf []byte, v uint64) []byte {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)

	return append(buf, tmp[:n]...)
}

// EncodeUvarints encodes values as back-to-back LEB128 varuints.
func EncodeUvarints(values []uint64) []byte {
	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	buf.Grow(len(values) * 2)
	for _, v := range values {
		buf.B = AppendUvarint(buf.B, v)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out
}

// EncodeUvarints32 is the u32 convenience wrapper over EncodeUvarints.
func EncodeUvarints32(values []uint32) []byte {
	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	buf.Grow(len(values) * 2)
	for _, v := range values {
		buf.B = AppendUvarint(buf.B, uint64(v))
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out
}

// DecodeUvarints parses exactly count back-to-back varuints from data.
// It returns errs.ErrBufferUnderflow (wrapped with offsets) if data runs
// out before count values are read.
func DecodeUvarints(data []byte, count int) ([]uint64, error) {
	values := make([]uint64, count)
	offset := 0

	for i := 0; i < count; i++ {
		v, n := binary.Uvarint(data[offset:])
		if n <= 0 {
			return nil, errs.NewBufferUnderflow(1, len(data)-offset)
		}

		values[i] = v
		offset += n
	}

	return values, nil
}

// DecodeUvarints32 is the u32 convenience wrapper over DecodeUvarints. It
// returns errs.ErrConversionOver if any decoded value exceeds 32 bits.
func DecodeUvarints32(data []byte, count int) ([]uint32, error) {
	values, err := DecodeUvarints(data, count)
	if err != nil {
		return nil, err
	}

	out := make([]uint32, count)
	for i, v := range values {
		if v > 0xFFFFFFFF {
			return nil, errs.ErrConversionOver
		}

		out[i] = uint32(v)
	}

	return out, nil
}

// ConsumeUvarint reads a single varuint from data starting at offset,
// returning the value and the number of bytes consumed.
func ConsumeUvarint(data []byte, offset int) (uint64, int, error) {
	v, n := binary.Uvarint(data[offset:])
	if n <= 0 {
		return 0, 0, errs.NewBufferUnderflow(1, len(data)-offset)
	}

	return v, n, nil
}
