// Package fastpfor implements the FastPFOR physical codec: a block-of-256
// bit-packed integer codec with a variable-byte exception list for
// outlier values, composed with a plain variable-byte fallback for the
// final partial block. This is the only physical codec restricted to
// 32-bit streams (spec: "FastPFOR is restricted to 32-bit streams;
// 64-bit streams must use VarInt").
//
// Wire contract: Encode emits the composite byte stream in order and
// zero-pads it to a multiple of 4 bytes; the bytes are not regrouped or
// reordered as big-endian u32 words. Decode reads the same byte stream
// and ignores trailing padding beyond what num_values requires.
package fastpfor

import (
	"encoding/binary"

	"github.com/maplibre-tiles/mlt-go/bitpack"
	"github.com/maplibre-tiles/mlt-go/errs"
)

// BlockSize is the number of values FastPFor bit-packs per block. Any
// remainder shorter than BlockSize falls back to plain variable-byte.
const BlockSize = 256

// exceptionPercentile selects the bit width a block packs at: values
// whose bit length exceeds the width at this percentile become patched
// exceptions rather than inflating every value in the block.
const exceptionPercentile = 0.9

// Encode packs values using block-of-256 FastPFor bit-packing (with a
// variable-byte exception list per block) followed by plain
// variable-byte encoding of any trailing partial block, then zero-pads the
// result to a 4-byte boundary (no byte reordering).
func Encode(values []uint32) []byte {
	body := make([]byte, 0, len(values)*2)

	i := 0
	for ; i+BlockSize <= len(values); i += BlockSize {
		body = appendBlock(body, values[i:i+BlockSize])
	}

	// Tail: fewer than BlockSize values remain, fall back to VariableByte.
	for ; i < len(values); i++ {
		body = bitpack.AppendUvarint(body, uint64(values[i]))
	}

	// Pad to a 4-byte boundary with zero bytes.
	for len(body)%4 != 0 {
		body = append(body, 0)
	}

	return body
}

// Decode reverses Encode, reconstructing exactly numValues uint32s. data
// may carry trailing zero-padding words beyond what numValues requires.
func Decode(data []byte, numValues int) ([]uint32, error) {
	out := make([]uint32, 0, numValues)

	offset := 0
	fullBlocks := numValues / BlockSize

	for b := 0; b < fullBlocks; b++ {
		block, n, err := readBlock(data[offset:])
		if err != nil {
			return nil, err
		}

		out = append(out, block...)
		offset += n
	}

	remaining := numValues - fullBlocks*BlockSize
	for r := 0; r < remaining; r++ {
		v, n, err := bitpack.ConsumeUvarint(data, offset)
		if err != nil {
			return nil, err
		}

		out = append(out, uint32(v))
		offset += n
	}

	if len(out) != numValues {
		return nil, errs.NewInvalidStreamData(numValues, len(out))
	}

	return out, nil
}

func appendBlock(body []byte, block []uint32) []byte {
	bitWidth := percentileBitWidth(block, exceptionPercentile)

	type exception struct {
		pos int
		val uint32
	}

	var exceptions []exception

	masked := make([]uint32, len(block))
	for i, v := range block {
		if bitLen(v) > bitWidth {
			exceptions = append(exceptions, exception{pos: i, val: v})
			masked[i] = v & lowMask(bitWidth)
		} else {
			masked[i] = v
		}
	}

	body = append(body, byte(bitWidth))
	body = append(body, bitPack(masked, bitWidth)...)
	body = bitpack.AppendUvarint(body, uint64(len(exceptions)))

	for _, ex := range exceptions {
		body = bitpack.AppendUvarint(body, uint64(ex.pos))
		body = bitpack.AppendUvarint(body, uint64(ex.val))
	}

	return body
}

func readBlock(data []byte) ([]uint32, int, error) {
	if len(data) < 1 {
		return nil, 0, errs.NewBufferUnderflow(1, len(data))
	}

	bitWidth := int(data[0])
	offset := 1

	packedLen := (BlockSize*bitWidth + 7) / 8
	if offset+packedLen > len(data) {
		return nil, 0, errs.NewBufferUnderflow(packedLen, len(data)-offset)
	}

	values := bitUnpack(data[offset:offset+packedLen], bitWidth, BlockSize)
	offset += packedLen

	numExceptions, n, err := bitpack.ConsumeUvarint(data, offset)
	if err != nil {
		return nil, 0, err
	}

	offset += n

	for e := uint64(0); e < numExceptions; e++ {
		pos, n, err := bitpack.ConsumeUvarint(data, offset)
		if err != nil {
			return nil, 0, err
		}

		offset += n

		val, n, err := bitpack.ConsumeUvarint(data, offset)
		if err != nil {
			return nil, 0, err
		}

		offset += n

		if int(pos) >= len(values) {
			return nil, 0, errs.NewInvalidStreamData(len(values), int(pos))
		}

		values[pos] = uint32(val)
	}

	return values, offset, nil
}

func percentileBitWidth(block []uint32, percentile float64) int {
	widths := make([]int, len(block))
	for i, v := range block {
		widths[i] = bitLen(v)
	}

	sorted := append([]int(nil), widths...)
	insertionSort(sorted)

	idx := int(float64(len(sorted)-1) * percentile)

	return sorted[idx]
}

func insertionSort(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

func bitLen(v uint32) int {
	n := 0
	for v > 0 {
		n++
		v >>= 1
	}

	return n
}

func lowMask(bits int) uint32 {
	if bits >= 32 {
		return 0xFFFFFFFF
	}

	return (uint32(1) << uint(bits)) - 1
}

// bitPack packs values (each assumed to fit in bitWidth bits) into a
// little-endian bitstream, LSB first within each value.
func bitPack(values []uint32, bitWidth int) []byte {
	if bitWidth == 0 {
		return nil
	}

	out := make([]byte, (len(values)*bitWidth+7)/8)

	bitPos := 0
	for _, v := range values {
		for b := 0; b < bitWidth; b++ {
			if v&(1<<uint(b)) != 0 {
				out[bitPos/8] |= 1 << uint(bitPos%8)
			}

			bitPos++
		}
	}

	return out
}

func bitUnpack(data []byte, bitWidth, count int) []uint32 {
	out := make([]uint32, count)
	if bitWidth == 0 {
		return out
	}

	bitPos := 0
	for i := 0; i < count; i++ {
		var v uint32
		for b := 0; b < bitWidth; b++ {
			if data[bitPos/8]&(1<<uint(bitPos%8)) != 0 {
				v |= 1 << uint(b)
			}

			bitPos++
		}

		out[i] = v
	}

	return out
}

// decodeBEWords reads data as consecutive big-endian u32 words, dropping
// any trailing partial word. Nothing in this module calls it; Decode
// parses the byte stream directly.
func decodeBEWords(data []byte) []uint32 {
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(data[i*4:])
	}

	return words
}
