package bitpack

import "github.com/maplibre-tiles/mlt-go/errs"

const (
	byteRleMinRun = 3
	byteRleMaxRun = 130 // control byte 0x00..0x7f -> run length 3..130
	byteRleMaxLit = 128 // control byte 0x80..0xff -> literal length 1..128
)

// PackBools packs a bool-per-feature sequence into a little-endian
// bit-per-feature byte array, 8 bits per byte, bit i of byte i/8 holds
// bools[i]. The packed length is ceil(len(bools)/8).
func PackBools(bools []bool) []byte {
	out := make([]byte, (len(bools)+7)/8)
	for i, b := range bools {
		if b {
			out[i/8] |= 1 << uint(i%8)
		}
	}

	return out
}

// UnpackBools reverses PackBools, producing exactly count bools.
func UnpackBools(data []byte, count int) ([]bool, error) {
	if (count+7)/8 > len(data) {
		return nil, errs.NewBufferUnderflow((count+7)/8, len(data))
	}

	out := make([]bool, count)
	for i := 0; i < count; i++ {
		out[i] = data[i/8]&(1<<uint(i%8)) != 0
	}

	return out, nil
}

// ByteRleEncode compresses data using ORC-compatible byte-RLE framing:
// a run of 3+ identical bytes is emitted as a control byte (run_len-3)
// followed by the repeated value; everything else is grouped into
// literal runs of up to 128 bytes, each prefixed by a control byte of
// (256-len).
func ByteRleEncode(data []byte) []byte {
	out := make([]byte, 0, len(data)+len(data)/byteRleMaxLit+2)

	i := 0
	for i < len(data) {
		runLen := 1
		for i+runLen < len(data) && data[i+runLen] == data[i] && runLen < byteRleMaxRun {
			runLen++
		}

		if runLen >= byteRleMinRun {
			out = append(out, byte(runLen-byteRleMinRun), data[i])
			i += runLen

			continue
		}

		// Accumulate a literal run up to the next run of 3+ identical bytes.
		litStart := i
		for i < len(data) && i-litStart < byteRleMaxLit {
			peek := 1
			for i+peek < len(data) && data[i+peek] == data[i] && peek < byteRleMinRun {
				peek++
			}

			if peek >= byteRleMinRun {
				break
			}

			i++
		}

		lit := data[litStart:i]
		out = append(out, byte(256-len(lit)))
		out = append(out, lit...)
	}

	return out
}

// ByteRleDecode expands a byte-RLE payload, stopping as soon as limit
// output bytes have been produced. Present/boolean streams rely on this
// bound: the wire format never records how many conceptual repeats a
// trailing run frame claims, only the decoded byte count the caller
// expects (ceil(num_values/8)).
func ByteRleDecode(data []byte, limit int) ([]byte, error) {
	out := make([]byte, 0, limit)
	offset := 0

	for len(out) < limit {
		if offset >= len(data) {
			return nil, errs.NewBufferUnderflow(1, 0)
		}

		control := data[offset]
		offset++

		if control >= 0x80 {
			litLen := 256 - int(control)
			if offset+litLen > len(data) {
				return nil, errs.NewBufferUnderflow(litLen, len(data)-offset)
			}

			need := litLen
			if remain := limit - len(out); remain < need {
				need = remain
			}

			out = append(out, data[offset:offset+need]...)
			offset += litLen

			continue
		}

		if offset >= len(data) {
			return nil, errs.NewBufferUnderflow(1, 0)
		}

		runLen := int(control) + byteRleMinRun
		value := data[offset]
		offset++

		need := runLen
		if remain := limit - len(out); remain < need {
			need = remain
		}

		for j := 0; j < need; j++ {
			out = append(out, value)
		}
	}

	return out, nil
}

// EncodePresentBitmap bit-packs present and byte-RLE compresses it,
// the wire representation used by every optional column's Present stream.
func EncodePresentBitmap(present []bool) []byte {
	return ByteRleEncode(PackBools(present))
}

// DecodePresentBitmap reverses EncodePresentBitmap for a bitmap covering
// numValues features.
func DecodePresentBitmap(data []byte, numValues int) ([]bool, error) {
	packedLen := (numValues + 7) / 8

	packed, err := ByteRleDecode(data, packedLen)
	if err != nil {
		return nil, err
	}

	return UnpackBools(packed, numValues)
}

// Popcount counts the number of true values in a present bitmap.
func Popcount(present []bool) int {
	n := 0
	for _, b := range present {
		if b {
			n++
		}
	}

	return n
}
