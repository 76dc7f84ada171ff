package bitpack

// DeltaEncode32 produces the zigzag-delta word sequence for a signed i32
// column: the first word is the raw value's bit pattern, every
// subsequent word is the zigzag encoding of the wrapping difference from
// its predecessor.
func DeltaEncode32(values []int32) []uint32 {
	out := make([]uint32, len(values))
	if len(values) == 0 {
		return out
	}

	out[0] = uint32(values[0])
	for i := 1; i < len(values); i++ {
		out[i] = ZigZagEncode32(values[i] - values[i-1])
	}

	return out
}

// DeltaDecode32 reverses DeltaEncode32.
func DeltaDecode32(words []uint32) []int32 {
	out := make([]int32, len(words))
	if len(words) == 0 {
		return out
	}

	out[0] = int32(words[0])
	for i := 1; i < len(words); i++ {
		out[i] = out[i-1] + ZigZagDecode32(words[i])
	}

	return out
}

// DeltaEncodeU32 is the unsigned counterpart used by u32 property and
// id columns: differences are computed in the signed domain and
// zigzag-encoded, but the running total wraps as u32.
func DeltaEncodeU32(values []uint32) []uint32 {
	out := make([]uint32, len(values))
	if len(values) == 0 {
		return out
	}

	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = ZigZagEncode32(int32(values[i] - values[i-1]))
	}

	return out
}

// DeltaDecodeU32 reverses DeltaEncodeU32.
func DeltaDecodeU32(words []uint32) []uint32 {
	out := make([]uint32, len(words))
	if len(words) == 0 {
		return out
	}

	out[0] = words[0]
	for i := 1; i < len(words); i++ {
		out[i] = out[i-1] + uint32(ZigZagDecode32(words[i]))
	}

	return out
}

// DeltaEncode64 is the i64 counterpart of DeltaEncode32.
func DeltaEncode64(values []int64) []uint64 {
	out := make([]uint64, len(values))
	if len(values) == 0 {
		return out
	}

	out[0] = uint64(values[0])
	for i := 1; i < len(values); i++ {
		out[i] = ZigZagEncode64(values[i] - values[i-1])
	}

	return out
}

// DeltaDecode64 reverses DeltaEncode64.
func DeltaDecode64(words []uint64) []int64 {
	out := make([]int64, len(words))
	if len(words) == 0 {
		return out
	}

	out[0] = int64(words[0])
	for i := 1; i < len(words); i++ {
		out[i] = out[i-1] + ZigZagDecode64(words[i])
	}

	return out
}

// DeltaEncodeU64 is the u64 counterpart used by id and property columns
// (notably OSM-style monotonically increasing 64-bit ids).
func DeltaEncodeU64(values []uint64) []uint64 {
	out := make([]uint64, len(values))
	if len(values) == 0 {
		return out
	}

	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = ZigZagEncode64(int64(values[i] - values[i-1]))
	}

	return out
}

// DeltaDecodeU64 reverses DeltaEncodeU64.
func DeltaDecodeU64(words []uint64) []uint64 {
	out := make([]uint64, len(words))
	if len(words) == 0 {
		return out
	}

	out[0] = words[0]
	for i := 1; i < len(words); i++ {
		out[i] = out[i-1] + uint64(ZigZagDecode64(words[i]))
	}

	return out
}

// MaxZigZagDeltaBitWidth32 reports the maximum bit width across the
// zigzag-delta word sequence for values, used by the auto-encoder's
// profiling pass (spec §4.8) to compare Delta against plain VarInt
// without actually materializing the encoded stream.
func MaxZigZagDeltaBitWidth32(values []int32) int {
	words := DeltaEncode32(values)

	return maxBitWidth32(words)
}

// MaxZigZagDeltaBitWidthU64 is the u64 counterpart of MaxZigZagDeltaBitWidth32.
func MaxZigZagDeltaBitWidthU64(values []uint64) int {
	words := DeltaEncodeU64(values)

	return maxBitWidth64(words)
}

// MaxBitWidth32 reports the maximum bit width across a raw u32 sequence
// with no transform applied, the auto-encoder's baseline for comparing
// Delta/Rle candidates against plain VarInt (spec §4.8).
func MaxBitWidth32(words []uint32) int {
	return maxBitWidth32(words)
}

// MaxBitWidth64 is the u64 counterpart of MaxBitWidth32.
func MaxBitWidth64(words []uint64) int {
	return maxBitWidth64(words)
}

func maxBitWidth32(words []uint32) int {
	var maxV uint32
	for _, w := range words {
		if w > maxV {
			maxV = w
		}
	}

	return bitLen32(maxV)
}

func maxBitWidth64(words []uint64) int {
	var maxV uint64
	for _, w := range words {
		if w > maxV {
			maxV = w
		}
	}

	return bitLen64(maxV)
}

func bitLen32(v uint32) int {
	n := 0
	for v > 0 {
		n++
		v >>= 1
	}

	return n
}

func bitLen64(v uint64) int {
	n := 0
	for v > 0 {
		n++
		v >>= 1
	}

	return n
}
