package bitpack

import (
	"math"

	"github.com/maplibre-tiles/mlt-go/endian"
	"github.com/maplibre-tiles/mlt-go/errs"
)

var leEngine = endian.GetLittleEndianEngine()

// PackU32LE packs values as back-to-back little-endian u32 words, the
// "None" physical codec's wire representation.
func PackU32LE(values []uint32) []byte {
	out := make([]byte, 0, len(values)*4)
	for _, v := range values {
		out = leEngine.AppendUint32(out, v)
	}

	return out
}

// UnpackU32LE reverses PackU32LE. len(data) must be a multiple of 4.
func UnpackU32LE(data []byte) ([]uint32, error) {
	if len(data)%4 != 0 {
		return nil, errs.ErrInvalidByteMultiple
	}

	out := make([]uint32, len(data)/4)
	for i := range out {
		out[i] = leEngine.Uint32(data[i*4:])
	}

	return out, nil
}

// PackU64LE packs values as back-to-back little-endian u64 words.
func PackU64LE(values []uint64) []byte {
	out := make([]byte, 0, len(values)*8)
	for _, v := range values {
		out = leEngine.AppendUint64(out, v)
	}

	return out
}

// UnpackU64LE reverses PackU64LE. len(data) must be a multiple of 8.
func UnpackU64LE(data []byte) ([]uint64, error) {
	if len(data)%8 != 0 {
		return nil, errs.ErrInvalidByteMultiple
	}

	out := make([]uint64, len(data)/8)
	for i := range out {
		out[i] = leEngine.Uint64(data[i*8:])
	}

	return out, nil
}

// PackF32LE packs a float32 sequence as back-to-back little-endian words.
func PackF32LE(values []float32) []byte {
	out := make([]byte, 0, len(values)*4)
	for _, v := range values {
		out = leEngine.AppendUint32(out, math.Float32bits(v))
	}

	return out
}

// UnpackF32LE reverses PackF32LE.
func UnpackF32LE(data []byte) ([]float32, error) {
	if len(data)%4 != 0 {
		return nil, errs.ErrInvalidByteMultiple
	}

	out := make([]float32, len(data)/4)
	for i := range out {
		out[i] = math.Float32frombits(leEngine.Uint32(data[i*4:]))
	}

	return out, nil
}

// beEngine backs PackU32BE/UnpackU32BE.
var beEngine = endian.GetBigEndianEngine()

// PackU32BE packs values as back-to-back big-endian u32 words. No stream
// codec in this module calls it: fastpfor.Encode writes its own byte
// layout without big-endian word framing.
func PackU32BE(values []uint32) []byte {
	out := make([]byte, 0, len(values)*4)
	for _, v := range values {
		out = beEngine.AppendUint32(out, v)
	}

	return out
}

// UnpackU32BE reverses PackU32BE.
func UnpackU32BE(data []byte) ([]uint32, error) {
	if len(data)%4 != 0 {
		return nil, errs.ErrInvalidByteMultiple
	}

	out := make([]uint32, len(data)/4)
	for i := range out {
		out[i] = beEngine.Uint32(data[i*4:])
	}

	return out, nil
}
