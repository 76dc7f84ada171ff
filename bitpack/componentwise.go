package bitpack

import "github.com/maplibre-tiles/mlt-go/errs"

// ComponentwiseDeltaEncode32 treats an interleaved 2-vector sequence
// (vertex buffers: x0,y0,x1,y1,...) as two independent delta streams —
// even positions and odd positions — each zigzag-delta encoded
// separately, then re-interleaved. values must have an even, non-zero
// length.
func ComponentwiseDeltaEncode32(values []int32) ([]uint32, error) {
	if len(values) == 0 || len(values)%2 != 0 {
		return nil, errs.ErrInvalidPairStreamSize
	}

	n := len(values) / 2
	xs := make([]int32, n)
	ys := make([]int32, n)
	for i := 0; i < n; i++ {
		xs[i] = values[2*i]
		ys[i] = values[2*i+1]
	}

	xDelta := DeltaEncode32(xs)
	yDelta := DeltaEncode32(ys)

	out := make([]uint32, len(values))
	for i := 0; i < n; i++ {
		out[2*i] = xDelta[i]
		out[2*i+1] = yDelta[i]
	}

	return out, nil
}

// ComponentwiseDeltaDecode32 reverses ComponentwiseDeltaEncode32.
func ComponentwiseDeltaDecode32(words []uint32) ([]int32, error) {
	if len(words) == 0 || len(words)%2 != 0 {
		return nil, errs.ErrInvalidPairStreamSize
	}

	n := len(words) / 2
	xWords := make([]uint32, n)
	yWords := make([]uint32, n)
	for i := 0; i < n; i++ {
		xWords[i] = words[2*i]
		yWords[i] = words[2*i+1]
	}

	xs := DeltaDecode32(xWords)
	ys := DeltaDecode32(yWords)

	out := make([]int32, len(words))
	for i := 0; i < n; i++ {
		out[2*i] = xs[i]
		out[2*i+1] = ys[i]
	}

	return out, nil
}
