package autoencoder

import "github.com/maplibre-tiles/mlt-go/bitpack"

// profile captures the single-pass statistics the selector prunes
// candidates from (spec §4.8 step 2).
type profile struct {
	avgRunLength     float64
	sorted           bool
	maxBitWidth      int
	maxDeltaBitWidth int
	distinctRatio    float64
}

// sampleU32 extracts the middle contiguous block profiling runs over
// (spec §4.8 step 1): the full sequence if it's short, else len/100
// clamped to [min, max].
func sampleU32(values []uint32, min, max int) []uint32 {
	n := sampleSize(len(values), min, max)
	start := (len(values) - n) / 2

	return values[start : start+n]
}

func sampleU64(values []uint64, min, max int) []uint64 {
	n := sampleSize(len(values), min, max)
	start := (len(values) - n) / 2

	return values[start : start+n]
}

func sampleSize(total, min, max int) int {
	if total <= 512 {
		return total
	}

	target := total / 100
	if target < min {
		target = min
	}

	if target > max {
		target = max
	}

	if target > total {
		target = total
	}

	return target
}

func profileU32(sample []uint32, hllPrecision uint8) profile {
	if len(sample) == 0 {
		return profile{sorted: true}
	}

	sketch := newHyperLogLog(hllPrecision)

	sortedAsc, sortedDesc := true, true

	for i, v := range sample {
		sketch.addUint32(v)

		if i == 0 {
			continue
		}

		if sample[i] < sample[i-1] {
			sortedAsc = false
		}

		if sample[i] > sample[i-1] {
			sortedDesc = false
		}
	}

	signed := make([]int32, len(sample))
	for i, v := range sample {
		signed[i] = int32(v)
	}

	return profile{
		avgRunLength:     bitpack.AverageRunLength32(sample),
		sorted:           sortedAsc || sortedDesc,
		maxBitWidth:      bitpack.MaxBitWidth32(sample),
		maxDeltaBitWidth: bitpack.MaxZigZagDeltaBitWidth32(signed),
		distinctRatio:    sketch.estimate() / float64(len(sample)),
	}
}

func profileU64(sample []uint64, hllPrecision uint8) profile {
	if len(sample) == 0 {
		return profile{sorted: true}
	}

	sketch := newHyperLogLog(hllPrecision)

	sortedAsc, sortedDesc := true, true

	for i, v := range sample {
		sketch.addUint64(v)

		if i == 0 {
			continue
		}

		if sample[i] < sample[i-1] {
			sortedAsc = false
		}

		if sample[i] > sample[i-1] {
			sortedDesc = false
		}
	}

	return profile{
		avgRunLength:     bitpack.AverageRunLength64(sample),
		sorted:           sortedAsc || sortedDesc,
		maxBitWidth:      bitpack.MaxBitWidth64(sample),
		maxDeltaBitWidth: bitpack.MaxZigZagDeltaBitWidthU64(sample),
		distinctRatio:    sketch.estimate() / float64(len(sample)),
	}
}
