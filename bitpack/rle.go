package bitpack

import "github.com/maplibre-tiles/mlt-go/errs"

// RleMeta carries the two counters an RLE-encoded stream needs to split
// its payload back into run lengths and unique values: Runs is the
// number of (run_length, value) pairs, NumValues is the total element
// count the expansion must produce.
type RleMeta struct {
	Runs      int
	NumValues int
}

// RleEncode32 splits values into runs of equal consecutive elements and
// returns the run lengths, the one value per run, and the meta needed
// to recombine them. Runs of length 1 are not collapsed further.
func RleEncode32(values []uint32) (runLengths []uint32, runValues []uint32, meta RleMeta) {
	if len(values) == 0 {
		return nil, nil, RleMeta{}
	}

	runLengths = make([]uint32, 0, len(values))
	runValues = make([]uint32, 0, len(values))

	cur := values[0]
	count := uint32(1)
	for i := 1; i < len(values); i++ {
		if values[i] == cur {
			count++

			continue
		}

		runLengths = append(runLengths, count)
		runValues = append(runValues, cur)
		cur = values[i]
		count = 1
	}

	runLengths = append(runLengths, count)
	runValues = append(runValues, cur)

	return runLengths, runValues, RleMeta{Runs: len(runLengths), NumValues: len(values)}
}

// RleDecode32 expands a run-length/value pair sequence back to the
// original flat element sequence. meta.NumValues bounds the output
// length; a negative or overflowing run length returns ErrRleRunLenInvalid.
func RleDecode32(runLengths, runValues []uint32, meta RleMeta) ([]uint32, error) {
	if len(runLengths) != meta.Runs || len(runValues) != meta.Runs {
		return nil, errs.NewInvalidStreamData(meta.Runs, len(runLengths))
	}

	out := make([]uint32, 0, meta.NumValues)
	for i := 0; i < meta.Runs; i++ {
		runLen := runLengths[i]
		if int32(runLen) < 0 {
			return nil, errs.ErrRleRunLenInvalid
		}

		for j := uint32(0); j < runLen; j++ {
			out = append(out, runValues[i])
		}
	}

	if len(out) != meta.NumValues {
		return nil, errs.NewInvalidStreamData(meta.NumValues, len(out))
	}

	return out, nil
}

// RleEncode64 is the u64 counterpart of RleEncode32.
func RleEncode64(values []uint64) (runLengths []uint64, runValues []uint64, meta RleMeta) {
	if len(values) == 0 {
		return nil, nil, RleMeta{}
	}

	runLengths = make([]uint64, 0, len(values))
	runValues = make([]uint64, 0, len(values))

	cur := values[0]
	count := uint64(1)
	for i := 1; i < len(values); i++ {
		if values[i] == cur {
			count++

			continue
		}

		runLengths = append(runLengths, count)
		runValues = append(runValues, cur)
		cur = values[i]
		count = 1
	}

	runLengths = append(runLengths, count)
	runValues = append(runValues, cur)

	return runLengths, runValues, RleMeta{Runs: len(runLengths), NumValues: len(values)}
}

// RleDecode64 reverses RleEncode64.
func RleDecode64(runLengths, runValues []uint64, meta RleMeta) ([]uint64, error) {
	if len(runLengths) != meta.Runs || len(runValues) != meta.Runs {
		return nil, errs.NewInvalidStreamData(meta.Runs, len(runLengths))
	}

	out := make([]uint64, 0, meta.NumValues)
	for i := 0; i < meta.Runs; i++ {
		runLen := runLengths[i]
		if int64(runLen) < 0 {
			return nil, errs.ErrRleRunLenInvalid
		}

		for j := uint64(0); j < runLen; j++ {
			out = append(out, runValues[i])
		}
	}

	if len(out) != meta.NumValues {
		return nil, errs.NewInvalidStreamData(meta.NumValues, len(out))
	}

	return out, nil
}

// AverageRunLength32 reports sample_len / num_runs, used by the
// auto-encoder's profiling pass to decide whether Rle is worth trying.
func AverageRunLength32(values []uint32) float64 {
	if len(values) == 0 {
		return 0
	}

	_, _, meta := RleEncode32(values)
	if meta.Runs == 0 {
		return 0
	}

	return float64(meta.NumValues) / float64(meta.Runs)
}

// AverageRunLength64 is the u64 counterpart of AverageRunLength32.
func AverageRunLength64(values []uint64) float64 {
	if len(values) == 0 {
		return 0
	}

	_, _, meta := RleEncode64(values)
	if meta.Runs == 0 {
		return 0
	}

	return float64(meta.NumValues) / float64(meta.Runs)
}
