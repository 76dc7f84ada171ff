package strings

import (
	"github.com/maplibre-tiles/mlt-go/errs"
	"github.com/maplibre-tiles/mlt-go/internal/pool"
)

// EncodeDictionary builds the single shared-dictionary mode (spec.md
// §4.5 mode 2): a present bitmap, the dictionary's per-entry lengths and
// concatenated bytes, and a per-present-feature index into that
// dictionary. Repeated values collapse to one dictionary entry.
func EncodeDictionary(values []*string) (present []bool, lengths []uint32, dictData []byte, offsets []uint32, err error) {
	present = make([]bool, len(values))
	offsets = make([]uint32, 0, len(values))
	interner := NewInterner()

	for i, v := range values {
		if v == nil {
			continue
		}

		present[i] = true

		idx, internErr := interner.Intern(*v)
		if internErr != nil {
			return nil, nil, nil, nil, internErr
		}

		offsets = append(offsets, uint32(idx))
	}

	dict := interner.Values()
	lengths = make([]uint32, len(dict))

	for i, d := range dict {
		lengths[i] = uint32(len(d))
		dictData = append(dictData, d...)
	}

	return present, lengths, dictData, offsets, nil
}

// DecodeDictionary reverses EncodeDictionary.
func DecodeDictionary(present []bool, lengths []uint32, dictData []byte, offsets []uint32, numValues int) ([]*string, error) {
	dict, cleanup, err := splitByLengths(lengths, dictData)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return decodeIndexed(present, offsets, dict, numValues)
}

// decodeIndexed walks present/offsets against an already-built
// dictionary, shared by DecodeDictionary and the struct shared-dictionary
// child decoder.
func decodeIndexed(present []bool, offsets []uint32, dict []string, numValues int) ([]*string, error) {
	if len(present) != numValues {
		return nil, errs.NewInvalidStreamData(numValues, len(present))
	}

	out := make([]*string, numValues)
	offsetIdx := 0

	for i := 0; i < numValues; i++ {
		if !present[i] {
			continue
		}

		if offsetIdx >= len(offsets) {
			return nil, errs.NewInvalidStreamData(offsetIdx+1, len(offsets))
		}

		di := int(offsets[offsetIdx])
		offsetIdx++

		if di < 0 || di >= len(dict) {
			return nil, errs.NewInvalidStreamData(len(dict), di)
		}

		v := dict[di]
		out[i] = &v
	}

	if offsetIdx != len(offsets) {
		return nil, errs.NewInvalidStreamData(offsetIdx, len(offsets))
	}

	return out, nil
}

// splitByLengths partitions data into len(lengths) consecutive slices,
// the shape both the plain dictionary blob and an FSST-decompressed
// dictionary blob share. The returned slice is pool-backed: most
// callers only read it while building a *string result and can free it
// immediately via the returned cleanup, but a caller that retains the
// slice itself past its own return (NewSharedDictionary) must not call
// cleanup, since doing so lets a later GetStringSlice hand the same
// backing array out again and overwrite it.
func splitByLengths(lengths []uint32, data []byte) ([]string, func(), error) {
	dict, cleanup := pool.GetStringSlice(len(lengths))
	offset := 0

	for i, l := range lengths {
		n := int(l)
		if offset+n > len(data) {
			cleanup()

			return nil, nil, errs.NewInvalidStreamData(offset+n, len(data))
		}

		dict[i] = string(data[offset : offset+n])
		offset += n
	}

	if offset != len(data) {
		cleanup()

		return nil, nil, errs.NewInvalidStreamData(offset, len(data))
	}

	return dict, cleanup, nil
}
