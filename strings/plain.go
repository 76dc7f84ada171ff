package strings

import "github.com/maplibre-tiles/mlt-go/errs"

// EncodePlain partitions values into a present bitmap, a length stream
// over the non-nil entries, and their concatenated UTF-8 bytes. A nil
// entry in values contributes nothing to lengths or data.
func EncodePlain(values []*string) (present []bool, lengths []uint32, data []byte) {
	present = make([]bool, len(values))
	lengths = make([]uint32, 0, len(values))
	data = make([]byte, 0, len(values)*8)

	for i, v := range values {
		if v == nil {
			continue
		}

		present[i] = true
		lengths = append(lengths, uint32(len(*v)))
		data = append(data, *v...)
	}

	return present, lengths, data
}

// DecodePlain reverses EncodePlain: Length(VarBinary) + Data(None) with
// an optional present bitmap (spec.md §4.5 mode 1).
func DecodePlain(present []bool, lengths []uint32, data []byte, numValues int) ([]*string, error) {
	if len(present) != numValues {
		return nil, errs.NewInvalidStreamData(numValues, len(present))
	}

	out := make([]*string, numValues)
	lengthIdx := 0
	dataOffset := 0

	for i := 0; i < numValues; i++ {
		if !present[i] {
			continue
		}

		if lengthIdx >= len(lengths) {
			return nil, errs.NewInvalidStreamData(lengthIdx+1, len(lengths))
		}

		n := int(lengths[lengthIdx])
		lengthIdx++

		if dataOffset+n > len(data) {
			return nil, errs.NewInvalidStreamData(dataOffset+n, len(data))
		}

		s := string(data[dataOffset : dataOffset+n])
		out[i] = &s
		dataOffset += n
	}

	if lengthIdx != len(lengths) {
		return nil, errs.NewInvalidStreamData(lengthIdx, len(lengths))
	}

	return out, nil
}
