package strings

// SharedDictionary is one per-layer dictionary addressed by several
// struct sibling children (spec.md §4.5 mode 4). It owns the dictionary
// once; each child supplies its own present bitmap and offset stream.
type SharedDictionary struct {
	values []string
}

// NewSharedDictionary builds the dictionary from its already-decoded
// length stream and byte blob (the same lengths/dictData pair
// DecodeDictionary takes), splitting the blob by those lengths itself.
// The dictionary outlives this call (every sibling
// child decodes against it), so its backing slice is deliberately never
// returned to the pool splitByLengths draws it from.
func NewSharedDictionary(lengths []uint32, dictData []byte) (*SharedDictionary, error) {
	values, _, err := splitByLengths(lengths, dictData)
	if err != nil {
		return nil, err
	}

	return &SharedDictionary{values: values}, nil
}

// BuildSharedDictionary interns every child's values into one dictionary,
// returning it alongside each child's present bitmap and offset stream
// in the same order as children.
func BuildSharedDictionary(children [][]*string) (lengths []uint32, dictData []byte, present [][]bool, offsets [][]uint32, err error) {
	interner := NewInterner()
	present = make([][]bool, len(children))
	offsets = make([][]uint32, len(children))

	for ci, values := range children {
		childPresent := make([]bool, len(values))
		childOffsets := make([]uint32, 0, len(values))

		for i, v := range values {
			if v == nil {
				continue
			}

			childPresent[i] = true

			idx, internErr := interner.Intern(*v)
			if internErr != nil {
				return nil, nil, nil, nil, internErr
			}

			childOffsets = append(childOffsets, uint32(idx))
		}

		present[ci] = childPresent
		offsets[ci] = childOffsets
	}

	dict := interner.Values()
	lengths = make([]uint32, len(dict))

	for i, d := range dict {
		lengths[i] = uint32(len(d))
		dictData = append(dictData, d...)
	}

	return lengths, dictData, present, offsets, nil
}

// DecodeChild reconstructs one struct sibling's values against the
// shared dictionary.
func (d *SharedDictionary) DecodeChild(present []bool, offsets []uint32, numValues int) ([]*string, error) {
	return decodeIndexed(present, offsets, d.values, numValues)
}

// Values exposes the underlying dictionary entries.
func (d *SharedDictionary) Values() []string {
	return d.values
}
