package strings

import (
	"github.com/maplibre-tiles/mlt-go/errs"
	"github.com/maplibre-tiles/mlt-go/internal/hash"
)

// Interner builds a dictionary's unique-value table, keying the O(1)
// dedup lookup on internal/hash.ID instead of the string itself so large
// dictionaries avoid repeated full-string hashing inside the map. Two
// distinct values landing on the same hash are not silently merged: the
// stored value is compared byte-for-byte and a true collision surfaces
// as ErrHashCollision rather than corrupting the dictionary.
type Interner struct {
	indexByHash map[uint64]int
	values      []string
}

// NewInterner returns an empty Interner.
func NewInterner() *Interner {
	return &Interner{indexByHash: make(map[uint64]int)}
}

// Intern returns the dictionary index for s, appending it as a new entry
// the first time it is seen.
func (in *Interner) Intern(s string) (int, error) {
	h := hash.ID(s)

	if idx, ok := in.indexByHash[h]; ok {
		if in.values[idx] != s {
			return 0, errs.ErrHashCollision
		}

		return idx, nil
	}

	idx := len(in.values)
	in.values = append(in.values, s)
	in.indexByHash[h] = idx

	return idx, nil
}

// Values returns the interned values in assignment order (index i holds
// the value that Intern returned index i for).
func (in *Interner) Values() []string {
	return in.values
}

// Len reports the number of distinct interned values.
func (in *Interner) Len() int {
	return len(in.values)
}
