package column

import (
	"github.com/maplibre-tiles/mlt-go/bitpack"
	"github.com/maplibre-tiles/mlt-go/format"
	mltstrings "github.com/maplibre-tiles/mlt-go/strings"
	"github.com/maplibre-tiles/mlt-go/stream"
)

// Struct is the decoded form of a shared-dictionary struct property
// column (spec.md §4.5 mode 4): one dictionary shared by all children,
// each child a named string vector of length featureCount.
type Struct struct {
	ChildNames []string
	Children   [][]*string
}

// DecodeStruct reads numChildren string children against one shared
// dictionary body (Length(Dictionary) + Data(Single)), followed by each
// child's (optional present +) Offset(String) stream in childNames order.
func DecodeStruct(r *stream.Reader, childNames []string, featureCount int) (*Struct, error) {
	lengths, dictData, err := readDictionaryBody(r)
	if err != nil {
		return nil, err
	}

	dict, err := mltstrings.NewSharedDictionary(lengths, dictData)
	if err != nil {
		return nil, err
	}

	s := &Struct{ChildNames: childNames, Children: make([][]*string, len(childNames))}

	for i := range childNames {
		present, err := readOptionalPresent(r, format.ColumnOptStr, featureCount)
		if err != nil {
			return nil, err
		}

		offsets, err := readOffsetStream(r, bitpack.Popcount(present))
		if err != nil {
			return nil, err
		}

		values, err := dict.DecodeChild(present, offsets, featureCount)
		if err != nil {
			return nil, err
		}

		s.Children[i] = values
	}

	return s, nil
}

// EncodeStruct reverses DecodeStruct, interning every child's values
// into one shared dictionary.
func EncodeStruct(w *stream.Writer, s *Struct) error {
	lengths, dictData, present, offsets, err := mltstrings.BuildSharedDictionary(s.Children)
	if err != nil {
		return err
	}

	writeDictionaryBody(w, lengths, dictData)

	for i := range s.Children {
		writePresentBitmap(w, present[i])
		writeOffsetStream(w, offsets[i])
	}

	return nil
}
