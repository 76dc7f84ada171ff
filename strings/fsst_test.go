package strings_test

import (
	"testing"

	mltstrings "github.com/maplibre-tiles/mlt-go/strings"
	"github.com/stretchr/testify/require"
)

func TestFsstDictionary_RoundTrip(t *testing.T) {
	dict := []string{"highway", "highway_link", "residential", "residential_area"}

	symbolLengths, symbolTable, dictLengths, compressed := mltstrings.EncodeFsstDictionary(dict)

	got, err := mltstrings.DecodeFsstDictionary(symbolLengths, symbolTable, dictLengths, compressed)
	require.NoError(t, err)
	require.Equal(t, dict, got)
}

func TestFsst_RoundTripWithIndex(t *testing.T) {
	dict := []string{"primary", "secondary", "primary_link"}
	present := []bool{true, false, true, true}
	offsets := []uint32{0, 2, 1}

	symbolLengths, symbolTable, dictLengths, compressed := mltstrings.EncodeFsstDictionary(dict)

	got, err := mltstrings.DecodeFsst(present, symbolLengths, symbolTable, dictLengths, compressed, offsets, 4)
	require.NoError(t, err)
	require.Equal(t, "primary", *got[0])
	require.Nil(t, got[1])
	require.Equal(t, "primary_link", *got[2])
	require.Equal(t, "secondary", *got[3])
}

func TestBuildSymbolTable_BoundedSize(t *testing.T) {
	dict := make([]string, 0, 300)
	for i := 0; i < 300; i++ {
		dict = append(dict, "abcdefgh")
	}

	table := mltstrings.BuildSymbolTable(dict)
	require.LessOrEqual(t, len(table), 255)
}
