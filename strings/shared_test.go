package strings_test

import (
	"testing"

	mltstrings "github.com/maplibre-tiles/mlt-go/strings"
	"github.com/stretchr/testify/require"
)

func TestSharedDictionary_RoundTripAcrossChildren(t *testing.T) {
	childA := []*string{strPtr("en"), nil, strPtr("fr")}
	childB := []*string{strPtr("fr"), strPtr("en"), nil}

	lengths, dictData, present, offsets, err := mltstrings.BuildSharedDictionary([][]*string{childA, childB})
	require.NoError(t, err)

	dict, err := mltstrings.NewSharedDictionary(lengths, dictData)
	require.NoError(t, err)
	require.Len(t, dict.Values(), 2, "en and fr should share one dictionary")

	gotA, err := dict.DecodeChild(present[0], offsets[0], len(childA))
	require.NoError(t, err)
	require.Equal(t, "en", *gotA[0])
	require.Nil(t, gotA[1])
	require.Equal(t, "fr", *gotA[2])

	gotB, err := dict.DecodeChild(present[1], offsets[1], len(childB))
	require.NoError(t, err)
	require.Equal(t, "fr", *gotB[0])
	require.Equal(t, "en", *gotB[1])
	require.Nil(t, gotB[2])
}
