package strings_test

import (
	"testing"

	mltstrings "github.com/maplibre-tiles/mlt-go/strings"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestPlain_RoundTrip(t *testing.T) {
	values := []*string{strPtr("Hello"), nil, strPtr("World")}

	present, lengths, data := mltstrings.EncodePlain(values)
	require.Equal(t, []bool{true, false, true}, present)
	require.Equal(t, []uint32{5, 5}, lengths)
	require.Equal(t, "HelloWorld", string(data))

	got, err := mltstrings.DecodePlain(present, lengths, data, len(values))
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "Hello", *got[0])
	require.Nil(t, got[1])
	require.Equal(t, "World", *got[2])
}

func TestPlain_DecodeSpecExample(t *testing.T) {
	present := []bool{true, false, true}
	lengths := []uint32{5, 5}
	data := []byte("HelloWorld")

	got, err := mltstrings.DecodePlain(present, lengths, data, 3)
	require.NoError(t, err)
	require.Equal(t, "Hello", *got[0])
	require.Nil(t, got[1])
	require.Equal(t, "World", *got[2])
}

func TestPlain_AllNull(t *testing.T) {
	values := []*string{nil, nil}

	present, lengths, data := mltstrings.EncodePlain(values)
	got, err := mltstrings.DecodePlain(present, lengths, data, 2)
	require.NoError(t, err)
	require.Nil(t, got[0])
	require.Nil(t, got[1])
}

func TestPlain_LengthMismatchErrors(t *testing.T) {
	_, err := mltstrings.DecodePlain([]bool{true}, []uint32{5}, []byte("ab"), 1)
	require.Error(t, err)
}
