package stream_test

import (
	"testing"

	"github.com/maplibre-tiles/mlt-go/format"
	"github.com/maplibre-tiles/mlt-go/stream"
	"github.com/stretchr/testify/require"
)

func TestHeader_RoundTrip_NoRleMeta(t *testing.T) {
	meta := stream.Meta{
		Tag:        format.TagDataPlain,
		Logical:    format.LogicalDelta,
		Physical:   format.PhysicalVarInt,
		NumValues:  42,
		ByteLength: 17,
	}

	encoded := stream.EncodeHeader(meta)

	decoded, n, err := stream.DecodeHeader(encoded)
	require.NoError(t, err)
	require.Equal(t, len(encoded), n)
	require.Equal(t, meta, decoded)
}

func TestHeader_RoundTrip_WithRleMeta(t *testing.T) {
	meta := stream.Meta{
		Tag:        format.TagDataPlain,
		Logical:    format.LogicalRle,
		Physical:   format.PhysicalNone,
		NumValues:  100,
		ByteLength: 64,
		MetaA:      5,
		MetaB:      100,
	}

	encoded := stream.EncodeHeader(meta)

	decoded, n, err := stream.DecodeHeader(encoded)
	require.NoError(t, err)
	require.Equal(t, len(encoded), n)
	require.Equal(t, meta, decoded)
}

func TestHeader_DeltaRleDistinguishedFromRle(t *testing.T) {
	rle := stream.Meta{
		Tag:       format.TagDataPlain,
		Logical:   format.LogicalRle,
		Physical:  format.PhysicalNone,
		NumValues: 10,
		MetaA:     2,
		MetaB:     10,
	}
	deltaRle := rle
	deltaRle.Logical = format.LogicalDeltaRle

	rleBytes := stream.EncodeHeader(rle)
	deltaRleBytes := stream.EncodeHeader(deltaRle)

	require.NotEqual(t, rleBytes[1], deltaRleBytes[1], "codec byte must differ so the flag round-trips")

	decodedRle, _, err := stream.DecodeHeader(rleBytes)
	require.NoError(t, err)
	require.Equal(t, format.LogicalRle, decodedRle.Logical)

	decodedDeltaRle, _, err := stream.DecodeHeader(deltaRleBytes)
	require.NoError(t, err)
	require.Equal(t, format.LogicalDeltaRle, decodedDeltaRle.Logical)
}

func TestHeader_PresentStreamElidesRleMeta(t *testing.T) {
	meta := stream.Meta{
		Tag:        format.TagPresent,
		Logical:    format.LogicalNone,
		Physical:   format.PhysicalNone,
		NumValues:  8,
		ByteLength: 2,
	}

	encoded := stream.EncodeHeader(meta)
	decoded, n, err := stream.DecodeHeader(encoded)
	require.NoError(t, err)
	require.Equal(t, len(encoded), n)
	require.Equal(t, meta, decoded)
	require.False(t, decoded.HasRleMeta())
}

func TestHeader_BufferUnderflow(t *testing.T) {
	_, _, err := stream.DecodeHeader([]byte{0x01})
	require.Error(t, err)
}
