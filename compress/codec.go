// Package compress provides general-purpose comparison codecs used by the
// analyzer package to report how an MLT layer's stream codecs compare
// against an off-the-shelf compressor applied to the tile's encoded bytes.
//
// These codecs never touch the wire format: MLT streams get their size
// reduction from the logical/physical codec pair chosen per stream
// (bitpack, fastpfor), not from a secondary compression pass. Compress
// exists purely so analyzer.CompareBaselines can answer "how much smaller
// would zstd/s2/lz4 make this encoded tile" for reporting.
package compress

import (
	"fmt"

	"github.com/maplibre-tiles/mlt-go/format"
)

// Compressor compresses a byte slice, returning a newly allocated result.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// Stats reports one baseline's comparison result against an original payload.
type Stats struct {
	Algorithm      format.CompressionType
	OriginalSize   int64
	CompressedSize int64
}

// Ratio returns CompressedSize / OriginalSize; 0 if OriginalSize is 0.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// CreateCodec builds a Codec for the given comparison algorithm.
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("compress: invalid comparison codec: %s", compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the given comparison algorithm.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("compress: unsupported comparison codec: %s", compressionType)
}
