package analyzer

import (
	"github.com/maplibre-tiles/mlt-go/compress"
	"github.com/maplibre-tiles/mlt-go/format"
)

// comparisonAlgorithms lists every baseline CompareBaselines runs,
// skipping CompressionNone (its ratio is trivially 1.0 and adds nothing
// to a report).
var comparisonAlgorithms = []format.CompressionType{
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// CompareBaselines compresses raw (a tile's encoded bytes) with each
// comparison codec and reports the size each achieves, so a caller can
// judge how much of MLT's size reduction over a naive blob comes from
// columnar/stream codecs versus what a generic compressor would have
// recovered anyway (spec.md §4.9).
func CompareBaselines(raw []byte) ([]compress.Stats, error) {
	stats := make([]compress.Stats, 0, len(comparisonAlgorithms))

	for _, alg := range comparisonAlgorithms {
		codec, err := compress.GetCodec(alg)
		if err != nil {
			return nil, err
		}

		compressed, err := codec.Compress(raw)
		if err != nil {
			return nil, err
		}

		stats = append(stats, compress.Stats{
			Algorithm:      alg,
			OriginalSize:   int64(len(raw)),
			CompressedSize: int64(len(compressed)),
		})
	}

	return stats, nil
}
