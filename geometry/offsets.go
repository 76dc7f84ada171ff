package geometry

import (
	"github.com/maplibre-tiles/mlt-go/errs"
	"github.com/maplibre-tiles/mlt-go/format"
)

// NeedsLengthFunc decides whether a given feature's geometry type
// requires consuming an explicit length at the level being
// reconstructed, versus contributing an implicit span of 1.
type NeedsLengthFunc func(format.GeometryType) bool

// AboveThreshold returns a NeedsLengthFunc for the root length stream
// (spec.md §4.6): geometry types ordered strictly above threshold
// consume a length, types at or below it contribute an implicit 1.
func AboveThreshold(threshold format.GeometryType) NeedsLengthFunc {
	return func(gt format.GeometryType) bool { return gt > threshold }
}

// IsPolygonFamily is the "level-1 with ring buffer" predicate: Polygon
// and MultiPolygon consume a part length per geometry.
func IsPolygonFamily(gt format.GeometryType) bool {
	return gt == format.GeometryPolygon || gt == format.GeometryMultiPolygon
}

// IsLineFamily is the "level-1 without rings" predicate: LineString and
// MultiLineString consume a part length per geometry.
func IsLineFamily(gt format.GeometryType) bool {
	return gt == format.GeometryLineString || gt == format.GeometryMultiLineString
}

// IsNotPointFamily is the level-2 (ring) predicate: every geometry type
// except Point/MultiPoint consumes a ring length per part.
func IsNotPointFamily(gt format.GeometryType) bool {
	return gt != format.GeometryPoint && gt != format.GeometryMultiPoint
}

// ReconstructRootOffsets builds the root prefix-sum offset array (e.g.
// GeometryOffsets) from vectorTypes and the raw length stream actually
// stored on the wire: only features for which needsLength reports true
// consume a length; the rest contribute an implicit span of 1.
func ReconstructRootOffsets(vectorTypes []format.GeometryType, needsLength NeedsLengthFunc, lengths []uint32) ([]uint32, error) {
	offsets := make([]uint32, len(vectorTypes)+1)
	lengthIdx := 0

	for i, gt := range vectorTypes {
		span, err := nextSpan(needsLength(gt), lengths, &lengthIdx)
		if err != nil {
			return nil, err
		}

		offsets[i+1] = offsets[i] + span
	}

	if lengthIdx != len(lengths) {
		return nil, errs.NewInvalidStreamData(lengthIdx, len(lengths))
	}

	return offsets, nil
}

// ReconstructLevelOffsets builds a level-1 (parts) or level-2 (rings)
// prefix-sum offset array. parentOffsets gives, for each upstream
// element i, the number of children it owns (parentOffsets[i+1] -
// parentOffsets[i]); needsLength is evaluated against the geometry type
// owning each parent span.
func ReconstructLevelOffsets(vectorTypes []format.GeometryType, parentOffsets []uint32, needsLength NeedsLengthFunc, lengths []uint32) ([]uint32, error) {
	total := 0
	if len(parentOffsets) > 0 {
		total = int(parentOffsets[len(parentOffsets)-1])
	}

	offsets := make([]uint32, total+1)
	lengthIdx := 0
	childIdx := 0

	for i, gt := range vectorTypes {
		numChildren := int(parentOffsets[i+1] - parentOffsets[i])
		needs := needsLength(gt)

		for c := 0; c < numChildren; c++ {
			span, err := nextSpan(needs, lengths, &lengthIdx)
			if err != nil {
				return nil, err
			}

			offsets[childIdx+1] = offsets[childIdx] + span
			childIdx++
		}
	}

	if lengthIdx != len(lengths) {
		return nil, errs.NewInvalidStreamData(lengthIdx, len(lengths))
	}

	return offsets, nil
}

func nextSpan(needsLength bool, lengths []uint32, lengthIdx *int) (uint32, error) {
	if !needsLength {
		return 1, nil
	}

	if *lengthIdx >= len(lengths) {
		return 0, errs.NewInvalidStreamData(*lengthIdx+1, len(lengths))
	}

	v := lengths[*lengthIdx]
	*lengthIdx++

	return v, nil
}

// DeriveRootLengths is the encode-side inverse of ReconstructRootOffsets:
// given the final offsets, re-extract only the lengths a decoder would
// have consumed.
func DeriveRootLengths(vectorTypes []format.GeometryType, needsLength NeedsLengthFunc, offsets []uint32) []uint32 {
	lengths := make([]uint32, 0, len(vectorTypes))

	for i, gt := range vectorTypes {
		if needsLength(gt) {
			lengths = append(lengths, offsets[i+1]-offsets[i])
		}
	}

	return lengths
}

// DeriveLevelLengths is the encode-side inverse of ReconstructLevelOffsets.
func DeriveLevelLengths(vectorTypes []format.GeometryType, parentOffsets, childOffsets []uint32, needsLength NeedsLengthFunc) []uint32 {
	lengths := make([]uint32, 0, len(childOffsets))
	childIdx := 0

	for i, gt := range vectorTypes {
		numChildren := int(parentOffsets[i+1] - parentOffsets[i])
		needs := needsLength(gt)

		for c := 0; c < numChildren; c++ {
			if needs {
				lengths = append(lengths, childOffsets[childIdx+1]-childOffsets[childIdx])
			}

			childIdx++
		}
	}

	return lengths
}
