package column

import (
	"math"

	"github.com/maplibre-tiles/mlt-go/bitpack"
	"github.com/maplibre-tiles/mlt-go/errs"
	"github.com/maplibre-tiles/mlt-go/format"
	"github.com/maplibre-tiles/mlt-go/internal/pool"
	"github.com/maplibre-tiles/mlt-go/stream"
)

// ScalarKind names which of Scalar's slices holds a property column's
// values. Only that slice is populated; the others stay nil.
type ScalarKind uint8

const (
	ScalarBool ScalarKind = iota
	ScalarI8
	ScalarU8
	ScalarI32
	ScalarU32
	ScalarI64
	ScalarU64
	ScalarF32
	ScalarF64
)

// Scalar is the decoded form of one scalar property column: a
// featureCount-length, pointer-per-feature vector (nil marks a feature
// the present bitmap excluded), the same idiom DecodeID uses for ids.
type Scalar struct {
	Kind   ScalarKind
	Bools  []*bool
	Ints   []*int64
	UInts  []*uint64
	Floats []*float64
}

func scalarKind(colType format.ColumnType) (ScalarKind, error) {
	switch colType {
	case format.ColumnBool, format.ColumnOptBool:
		return ScalarBool, nil
	case format.ColumnI8, format.ColumnOptI8:
		return ScalarI8, nil
	case format.ColumnU8, format.ColumnOptU8:
		return ScalarU8, nil
	case format.ColumnI32, format.ColumnOptI32:
		return ScalarI32, nil
	case format.ColumnU32, format.ColumnOptU32:
		return ScalarU32, nil
	case format.ColumnI64, format.ColumnOptI64:
		return ScalarI64, nil
	case format.ColumnU64, format.ColumnOptU64:
		return ScalarU64, nil
	case format.ColumnF32, format.ColumnOptF32:
		return ScalarF32, nil
	case format.ColumnF64, format.ColumnOptF64:
		return ScalarF64, nil
	default:
		return 0, errs.NewInvalidEnum("column-type", uint8(colType))
	}
}

// DecodeScalar reads an (optional present bitmap +) one data stream
// scalar property column (spec.md §4.5, first paragraph).
func DecodeScalar(r *stream.Reader, colType format.ColumnType, featureCount int) (*Scalar, error) {
	kind, err := scalarKind(colType)
	if err != nil {
		return nil, err
	}

	present, err := readOptionalPresent(r, colType, featureCount)
	if err != nil {
		return nil, err
	}

	numPresent := featureCount
	if present != nil {
		numPresent = bitpack.Popcount(present)
	}

	meta, payload, err := r.Next()
	if err != nil {
		return nil, err
	}

	if meta.NumValues != numPresent {
		return nil, errs.NewInvalidStreamData(numPresent, meta.NumValues)
	}

	s := &Scalar{Kind: kind}

	switch kind {
	case ScalarBool:
		bools, err := bitpack.DecodePresentBitmap(payload, numPresent)
		if err != nil {
			return nil, err
		}

		s.Bools = scatterBool(bools, present, featureCount)
	case ScalarI8, ScalarU8:
		if len(payload) != numPresent {
			return nil, errs.NewInvalidStreamData(numPresent, len(payload))
		}

		ints, cleanup := pool.GetInt64Slice(numPresent)
		defer cleanup()

		uints := make([]uint64, numPresent)

		for i, b := range payload {
			ints[i] = int64(int8(b))
			uints[i] = uint64(b)
		}

		if kind == ScalarI8 {
			s.Ints = scatterInt(ints, present, featureCount)
		} else {
			s.UInts = scatterUint(uints, present, featureCount)
		}
	case ScalarI32:
		values, err := stream.DecodeI32(meta, payload)
		if err != nil {
			return nil, err
		}

		ints, cleanup := pool.GetInt64Slice(len(values))
		defer cleanup()

		for i, v := range values {
			ints[i] = int64(v)
		}

		s.Ints = scatterInt(ints, present, featureCount)
	case ScalarU32:
		values, err := stream.DecodeU32(meta, payload)
		if err != nil {
			return nil, err
		}

		uints := make([]uint64, len(values))
		for i, v := range values {
			uints[i] = uint64(v)
		}

		s.UInts = scatterUint(uints, present, featureCount)
	case ScalarI64:
		values, err := stream.DecodeI64(meta, payload)
		if err != nil {
			return nil, err
		}

		s.Ints = scatterInt(values, present, featureCount)
	case ScalarU64:
		values, err := stream.DecodeU64(meta, payload)
		if err != nil {
			return nil, err
		}

		s.UInts = scatterUint(values, present, featureCount)
	case ScalarF32:
		words, err := stream.DecodeU32(meta, payload)
		if err != nil {
			return nil, err
		}

		floats, cleanup := pool.GetFloat64Slice(len(words))
		defer cleanup()

		for i, w := range words {
			floats[i] = float64(math.Float32frombits(w))
		}

		s.Floats = scatterFloat(floats, present, featureCount)
	case ScalarF64:
		// f64 is currently stored as f32 on the wire; decoders lift
		// the truncated value back to float64 (accepted precision loss).
		words, err := stream.DecodeU32(meta, payload)
		if err != nil {
			return nil, err
		}

		floats, cleanup := pool.GetFloat64Slice(len(words))
		defer cleanup()

		for i, w := range words {
			floats[i] = float64(math.Float32frombits(w))
		}

		s.Floats = scatterFloat(floats, present, featureCount)
	}

	return s, nil
}

// EncodeScalar reverses DecodeScalar, writing s's populated slice through w.
func EncodeScalar(w *stream.Writer, s *Scalar, colType format.ColumnType) error {
	kind, err := scalarKind(colType)
	if err != nil {
		return err
	}

	if kind != s.Kind {
		return errs.NewInvalidEnum("scalar-kind", uint8(s.Kind))
	}

	featureCount := scalarLen(s)

	var present []bool
	if colType.IsOptional() {
		present = scalarPresent(s)
		writePresentBitmap(w, present)
	}

	switch kind {
	case ScalarBool:
		bools := gatherBool(s.Bools, present, featureCount)
		packed := bitpack.ByteRleEncode(bitpack.PackBools(bools))

		w.WriteStream(stream.Meta{
			Tag: format.TagDataPlain, Logical: format.LogicalNone, Physical: format.PhysicalNone,
			NumValues: len(bools), ByteLength: len(packed),
		}, packed)
	case ScalarI8:
		ints := gatherInt(s.Ints, present, featureCount)
		raw := make([]byte, len(ints))

		for i, v := range ints {
			raw[i] = byte(int8(v))
		}

		w.WriteStream(stream.Meta{
			Tag: format.TagDataPlain, Logical: format.LogicalNone, Physical: format.PhysicalNone,
			NumValues: len(raw), ByteLength: len(raw),
		}, raw)
	case ScalarU8:
		uints := gatherUint(s.UInts, present, featureCount)
		raw := make([]byte, len(uints))

		for i, v := range uints {
			raw[i] = byte(v)
		}

		w.WriteStream(stream.Meta{
			Tag: format.TagDataPlain, Logical: format.LogicalNone, Physical: format.PhysicalNone,
			NumValues: len(raw), ByteLength: len(raw),
		}, raw)
	case ScalarI32:
		ints := gatherInt(s.Ints, present, featureCount)
		values := make([]int32, len(ints))

		for i, v := range ints {
			values[i] = int32(v)
		}

		meta, payload, err := stream.EncodeI32(format.TagDataPlain, format.LogicalNone, format.PhysicalNone, values)
		if err != nil {
			return err
		}

		w.WriteStream(meta, payload)
	case ScalarU32:
		uints := gatherUint(s.UInts, present, featureCount)
		values := make([]uint32, len(uints))

		for i, v := range uints {
			values[i] = uint32(v)
		}

		meta, payload, err := stream.EncodeU32(format.TagDataPlain, format.LogicalNone, format.PhysicalNone, values)
		if err != nil {
			return err
		}

		w.WriteStream(meta, payload)
	case ScalarI64:
		ints := gatherInt(s.Ints, present, featureCount)

		meta, payload, err := stream.EncodeI64(format.TagDataPlain, format.LogicalNone, format.PhysicalNone, ints)
		if err != nil {
			return err
		}

		w.WriteStream(meta, payload)
	case ScalarU64:
		uints := gatherUint(s.UInts, present, featureCount)

		meta, payload, err := stream.EncodeU64(format.TagDataPlain, format.LogicalNone, format.PhysicalNone, uints)
		if err != nil {
			return err
		}

		w.WriteStream(meta, payload)
	case ScalarF32, ScalarF64:
		floats := gatherFloat(s.Floats, present, featureCount)
		words := make([]uint32, len(floats))

		for i, f := range floats {
			words[i] = math.Float32bits(float32(f))
		}

		meta, payload, err := stream.EncodeU32(format.TagDataPlain, format.LogicalNone, format.PhysicalNone, words)
		if err != nil {
			return err
		}

		w.WriteStream(meta, payload)
	}

	return nil
}

func readOptionalPresent(r *stream.Reader, colType format.ColumnType, featureCount int) ([]bool, error) {
	if !colType.IsOptional() {
		return nil, nil
	}

	meta, payload, err := r.Next()
	if err != nil {
		return nil, err
	}

	if meta.Tag.Role() != format.RolePresent {
		return nil, errs.NewInvalidEnum("stream-role", uint8(meta.Tag.Role()))
	}

	return bitpack.DecodePresentBitmap(payload, featureCount)
}

func writePresentBitmap(w *stream.Writer, present []bool) {
	packed := bitpack.EncodePresentBitmap(present)
	w.WriteStream(stream.Meta{
		Tag: format.TagPresent, Logical: format.LogicalNone, Physical: format.PhysicalNone,
		NumValues: len(present), ByteLength: len(packed),
	}, packed)
}

func scalarLen(s *Scalar) int {
	switch {
	case s.Bools != nil:
		return len(s.Bools)
	case s.Ints != nil:
		return len(s.Ints)
	case s.UInts != nil:
		return len(s.UInts)
	case s.Floats != nil:
		return len(s.Floats)
	default:
		return 0
	}
}

func scalarPresent(s *Scalar) []bool {
	n := scalarLen(s)
	present := make([]bool, n)

	for i := 0; i < n; i++ {
		switch {
		case s.Bools != nil:
			present[i] = s.Bools[i] != nil
		case s.Ints != nil:
			present[i] = s.Ints[i] != nil
		case s.UInts != nil:
			present[i] = s.UInts[i] != nil
		case s.Floats != nil:
			present[i] = s.Floats[i] != nil
		}
	}

	return present
}

func scatterBool(values []bool, present []bool, featureCount int) []*bool {
	out := make([]*bool, featureCount)
	idx := 0

	for i := 0; i < featureCount; i++ {
		if present != nil && !present[i] {
			continue
		}

		v := values[idx]
		out[i] = &v
		idx++
	}

	return out
}

func scatterInt(values []int64, present []bool, featureCount int) []*int64 {
	out := make([]*int64, featureCount)
	idx := 0

	for i := 0; i < featureCount; i++ {
		if present != nil && !present[i] {
			continue
		}

		v := values[idx]
		out[i] = &v
		idx++
	}

	return out
}

func scatterUint(values []uint64, present []bool, featureCount int) []*uint64 {
	out := make([]*uint64, featureCount)
	idx := 0

	for i := 0; i < featureCount; i++ {
		if present != nil && !present[i] {
			continue
		}

		v := values[idx]
		out[i] = &v
		idx++
	}

	return out
}

func scatterFloat(values []float64, present []bool, featureCount int) []*float64 {
	out := make([]*float64, featureCount)
	idx := 0

	for i := 0; i < featureCount; i++ {
		if present != nil && !present[i] {
			continue
		}

		v := values[idx]
		out[i] = &v
		idx++
	}

	return out
}

func gatherBool(values []*bool, present []bool, featureCount int) []bool {
	out := make([]bool, 0, featureCount)

	for i := 0; i < featureCount; i++ {
		if present != nil && !present[i] {
			continue
		}

		out = append(out, *values[i])
	}

	return out
}

func gatherInt(values []*int64, present []bool, featureCount int) []int64 {
	out := make([]int64, 0, featureCount)

	for i := 0; i < featureCount; i++ {
		if present != nil && !present[i] {
			continue
		}

		out = append(out, *values[i])
	}

	return out
}

func gatherUint(values []*uint64, present []bool, featureCount int) []uint64 {
	out := make([]uint64, 0, featureCount)

	for i := 0; i < featureCount; i++ {
		if present != nil && !present[i] {
			continue
		}

		out = append(out, *values[i])
	}

	return out
}

func gatherFloat(values []*float64, present []bool, featureCount int) []float64 {
	out := make([]float64, 0, featureCount)

	for i := 0; i < featureCount; i++ {
		if present != nil && !present[i] {
			continue
		}

		out = append(out, *values[i])
	}

	return out
}
