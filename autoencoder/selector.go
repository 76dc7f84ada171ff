// Package autoencoder implements the profile-then-compete codec
// selection spec.md §4.8 describes: sample a stream, profile it in one
// pass, prune the codec candidates the profile rules out, then encode
// the full sequence with every survivor and keep the smallest payload.
package autoencoder

import (
	"github.com/maplibre-tiles/mlt-go/format"
	"github.com/maplibre-tiles/mlt-go/internal/options"
	"github.com/maplibre-tiles/mlt-go/stream"
)

const (
	defaultSampleMin    = 512
	defaultSampleMax    = 4096
	defaultHLLPrecision = 10
)

// candidate pairs a logical transform with a physical codec the
// competition step tries.
type candidate struct {
	logical  format.LogicalCodec
	physical format.PhysicalCodec
}

// Selector picks a logical/physical codec pair for a numeric stream. It
// holds no per-stream state, so one Selector can be reused across every
// column in a layer.
type Selector struct {
	sampleMin, sampleMax int
	hllPrecision         uint8
	forced               []format.LogicalCodec
}

// NewSelector builds a Selector with the spec's default sampling and
// HyperLogLog precision, customizable via Option.
func NewSelector(opts ...Option) (*Selector, error) {
	s := &Selector{
		sampleMin:    defaultSampleMin,
		sampleMax:    defaultSampleMax,
		hllPrecision: defaultHLLPrecision,
	}

	if err := options.Apply[*Selector](s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

// Result is the chosen codec pair and the encoding it produced, so a
// caller never has to re-encode after selection.
type Result struct {
	Logical  format.LogicalCodec
	Physical format.PhysicalCodec
	Meta     stream.Meta
	Payload  []byte
}

// SelectU32 picks and applies the smallest-payload codec pair for a u32
// stream: lengths, offsets, and unsigned/zigzag property values.
func (s *Selector) SelectU32(tag format.PhysicalStreamTag, values []uint32) (Result, error) {
	prof := profileU32(sampleU32(values, s.sampleMin, s.sampleMax), s.hllPrecision)

	return compete(s.candidates(prof, true), func(c candidate) (stream.Meta, []byte, error) {
		return stream.EncodeU32(tag, c.logical, c.physical, values)
	})
}

// SelectU64 is the u64 counterpart of SelectU32. FastPFOR is never
// tried: spec §4.2 restricts it to 32-bit streams.
func (s *Selector) SelectU64(tag format.PhysicalStreamTag, values []uint64) (Result, error) {
	prof := profileU64(sampleU64(values, s.sampleMin, s.sampleMax), s.hllPrecision)

	return compete(s.candidates(prof, false), func(c candidate) (stream.Meta, []byte, error) {
		return stream.EncodeU64(tag, c.logical, c.physical, values)
	})
}

// candidates prunes the codec list per spec §4.8 step 3, then takes the
// full (logical × physical) cross product on u32 streams: every
// surviving logical transform is tried with both VarInt and FastPFOR,
// since FastPFOR packs whatever word sequence the logical stage
// produces regardless of which transform ran. Order is simplest-first
// (VarInt before FastPFOR within a logical codec, simpler logical
// codecs before more complex ones): the competition loop in compete
// keeps the first strictly-smallest payload it sees, so a size tie
// resolves toward the simpler codec exactly as the spec's tie-break
// rule requires.
func (s *Selector) candidates(prof profile, allowFastPFOR bool) []candidate {
	if len(s.forced) > 0 {
		return s.forcedCandidates(allowFastPFOR)
	}

	logicals := []format.LogicalCodec{format.LogicalNone}

	rleOK := prof.avgRunLength >= 2.0 && prof.distinctRatio < 0.9
	deltaOK := prof.sorted || prof.maxBitWidth-prof.maxDeltaBitWidth >= 4

	if rleOK {
		logicals = append(logicals, format.LogicalRle)
	}

	if deltaOK {
		logicals = append(logicals, format.LogicalDelta)
	}

	if deltaOK && rleOK {
		logicals = append(logicals, format.LogicalDeltaRle)
	}

	return physicalCrossProduct(logicals, allowFastPFOR)
}

func (s *Selector) forcedCandidates(allowFastPFOR bool) []candidate {
	return physicalCrossProduct(s.forced, allowFastPFOR)
}

// physicalCrossProduct pairs each logical codec with VarInt, and with
// FastPFOR too when allowFastPFOR (u32 streams only; spec §4.2
// restricts FastPFOR to 32-bit words).
func physicalCrossProduct(logicals []format.LogicalCodec, allowFastPFOR bool) []candidate {
	out := make([]candidate, 0, len(logicals)*2)

	for _, l := range logicals {
		out = append(out, candidate{l, format.PhysicalVarInt})

		if allowFastPFOR {
			out = append(out, candidate{l, format.PhysicalFastPFOR})
		}
	}

	return out
}

// compete encodes the full sequence with each candidate and keeps the
// smallest payload (spec §4.8 step 4); a candidate that errors is
// skipped rather than scored, since Go reports encode failures instead
// of sentinel sizes. The empty-candidate fallback is plain None/VarInt.
func compete(candidates []candidate, encode func(candidate) (stream.Meta, []byte, error)) (Result, error) {
	var best Result

	bestSize := -1

	for _, c := range candidates {
		meta, payload, err := encode(c)
		if err != nil {
			continue
		}

		if bestSize == -1 || len(payload) < bestSize {
			best = Result{Logical: c.logical, Physical: c.physical, Meta: meta, Payload: payload}
			bestSize = len(payload)
		}
	}

	if bestSize == -1 {
		meta, payload, err := encode(candidate{format.LogicalNone, format.PhysicalVarInt})
		if err != nil {
			return Result{}, err
		}

		return Result{Logical: format.LogicalNone, Physical: format.PhysicalVarInt, Meta: meta, Payload: payload}, nil
	}

	return best, nil
}
