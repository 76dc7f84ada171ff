package autoencoder

import (
	"github.com/maplibre-tiles/mlt-go/format"
	"github.com/maplibre-tiles/mlt-go/internal/options"
)

// Option configures a Selector.
type Option = options.Option[*Selector]

// WithForcedCodecs restricts competition to exactly the given logical
// codecs, bypassing the profile-driven pruning in step 3. Useful for a
// caller that already knows a stream's shape (vertex data is always
// ComponentwiseDelta) or for deterministic tests.
func WithForcedCodecs(logicals ...format.LogicalCodec) Option {
	return options.NoError[*Selector](func(s *Selector) {
		s.forced = logicals
	})
}

// WithSampleBounds overrides the default sample window clamp (spec §4.8
// step 1 default: [512, 4096]).
func WithSampleBounds(min, max int) Option {
	return options.NoError[*Selector](func(s *Selector) {
		s.sampleMin = min
		s.sampleMax = max
	})
}

// WithHyperLogLogPrecision overrides the default HyperLogLog register
// count (2^p registers; default p=10).
func WithHyperLogLogPrecision(p uint8) Option {
	return options.NoError[*Selector](func(s *Selector) {
		s.hllPrecision = p
	})
}
