// Package strings reconstructs property-column string values from the
// stream shapes spec.md §4.5 allows: plain length-prefixed UTF-8, a
// shared dictionary addressed by per-feature offsets, an FSST-compressed
// dictionary, and a dictionary shared across struct sibling children.
// Every function here operates on already-decoded stream payloads (bool
// presence slices, u32 length/offset slices, raw bytes); the stream
// package is responsible for recovering those from the wire.
//
// Import this package aliased to avoid shadowing the standard library:
//
//	import mltstrings "github.com/maplibre-tiles/mlt-go/strings"
package strings
