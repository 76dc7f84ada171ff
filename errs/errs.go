// Package errs provides the flat error catalog used across mlt-go.
//
// The decoder is never permitted to panic on adversarial input: every
// out-of-bounds read, invalid enum discriminant, or inconsistent stream
// pairing surfaces as one of the errors below instead.
package errs

import (
	"errors"
	"fmt"
)

// Parse errors.
var (
	ErrBufferUnderflow         = errors.New("mlt: buffer underflow")
	ErrTrailingLayerData       = errors.New("mlt: trailing bytes after layer body")
	ErrMissingGeometry         = errors.New("mlt: layer has no geometry column")
	ErrMultipleGeometryColumns = errors.New("mlt: layer has more than one geometry column")
	ErrMultipleIdColumns       = errors.New("mlt: layer has more than one id column")
	ErrInvalidByteMultiple     = errors.New("mlt: byte length is not a multiple of the element width")
)

// Consistency errors.
var (
	ErrInvalidPairStreamSize = errors.New("mlt: componentwise-delta stream length must be a non-zero multiple of 2")
	ErrRleRunLenInvalid      = errors.New("mlt: run-length value is negative after widening")
	ErrPresentDataMismatch   = errors.New("mlt: present bitmap popcount does not match data stream length")
	ErrGeometryVertexOOB     = errors.New("mlt: vertex offset out of bounds")
	ErrGeometryOffsetOOB     = errors.New("mlt: geometry offset out of bounds")
	ErrNoGeometryOffsets     = errors.New("mlt: geometry requires geometry offsets but none are present")
	ErrNoPartOffsets         = errors.New("mlt: geometry requires part offsets but none are present")
	ErrNoRingOffsets         = errors.New("mlt: geometry requires ring offsets but none are present")
	ErrUnexpectedOffsets     = errors.New("mlt: unexpected combination of offset streams for geometry type")
	ErrIDValueRequired       = errors.New("mlt: non-optional id column cannot contain a nil value")
)

// Arithmetic errors.
var (
	ErrIntegerOverflow  = errors.New("mlt: integer overflow converting length or count")
	ErrShiftTooLarge    = errors.New("mlt: morton shift exceeds coordinate width")
	ErrConversionOver   = errors.New("mlt: numeric conversion overflow")
	ErrSubtractOverflow = errors.New("mlt: unsigned subtraction would underflow")
)

// Lifecycle errors.
var (
	ErrColumnNotLowered = errors.New("mlt: decoded column must be lowered to raw before serialization")
	ErrHashCollision    = errors.New("mlt: xxhash collision detected while interning dictionary entry")
)

// DataWidthMismatchError reports that a stream was decoded at the wrong integer width.
type DataWidthMismatchError struct {
	Stored    string
	Requested string
}

func (e *DataWidthMismatchError) Error() string {
	return fmt.Sprintf("mlt: stream stores %s values, cannot decode as %s", e.Stored, e.Requested)
}

// NewDataWidthMismatch builds a DataWidthMismatchError.
func NewDataWidthMismatch(stored, requested string) error {
	return &DataWidthMismatchError{Stored: stored, Requested: requested}
}

// InvalidStreamDataError reports a length mismatch between a present bitmap and its data stream.
type InvalidStreamDataError struct {
	Expected int
	Got      int
}

func (e *InvalidStreamDataError) Error() string {
	return fmt.Sprintf("mlt: invalid stream data, expected %d values, got %d", e.Expected, e.Got)
}

// NewInvalidStreamData builds an InvalidStreamDataError.
func NewInvalidStreamData(expected, got int) error {
	return &InvalidStreamDataError{Expected: expected, Got: got}
}

// UnsupportedLogicalCodecError reports a logical codec that cannot serve the requested width.
type UnsupportedLogicalCodecError struct {
	Codec string
	Width string
}

func (e *UnsupportedLogicalCodecError) Error() string {
	return fmt.Sprintf("mlt: unsupported logical codec %s for %s width", e.Codec, e.Width)
}

// NewUnsupportedLogicalCodec builds an UnsupportedLogicalCodecError.
func NewUnsupportedLogicalCodec(codec, width string) error {
	return &UnsupportedLogicalCodecError{Codec: codec, Width: width}
}

// UnsupportedPhysicalCodecError reports a reserved or width-incompatible physical codec.
type UnsupportedPhysicalCodecError struct {
	Name string
}

func (e *UnsupportedPhysicalCodecError) Error() string {
	return fmt.Sprintf("mlt: unsupported physical codec %q", e.Name)
}

// NewUnsupportedPhysicalCodec builds an UnsupportedPhysicalCodecError.
func NewUnsupportedPhysicalCodec(name string) error {
	return &UnsupportedPhysicalCodecError{Name: name}
}

// NotImplementedError marks a reserved code path that has no semantics yet.
type NotImplementedError struct {
	Feature string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("mlt: not implemented: %s", e.Feature)
}

// NewNotImplemented builds a NotImplementedError.
func NewNotImplemented(feature string) error {
	return &NotImplementedError{Feature: feature}
}

// InvalidEnumError reports an unrecognized on-wire discriminant byte.
type InvalidEnumError struct {
	Kind  string
	Value uint8
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("mlt: invalid %s discriminant: 0x%02x", e.Kind, e.Value)
}

// NewInvalidEnum builds an InvalidEnumError.
func NewInvalidEnum(kind string, value uint8) error {
	return &InvalidEnumError{Kind: kind, Value: value}
}

// BufferUnderflowError carries the requested/available byte counts for a truncated read.
type BufferUnderflowError struct {
	Requested int
	Available int
}

func (e *BufferUnderflowError) Error() string {
	return fmt.Sprintf("mlt: buffer underflow, requested %d bytes, %d available", e.Requested, e.Available)
}

// NewBufferUnderflow builds a BufferUnderflowError that also satisfies errors.Is(err, ErrBufferUnderflow).
func NewBufferUnderflow(requested, available int) error {
	return &BufferUnderflowError{Requested: requested, Available: available}
}

// Unwrap lets errors.Is(NewBufferUnderflow(...), ErrBufferUnderflow) succeed.
func (e *BufferUnderflowError) Unwrap() error { return ErrBufferUnderflow }
