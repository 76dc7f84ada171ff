package stream

import (
	"github.com/maplibre-tiles/mlt-go/bitpack"
	"github.com/maplibre-tiles/mlt-go/errs"
	"github.com/maplibre-tiles/mlt-go/format"
)

// Reader sequentially consumes (Meta, payload) stream frames from a
// column or geometry body. Columns do not prefix a stream count (only
// the geometry column's item streams do, via its own varuint) so callers
// decide how many streams to pull by inspecting each Meta's Tag as it is
// read.
type Reader struct {
	data   []byte
	offset int
}

// NewReader wraps data for sequential stream consumption starting at offset 0.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining reports how many bytes are left unconsumed.
func (r *Reader) Remaining() int {
	return len(r.data) - r.offset
}

// PeekTag reports the next stream's tag without consuming it. Callers
// use this to decide which string/struct mode a column takes before
// committing to a Next call.
func (r *Reader) PeekTag() (format.PhysicalStreamTag, error) {
	if r.Remaining() < 1 {
		return 0, errs.NewBufferUnderflow(1, r.Remaining())
	}

	return format.PhysicalStreamTag(r.data[r.offset]), nil
}

// Next consumes one stream's header and payload, advancing past both.
func (r *Reader) Next() (Meta, []byte, error) {
	meta, n, err := DecodeHeader(r.data[r.offset:])
	if err != nil {
		return Meta{}, nil, err
	}

	r.offset += n

	if meta.ByteLength > r.Remaining() {
		return Meta{}, nil, errs.NewBufferUnderflow(meta.ByteLength, r.Remaining())
	}

	payload := r.data[r.offset : r.offset+meta.ByteLength]
	r.offset += meta.ByteLength

	return meta, payload, nil
}

// Offset reports how many bytes have been consumed so far.
func (r *Reader) Offset() int {
	return r.offset
}

// ReadUvarint consumes one raw LEB128 varuint that precedes a stream
// sequence rather than framing one (e.g. the geometry column's
// stream_count prefix, spec.md §4.6).
func (r *Reader) ReadUvarint() (uint64, error) {
	v, n, err := bitpack.ConsumeUvarint(r.data, r.offset)
	if err != nil {
		return 0, err
	}

	r.offset += n

	return v, nil
}
