package stream

import (
	"github.com/maplibre-tiles/mlt-go/bitpack"
	"github.com/maplibre-tiles/mlt-go/internal/pool"
)

// Writer accumulates a column or geometry body as a sequence of stream
// frames, reusing a pooled buffer the way the blob-set encoder does for
// its frame accumulation.
type Writer struct {
	buf *pool.ByteBuffer
}

// NewWriter returns an empty Writer backed by a pooled buffer.
func NewWriter() *Writer {
	return &Writer{buf: pool.GetBlobBuffer()}
}

// WriteStream appends one stream's header followed by its payload.
func (w *Writer) WriteStream(meta Meta, payload []byte) {
	w.buf.MustWrite(EncodeHeader(meta))
	w.buf.MustWrite(payload)
}

// WriteUvarint appends a raw LEB128 varuint that precedes a stream
// sequence rather than framing one (the geometry column's stream_count
// prefix, spec.md §4.6).
func (w *Writer) WriteUvarint(v uint64) {
	w.buf.B = bitpack.AppendUvarint(w.buf.B, v)
}

// Bytes returns the accumulated body. The Writer must not be reused
// after Release is called.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Release returns the backing buffer to the pool. Callers that still
// need Bytes()'s contents must copy them out first.
func (w *Writer) Release() {
	pool.PutBlobBuffer(w.buf)
}
