package layer

import (
	"github.com/maplibre-tiles/mlt-go/bitpack"
	"github.com/maplibre-tiles/mlt-go/errs"
)

// readString reads a varuint-length-prefixed UTF-8 string starting at
// data[offset], returning the value and the number of bytes consumed.
func readString(data []byte, offset int) (string, int, error) {
	n, hn, err := bitpack.ConsumeUvarint(data, offset)
	if err != nil {
		return "", 0, err
	}

	offset += hn

	if offset+int(n) > len(data) {
		return "", 0, errs.NewBufferUnderflow(offset+int(n), len(data))
	}

	return string(data[offset : offset+int(n)]), hn + int(n), nil
}

// appendString appends v as a varuint-length-prefixed UTF-8 string.
func appendString(buf []byte, v string) []byte {
	buf = bitpack.AppendUvarint(buf, uint64(len(v)))
	buf = append(buf, v...)

	return buf
}
