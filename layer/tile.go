package layer

import (
	"github.com/maplibre-tiles/mlt-go/bitpack"
	"github.com/maplibre-tiles/mlt-go/errs"
)

// ParseTile parses data as a back-to-back sequence of layers (spec.md
// §3, §4.7). A 0x01 tag is fully decoded into a Layer01; any other tag
// is preserved verbatim as an Unknown layer so re-encoding reproduces
// the original bytes without needing to understand its schema.
func ParseTile(data []byte) (*Tile, error) {
	t := &Tile{}
	offset := 0

	for offset < len(data) {
		tag := data[offset]
		offset++

		if tag == Tag01 {
			l, n, err := parseLayer01Body(data[offset:])
			if err != nil {
				return nil, err
			}

			offset += n
			t.Layers = append(t.Layers, l)

			continue
		}

		length, n, err := bitpack.ConsumeUvarint(data, offset)
		if err != nil {
			return nil, err
		}

		offset += n

		if offset+int(length) > len(data) {
			return nil, errs.NewBufferUnderflow(offset+int(length), len(data))
		}

		value := make([]byte, length)
		copy(value, data[offset:offset+int(length)])
		offset += int(length)

		t.Layers = append(t.Layers, &Unknown{Tag: tag, Value: value})
	}

	return t, nil
}

// EncodeTile serializes t's layers back to back, reproducing Unknown
// layers' bytes verbatim and re-encoding every Layer01 from its decoded
// form.
func EncodeTile(t *Tile) ([]byte, error) {
	var out []byte

	for _, l := range t.Layers {
		switch v := l.(type) {
		case *Layer01:
			body, err := EncodeLayer01(v)
			if err != nil {
				return nil, err
			}

			out = append(out, Tag01)
			out = append(out, body...)
		case *Unknown:
			out = append(out, v.Tag)
			out = bitpack.AppendUvarint(out, uint64(len(v.Value)))
			out = append(out, v.Value...)
		default:
			return nil, errs.NewInvalidEnum("layer-type", 0xFF)
		}
	}

	return out, nil
}
