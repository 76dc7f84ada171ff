package bitpack

import "github.com/maplibre-tiles/mlt-go/errs"

// FsstEscape is the byte that introduces a literal in an FSST-compressed
// payload: escape followed by exactly one literal byte.
const FsstEscape byte = 0xFF

// FsstMaxSymbols is the largest symbol table size a single byte index can
// address; index 0xFF is reserved for FsstEscape.
const FsstMaxSymbols = 255

// FsstDecode expands an FSST-compressed payload against a symbol table:
// each byte of data is either FsstEscape followed by one literal byte,
// or an index into table whose referenced bytes are appended verbatim.
func FsstDecode(data []byte, table [][]byte) ([]byte, error) {
	out := make([]byte, 0, len(data)*2)

	for i := 0; i < len(data); i++ {
		b := data[i]
		if b == FsstEscape {
			i++
			if i >= len(data) {
				return nil, errs.NewBufferUnderflow(1, 0)
			}

			out = append(out, data[i])

			continue
		}

		if int(b) >= len(table) {
			return nil, errs.NewInvalidEnum("fsst-symbol", b)
		}

		out = append(out, table[b]...)
	}

	return out, nil
}

// FsstEncode greedily tokenizes data against table using longest-prefix
// match, falling back to an escaped literal byte when no symbol matches
// at the current position.
func FsstEncode(data []byte, table [][]byte) []byte {
	out := make([]byte, 0, len(data))

	for i := 0; i < len(data); {
		symIdx, symLen := longestMatch(data[i:], table)
		if symLen > 0 {
			out = append(out, byte(symIdx))
			i += symLen

			continue
		}

		out = append(out, FsstEscape, data[i])
		i++
	}

	return out
}

func longestMatch(data []byte, table [][]byte) (idx int, length int) {
	bestIdx, bestLen := -1, 0

	for i, sym := range table {
		if len(sym) <= bestLen || len(sym) > len(data) {
			continue
		}

		if bytesEqual(data[:len(sym)], sym) {
			bestIdx, bestLen = i, len(sym)
		}
	}

	if bestIdx < 0 {
		return 0, 0
	}

	return bestIdx, bestLen
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
