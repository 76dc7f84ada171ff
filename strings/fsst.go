package strings

import (
	"sort"

	"github.com/maplibre-tiles/mlt-go/bitpack"
	"github.com/maplibre-tiles/mlt-go/errs"
)

// BuildSymbolTable picks up to bitpack.FsstMaxSymbols byte sequences
// from dict to use as FSST symbols, by greedy frequency count over
// substrings of length 2..8. This is a simplified stand-in for the FSST
// paper's full symbol-table construction (which also considers symbol
// overlap and a proper cost model); it is good enough to exercise the
// FSST wire format and recovers the dictionary exactly regardless of how
// good the chosen symbols are.
func BuildSymbolTable(dict []string) [][]byte {
	freq := make(map[string]int)

	for _, v := range dict {
		b := []byte(v)
		for n := 2; n <= 8; n++ {
			for i := 0; i+n <= len(b); i++ {
				freq[string(b[i:i+n])]++
			}
		}
	}

	type candidate struct {
		sym   string
		score int
	}

	candidates := make([]candidate, 0, len(freq))
	for sym, count := range freq {
		if count < 2 {
			continue
		}

		candidates = append(candidates, candidate{sym: sym, score: count * len(sym)})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}

		return candidates[i].sym < candidates[j].sym
	})

	limit := bitpack.FsstMaxSymbols
	if len(candidates) < limit {
		limit = len(candidates)
	}

	table := make([][]byte, limit)
	for i := 0; i < limit; i++ {
		table[i] = []byte(candidates[i].sym)
	}

	return table
}

// EncodeFsstDictionary compresses dict through an FSST symbol table,
// returning the symbol table's own lengths/bytes, the plain dictionary's
// lengths, and the FSST-compressed dictionary blob (spec.md §4.5 mode 3).
func EncodeFsstDictionary(dict []string) (symbolLengths []uint32, symbolTable []byte, dictLengths []uint32, compressed []byte) {
	table := BuildSymbolTable(dict)

	symbolLengths = make([]uint32, len(table))
	for i, s := range table {
		symbolLengths[i] = uint32(len(s))
		symbolTable = append(symbolTable, s...)
	}

	dictLengths = make([]uint32, len(dict))

	var plain []byte
	for i, d := range dict {
		dictLengths[i] = uint32(len(d))
		plain = append(plain, d...)
	}

	compressed = bitpack.FsstEncode(plain, table)

	return symbolLengths, symbolTable, dictLengths, compressed
}

// DecodeFsstDictionary reverses EncodeFsstDictionary's compression step,
// returning the plain dictionary entries ready for decodeIndexed.
func DecodeFsstDictionary(symbolLengths []uint32, symbolTable []byte, dictLengths []uint32, compressed []byte) ([]string, error) {
	table, err := splitSymbolTable(symbolLengths, symbolTable)
	if err != nil {
		return nil, err
	}

	plain, err := bitpack.FsstDecode(compressed, table)
	if err != nil {
		return nil, err
	}

	dict, cleanup, err := splitByLengths(dictLengths, plain)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return append([]string(nil), dict...), nil
}

func splitSymbolTable(lengths []uint32, data []byte) ([][]byte, error) {
	table := make([][]byte, len(lengths))
	offset := 0

	for i, l := range lengths {
		n := int(l)
		if offset+n > len(data) {
			return nil, errs.NewInvalidStreamData(offset+n, len(data))
		}

		table[i] = data[offset : offset+n]
		offset += n
	}

	if offset != len(data) {
		return nil, errs.NewInvalidStreamData(offset, len(data))
	}

	return table, nil
}

// DecodeFsst reverses EncodeFsstDictionary and the indexed lookup in one
// step (spec.md §4.5 mode 3: Length(Symbol) + Data(Fsst) +
// Length(Dictionary) + Data(Single) + Offset(String)).
func DecodeFsst(present []bool, symbolLengths []uint32, symbolTable []byte, dictLengths []uint32, compressed []byte, offsets []uint32, numValues int) ([]*string, error) {
	dict, err := DecodeFsstDictionary(symbolLengths, symbolTable, dictLengths, compressed)
	if err != nil {
		return nil, err
	}

	return decodeIndexed(present, offsets, dict, numValues)
}
