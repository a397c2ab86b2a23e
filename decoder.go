package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
)

// maxPrealloc caps the output capacity guessed from a container's bit count.
const maxPrealloc = 1 << 24

// Decoder implements a decoder for the codes in a CodeTable.
type Decoder struct {
	table   map[Code]decoderData
	codes   CodeTable
	minSize byte
	maxSize byte
}

// Init initializes this Decoder from a code table.  The table must hold at
// least one Code, and its Codes must be prefix-free.
func (d *Decoder) Init(table *CodeTable) error {
	if err := table.Validate(); err != nil {
		return err
	}

	numSymbols := uint32(table.Len())
	if numSymbols == 0 {
		return errors.New("code table has no symbols")
	}

	// len(table) is approximately n×log2(n) when filled.
	numTableSlots := numSymbols * log2uint32(numSymbols)

	*d = Decoder{
		table:   make(map[Code]decoderData, numTableSlots),
		codes:   *table,
		minSize: table.MinSize(),
		maxSize: table.MaxSize(),
	}

	for _, symbol := range table.Symbols() {
		hc, _ := table.Lookup(symbol)
		fillTable(d.table, symbol, hc)
	}

	return nil
}

// Decode looks up a sequence of bits.
//
// If hc is exactly the Code of some symbol, complete == true and
// minSize == maxSize == hc.Size.
//
// If hc is a proper prefix of one or more Codes, complete == false and at
// least (minSize - hc.Size) additional bits are required to decode a symbol.
// No more than (maxSize - hc.Size) additional bits will be required.
//
// If hc is not a prefix of any Code, complete == false and
// minSize == maxSize == 0.
//
func (d *Decoder) Decode(hc Code) (symbol Symbol, complete bool, minSize byte, maxSize byte) {
	dd, found := d.table[hc]
	if !found {
		return 0, false, 0, 0
	}
	return dd.symbol, dd.complete, dd.minSize, dd.maxSize
}

// DecodeBits reads every bit from u and returns the decoded bytes.  A bit
// string that cannot lead to any Code, or a stream that ends partway through
// a Code, yields a *CorruptContainerError.
func (d *Decoder) DecodeBits(u *BitUnpacker) ([]byte, error) {
	if d.table == nil {
		return nil, errors.New("huffman: Decoder is not initialized")
	}

	estimate := u.Remaining() / uint64(d.minSize)
	if estimate > maxPrealloc {
		estimate = maxPrealloc
	}
	out := make([]byte, 0, estimate)

	var candidate Code
	for {
		bit, err := u.NextBit()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		candidate = candidate.Append(bit)
		symbol, complete, _, maxSize := d.Decode(candidate)
		if complete {
			out = append(out, byte(symbol))
			candidate = Code{}
			continue
		}
		if maxSize == 0 || candidate.Size >= d.maxSize {
			return nil, corruptf(nil, "bit string %s matches no code", candidate)
		}
	}

	if candidate.Size != 0 {
		return nil, corruptf(nil, "bit stream ends inside code %s", candidate)
	}
	return out, nil
}

// Table returns a copy of the code table.
func (d *Decoder) Table() CodeTable {
	return d.codes
}

// MinSize is the bit length of the shortest legal code.
func (d *Decoder) MinSize() byte {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d *Decoder) MaxSize() byte {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make(byCode, 0, len(d.table))
	for hc := range d.table {
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		dd := d.table[hc]
		if dd.complete {
			fmt.Fprintf(&buf, "\tDecode(%s) = {%d, %d, %d}\n", hc, dd.symbol, dd.minSize, dd.maxSize)
		} else {
			fmt.Fprintf(&buf, "\tDecode(%s) = {-, %d, %d}\n", hc, dd.minSize, dd.maxSize)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief description of the Decoder.
func (d *Decoder) String() string {
	return fmt.Sprintf("(Huffman decoder with %d symbols, with coded lengths of %d .. %d bits)", d.codes.Len(), d.minSize, d.maxSize)
}

var _ fmt.Stringer = (*Decoder)(nil)

// Decompress reverses Compress.  Any inconsistency in the container yields
// a *CorruptContainerError.
func Decompress(c *Container) ([]byte, error) {
	capacity := uint64(len(c.Payload)) * 8
	if c.BitCount > capacity {
		return nil, corruptf(nil, "bit count %d exceeds payload capacity of %d bits", c.BitCount, capacity)
	}

	var d Decoder
	if err := d.Init(&c.Table); err != nil {
		return nil, corruptf(err, "invalid code table")
	}

	return d.DecodeBits(NewBitUnpacker(bytes.NewReader(c.Payload), c.BitCount))
}

type decoderData struct {
	symbol   Symbol
	complete bool
	minSize  byte
	maxSize  byte
}

func fillTable(table map[Code]decoderData, symbol Symbol, hc Code) {
	dd := decoderData{symbol, true, hc.Size, hc.Size}
	table[hc] = dd

	for hc.Size != 0 {
		// For each hc "...xxxa", compute "...xxxA" where A = NOT a.

		sibling := MakeCode(hc.Size, hc.Bits^1)

		// Merge the dd's from "...xxxa" (dd) and "...xxxA" (ddSibling)
		// into ddNew (the new parent for dd and ddSibling).

		ddNew := decoderData{0, false, dd.minSize, dd.maxSize}
		if ddSibling, found := table[sibling]; found {
			if ddNew.minSize > ddSibling.minSize {
				ddNew.minSize = ddSibling.minSize
			}
			if ddNew.maxSize < ddSibling.maxSize {
				ddNew.maxSize = ddSibling.maxSize
			}
		}

		// Mutate hc from "...xxxa" to "...xxx".

		hc = hc.Parent()

		// If table[hc] already equals ddNew, we can stop recursing.

		if ddOld, found := table[hc]; found && ddOld == ddNew {
			break
		}

		// Update table[hc] with ddNew and continue recursing.

		table[hc] = ddNew
		dd = ddNew
	}
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	as, ab := a.Size, a.Bits
	bs, bb := b.Size, b.Bits
	if as != bs {
		return as < bs
	}
	return ab < bb
}

var _ sort.Interface = byCode(nil)

// }}}
